package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/objspace/internal/prefs"
	"github.com/five82/objspace/internal/state"
	"github.com/five82/objspace/pkg/objspace"
)

type fakeReloader struct {
	store   *state.Store
	reloads int
	updates chan struct{}
}

func newFakeReloader(store *state.Store) *fakeReloader {
	return &fakeReloader{store: store, updates: make(chan struct{}, 1)}
}

func (f *fakeReloader) Reload() {
	f.reloads++
	f.store.Update("object_space.toml", charucoConfig(), nil)
	f.updates <- struct{}{}
}

func (f *fakeReloader) Updates() <-chan struct{} { return f.updates }

func charucoConfig() objspace.ObjectSpaceConfig {
	return objspace.ObjectSpaceConfig{Camera: objspace.DetectorDescriptor{
		Detector: objspace.Charuco{
			Width: 10, Height: 7, EdgeLength: 0.04, MarkerLength: 0.03,
			Variances: []float64{1e-6, 1e-6, 4e-6},
		},
		Descriptor: objspace.DetectorDefined{},
	}}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStatusOf(t *testing.T) {
	boom := errors.New("boom")
	cases := []struct {
		name string
		snap state.Snapshot
		want string
	}{
		{"empty", state.Snapshot{}, statusLoading},
		{"ok", state.Snapshot{HasConfig: true}, statusOK},
		{"error", state.Snapshot{LastError: boom}, statusError},
		{"stale", state.Snapshot{HasConfig: true, LastError: boom}, statusStale},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusOf(tc.snap); got != tc.want {
				t.Fatalf("statusOf = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderBody_Config(t *testing.T) {
	snap := state.Snapshot{HasConfig: true, Config: charucoConfig()}
	out := renderBody(snap, GetTheme("Slate").Styles(), 200)

	for _, want := range []string{"valid", "charuco", "10 × 7 squares", "0.03 m", "Z 4e-06", "detector_defined", "Canonical TOML", "marker_length"} {
		if !strings.Contains(out, want) {
			t.Fatalf("renderBody missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBody_SchemaErrorKeepsLastConfig(t *testing.T) {
	_, err := objspace.Parse([]byte("[camera.detector]\ntype = \"checkerboard\"\n"))
	if err == nil {
		t.Fatalf("Parse returned nil error")
	}
	snap := state.Snapshot{HasConfig: true, Config: charucoConfig(), LastError: err, ConsecutiveFailures: 2}
	out := renderBody(snap, GetTheme("Nightfox").Styles(), 200)

	for _, want := range []string{"missing field", "camera.descriptor", "failed 2 loads", "last configuration", "charuco"} {
		if !strings.Contains(out, want) {
			t.Fatalf("renderBody missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "✓ valid") {
		t.Fatalf("renderBody should not claim the file is valid:\n%s", out)
	}
}

func TestFormatVariances(t *testing.T) {
	if got := formatVariances([]float64{1, 2, 3, 4}); got != "X 1, Y 2, Z 3, #3 4 m²" {
		t.Fatalf("formatVariances = %q", got)
	}
}

func TestModel_ReloadFlow(t *testing.T) {
	store := &state.Store{}
	r := newFakeReloader(store)
	m := New(Options{Context: context.Background(), Store: store, Reloader: r, Log: zerolog.Nop()})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if !m.ready {
		t.Fatalf("model should be ready after WindowSizeMsg")
	}

	next, cmd := m.Update(runeKey("r"))
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("reload key returned nil cmd")
	}
	cmd()
	if r.reloads != 1 {
		t.Fatalf("reloads = %d, want 1", r.reloads)
	}

	msg := waitForUpdateCmd(context.Background(), r, store)()
	next, cmd = m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("update should re-arm the wait cmd")
	}
	if !m.snapshot.HasConfig {
		t.Fatalf("snapshot not applied after update")
	}
	if !strings.Contains(m.View(), "OK") {
		t.Fatalf("View should show OK badge:\n%s", m.View())
	}
}

func TestModel_WaitReturnsNilWhenCancelled(t *testing.T) {
	store := &state.Store{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if msg := waitForUpdateCmd(ctx, newFakeReloader(store), store)(); msg != nil {
		t.Fatalf("wait cmd = %#v, want nil after cancel", msg)
	}
}

func TestModel_CycleThemePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{ThemeName: "Nightfox", PrefsPath: path, Log: zerolog.Nop()})

	next, _ := m.Update(runeKey("T"))
	m = next.(Model)
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("prefs not written: %v", err)
	}
	if p := prefs.Load(path, zerolog.Nop()); p.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", p.Theme)
	}
}

func TestModel_QuitAndHelp(t *testing.T) {
	m := New(Options{Log: zerolog.Nop()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	next, _ = m.Update(runeKey("?"))
	m = next.(Model)
	if !m.showHelp || !strings.Contains(m.View(), "Reload file") {
		t.Fatalf("help overlay not shown:\n%s", m.View())
	}

	// Any key closes help without quitting.
	next, cmd := m.Update(runeKey("q"))
	m = next.(Model)
	if m.showHelp || cmd != nil {
		t.Fatalf("first key should only close help")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c cmd did not produce tea.QuitMsg")
	}
}

func TestRenderHeader_Timestamps(t *testing.T) {
	styles := GetTheme("Nightfox").Styles()
	loaded := time.Date(2026, 1, 2, 10, 0, 0, 0, time.Local)
	failed := loaded.Add(5 * time.Minute)

	stale := state.Snapshot{
		Path: "object_space.toml", HasConfig: true, Config: charucoConfig(),
		LastLoaded: loaded, LastAttempt: failed, LastError: errors.New("boom"),
	}
	out := renderHeader(stale, styles, 200)
	if !strings.Contains(out, "loaded 10:00:00") || !strings.Contains(out, "failed 10:05:00") {
		t.Fatalf("header = %q, want both the load and failure times", out)
	}

	neverLoaded := state.Snapshot{Path: "object_space.toml", LastAttempt: failed, LastError: errors.New("boom")}
	out = renderHeader(neverLoaded, styles, 200)
	if strings.Contains(out, "loaded") {
		t.Fatalf("header = %q, want no load time when nothing loaded", out)
	}
	if !strings.Contains(out, "failed 10:05:00") {
		t.Fatalf("header = %q, want the failure time", out)
	}
}
