package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/objspace/internal/state"
	"github.com/five82/objspace/pkg/objspace"
)

// chromeHeight is the number of rows taken by the header and footer.
const chromeHeight = 2

func statusOf(snap state.Snapshot) string {
	switch {
	case snap.IsStale():
		return statusStale
	case snap.LastError != nil:
		return statusError
	case snap.HasConfig:
		return statusOK
	}
	return statusLoading
}

func renderHeader(snap state.Snapshot, s Styles, width int) string {
	status := statusOf(snap)
	badge := s.StatusStyle(status).Render(strings.ToUpper(status))
	path := snap.Path
	if path == "" {
		path = "(no file)"
	}
	left := s.AccentText.Bold(true).Render("objspace") + " " + s.MutedText.Render(path)

	var stamps []string
	if !snap.LastLoaded.IsZero() {
		stamps = append(stamps, "loaded "+snap.LastLoaded.Format("15:04:05"))
	}
	if snap.LastError != nil && !snap.LastAttempt.IsZero() {
		stamps = append(stamps, "failed "+snap.LastAttempt.Format("15:04:05"))
	}
	loaded := s.FaintText.Render(strings.Join(stamps, " · "))
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(badge)-lipgloss.Width(loaded)-4, 1)
	line := left + strings.Repeat(" ", gap) + loaded + " " + badge
	return s.Header.Width(width).Render(line)
}

func renderFooter(theme Theme, s Styles, width int) string {
	hints := "r reload · T theme (" + theme.Name + ") · ? help · q quit"
	return s.Footer.Width(width).Render(hints)
}

// renderBody renders the error (if any) followed by the loaded config.
func renderBody(snap state.Snapshot, s Styles, width int) string {
	var b strings.Builder

	if snap.LastError != nil {
		b.WriteString(s.DangerText.Render("✗ " + objspace.Describe(snap.LastError)))
		b.WriteString("\n")
		b.WriteString(s.Text.Width(max(width-2, 10)).Render(snap.LastError.Error()))
		b.WriteString("\n")
		if snap.ConsecutiveFailures > 1 {
			b.WriteString(s.FaintText.Render(fmt.Sprintf("failed %d loads in a row", snap.ConsecutiveFailures)))
			b.WriteString("\n")
		}
		if snap.IsStale() {
			b.WriteString(s.WarningText.Render("showing the last configuration that loaded"))
			b.WriteString("\n")
		}
	}

	if !snap.HasConfig {
		if snap.LastError == nil {
			b.WriteString(s.MutedText.Render("Waiting for first load..."))
		}
		return b.String()
	}

	if snap.LastError == nil {
		b.WriteString(s.SuccessText.Render("✓ valid"))
		b.WriteString("\n")
	}

	b.WriteString(s.Section.Render("Camera"))
	b.WriteString("\n")
	for _, f := range configFields(snap.Config) {
		b.WriteString(s.Label.Render(f.label))
		b.WriteString(s.Text.Render(f.value))
		b.WriteString("\n")
	}

	if data, err := objspace.Marshal(snap.Config); err == nil {
		b.WriteString(s.Section.Render("Canonical TOML"))
		b.WriteString("\n")
		b.WriteString(s.Code.Render(strings.TrimRight(string(data), "\n")))
		b.WriteString("\n")
	}
	return b.String()
}

type field struct {
	label string
	value string
}

func configFields(cfg objspace.ObjectSpaceConfig) []field {
	var fields []field
	switch d := cfg.Camera.Detector.(type) {
	case objspace.Checkerboard:
		fields = append(fields,
			field{"detector", string(d.Kind())},
			field{"board", fmt.Sprintf("%d × %d squares", d.Width, d.Height)},
			field{"edge_length", fmt.Sprintf("%g m", d.EdgeLength)},
			field{"variances", formatVariances(d.Variances)},
		)
	case objspace.Charuco:
		fields = append(fields,
			field{"detector", string(d.Kind())},
			field{"board", fmt.Sprintf("%d × %d squares", d.Width, d.Height)},
			field{"edge_length", fmt.Sprintf("%g m", d.EdgeLength)},
			field{"marker_length", fmt.Sprintf("%g m", d.MarkerLength)},
			field{"variances", formatVariances(d.Variances)},
		)
	}
	if cfg.Camera.Descriptor != nil {
		fields = append(fields, field{"descriptor", string(cfg.Camera.Descriptor.Kind())})
	}
	return fields
}

func formatVariances(v []float64) string {
	axes := []string{"X", "Y", "Z"}
	parts := make([]string, len(v))
	for i, x := range v {
		label := fmt.Sprintf("#%d", i)
		if i < len(axes) {
			label = axes[i]
		}
		parts[i] = fmt.Sprintf("%s %g", label, x)
	}
	return strings.Join(parts, ", ") + " m²"
}

func renderHelp(keys keyMap, s Styles, width int) string {
	var b strings.Builder
	b.WriteString(s.Section.Render("Keys"))
	b.WriteString("\n")
	for _, binding := range keys.helpBindings() {
		h := binding.Help()
		b.WriteString(s.AccentText.Width(12).Render(h.Key))
		b.WriteString(s.Text.Render(h.Desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.FaintText.Render("press any key to close"))
	return lipgloss.NewStyle().Width(width).Padding(0, 2).Render(b.String())
}
