package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/five82/objspace/internal/state"
	"github.com/five82/objspace/pkg/objspace"
)

const defaultDebounce = 150 * time.Millisecond

// Watcher publishes load results for a single file into a state.Store.
type Watcher struct {
	path     string
	store    *state.Store
	log      zerolog.Logger
	load     func(string) (objspace.ObjectSpaceConfig, error)
	debounce time.Duration
	updates  chan struct{}
}

// New builds a Watcher for path. Nothing is loaded until Reload or Run.
func New(path string, store *state.Store, log zerolog.Logger) (*Watcher, error) {
	if store == nil {
		return nil, fmt.Errorf("watch requires a store")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return &Watcher{
		path:     abs,
		store:    store,
		log:      log.With().Str("component", "watch").Str("path", abs).Logger(),
		load:     objspace.Load,
		debounce: defaultDebounce,
		updates:  make(chan struct{}, 1),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Updates receives a value after each reload. Notifications coalesce: a slow
// reader sees at most one pending value.
func (w *Watcher) Updates() <-chan struct{} { return w.updates }

// Reload loads the file now and records the result.
func (w *Watcher) Reload() {
	cfg, err := w.load(w.path)
	w.store.Update(w.path, cfg, err)
	if err != nil {
		w.log.Warn().Err(err).Str("kind", objspace.Describe(err)).Msg("reload failed")
	} else {
		w.log.Debug().Str("summary", cfg.Summary()).Msg("reloaded")
	}

	select {
	case w.updates <- struct{}{}:
	default:
	}
}

// Run watches the file's directory until ctx is cancelled. The directory is
// watched rather than the file so that editors which save by renaming a
// temporary file over the original are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op == fsnotify.Chmod {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watcher error")

		case <-fire:
			fire = nil
			w.Reload()
		}
	}
}
