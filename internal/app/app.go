package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/five82/objspace/internal/prefs"
	"github.com/five82/objspace/internal/state"
	"github.com/five82/objspace/internal/ui"
	"github.com/five82/objspace/internal/watch"
)

// Options configure the viewer.
type Options struct {
	Path      string
	PrefsPath string // empty uses default ~/.config/objspace/prefs.toml
	Theme     string // overrides the saved theme when set
	Log       zerolog.Logger
}

// Run loads the file, starts watching it and runs the viewer until the
// context is cancelled or the user quits. A file that fails to load is not an
// error here: the viewer shows the failure and picks up fixes as they land.
func Run(ctx context.Context, opts Options) error {
	if opts.Path == "" {
		return fmt.Errorf("no object-space file given")
	}
	if _, err := os.Stat(opts.Path); err != nil {
		return fmt.Errorf("open %s: %w", opts.Path, err)
	}

	userPrefs := prefs.Load(opts.PrefsPath, opts.Log)
	theme := userPrefs.Theme
	if opts.Theme != "" {
		theme = opts.Theme
	}

	store := &state.Store{}
	watcher, err := watch.New(opts.Path, store, opts.Log)
	if err != nil {
		return fmt.Errorf("init watcher: %w", err)
	}

	// Populate the store before the UI draws its first frame.
	watcher.Reload()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	watchErr := make(chan error, 1)
	go func() { watchErr <- watcher.Run(watchCtx) }()

	uiErr := ui.Run(ui.Options{
		Context:   watchCtx,
		Store:     store,
		Reloader:  watcher,
		ThemeName: theme,
		PrefsPath: opts.PrefsPath,
		Log:       opts.Log,
	})
	cancel()

	if err := <-watchErr; err != nil {
		return fmt.Errorf("watch %s: %w", opts.Path, err)
	}
	// A signal cancels ctx and kills the program; that is a normal exit.
	if uiErr != nil && ctx.Err() == nil {
		return fmt.Errorf("run viewer: %w", uiErr)
	}
	return nil
}
