package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/five82/objspace/internal/app"
	"github.com/five82/objspace/internal/prefs"
)

func newViewCommand(g *globals) *cobra.Command {
	var (
		prefsPath string
		theme     string
		logFile   string
	)

	cmd := &cobra.Command{
		Use:   "view <path>",
		Short: "Watch a file in an interactive viewer",
		Long: `Open a terminal viewer showing the decoded configuration or the
reason it was rejected. The file is reloaded whenever it changes on disk.

Logging would draw over the viewer, so it is off unless --log-file is given.

Keys: r reload, T cycle theme, h help, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.Nop()
			if logFile != "" {
				path, err := prefs.ExpandPath(logFile)
				if err != nil {
					return err
				}
				f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logger = newLogger(f, g.verbose)
			}

			return app.Run(cmd.Context(), app.Options{
				Path:      args[0],
				PrefsPath: prefsPath,
				Theme:     theme,
				Log:       logger,
			})
		},
	}

	cmd.Flags().StringVar(&prefsPath, "prefs", "", "viewer preferences file (default ~/.config/objspace/prefs.toml)")
	cmd.Flags().StringVar(&theme, "theme", "", "theme name, overrides saved preference")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file while the viewer runs")

	return cmd
}
