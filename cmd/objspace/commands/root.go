package commands

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// globals holds the persistent flags and the logger derived from them.
type globals struct {
	verbose bool
	log     zerolog.Logger
}

// Execute runs the root command with args from os.Args.
func Execute(ctx context.Context, version string, stdout, stderr io.Writer) error {
	root := newRootCommand(version, stdout, stderr)
	return root.ExecuteContext(ctx)
}

func newRootCommand(version string, stdout, stderr io.Writer) *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "objspace",
		Short: "Check and inspect camera calibration object-space files",
		Long: `objspace loads the TOML files that describe calibration targets
(checkerboard or ChArUco boards) and how their object-space points are
derived, and reports exactly why a file is rejected.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			g.log = newLogger(cmd.ErrOrStderr(), g.verbose)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newCheckCommand(g))
	rootCmd.AddCommand(newPrintCommand(g))
	rootCmd.AddCommand(newViewCommand(g))

	return rootCmd
}

// newLogger writes console logs to w. --verbose lowers the global level to
// debug regardless of LOG_LEVEL; zerolog drops anything below the global level
// whatever the logger's own level is.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
}
