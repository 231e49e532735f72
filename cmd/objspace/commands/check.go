package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/objspace/pkg/objspace"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#81b29a")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c94f6d")).Bold(true)
)

func newCheckCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>...",
		Short: "Validate object-space files",
		Long: `Load and validate each file. Valid files are listed on stdout with a
one-line summary; failures are reported on stderr with the field that
caused them. The exit status is non-zero if any file fails.`,
		Example: `  objspace check object_space.toml
  objspace check rigs/*/object_space.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				cfg, err := objspace.Load(path)
				if err != nil {
					failed++
					g.log.Debug().Str("path", path).Str("class", objspace.Describe(err)).Err(err).Msg("load failed")
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", failStyle.Render("FAIL"), path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", okStyle.Render("ok"), path, cfg.Summary())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}
			return nil
		},
	}
}
