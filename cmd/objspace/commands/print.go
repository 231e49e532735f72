package commands

import (
	"github.com/spf13/cobra"

	"github.com/five82/objspace/pkg/objspace"
)

func newPrintCommand(g *globals) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "print <path>",
		Short: "Print a validated file in canonical form",
		Long: `Load and validate a file, then write it back out. TOML output is
canonical and loads to the same configuration; JSON and YAML are for
feeding other tools.`,
		Example: `  objspace print object_space.toml
  objspace print --format json object_space.toml | jq .camera.detector`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := objspace.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := objspace.Load(args[0])
			if err != nil {
				return err
			}
			out, err := objspace.MarshalFormat(cfg, f)
			if err != nil {
				return err
			}
			g.log.Debug().Str("path", args[0]).Str("format", string(f)).Int("bytes", len(out)).Msg("encoded")
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(objspace.FormatTOML), "output format: toml, json or yaml")

	return cmd
}
