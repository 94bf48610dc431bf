package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Set at build time with -ldflags "-X tableflip.dev/jadwal/pkg/commands.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func addVersion(topLevel *cobra.Command) {
	var (
		short  bool
		format string
	)
	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the jadwal build version.",
		Example: "  jadwal version\n  jadwal version -s\n  jadwal version -o yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown output format %q (expected json or yaml)", format)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(short, version, commit, date, format))
			return err
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number.")
	cmd.Flags().StringVarP(&format, "output", "o", "json", "Output format: json or yaml.")
	topLevel.AddCommand(cmd)
}
