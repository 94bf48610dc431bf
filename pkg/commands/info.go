package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jadwal/pkg/commands/options"
	"tableflip.dev/jadwal/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configured timetable source and what it holds.",
		Example: `
jadwal info
jadwal --source https://example.sch.id/jadwal-pembelajaran.json info --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := openService(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			s := info.Info{
				Config:  cfg,
				Service: svc,
				JSON:    oo.JSON,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
