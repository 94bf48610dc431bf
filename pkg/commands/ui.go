package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/runner/ui"
	"tableflip.dev/jadwal/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	var demo bool

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Long: `Open the terminal UI: tabs for the timetable, teachers, classrooms and subjects.

Keys: tab switches views, / searches, [ and ] page, m cycles the timetable mode,
enter picks a teacher or class, r reloads, q quits.`,
		Example: `
jadwal ui
jadwal ui --watch
jadwal ui --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if demo {
				i := ui.UI{Service: &app.Service{Catalog: store.Static(ui.StaticDemo())}}
				return i.Do(cmd.Context())
			}
			svc, cfg, err := openService(cmd.Context())
			if err != nil {
				return err
			}
			i := ui.UI{Service: svc, Watch: cfg.Watch()}
			return i.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "Use a built-in sample timetable instead of the configured source.")

	topLevel.AddCommand(cmd)
}
