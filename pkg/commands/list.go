package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jadwal/pkg/commands/options"
	"tableflip.dev/jadwal/pkg/runner/list"
)

func addTeachers(topLevel *cobra.Command) {
	addList(topLevel, list.Teachers, []string{"teacher", "guru"}, `
jadwal teachers
jadwal teachers --search siti
jadwal teachers --page 2 --per-page 25 --id
`)
}

func addClassrooms(topLevel *cobra.Command) {
	addList(topLevel, list.ClassRooms, []string{"classroom", "rooms", "kelas"}, `
jadwal classrooms
jadwal classrooms --search lab --json
`)
}

func addSubjects(topLevel *cobra.Command) {
	addList(topLevel, list.Subjects, []string{"subject", "courses", "mapel"}, `
jadwal subjects
jadwal subjects --search bahasa
`)
}

func addList(topLevel *cobra.Command, kind list.Kind, aliases []string, example string) {
	po := &options.PageOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     string(kind),
		Aliases: aliases,
		Short:   "List " + string(kind) + ", searchable and paged.",
		Example: example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := po.Query()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, _, err := openService(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Service: svc,
				Kind:    kind,
				Query:   q,
				ShowID:  po.ShowID,
				JSON:    oo.JSON,
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddPageArgs(cmd, po)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
