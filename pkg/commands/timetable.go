package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jadwal/pkg/commands/options"
	"tableflip.dev/jadwal/pkg/prompt"
	"tableflip.dev/jadwal/pkg/runner/week"
)

func addTimetable(topLevel *cobra.Command) {
	to := &options.TimetableOptions{}
	oo := &options.OutputOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "timetable",
		Aliases: []string{"grid", "week"},
		Short:   "Show the Monday to Friday grid, for everyone, one teacher or one class.",
		Long: options.Wrap80(`Show the Monday to Friday grid.

Each row is a period and each cell shows the subject, teacher and room of the lesson held then, tinted with the teacher's color. With --teacher only that teacher's lessons are shown; with --classroom only lessons held in that room. --day and --period resolve a single cell.`),
		Example: `
jadwal timetable
jadwal timetable --teacher T1
jadwal timetable --classroom R1 --json
jadwal timetable --day mon --period 1
jadwal timetable -i
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := to.Filter()
			if err != nil {
				return oo.HandleError(err)
			}
			if _, err := to.SingleCell(); err != nil {
				return oo.HandleError(err)
			}
			svc, _, err := openService(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			s := week.Timetable{
				Service: svc,
				Filter:  f,
				Day:     to.Day,
				Period:  to.Period,
				JSON:    oo.JSON,
			}
			if i.Interactive {
				s.Picker = &prompt.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddTimetableArgs(cmd, to)
	options.AddOutputArg(cmd, oo)
	options.InteractiveArgs(cmd, i)

	_ = cmd.RegisterFlagCompletionFunc("teacher", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return teacherCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("classroom", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return classroomCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("day", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"mon", "tue", "wed", "thu", "fri"}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
