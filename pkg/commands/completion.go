package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/jadwal/pkg/timetable"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(jadwal completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(jadwal completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletionV2(os.Stdout, true)
		},
	}

	topLevel.AddCommand(cmd)
}

func teacherCompletions(cmd *cobra.Command, toComplete string) []string {
	return entityCompletions(cmd, timetable.ModeTeacher, toComplete)
}

func classroomCompletions(cmd *cobra.Command, toComplete string) []string {
	return entityCompletions(cmd, timetable.ModeClassroom, toComplete)
}

// entityCompletions offers ids whose id or name starts with toComplete, with
// the name as the description.
func entityCompletions(cmd *cobra.Command, mode timetable.Mode, toComplete string) []string {
	svc, _, err := openService(cmd.Context())
	if err != nil {
		return nil
	}
	opts, err := svc.Options(cmd.Context(), mode, "")
	if err != nil {
		return nil
	}
	prefix := strings.ToLower(toComplete)
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		if strings.HasPrefix(strings.ToLower(o.ID), prefix) || strings.HasPrefix(strings.ToLower(o.Name), prefix) {
			out = append(out, o.ID+"\t"+o.Name)
		}
	}
	return out
}
