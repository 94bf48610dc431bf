package commands

import (
	"context"
	"log/slog"
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/commands/options"
	"tableflip.dev/jadwal/pkg/store"
)

var (
	so = &options.SourceOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "jadwal",
		Short: base.Wrap80("Browse a school timetable export on the command line."),
		Long: options.Wrap80(`Browse a school timetable export on the command line.

jadwal reads the JSON export of a timetabling tool (teachers, subjects, classrooms, lessons, periods and cards) and shows the weekly grid, optionally for one teacher or one class. The same data is available as tables, a terminal UI, a JSON API and an MCP server.`),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(so.Verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddSourceArgs(cmd, so)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addTimetable(topLevel)
	addTeachers(topLevel)
	addClassrooms(topLevel)
	addSubjects(topLevel)
	addServe(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// openService loads the configuration and the timetable document. A document
// that fails to load still yields a service; its calls report the load error.
func openService(ctx context.Context) (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	cat, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return &app.Service{Catalog: cat}, cfg, nil
}
