package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SourceOptions are the global flags naming the timetable document.
type SourceOptions struct {
	Source  string
	Watch   bool
	Verbose bool
}

// AddSourceArgs registers the persistent source flags and binds them to the
// config keys so a flag wins over .jadwal.yaml and JADWAL_* variables.
func AddSourceArgs(cmd *cobra.Command, o *SourceOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.Source, "source", "",
		"Path or http(s) URL of the timetable export. Defaults to ./jadwal-pembelajaran.json.")
	flags.BoolVarP(&o.Watch, "watch", "w", false,
		"Reload when the source file changes (ui and serve).")
	flags.BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug details to stderr.")

	_ = viper.BindPFlag("source", flags.Lookup("source"))
	_ = viper.BindPFlag("watch", flags.Lookup("watch"))
}
