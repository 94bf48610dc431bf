package info

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	JSON    bool
	// Out defaults to color.Output.
	Out io.Writer
}

type report struct {
	ConfigPath string       `json:"configPath,omitempty"`
	Source     string       `json:"source"`
	Watch      bool         `json:"watch"`
	ServeAddr  string       `json:"serveAddr"`
	CacheDir   string       `json:"cacheDir,omitempty"`
	Loaded     bool         `json:"loaded"`
	Error      string       `json:"error,omitempty"`
	Summary    *app.Summary `json:"summary,omitempty"`
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Service == nil {
		return fmt.Errorf("failed to create timetable service")
	}

	r := report{
		ConfigPath: os.Getenv("JADWAL_CONFIG_PATH"),
		Source:     n.Config.Source(),
		Watch:      n.Config.Watch(),
		ServeAddr:  n.Config.ServeAddr(),
		CacheDir:   n.Config.CacheDir(),
	}
	sum, err := n.Service.Summary(ctx)
	if err != nil {
		r.Error = err.Error()
	} else {
		r.Loaded = true
		r.Summary = &sum
	}

	if n.JSON {
		return encode(out, r)
	}
	n.print(out, r)
	return nil
}

func (n *Info) print(out io.Writer, r report) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	red := color.New(color.FgRed)

	if r.ConfigPath != "" {
		_, _ = fmt.Fprintln(out, "JADWAL_CONFIG_PATH found on env, using", r.ConfigPath)
	} else {
		_, _ = faint.Fprintln(out, "JADWAL_CONFIG_PATH env var not set")
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Source"), r.Source)
	tbl.AddRow(bold.Sprint("Watch"), r.Watch)
	tbl.AddRow(bold.Sprint("Serve"), r.ServeAddr)
	if r.CacheDir != "" {
		tbl.AddRow(bold.Sprint("Cache"), r.CacheDir)
	}
	if !r.Loaded {
		tbl.AddRow(bold.Sprint("Status"), red.Sprint(r.Error))
		_, _ = fmt.Fprintln(out, tbl)
		return
	}
	s := r.Summary
	tbl.AddRow(bold.Sprint("Loaded"), s.LoadedAt.Format("2006-01-02 15:04:05"))
	tbl.AddRow(bold.Sprint("Teachers"), s.Counts.Teachers)
	tbl.AddRow(bold.Sprint("Subjects"), s.Counts.Courses)
	tbl.AddRow(bold.Sprint("Classrooms"), s.Counts.ClassRooms)
	tbl.AddRow(bold.Sprint("Lessons"), s.Counts.Schedules)
	tbl.AddRow(bold.Sprint("Periods"), s.Counts.Periods)
	tbl.AddRow(bold.Sprint("Cards"), fmt.Sprintf("%d (%d placed, %d dangling)", s.Counts.Cards, s.Placed, s.Dangling))
	_, _ = fmt.Fprintln(out, tbl)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
