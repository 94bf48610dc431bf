// Package week prints the weekly grid or a single cell.
package week

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/printers"
	"tableflip.dev/jadwal/pkg/timetable"
)

// Picker chooses a filter interactively. options lists the entities of a mode.
type Picker interface {
	Filter(options func(timetable.Mode) []timetable.Option) (timetable.Filter, error)
}

type Timetable struct {
	Service *app.Service
	Filter  timetable.Filter
	// Day and Period select a single cell when both are set.
	Day    string
	Period string
	JSON   bool
	// Picker, when set, replaces Filter with the user's choice.
	Picker Picker
	// Out defaults to color.Output.
	Out io.Writer
}

func (n *Timetable) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show timetable, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.Picker != nil {
		f, err := n.pick(ctx)
		if err != nil {
			return err
		}
		n.Filter = f
	}

	pp := printers.PrettyPrint{Out: out}
	if n.Day != "" || n.Period != "" {
		res, err := n.Service.Cell(ctx, app.CellQuery{Day: n.Day, Period: n.Period, Filter: n.Filter})
		if err != nil {
			return err
		}
		if n.JSON {
			return encode(out, res)
		}
		pp.Cell(res.Day, res.Period, res.Cell)
		return nil
	}

	grid, err := n.Service.Timetable(ctx, n.Filter)
	if err != nil {
		return err
	}
	if n.JSON {
		return encode(out, grid)
	}
	pp.Title(n.title(ctx))
	pp.Grid(grid)
	return nil
}

func (n *Timetable) pick(ctx context.Context) (timetable.Filter, error) {
	var optErr error
	f, err := n.Picker.Filter(func(m timetable.Mode) []timetable.Option {
		opts, err := n.Service.Options(ctx, m, "")
		if err != nil {
			optErr = err
		}
		return opts
	})
	if optErr != nil {
		return timetable.Filter{}, optErr
	}
	return f, err
}

func (n *Timetable) title(ctx context.Context) string {
	if n.Filter.Mode == timetable.ModeNone {
		return "Timetable"
	}
	opts, err := n.Service.Options(ctx, n.Filter.Mode, "")
	if err != nil {
		return "Timetable"
	}
	return "Timetable " + n.Filter.Mode.Title() + ": " + timetable.OptionLabel(opts, n.Filter.Mode, n.Filter.SelectedID)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
