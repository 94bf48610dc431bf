package options

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/timetable"
)

// TimetableOptions narrow the weekly grid.
type TimetableOptions struct {
	Teacher   string
	Classroom string
	Day       string
	Period    string
}

func AddTimetableArgs(cmd *cobra.Command, o *TimetableOptions) {
	cmd.Flags().StringVarP(&o.Teacher, "teacher", "t", "",
		"Only show lessons of this teacher id.")
	cmd.Flags().StringVarP(&o.Classroom, "classroom", "c", "",
		"Only show lessons held in this classroom id.")
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		"Show a single cell on this day (mon..fri, a weekday name or a 10000 style mask). Needs --period.")
	cmd.Flags().StringVar(&o.Period, "period", "",
		"Period name of the single cell to show. Needs --day.")
}

// Filter turns the flags into a grid filter.
func (o *TimetableOptions) Filter() (timetable.Filter, error) {
	switch {
	case o.Teacher != "" && o.Classroom != "":
		return timetable.Filter{}, fmt.Errorf("%w: --teacher and --classroom are exclusive", app.ErrInvalidQuery)
	case o.Teacher != "":
		return timetable.Filter{Mode: timetable.ModeTeacher, SelectedID: o.Teacher}, nil
	case o.Classroom != "":
		return timetable.Filter{Mode: timetable.ModeClassroom, SelectedID: o.Classroom}, nil
	}
	return timetable.Filter{}, nil
}

// SingleCell reports whether one cell was asked for.
func (o *TimetableOptions) SingleCell() (bool, error) {
	if (o.Day == "") != (o.Period == "") {
		return false, errors.New("--day and --period go together")
	}
	return o.Day != "", nil
}
