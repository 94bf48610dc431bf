// Package timetable cross-tabulates lesson cards into a weekly grid.
package timetable

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/jadwal/pkg/listing"
	"tableflip.dev/jadwal/pkg/store"
)

// Mode selects which entity, if any, narrows the grid.
type Mode int

const (
	ModeNone Mode = iota
	ModeTeacher
	ModeClassroom
)

// Modes lists the modes in the order the selector shows them.
var Modes = []Mode{ModeNone, ModeTeacher, ModeClassroom}

func (m Mode) String() string {
	switch m {
	case ModeTeacher:
		return "teacher"
	case ModeClassroom:
		return "classroom"
	default:
		return "none"
	}
}

// Title is the label of the mode's radio button.
func (m Mode) Title() string {
	switch m {
	case ModeTeacher:
		return "By Teacher"
	case ModeClassroom:
		return "By Class"
	default:
		return "None"
	}
}

// Placeholder is the picker text shown while nothing is selected.
func (m Mode) Placeholder() string {
	switch m {
	case ModeTeacher:
		return "Select a teacher..."
	case ModeClassroom:
		return "Select a class..."
	default:
		return ""
	}
}

// ParseMode accepts none, teacher and classroom (alias class). An empty
// string is ModeNone.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return ModeNone, nil
	case "teacher", "teachers":
		return ModeTeacher, nil
	case "classroom", "classrooms", "class":
		return ModeClassroom, nil
	}
	return ModeNone, fmt.Errorf("timetable: unknown mode %q", raw)
}

// Filter is the explicit view state the resolver works from.
type Filter struct {
	Mode       Mode   `json:"mode"`
	SelectedID string `json:"selectedId,omitempty"`
}

func (f Filter) byTeacher() bool {
	return f.Mode == ModeTeacher && f.SelectedID != ""
}

func (f Filter) byClassroom() bool {
	return f.Mode == ModeClassroom && f.SelectedID != ""
}

// ErrPickerDisabled is returned when selecting an entity with no mode set.
var ErrPickerDisabled = errors.New("timetable: entity picker is disabled in mode none")

// View is the mode selector and entity picker state of one session. The zero
// value is ModeNone with nothing selected.
type View struct {
	mode     Mode
	selected string
}

// Mode returns the current mode.
func (v *View) Mode() Mode { return v.mode }

// Selected returns the selected entity id, "" when none.
func (v *View) Selected() string { return v.selected }

// SetMode switches mode and always clears the selection.
func (v *View) SetMode(m Mode) {
	v.mode = m
	v.selected = ""
}

// Select picks an entity id. An empty id clears the selection.
func (v *View) Select(id string) error {
	if v.mode == ModeNone {
		return ErrPickerDisabled
	}
	v.selected = strings.TrimSpace(id)
	return nil
}

// PickerEnabled reports whether an entity can be selected.
func (v *View) PickerEnabled() bool {
	return v.mode != ModeNone
}

// Filter snapshots the view state for the resolver.
func (v *View) Filter() Filter {
	return Filter{Mode: v.mode, SelectedID: v.selected}
}

// Option is one entry of the entity picker.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Options lists picker entries for mode, narrowed by a case-insensitive name
// search. ModeNone has no options.
func Options(st *store.Store, mode Mode, search string) []Option {
	if st == nil {
		return nil
	}
	var opts []Option
	switch mode {
	case ModeTeacher:
		opts = make([]Option, 0, len(st.Teachers))
		for _, t := range st.Teachers {
			opts = append(opts, Option{ID: t.ID, Name: t.Name})
		}
	case ModeClassroom:
		opts = make([]Option, 0, len(st.ClassRooms))
		for _, c := range st.ClassRooms {
			opts = append(opts, Option{ID: c.ID, Name: c.Name})
		}
	default:
		return nil
	}
	return listing.Filter(opts, search, func(o Option) string { return o.Name })
}

// OptionLabel is the picker's display text: the selected option's name or the
// mode placeholder.
func OptionLabel(opts []Option, mode Mode, selected string) string {
	for _, o := range opts {
		if o.ID == selected {
			return o.Name
		}
	}
	return mode.Placeholder()
}
