package timetable

import (
	"strings"

	"tableflip.dev/jadwal/pkg/lookup"
	"tableflip.dev/jadwal/pkg/record"
)

const (
	// Transparent is the tint of a lesson whose teacher has no color.
	Transparent = "transparent"

	// TintAlpha is appended to hex colors, about 20% opacity.
	TintAlpha = "33"
)

// Cell is the render data of an occupied grid cell.
type Cell struct {
	ScheduleID   string `json:"scheduleId"`
	SubjectLabel string `json:"subjectLabel"`
	TeacherLabel string `json:"teacherLabel"`
	RoomLabel    string `json:"roomLabel"`
	Tint         string `json:"tintColor"`
}

// DeriveTint turns a teacher color into a cell background. Hex colors get the
// alpha suffix, other CSS colors pass through and an empty color is
// transparent.
func DeriveTint(color string) string {
	if color == "" {
		return Transparent
	}
	if !strings.HasPrefix(color, "#") {
		return color
	}
	return color + TintAlpha
}

// Present maps a schedule to its labels. The teacher is the first known
// teacher among the schedule's teacher ids.
func (e *Engine) Present(s record.Schedule) Cell {
	return e.present(s, "")
}

// PresentFor is Present for a filtered grid: in teacher mode the selected
// teacher is preferred among the schedule's teachers.
func (e *Engine) PresentFor(s record.Schedule, f Filter) Cell {
	preferred := ""
	if f.byTeacher() {
		preferred = f.SelectedID
	}
	return e.present(s, preferred)
}

func (e *Engine) present(s record.Schedule, preferred string) Cell {
	c := Cell{
		ScheduleID:   s.ID,
		SubjectLabel: e.res.SubjectLabel(s.SubjectID),
		TeacherLabel: lookup.UnknownTeacher,
		RoomLabel:    e.res.ClassRoomLabel(s.ClassRoomID),
		Tint:         Transparent,
	}
	if t, ok := e.res.TeacherFromList(s.TeacherIDs, preferred); ok {
		c.TeacherLabel = t.Name
		c.Tint = DeriveTint(t.Color)
	}
	return c
}
