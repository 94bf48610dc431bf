// Package mcp provides the Model Context Protocol server integration for jadwal.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/timetable"
)

// Service adapts the timetable service to the shapes the MCP tools return.
type Service struct {
	App *app.Service
}

// LessonDTO is one occupied slot of a teacher's or class's week.
type LessonDTO struct {
	Day      string `json:"day"`
	DayMask  string `json:"dayMask"`
	Period   string `json:"period"`
	Time     string `json:"time"`
	Subject  string `json:"subject"`
	Teacher  string `json:"teacher"`
	Room     string `json:"room"`
	Schedule string `json:"scheduleId"`
}

// TeacherDetail is a teacher together with their week.
type TeacherDetail struct {
	Teacher record.Teacher `json:"teacher"`
	Lessons []LessonDTO    `json:"lessons"`
	Count   int            `json:"count"`
}

// NewService builds a service wrapper around the timetable service.
func NewService(svc *app.Service) *Service {
	return &Service{App: svc}
}

func (s *Service) app() (*app.Service, error) {
	if s.App == nil {
		return nil, errors.New("timetable service is not configured")
	}
	return s.App, nil
}

// ListTeachers returns one page of teachers.
func (s *Service) ListTeachers(ctx context.Context, q app.Query) (app.Listing[record.Teacher], error) {
	a, err := s.app()
	if err != nil {
		return app.Listing[record.Teacher]{}, err
	}
	return a.Teachers(ctx, q)
}

// ListClassRooms returns one page of classrooms.
func (s *Service) ListClassRooms(ctx context.Context, q app.Query) (app.Listing[record.ClassRoom], error) {
	a, err := s.app()
	if err != nil {
		return app.Listing[record.ClassRoom]{}, err
	}
	return a.ClassRooms(ctx, q)
}

// ListSubjects returns one page of subjects.
func (s *Service) ListSubjects(ctx context.Context, q app.Query) (app.Listing[record.Course], error) {
	a, err := s.app()
	if err != nil {
		return app.Listing[record.Course]{}, err
	}
	return a.Courses(ctx, q)
}

// Timetable returns the week grid and the flat lesson list for a filter.
func (s *Service) Timetable(ctx context.Context, f timetable.Filter) (timetable.Grid, []LessonDTO, error) {
	a, err := s.app()
	if err != nil {
		return timetable.Grid{}, nil, err
	}
	g, err := a.Timetable(ctx, f)
	if err != nil {
		return timetable.Grid{}, nil, err
	}
	return g, lessons(g), nil
}

// ResolveCell resolves a single slot.
func (s *Service) ResolveCell(ctx context.Context, q app.CellQuery) (app.CellResult, error) {
	a, err := s.app()
	if err != nil {
		return app.CellResult{}, err
	}
	return a.Cell(ctx, q)
}

// Summary describes the loaded document.
func (s *Service) Summary(ctx context.Context) (app.Summary, error) {
	a, err := s.app()
	if err != nil {
		return app.Summary{}, err
	}
	return a.Summary(ctx)
}

// TeacherByID returns a teacher and their lessons.
func (s *Service) TeacherByID(ctx context.Context, id string) (*TeacherDetail, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id is required")
	}
	t, err := a.Teacher(ctx, id)
	if err != nil {
		return nil, err
	}
	g, err := a.Timetable(ctx, timetable.Filter{Mode: timetable.ModeTeacher, SelectedID: t.ID})
	if err != nil {
		return nil, err
	}
	ls := lessons(g)
	return &TeacherDetail{Teacher: t, Lessons: ls, Count: len(ls)}, nil
}

func lessons(g timetable.Grid) []LessonDTO {
	out := make([]LessonDTO, 0, g.Occupied())
	for _, r := range g.Rows {
		for _, slot := range r.Slots {
			if slot.Cell == nil {
				continue
			}
			out = append(out, LessonDTO{
				Day:      slot.Day.Label(),
				DayMask:  string(slot.Day),
				Period:   r.Period.Name,
				Time:     r.Period.TimeLabel(),
				Subject:  slot.Cell.SubjectLabel,
				Teacher:  slot.Cell.TeacherLabel,
				Room:     slot.Cell.RoomLabel,
				Schedule: slot.Cell.ScheduleID,
			})
		}
	}
	return out
}

// ParseFilter builds a filter from tool arguments. A selection needs a mode.
func ParseFilter(mode, id string) (timetable.Filter, error) {
	m, err := timetable.ParseMode(mode)
	if err != nil {
		return timetable.Filter{}, err
	}
	id = strings.TrimSpace(id)
	if m == timetable.ModeNone && id != "" {
		return timetable.Filter{}, fmt.Errorf("id %q needs mode teacher or classroom", id)
	}
	return timetable.Filter{Mode: m, SelectedID: id}, nil
}
