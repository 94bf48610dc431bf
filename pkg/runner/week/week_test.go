package week

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/store"
	"tableflip.dev/jadwal/pkg/timetable"
)

func init() {
	color.NoColor = true
}

func service() *app.Service {
	return &app.Service{Catalog: store.Static(&store.Store{
		Teachers:   []record.Teacher{{ID: "T1", Name: "Siti Aminah", Color: "#ff0000"}},
		Courses:    []record.Course{{ID: "C1", Name: "Math"}},
		ClassRooms: []record.ClassRoom{{ID: "R1", Name: "Room 101"}},
		Schedules:  []record.Schedule{{ID: "S1", SubjectID: "C1", TeacherIDs: record.ParseIDList("T1"), ClassRoomID: "R1"}},
		Periods:    []record.Period{{Name: "P1", StartTime: "07:00", EndTime: "07:45"}},
		Cards:      []record.Card{{LessonID: "S1", ClassroomID: "R1", Period: "P1", Days: record.Monday}},
	})}
}

type fixedPicker struct {
	mode timetable.Mode
	err  error
}

func (p fixedPicker) Filter(options func(timetable.Mode) []timetable.Option) (timetable.Filter, error) {
	if p.err != nil {
		return timetable.Filter{}, p.err
	}
	opts := options(p.mode)
	if len(opts) == 0 {
		return timetable.Filter{Mode: p.mode}, nil
	}
	return timetable.Filter{Mode: p.mode, SelectedID: opts[0].ID}, nil
}

func TestTimetableGrid(t *testing.T) {
	var buf bytes.Buffer
	n := Timetable{Service: service(), Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "Math") || !strings.Contains(buf.String(), "Room 101") {
		t.Fatalf("unexpected grid\n%s", buf.String())
	}
}

func TestTimetablePicker(t *testing.T) {
	var buf bytes.Buffer
	n := Timetable{Service: service(), Picker: fixedPicker{mode: timetable.ModeClassroom}, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if n.Filter.SelectedID != "R1" {
		t.Fatalf("expected picked classroom, got %+v", n.Filter)
	}
	if !strings.Contains(buf.String(), "Timetable By Class: Room 101") {
		t.Fatalf("unexpected title\n%s", buf.String())
	}

	aborted := Timetable{Service: service(), Picker: fixedPicker{err: errors.New("^C")}, Out: &buf}
	if err := aborted.Do(context.Background()); err == nil {
		t.Fatalf("expected picker error")
	}
}

func TestTimetableCellJSON(t *testing.T) {
	var buf bytes.Buffer
	n := Timetable{Service: service(), Day: "mon", Period: "P1", JSON: true, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got struct {
		Day  string          `json:"day"`
		Cell *timetable.Cell `json:"cell"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Day != "10000" || got.Cell == nil || got.Cell.Tint != "#ff000033" {
		t.Fatalf("unexpected cell %+v", got)
	}
}

func TestTimetableBadFilter(t *testing.T) {
	n := Timetable{Service: service(), Filter: timetable.Filter{SelectedID: "T1"}, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); !errors.Is(err, app.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}
