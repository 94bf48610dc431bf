package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/jadwal/pkg/listing"
	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/store"
	"tableflip.dev/jadwal/pkg/timetable"
)

func init() {
	color.NoColor = true
}

func TestBlend(t *testing.T) {
	tests := map[string]struct {
		tint string
		want string
		ok   bool
	}{
		"alpha hex":   {tint: "#ff000033", want: "#ffcccc", ok: true},
		"opaque hex":  {tint: "#336699", want: "#336699", ok: true},
		"short alpha": {tint: "#f0033", want: "#ffcccc", ok: true},
		"transparent": {tint: timetable.Transparent},
		"named":       {tint: "red"},
		"garbage":     {tint: "#zzzzzz33"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Blend(tc.tint)
			if ok != tc.ok {
				t.Fatalf("Blend(%q) ok = %v, want %v", tc.tint, ok, tc.ok)
			}
			if ok && got.Hex() != tc.want {
				t.Fatalf("Blend(%q) = %s, want %s", tc.tint, got.Hex(), tc.want)
			}
		})
	}
}

func TestTeachersTable(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowID: true}
	pp.Teachers([]record.Teacher{
		{ID: "T1", Short: "SA", Name: "Siti Aminah", Gender: "F", Color: "#ff0000"},
		{ID: "T2", Short: "BS", Name: "Budi Santoso", Gender: "M"},
	})
	got := buf.String()
	for _, want := range []string{"Short", "Gender", "T1", "Siti Aminah", "Female", "Male", "#ff0000"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in\n%s", want, got)
		}
	}
}

func TestEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.ClassRooms(nil)
	if !strings.Contains(buf.String(), "no classrooms") {
		t.Fatalf("expected placeholder, got %q", buf.String())
	}
}

func TestFooter(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Footer(listing.NewPage(95, 5, 10))
	got := buf.String()
	if !strings.Contains(got, "Showing 41 to 50 of 95 entries") {
		t.Fatalf("missing summary in %q", got)
	}
	if !strings.Contains(got, "1 ... 3 4 [5] 6 7 ... 10") {
		t.Fatalf("missing page widget in %q", got)
	}
}

func TestGrid(t *testing.T) {
	st := &store.Store{
		Teachers:   []record.Teacher{{ID: "T1", Name: "Siti Aminah", Color: "#ff0000"}},
		Courses:    []record.Course{{ID: "C1", Name: "Math"}},
		ClassRooms: []record.ClassRoom{{ID: "R1", Name: "Room 101"}},
		Schedules:  []record.Schedule{{ID: "S1", SubjectID: "C1", TeacherIDs: record.ParseIDList("T1"), ClassRoomID: "R1"}},
		Periods:    []record.Period{{Name: "P1", StartTime: "07:00", EndTime: "07:45"}},
		Cards:      []record.Card{{LessonID: "S1", ClassroomID: "R1", Period: "P1", Days: record.Monday}},
	}
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Grid(timetable.NewEngine(st).Grid(timetable.Filter{}))

	lines := strings.Split(buf.String(), "\n")
	if !strings.HasPrefix(lines[0], "Time") || !strings.Contains(lines[0], "Mon") || !strings.Contains(lines[0], "Fri") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "P1") || !strings.Contains(lines[1], "Math") {
		t.Fatalf("unexpected first line %q", lines[1])
	}
	if !strings.Contains(lines[2], "07:00 - 07:45") || !strings.Contains(lines[2], "Siti Aminah") {
		t.Fatalf("unexpected second line %q", lines[2])
	}
	if !strings.Contains(lines[3], "Room 101") {
		t.Fatalf("unexpected third line %q", lines[3])
	}
	if !strings.Contains(buf.String(), "1 lessons") {
		t.Fatalf("missing legend in %q", buf.String())
	}
}

func TestFitTruncates(t *testing.T) {
	got := fit("Pendidikan Jasmani dan Kesehatan", cellWidth)
	if len([]rune(got)) != cellWidth || !strings.HasSuffix(got, "…") {
		t.Fatalf("unexpected fit %q", got)
	}
}
