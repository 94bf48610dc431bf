package lookup

import (
	"testing"

	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/store"
)

func fixture() *store.Store {
	return &store.Store{
		Teachers: []record.Teacher{
			{ID: "T1", Name: "Siti"},
			{ID: "T2", Name: "Budi"},
			{ID: "T3", Name: "Rina"},
			{ID: "T1", Name: "Duplicate Siti"},
		},
		Courses: []record.Course{
			{ID: "C1", Name: "Math"},
		},
		ClassRooms: []record.ClassRoom{
			{ID: "R1", Name: "Room 101"},
		},
		Schedules: []record.Schedule{
			{ID: "S1", SubjectID: "C1"},
		},
	}
}

func TestPointLookups(t *testing.T) {
	r := New(fixture())

	if got, ok := r.Teacher("T1"); !ok || got.Name != "Siti" {
		t.Fatalf("expected first T1 to win, got %+v %v", got, ok)
	}
	if _, ok := r.Teacher("T9"); ok {
		t.Fatalf("T9 should not resolve")
	}
	if got, ok := r.Course("C1"); !ok || got.Name != "Math" {
		t.Fatalf("unexpected course %+v %v", got, ok)
	}
	if got, ok := r.ClassRoom("R1"); !ok || got.Name != "Room 101" {
		t.Fatalf("unexpected classroom %+v %v", got, ok)
	}
	if _, ok := r.Schedule("S1"); !ok {
		t.Fatalf("S1 should resolve")
	}
	if _, ok := r.Schedule(""); ok {
		t.Fatalf("empty id should not resolve")
	}
}

func TestTeacherFromList(t *testing.T) {
	r := New(fixture())

	tests := []struct {
		name      string
		ids       string
		preferred string
		want      string
		found     bool
	}{
		{name: "single", ids: "T2", want: "T2", found: true},
		{name: "collection order wins", ids: "T3,T2", want: "T2", found: true},
		{name: "preferred member", ids: "T3,T2", preferred: "T3", want: "T3", found: true},
		{name: "preferred not a member", ids: "T2", preferred: "T3", want: "T2", found: true},
		{name: "preferred unknown teacher", ids: "T9,T3", preferred: "T9", want: "T3", found: true},
		{name: "none known", ids: "T8,T9", found: false},
		{name: "empty", ids: "", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.TeacherFromList(record.ParseIDList(tt.ids), tt.preferred)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && got.ID != tt.want {
				t.Fatalf("got %s, want %s", got.ID, tt.want)
			}
		})
	}
}

func TestLabelsFallBack(t *testing.T) {
	r := New(fixture())

	if got := r.TeacherLabel(record.ParseIDList("T9")); got != UnknownTeacher {
		t.Fatalf("got %q", got)
	}
	if got := r.TeacherLabel(record.ParseIDList("T9,T2")); got != "Budi" {
		t.Fatalf("got %q", got)
	}
	if got := r.SubjectLabel("C9"); got != UnknownSubject {
		t.Fatalf("got %q", got)
	}
	if got := r.ClassRoomLabel("R9"); got != UnknownClass {
		t.Fatalf("got %q", got)
	}
	if got := r.ClassRoomLabel("R1"); got != "Room 101" {
		t.Fatalf("got %q", got)
	}
}

func TestNilStore(t *testing.T) {
	r := New(nil)
	if _, ok := r.Teacher("T1"); ok {
		t.Fatalf("nil store should resolve nothing")
	}
}
