package ui

import (
	"fmt"

	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/store"
)

// StaticDemo is a small built-in school week for trying the UI without a
// timetable export.
func StaticDemo() *store.Store {
	st := &store.Store{
		Teachers: []record.Teacher{
			{ID: "T1", Name: "Siti Aminah", Short: "SA", Gender: "F", Color: "#e57373"},
			{ID: "T2", Name: "Budi Santoso", Short: "BS", Gender: "M", Color: "#64b5f6"},
			{ID: "T3", Name: "Dewi Lestari", Short: "DL", Gender: "F", Color: "#81c784"},
			{ID: "T4", Name: "Agus Salim", Short: "AS", Gender: "M"},
		},
		Courses: []record.Course{
			{ID: "C1", Short: "BIN", Name: "Bahasa Indonesia"},
			{ID: "C2", Short: "FIS", Name: "Fisika"},
			{ID: "C3", Short: "MTK", Name: "Matematika"},
			{ID: "C4", Short: "PAI", Name: "Pendidikan Agama"},
		},
		ClassRooms: []record.ClassRoom{
			{ID: "R1", Name: "Kelas X-1", Short: "X1", Capacity: "32"},
			{ID: "R2", Name: "Kelas X-2", Short: "X2", Capacity: "32"},
			{ID: "R3", Name: "Lab Fisika", Short: "LAB", Capacity: "24"},
		},
		Schedules: []record.Schedule{
			{ID: "S1", SubjectID: "C3", TeacherIDs: record.ParseIDList("T1"), ClassRoomID: "R1"},
			{ID: "S2", SubjectID: "C2", TeacherIDs: record.ParseIDList("T2,T3"), ClassRoomID: "R3"},
			{ID: "S3", SubjectID: "C1", TeacherIDs: record.ParseIDList("T3"), ClassRoomID: "R2"},
			{ID: "S4", SubjectID: "C4", TeacherIDs: record.ParseIDList("T4"), ClassRoomID: "R1"},
		},
	}

	start := 7 * 60
	for i := 1; i <= 6; i++ {
		end := start + 45
		st.Periods = append(st.Periods, record.Period{
			Name:      fmt.Sprint(i),
			Short:     fmt.Sprintf("Jam %d", i),
			StartTime: clock(start),
			EndTime:   clock(end),
		})
		start = end
	}

	st.Cards = []record.Card{
		{LessonID: "S1", ClassroomID: "R1", Period: "1", Days: record.Monday},
		{LessonID: "S1", ClassroomID: "R1", Period: "2", Days: record.Wednesday},
		{LessonID: "S2", ClassroomID: "R3", Period: "3", Days: record.Tuesday},
		{LessonID: "S2", ClassroomID: "R3", Period: "4", Days: record.Thursday},
		{LessonID: "S3", ClassroomID: "R2", Period: "1", Days: record.Tuesday},
		{LessonID: "S3", ClassroomID: "R2", Period: "5", Days: record.Friday},
		{LessonID: "S4", ClassroomID: "R1", Period: "6", Days: record.Friday},
	}
	return st
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
