// Package record defines the normalized timetable records every other package
// works with. Values are immutable once loaded.
package record

import "strings"

// Teacher is a member of staff who can be bound to lessons.
type Teacher struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Short     string `json:"short"`
	Gender    string `json:"gender"`
	Color     string `json:"color"`
	Email     string `json:"email,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	PartnerID string `json:"partnerId,omitempty"`
}

// GenderLabel renders the gender code the way the teacher table shows it.
func (t Teacher) GenderLabel() string {
	if strings.EqualFold(strings.TrimSpace(t.Gender), "M") {
		return "Male"
	}
	return "Female"
}

// Course is a subject taught in a lesson.
type Course struct {
	ID    string `json:"id"`
	Short string `json:"short"`
	Name  string `json:"name"`
}

// ClassRoom is a room lessons are held in.
type ClassRoom struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Short      string `json:"short"`
	Capacity   string `json:"capacity"`
	BuildingID string `json:"buildingId,omitempty"`
}

// Schedule is a lesson definition. A single schedule may bind several teachers.
type Schedule struct {
	ID             string `json:"id"`
	SubjectID      string `json:"subjectId"`
	TeacherIDs     IDList `json:"teacherIds"`
	ClassRoomID    string `json:"classRoomIds"`
	ClassIDs       IDList `json:"classIds"`
	GroupIDs       string `json:"groupIds,omitempty"`
	TermsDefID     string `json:"termsDefId,omitempty"`
	WeeksDefID     string `json:"weeksDefId,omitempty"`
	DaysDefID      string `json:"daysDefId,omitempty"`
	PeriodsPerWeek string `json:"periodsPerWeek,omitempty"`
	PeriodsPerCard string `json:"periodsPerCard,omitempty"`
}

// Period is a row of the timetable. Name is the key cards refer to.
type Period struct {
	Name      string `json:"name"`
	Short     string `json:"short"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TimeLabel is the "start - end" label shown in the first grid column.
func (p Period) TimeLabel() string {
	return p.StartTime + " - " + p.EndTime
}

// Card places one lesson occurrence on the grid.
type Card struct {
	LessonID    string  `json:"lessonId"`
	ClassroomID string  `json:"classroomIds"`
	Period      string  `json:"period"`
	Days        DayMask `json:"days"`
	Weeks       string  `json:"weeks,omitempty"`
	Terms       string  `json:"terms,omitempty"`
}
