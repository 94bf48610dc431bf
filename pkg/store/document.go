package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/oj"

	"tableflip.dev/jadwal/pkg/record"
)

// ErrNotObject is returned when the document root is not a JSON object.
var ErrNotObject = errors.New("store: document root is not an object")

// Collection keys seen across export versions. The first alias present wins.
var (
	teacherKeys   = []string{"teachers", "teacher"}
	courseKeys    = []string{"subjects", "courses", "subject"}
	classRoomKeys = []string{"classRooms", "classrooms", "classroom"}
	scheduleKeys  = []string{"schedules", "lessons", "schedule"}
	periodKeys    = []string{"periods", "period"}
	cardKeys      = []string{"cards", "card"}
)

// Decode parses a timetable export and normalizes it into a Store. Missing
// collections decode as empty; teachers and subjects are expected and their
// absence is logged.
func Decode(data []byte) (*Store, error) {
	root, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("store: parse document: %w", err)
	}
	doc, ok := root.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	s := &Store{}
	for _, raw := range collection(doc, teacherKeys, "teachers") {
		s.Teachers = append(s.Teachers, record.Teacher{
			ID:        field(raw, "id", "Id", "ID"),
			Name:      field(raw, "name", "Name"),
			FirstName: field(raw, "firstName", "firstname", "FirstName"),
			LastName:  field(raw, "lastName", "lastname", "LastName"),
			Short:     field(raw, "short", "Short"),
			Gender:    field(raw, "gender", "Gender"),
			Color:     field(raw, "color", "Color", "colour"),
			Email:     field(raw, "email", "Email"),
			Mobile:    field(raw, "mobile", "Mobile"),
			PartnerID: field(raw, "partnerId", "partner_id", "PartnerId"),
		})
	}
	for _, raw := range collection(doc, courseKeys, "subjects") {
		s.Courses = append(s.Courses, record.Course{
			ID:    field(raw, "id", "Id", "ID"),
			Short: field(raw, "short", "Short"),
			Name:  field(raw, "name", "Name"),
		})
	}
	for _, raw := range collection(doc, classRoomKeys, "") {
		s.ClassRooms = append(s.ClassRooms, record.ClassRoom{
			ID:         field(raw, "id", "Id", "ID"),
			Name:       field(raw, "name", "Name"),
			Short:      field(raw, "short", "Short"),
			Capacity:   field(raw, "capacity", "Capacity"),
			BuildingID: field(raw, "buildingId", "buildingid", "BuildingId"),
		})
	}
	for _, raw := range collection(doc, scheduleKeys, "") {
		s.Schedules = append(s.Schedules, record.Schedule{
			ID:             field(raw, "id", "Id", "ID"),
			SubjectID:      field(raw, "subjectId", "subjectid", "SubjectId"),
			TeacherIDs:     record.ParseIDList(field(raw, "teacherIds", "teacherids", "teacherId", "TeacherIds")),
			ClassRoomID:    field(raw, "classRoomIds", "classroomIds", "classroomids", "classRoomId"),
			ClassIDs:       record.ParseIDList(field(raw, "classIds", "classids", "ClassIds")),
			GroupIDs:       field(raw, "groupIds", "groupids"),
			TermsDefID:     field(raw, "termsDefId", "termsdefid"),
			WeeksDefID:     field(raw, "weeksDefId", "weeksdefid"),
			DaysDefID:      field(raw, "daysDefId", "daysdefid"),
			PeriodsPerWeek: field(raw, "periodsPerWeek", "periodsperweek"),
			PeriodsPerCard: field(raw, "periodsPerCard", "periodspercard"),
		})
	}
	for _, raw := range collection(doc, periodKeys, "") {
		s.Periods = append(s.Periods, record.Period{
			Name:      field(raw, "name", "Name", "period"),
			Short:     field(raw, "short", "Short"),
			StartTime: field(raw, "startTime", "starttime", "StartTime"),
			EndTime:   field(raw, "endTime", "endtime", "EndTime"),
		})
	}
	for _, raw := range collection(doc, cardKeys, "") {
		s.Cards = append(s.Cards, record.Card{
			LessonID:    field(raw, "lessonId", "lessonid", "LessonId"),
			ClassroomID: field(raw, "classroomIds", "classRoomIds", "classroomids", "classroomId"),
			Period:      field(raw, "period", "Period"),
			Days:        record.DayMask(field(raw, "days", "Days")),
			Weeks:       field(raw, "weeks", "Weeks"),
			Terms:       field(raw, "terms", "Terms"),
		})
	}

	sort.SliceStable(s.Courses, func(i, j int) bool {
		return s.Courses[i].Short < s.Courses[j].Short
	})
	return s, nil
}

// collection returns the objects of the first alias present in doc. When
// expected is set, a missing collection is logged under that name.
func collection(doc map[string]any, aliases []string, expected string) []map[string]any {
	for _, key := range aliases {
		v, present := doc[key]
		if !present {
			continue
		}
		list, ok := v.([]any)
		if !ok {
			slog.Warn("store: collection is not a list", "key", key)
			return nil
		}
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	if expected != "" {
		slog.Warn("store: document has no collection", "collection", expected)
	}
	return nil
}

// field reads the first alias present on the record as a string.
func field(m map[string]any, aliases ...string) string {
	for _, key := range aliases {
		v, ok := m[key]
		if !ok {
			continue
		}
		return stringify(v)
	}
	return ""
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}
