// Package lookup resolves ids on timetable records to the records they name.
package lookup

import (
	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/store"
)

// Fallback labels for references that do not resolve.
const (
	UnknownTeacher = "Unknown Teacher"
	UnknownSubject = "Unknown Subject"
	UnknownClass   = "Unknown Class"
)

// Resolver answers id lookups against one store snapshot. When an id occurs
// more than once the first record in source order wins.
type Resolver struct {
	st *store.Store

	teachers   map[string]int
	courses    map[string]int
	classRooms map[string]int
	schedules  map[string]int
}

// New indexes st. The store must not change afterwards.
func New(st *store.Store) *Resolver {
	if st == nil {
		st = &store.Store{}
	}
	r := &Resolver{
		st:         st,
		teachers:   make(map[string]int, len(st.Teachers)),
		courses:    make(map[string]int, len(st.Courses)),
		classRooms: make(map[string]int, len(st.ClassRooms)),
		schedules:  make(map[string]int, len(st.Schedules)),
	}
	for i, t := range st.Teachers {
		index(r.teachers, t.ID, i)
	}
	for i, c := range st.Courses {
		index(r.courses, c.ID, i)
	}
	for i, c := range st.ClassRooms {
		index(r.classRooms, c.ID, i)
	}
	for i, s := range st.Schedules {
		index(r.schedules, s.ID, i)
	}
	return r
}

func index(m map[string]int, id string, i int) {
	if _, ok := m[id]; !ok {
		m[id] = i
	}
}

// Store returns the snapshot the resolver was built from.
func (r *Resolver) Store() *store.Store {
	return r.st
}

// Teacher finds a teacher by id.
func (r *Resolver) Teacher(id string) (record.Teacher, bool) {
	i, ok := r.teachers[id]
	if !ok {
		return record.Teacher{}, false
	}
	return r.st.Teachers[i], true
}

// Course finds a course by id.
func (r *Resolver) Course(id string) (record.Course, bool) {
	i, ok := r.courses[id]
	if !ok {
		return record.Course{}, false
	}
	return r.st.Courses[i], true
}

// ClassRoom finds a classroom by id.
func (r *Resolver) ClassRoom(id string) (record.ClassRoom, bool) {
	i, ok := r.classRooms[id]
	if !ok {
		return record.ClassRoom{}, false
	}
	return r.st.ClassRooms[i], true
}

// Schedule finds a schedule by id.
func (r *Resolver) Schedule(id string) (record.Schedule, bool) {
	i, ok := r.schedules[id]
	if !ok {
		return record.Schedule{}, false
	}
	return r.st.Schedules[i], true
}

// TeacherFromList resolves one teacher out of a multi-teacher id list. A
// non-empty preferredID wins when it is in ids and names a known teacher.
// Otherwise the first teacher of the global collection that is in ids is
// returned, so collection order decides, not the order inside ids.
func (r *Resolver) TeacherFromList(ids record.IDList, preferredID string) (record.Teacher, bool) {
	if len(ids) == 0 {
		return record.Teacher{}, false
	}
	if preferredID != "" && ids.Contains(preferredID) {
		if t, ok := r.Teacher(preferredID); ok {
			return t, true
		}
	}
	for _, t := range r.st.Teachers {
		if ids.Contains(t.ID) {
			return t, true
		}
	}
	return record.Teacher{}, false
}

// TeacherLabel is the name of the first known teacher in ids.
func (r *Resolver) TeacherLabel(ids record.IDList) string {
	if t, ok := r.TeacherFromList(ids, ""); ok {
		return t.Name
	}
	return UnknownTeacher
}

// SubjectLabel is the course name for id.
func (r *Resolver) SubjectLabel(id string) string {
	if c, ok := r.Course(id); ok {
		return c.Name
	}
	return UnknownSubject
}

// ClassRoomLabel is the classroom name for id.
func (r *Resolver) ClassRoomLabel(id string) string {
	if c, ok := r.ClassRoom(id); ok {
		return c.Name
	}
	return UnknownClass
}
