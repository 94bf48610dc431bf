package timetable

import (
	"tableflip.dev/jadwal/pkg/lookup"
	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/store"
)

// Engine resolves and presents grid cells over one store snapshot. It holds no
// mutable state; every method is a pure function of its arguments.
type Engine struct {
	st  *store.Store
	res *lookup.Resolver
}

// NewEngine builds an engine for st.
func NewEngine(st *store.Store) *Engine {
	res := lookup.New(st)
	return &Engine{st: res.Store(), res: res}
}

// Resolver exposes the id resolver the engine uses.
func (e *Engine) Resolver() *lookup.Resolver {
	return e.res
}

// Card finds the card placed at day and period. In classroom mode with a
// selection only that classroom's cards are candidates.
func (e *Engine) Card(day record.DayMask, period record.Period, f Filter) (record.Card, bool) {
	if !day.Valid() {
		return record.Card{}, false
	}
	for _, c := range e.st.Cards {
		if f.byClassroom() && c.ClassroomID != f.SelectedID {
			continue
		}
		if c.Days == day && c.Period == period.Name {
			return c, true
		}
	}
	return record.Card{}, false
}

// ResolveCell returns the lesson occupying day and period under f.
//
// In teacher mode only the card already matched for the slot is checked
// against the selection; other cards sharing the slot are not searched, so a
// teacher with a second lesson at the same time shows an empty cell.
func (e *Engine) ResolveCell(day record.DayMask, period record.Period, f Filter) (record.Schedule, bool) {
	card, ok := e.Card(day, period, f)
	if !ok {
		return record.Schedule{}, false
	}
	s, ok := e.res.Schedule(card.LessonID)
	if !ok {
		return record.Schedule{}, false
	}
	if f.byTeacher() && !s.TeacherIDs.Contains(f.SelectedID) {
		return record.Schedule{}, false
	}
	return s, true
}
