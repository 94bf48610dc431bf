package timetable

import "tableflip.dev/jadwal/pkg/record"

// Slot is one grid cell. Cell is nil when the slot is empty.
type Slot struct {
	Day  record.DayMask `json:"day"`
	Cell *Cell          `json:"cell"`
}

// Row is one period of the week.
type Row struct {
	Period record.Period `json:"period"`
	Slots  []Slot        `json:"slots"`
}

// Grid is the week view: one row per period, one slot per weekday.
type Grid struct {
	Filter Filter           `json:"filter"`
	Days   []record.DayMask `json:"days"`
	Rows   []Row            `json:"rows"`
}

// Occupied counts non-empty slots.
func (g Grid) Occupied() int {
	n := 0
	for _, r := range g.Rows {
		for _, s := range r.Slots {
			if s.Cell != nil {
				n++
			}
		}
	}
	return n
}

// Lookup resolves and presents a single slot.
func (e *Engine) Lookup(day record.DayMask, period record.Period, f Filter) *Cell {
	s, ok := e.ResolveCell(day, period, f)
	if !ok {
		return nil
	}
	c := e.PresentFor(s, f)
	return &c
}

// Grid builds the whole week for f. Periods keep source order. Cells come from
// PresentFor, so in teacher mode a lesson shared by several teachers carries
// the selected teacher's label and tint where Present would use the first.
func (e *Engine) Grid(f Filter) Grid {
	g := Grid{
		Filter: f,
		Days:   append([]record.DayMask(nil), record.Weekdays...),
		Rows:   make([]Row, 0, len(e.st.Periods)),
	}
	for _, p := range e.st.Periods {
		row := Row{Period: p, Slots: make([]Slot, 0, len(record.Weekdays))}
		for _, d := range record.Weekdays {
			row.Slots = append(row.Slots, Slot{Day: d, Cell: e.Lookup(d, p, f)})
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

// Period finds a period by name.
func (e *Engine) Period(name string) (record.Period, bool) {
	for _, p := range e.st.Periods {
		if p.Name == name {
			return p, true
		}
	}
	return record.Period{}, false
}
