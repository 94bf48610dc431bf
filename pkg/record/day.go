package record

import (
	"fmt"
	"strings"
	"time"
)

// DayMask is the five character weekday bitmap used by cards, position 0 is
// Monday and position 4 is Friday. A card occupies exactly one day.
type DayMask string

const (
	Monday    DayMask = "10000"
	Tuesday   DayMask = "01000"
	Wednesday DayMask = "00100"
	Thursday  DayMask = "00010"
	Friday    DayMask = "00001"
)

// Weekdays lists the grid columns in display order.
var Weekdays = []DayMask{Monday, Tuesday, Wednesday, Thursday, Friday}

var dayLabels = map[DayMask]string{
	Monday:    "Mon",
	Tuesday:   "Tue",
	Wednesday: "Wed",
	Thursday:  "Thu",
	Friday:    "Fri",
}

// Valid reports whether the mask is one of the five single-day masks.
func (d DayMask) Valid() bool {
	_, ok := dayLabels[d]
	return ok
}

// Label returns the short column header, or "" for invalid masks.
func (d DayMask) Label() string {
	return dayLabels[d]
}

// Weekday maps the mask onto time.Weekday. Invalid masks report false.
func (d DayMask) Weekday() (time.Weekday, bool) {
	for i, w := range Weekdays {
		if w == d {
			return time.Monday + time.Weekday(i), true
		}
	}
	return time.Sunday, false
}

// ParseDay accepts a mask ("10000"), a short label ("mon") or a full weekday
// name ("monday"), case-insensitive.
func ParseDay(raw string) (DayMask, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if d := DayMask(s); d.Valid() {
		return d, nil
	}
	for i, d := range Weekdays {
		full := strings.ToLower((time.Monday + time.Weekday(i)).String())
		if s == strings.ToLower(d.Label()) || s == full {
			return d, nil
		}
	}
	return "", fmt.Errorf("record: unknown day %q", raw)
}
