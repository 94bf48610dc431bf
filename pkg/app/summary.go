package app

import (
	"context"
	"time"

	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/store"
)

// Summary describes the loaded document.
type Summary struct {
	Source   string          `json:"source"`
	LoadedAt time.Time       `json:"loadedAt,omitempty"`
	Counts   store.Counts    `json:"counts"`
	Periods  []record.Period `json:"periods"`
	// Placed counts cards that land on a valid weekday.
	Placed int `json:"placed"`
	// Dangling counts cards whose lesson id names no schedule.
	Dangling int `json:"dangling"`
}

// Summary reports what the catalog currently holds.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	eng, err := s.Engine(ctx)
	if err != nil {
		return Summary{}, err
	}
	st := eng.Resolver().Store()
	sum := Summary{
		Source:   s.Catalog.Source(),
		LoadedAt: s.Catalog.LoadedAt(),
		Counts:   st.Counts(),
		Periods:  st.Periods,
	}
	for _, c := range st.Cards {
		if c.Days.Valid() {
			sum.Placed++
		}
		if _, ok := eng.Resolver().Schedule(c.LessonID); !ok {
			sum.Dangling++
		}
	}
	return sum, nil
}
