// Package store loads a timetable export into memory and hands out immutable
// snapshots of it.
package store

import (
	"context"
	"fmt"

	"tableflip.dev/jadwal/pkg/record"
)

// Store holds every collection of one loaded document. A Store is never
// mutated after Decode returns; a reload builds a new one.
type Store struct {
	Teachers   []record.Teacher
	Courses    []record.Course
	ClassRooms []record.ClassRoom
	Schedules  []record.Schedule
	Periods    []record.Period
	Cards      []record.Card
}

// Counts summarizes the size of each collection.
type Counts struct {
	Teachers   int `json:"teachers"`
	Courses    int `json:"subjects"`
	ClassRooms int `json:"classRooms"`
	Schedules  int `json:"schedules"`
	Periods    int `json:"periods"`
	Cards      int `json:"cards"`
}

// Counts returns the collection sizes.
func (s *Store) Counts() Counts {
	if s == nil {
		return Counts{}
	}
	return Counts{
		Teachers:   len(s.Teachers),
		Courses:    len(s.Courses),
		ClassRooms: len(s.ClassRooms),
		Schedules:  len(s.Schedules),
		Periods:    len(s.Periods),
		Cards:      len(s.Cards),
	}
}

// Load fetches the document from src and decodes it.
func Load(ctx context.Context, src Source) (*Store, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: fetch %s: %w", src, err)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", src, err)
	}
	return s, nil
}
