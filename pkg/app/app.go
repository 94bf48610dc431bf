package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/jadwal/pkg/listing"
	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/store"
	"tableflip.dev/jadwal/pkg/timetable"
)

// Service provides the read operations every surface shares. It wraps the
// catalog so the CLI, TUI, HTTP API and MCP server answer the same way.
type Service struct {
	Catalog store.Catalog
}

var (
	// ErrInvalidQuery marks bad user input: unknown mode, day or page.
	ErrInvalidQuery = errors.New("app: invalid query")

	// ErrNotFound is returned when an id names no record.
	ErrNotFound = errors.New("app: not found")
)

// Query selects one page of an entity table.
type Query struct {
	Search  string `json:"search,omitempty"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

// Validate rejects negative paging. Zero values mean first page and the
// default page size.
func (q Query) Validate() error {
	if q.Page < 0 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidQuery)
	}
	if q.PerPage < 0 {
		return fmt.Errorf("%w: per page must be >= 1", ErrInvalidQuery)
	}
	return nil
}

// Listing is one page of a filtered entity table.
type Listing[T any] struct {
	Items  []T                `json:"items"`
	Meta   listing.Page       `json:"meta"`
	Pages  []listing.PageItem `json:"pages"`
	Search string             `json:"search,omitempty"`
}

func page[T any](items []T, q Query, name func(T) string) Listing[T] {
	filtered := listing.Filter(items, q.Search, name)
	window, meta := listing.Paginate(filtered, q.Page, q.PerPage)
	return Listing[T]{
		Items:  window,
		Meta:   meta,
		Pages:  listing.PageNumbers(meta.Page, meta.TotalPages),
		Search: strings.TrimSpace(q.Search),
	}
}

func (s *Service) snapshot() (*store.Store, error) {
	if s.Catalog == nil {
		return nil, errors.New("app: no catalog configured")
	}
	return s.Catalog.Snapshot()
}

// Teachers lists teachers matching q by name.
func (s *Service) Teachers(ctx context.Context, q Query) (Listing[record.Teacher], error) {
	if err := q.Validate(); err != nil {
		return Listing[record.Teacher]{}, err
	}
	st, err := s.snapshot()
	if err != nil {
		return Listing[record.Teacher]{}, err
	}
	return page(st.Teachers, q, func(t record.Teacher) string { return t.Name }), nil
}

// ClassRooms lists classrooms matching q by name.
func (s *Service) ClassRooms(ctx context.Context, q Query) (Listing[record.ClassRoom], error) {
	if err := q.Validate(); err != nil {
		return Listing[record.ClassRoom]{}, err
	}
	st, err := s.snapshot()
	if err != nil {
		return Listing[record.ClassRoom]{}, err
	}
	return page(st.ClassRooms, q, func(c record.ClassRoom) string { return c.Name }), nil
}

// Courses lists subjects matching q by name, in short-code order.
func (s *Service) Courses(ctx context.Context, q Query) (Listing[record.Course], error) {
	if err := q.Validate(); err != nil {
		return Listing[record.Course]{}, err
	}
	st, err := s.snapshot()
	if err != nil {
		return Listing[record.Course]{}, err
	}
	return page(st.Courses, q, func(c record.Course) string { return c.Name }), nil
}

// Teacher finds a single teacher by id.
func (s *Service) Teacher(ctx context.Context, id string) (record.Teacher, error) {
	eng, err := s.Engine(ctx)
	if err != nil {
		return record.Teacher{}, err
	}
	t, ok := eng.Resolver().Teacher(id)
	if !ok {
		return record.Teacher{}, fmt.Errorf("%w: teacher %q", ErrNotFound, id)
	}
	return t, nil
}

// Engine returns a timetable engine over the current snapshot.
func (s *Service) Engine(ctx context.Context) (*timetable.Engine, error) {
	st, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return timetable.NewEngine(st), nil
}

// ValidateFilter rejects a selection made while no mode is active.
func ValidateFilter(f timetable.Filter) error {
	switch f.Mode {
	case timetable.ModeNone:
		if f.SelectedID != "" {
			return fmt.Errorf("%w: %w", ErrInvalidQuery, timetable.ErrPickerDisabled)
		}
	case timetable.ModeTeacher, timetable.ModeClassroom:
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidQuery, f.Mode)
	}
	return nil
}

// Timetable builds the weekly grid under f.
func (s *Service) Timetable(ctx context.Context, f timetable.Filter) (timetable.Grid, error) {
	if err := ValidateFilter(f); err != nil {
		return timetable.Grid{}, err
	}
	eng, err := s.Engine(ctx)
	if err != nil {
		return timetable.Grid{}, err
	}
	return eng.Grid(f), nil
}

// CellQuery addresses one grid cell with user supplied day and period.
type CellQuery struct {
	Day    string
	Period string
	Filter timetable.Filter
}

// CellResult is a resolved cell. Cell is nil when the slot is empty.
type CellResult struct {
	Day    record.DayMask   `json:"day"`
	Period record.Period    `json:"period"`
	Filter timetable.Filter `json:"filter"`
	Cell   *timetable.Cell  `json:"cell"`
}

// Cell resolves one slot. The day accepts a mask, a short label or a full
// weekday name; the period must name a known period.
func (s *Service) Cell(ctx context.Context, q CellQuery) (CellResult, error) {
	if err := ValidateFilter(q.Filter); err != nil {
		return CellResult{}, err
	}
	day, err := record.ParseDay(q.Day)
	if err != nil {
		return CellResult{}, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	eng, err := s.Engine(ctx)
	if err != nil {
		return CellResult{}, err
	}
	p, ok := eng.Period(strings.TrimSpace(q.Period))
	if !ok {
		return CellResult{}, fmt.Errorf("%w: period %q", ErrNotFound, q.Period)
	}
	return CellResult{
		Day:    day,
		Period: p,
		Filter: q.Filter,
		Cell:   eng.Lookup(day, p, q.Filter),
	}, nil
}

// Options lists picker entries for mode.
func (s *Service) Options(ctx context.Context, mode timetable.Mode, search string) ([]timetable.Option, error) {
	st, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return timetable.Options(st, mode, search), nil
}

// Reload fetches the document again.
func (s *Service) Reload(ctx context.Context) error {
	if s.Catalog == nil {
		return errors.New("app: no catalog configured")
	}
	return s.Catalog.Reload(ctx)
}

// Watch subscribes to catalog reload events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Catalog == nil {
		return nil, errors.New("app: no catalog configured")
	}
	return s.Catalog.Watch(ctx)
}
