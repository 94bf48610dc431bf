package listing

import (
	"fmt"
	"slices"
)

const (
	// DefaultPerPage is the page size used when none is given.
	DefaultPerPage = 10

	// MaxVisiblePages bounds the numbered buttons of the page widget.
	MaxVisiblePages = 5
)

// PageSizes are the page sizes the tables offer.
var PageSizes = []int{10, 25, 50, 100}

// ValidPerPage reports whether n is one of PageSizes.
func ValidPerPage(n int) bool {
	return slices.Contains(PageSizes, n)
}

// Page is one window over a filtered list.
type Page struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
	NextPage   *int `json:"next_page,omitempty"`
	PrevPage   *int `json:"prev_page,omitempty"`
}

// NewPage computes the window for total items. The page is clamped into
// [1, TotalPages] and a non-positive perPage falls back to DefaultPerPage.
func NewPage(total, page, perPage int) Page {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if total < 0 {
		total = 0
	}
	totalPages := (total + perPage - 1) / perPage
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	p := Page{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if p.HasPrev {
		prev := page - 1
		p.PrevPage = &prev
	}
	if p.HasNext {
		next := page + 1
		p.NextPage = &next
	}
	return p
}

// Offset is the index of the first item on the page.
func (p Page) Offset() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// End is one past the index of the last item on the page.
func (p Page) End() int {
	return min(p.Offset()+p.PerPage, p.Total)
}

// Summary renders the "Showing X to Y of N entries" footer.
func (p Page) Summary() string {
	if p.Total == 0 {
		return "Showing 0 to 0 of 0 entries"
	}
	return fmt.Sprintf("Showing %d to %d of %d entries", p.Offset()+1, p.End(), p.Total)
}

// Slice cuts the page out of items. items must be the list p was built for.
func Slice[T any](items []T, p Page) []T {
	start, end := p.Offset(), p.End()
	if start > len(items) {
		return nil
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Paginate builds the page for items and slices it.
func Paginate[T any](items []T, page, perPage int) ([]T, Page) {
	p := NewPage(len(items), page, perPage)
	return Slice(items, p), p
}

// PageItem is one element of the page widget: a page number or an ellipsis.
type PageItem struct {
	Number   int  `json:"number,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

func (i PageItem) String() string {
	switch {
	case i.Ellipsis:
		return "..."
	case i.Current:
		return fmt.Sprintf("[%d]", i.Number)
	default:
		return fmt.Sprint(i.Number)
	}
}

// PageNumbers lays out the page widget. At most MaxVisiblePages consecutive
// pages around current are numbered; the first and last page are always
// reachable, with an ellipsis standing in for any gap.
func PageNumbers(current, total int) []PageItem {
	if total < 1 {
		return nil
	}
	start, end := 1, total
	if total > MaxVisiblePages {
		left := MaxVisiblePages / 2
		right := MaxVisiblePages - left - 1
		switch {
		case current <= left:
			end = MaxVisiblePages
		case current > total-right:
			start = total - MaxVisiblePages + 1
		default:
			start = current - left
			end = current + right
		}
	}

	var items []PageItem
	if start > 1 {
		items = append(items, PageItem{Number: 1, Current: current == 1})
		if start > 2 {
			items = append(items, PageItem{Ellipsis: true})
		}
	}
	for i := start; i <= end; i++ {
		items = append(items, PageItem{Number: i, Current: current == i})
	}
	if end < total {
		if end < total-1 {
			items = append(items, PageItem{Ellipsis: true})
		}
		items = append(items, PageItem{Number: total, Current: current == total})
	}
	return items
}
