// Package listing filters and pages the entity tables.
package listing

import "strings"

// Filter keeps the items whose name contains query, ignoring case. A blank
// query keeps everything. The input slice is not modified.
func Filter[T any](items []T, query string, name func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if q == "" || strings.Contains(strings.ToLower(name(it)), q) {
			out = append(out, it)
		}
	}
	return out
}
