package prompt

import (
	"testing"

	"tableflip.dev/jadwal/pkg/timetable"
)

func TestSearcher(t *testing.T) {
	opts := []timetable.Option{
		{ID: "T1", Name: "Siti Aminah"},
		{ID: "T2", Name: "Budi Santoso"},
	}
	search := Searcher(opts)

	tests := []struct {
		input string
		index int
		want  bool
	}{
		{input: "siti", index: 0, want: true},
		{input: "ti ami", index: 0, want: true},
		{input: "SANTOSO", index: 1, want: true},
		{input: "siti", index: 1, want: false},
		{input: "", index: 1, want: true},
	}
	for _, tc := range tests {
		if got := search(tc.input, tc.index); got != tc.want {
			t.Errorf("search(%q, %d) = %v, want %v", tc.input, tc.index, got, tc.want)
		}
	}
}
