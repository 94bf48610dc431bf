package help

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/jadwal/pkg/tui/theme"
)

func plain() theme.PanelTheme {
	return theme.PanelTheme{Frame: lipgloss.NewStyle(), Title: lipgloss.NewStyle(), Body: lipgloss.NewStyle()}
}

// stripANSI drops escape sequences; key names are rendered bold.
func stripANSI(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		switch {
		case r == ansi.Marker:
			inSeq = true
		case inSeq:
			inSeq = !ansi.IsTerminator(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestFormatAlignsKeyColumn(t *testing.T) {
	doc := "Keys\n\nGeneral\n  q  quit\n  ctrl+c    quit too\n  free text\n"
	got := strings.Split(stripANSI(format(doc, plain())), "\n")
	want := []string{
		"Keys",
		"",
		"General",
		"  q       quit",
		"  ctrl+c  quit too",
		"  free text",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestViewShowsTitle(t *testing.T) {
	m := New(plain(), 60, 40)
	if !strings.Contains(stripANSI(m.View()), "Jadwal keys") {
		t.Fatalf("expected title in view:\n%s", m.View())
	}
}
