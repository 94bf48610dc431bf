package panel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/jadwal/pkg/tui/theme"
)

func plain() theme.PanelTheme {
	return theme.PanelTheme{Frame: lipgloss.NewStyle(), Title: lipgloss.NewStyle(), Body: lipgloss.NewStyle()}
}

func TestViewOrdersTitleBodyHint(t *testing.T) {
	p := New(plain())
	p.SetContent("Timetable unavailable", "fetch failed")
	p.SetHint("Press r to retry")

	view := p.View()
	ti := strings.Index(view, "Timetable unavailable")
	bi := strings.Index(view, "fetch failed")
	hi := strings.Index(view, "Press r to retry")
	if ti < 0 || bi < ti || hi < bi {
		t.Fatalf("unexpected layout:\n%s", view)
	}
	if p.Height() != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", p.Height(), view)
	}
}

func TestViewWrapsBody(t *testing.T) {
	p := New(plain())
	p.SetWidth(10)
	p.SetContent("", "alpha beta gamma delta")
	if got := p.Height(); got < 2 {
		t.Fatalf("expected wrapped body, got %d line(s):\n%s", got, p.View())
	}
}
