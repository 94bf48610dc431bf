// Package panel renders framed message boxes for the dashboard.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/jadwal/pkg/tui/theme"
)

// Model is a titled box with wrapped body text and an optional hint line
// separated from the body by a blank line.
type Model struct {
	th    theme.PanelTheme
	width int
	title string
	body  []string
	hint  string
}

func New(th theme.PanelTheme) Model {
	return Model{th: th}
}

// SetWidth sets the wrap width for body lines. Zero disables wrapping.
func (m *Model) SetWidth(w int) {
	m.width = max(w, 0)
}

// SetContent replaces the title and body.
func (m *Model) SetContent(title string, body ...string) {
	m.title = title
	m.body = body
}

func (m *Model) SetHint(hint string) {
	m.hint = hint
}

func (m Model) View() string {
	var out []string
	if m.title != "" {
		out = append(out, m.th.Title.Render(m.title))
	}
	for _, line := range m.body {
		if m.width > 0 {
			line = wordwrap.String(line, m.width)
		}
		out = append(out, m.th.Body.Render(line))
	}
	if m.hint != "" {
		out = append(out, "", m.th.Body.Faint(true).Render(m.hint))
	}
	return m.th.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, out...))
}

// Height is the number of rendered lines.
func (m Model) Height() int {
	return strings.Count(m.View(), "\n") + 1
}
