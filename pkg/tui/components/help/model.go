// Package help renders the key reference overlay.
package help

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/padding"

	"tableflip.dev/jadwal/pkg/tui/theme"
)

//go:embed help.md
var keysDoc string

// Model shows keysDoc in a framed, scrollable viewport. The first line is the
// title, unindented lines are section headings and indented lines are
// "keys  description" rows split on the first run of two or more spaces.
type Model struct {
	vp    viewport.Model
	th    theme.PanelTheme
	frame lipgloss.Style
	w, h  int
}

func New(th theme.PanelTheme, width, height int) *Model {
	m := &Model{
		vp:    viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		th:    th,
		frame: th.Frame.Padding(0, 1),
	}
	m.vp.MouseWheelEnabled = true
	m.SetSize(width, height)
	return m
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return cmd
}

func (m *Model) View() string {
	return m.frame.Width(m.w).Render(m.vp.View())
}

// SetSize resizes the overlay and scrolls back to the top.
func (m *Model) SetSize(width, height int) {
	m.w, m.h = max(width, 32), max(height, 8)
	m.vp.SetWidth(max(m.w-m.frame.GetHorizontalFrameSize(), 1))
	m.vp.SetHeight(max(m.h-m.frame.GetVerticalFrameSize(), 1))
	m.vp.SetContent(format(keysDoc, m.th))
	m.vp.SetYOffset(0)
}

var columnGap = regexp.MustCompile(`\s{2,}`)

func format(doc string, th theme.PanelTheme) string {
	lines := strings.Split(strings.TrimSpace(doc), "\n")
	keyStyle := th.Body.Bold(true)
	width := 0
	for _, l := range lines[1:] {
		if k, _, ok := splitRow(l); ok {
			width = max(width, len([]rune(k)))
		}
	}

	out := make([]string, 0, len(lines))
	out = append(out, th.Title.Render(lines[0]))
	for _, l := range lines[1:] {
		switch k, desc, ok := splitRow(l); {
		case strings.TrimSpace(l) == "":
			out = append(out, "")
		case !strings.HasPrefix(l, " "):
			out = append(out, th.Title.Render(l))
		case ok:
			out = append(out, "  "+keyStyle.Render(padding.String(k, uint(width)))+"  "+th.Body.Render(desc))
		default:
			out = append(out, th.Body.Render(l))
		}
	}
	return strings.Join(out, "\n")
}

func splitRow(l string) (key, desc string, ok bool) {
	if !strings.HasPrefix(l, " ") {
		return "", "", false
	}
	parts := columnGap.Split(strings.TrimSpace(l), 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
