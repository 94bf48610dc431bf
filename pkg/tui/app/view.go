package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/jadwal/pkg/listing"
	"tableflip.dev/jadwal/pkg/printers"
	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/timetable"
)

const (
	timeWidth = 15
	cellWidth = 18
)

func fit(s string, width int) string {
	return padding.String(truncate.StringWithTail(s, uint(width), "…"), uint(width))
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.mode == modeHelp:
		b.WriteString(m.help.View())
	case m.err != nil:
		b.WriteString(m.renderError())
	case m.mode == modePicker:
		b.WriteString(m.picker.View())
	case m.tab == tabTimetable:
		b.WriteString(m.renderTimetable())
	case m.tab == tabTeachers:
		b.WriteString(m.renderTeachers())
	case m.tab == tabClassrooms:
		b.WriteString(m.renderClassrooms())
	case m.tab == tabSubjects:
		b.WriteString(m.renderCourses())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, int(tabCount))
	for t := tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == m.tab {
			parts = append(parts, m.theme.Tabs.Active.Render(label))
		} else {
			parts = append(parts, m.theme.Tabs.Inactive.Render(label))
		}
	}
	return strings.Join(parts, m.theme.Tabs.Gap.Render("│"))
}

func (m *Model) renderError() string {
	m.errBox.SetContent("Timetable unavailable", m.err.Error())
	m.errBox.SetHint("Press r to retry or q to quit.")
	return m.theme.Error.Render(m.errBox.View())
}

func (m *Model) renderModeBar() string {
	th := m.theme.Grid
	parts := []string{"Mode:"}
	for _, mode := range timetable.Modes {
		if mode == m.view.Mode() {
			parts = append(parts, th.ModeOn.Render("(•) "+mode.Title()))
		} else {
			parts = append(parts, th.Mode.Render("( ) "+mode.Title()))
		}
	}
	line := strings.Join(parts, "  ")
	if m.view.PickerEnabled() {
		label := timetable.OptionLabel(m.options, m.view.Mode(), m.view.Selected())
		line += "   " + th.Header.Render("▸ "+label)
	}
	return line
}

func (m *Model) renderTimetable() string {
	th := m.theme.Grid
	var b strings.Builder
	b.WriteString(m.renderModeBar())
	b.WriteString("\n\n")

	header := []string{th.Header.Render(fit("Time", timeWidth))}
	for _, d := range m.grid.Days {
		header = append(header, th.Header.Render(fit(d.Label(), cellWidth)))
	}
	b.WriteString(strings.Join(header, " "))
	b.WriteString("\n")

	if len(m.grid.Rows) == 0 {
		b.WriteString(m.theme.Table.Muted.Render("No periods defined"))
		b.WriteString("\n")
		return b.String()
	}
	rule := th.Rule.Render(strings.Repeat("─", timeWidth+len(m.grid.Days)*(cellWidth+1)))
	for _, r := range m.grid.Rows {
		for line := 0; line < 3; line++ {
			parts := []string{th.Time.Render(fit(periodLine(r.Period, line), timeWidth))}
			for _, s := range r.Slots {
				parts = append(parts, m.renderCellLine(s.Cell, line))
			}
			b.WriteString(strings.Join(parts, " "))
			b.WriteString("\n")
		}
		b.WriteString(rule)
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Table.Muted.Render(fmt.Sprintf("%d lessons", m.grid.Occupied())))
	b.WriteString("\n")
	return b.String()
}

func periodLine(p record.Period, line int) string {
	switch line {
	case 0:
		if p.Short != "" {
			return p.Short
		}
		return p.Name
	case 1:
		return p.TimeLabel()
	}
	return ""
}

func (m *Model) renderCellLine(c *timetable.Cell, line int) string {
	if c == nil {
		return fit("", cellWidth)
	}
	style := m.theme.Grid.Line
	text := c.RoomLabel
	switch line {
	case 0:
		style = m.theme.Grid.Subject
		text = c.SubjectLabel
	case 1:
		text = c.TeacherLabel
	}
	if bg, ok := printers.Blend(c.Tint); ok {
		style = style.Background(lipgloss.Color(bg.Hex())).Foreground(lipgloss.Color("#000000"))
	}
	return style.Render(fit(text, cellWidth))
}

type column struct {
	title string
	width int
}

func (m *Model) renderTable(cols []column, rows [][]string, meta listing.Page, search string) string {
	th := m.theme.Table
	var b strings.Builder
	if search != "" {
		b.WriteString(th.Muted.Render("Search: " + search))
		b.WriteString("\n")
	}
	header := make([]string, 0, len(cols))
	for _, c := range cols {
		header = append(header, th.Header.Render(fit(c.title, c.width)))
	}
	b.WriteString(strings.Join(header, " "))
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(th.Muted.Render("No matching entries"))
		b.WriteString("\n")
	}
	for _, row := range rows {
		cells := make([]string, 0, len(cols))
		for i, c := range cols {
			cells = append(cells, th.Row.Render(fit(row[i], c.width)))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(th.Muted.Render(meta.Summary()))
	b.WriteString("  ")
	b.WriteString(m.renderPages(meta))
	b.WriteString(th.Muted.Render(fmt.Sprintf("  %d per page", meta.PerPage)))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderPages(meta listing.Page) string {
	th := m.theme.Table
	items := listing.PageNumbers(meta.Page, meta.TotalPages)
	parts := make([]string, 0, len(items))
	for _, it := range items {
		switch {
		case it.Current:
			parts = append(parts, th.Current.Render(it.String()))
		default:
			parts = append(parts, th.Muted.Render(it.String()))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderTeachers() string {
	cols := []column{{"Name", 28}, {"Short", 8}, {"Gender", 8}, {"Color", 10}}
	rows := make([][]string, 0, len(m.teachers.Items))
	for _, t := range m.teachers.Items {
		rows = append(rows, []string{t.Name, t.Short, t.GenderLabel(), orDash(t.Color)})
	}
	return m.renderTable(cols, rows, m.teachers.Meta, m.teachers.Search)
}

func (m *Model) renderClassrooms() string {
	cols := []column{{"Name", 28}, {"Short", 10}, {"Capacity", 10}}
	rows := make([][]string, 0, len(m.classrooms.Items))
	for _, c := range m.classrooms.Items {
		rows = append(rows, []string{c.Name, c.Short, orDash(c.Capacity)})
	}
	return m.renderTable(cols, rows, m.classrooms.Meta, m.classrooms.Search)
}

func (m *Model) renderCourses() string {
	cols := []column{{"Short", 10}, {"Name", 36}}
	rows := make([][]string, 0, len(m.courses.Items))
	for _, c := range m.courses.Items {
		rows = append(rows, []string{c.Short, c.Name})
	}
	return m.renderTable(cols, rows, m.courses.Meta, m.courses.Search)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func (m *Model) renderFooter() string {
	th := m.theme.Footer
	var lines []string
	if m.mode == modeSearch {
		lines = append(lines, m.input.View())
	}
	if m.status != "" {
		lines = append(lines, th.Status.Render(m.status))
	}
	lines = append(lines, th.Help.Render(m.helpText()))
	return strings.Join(lines, "\n")
}

func (m *Model) helpText() string {
	switch {
	case m.mode == modeSearch:
		return "type to filter · enter keep · esc clear"
	case m.mode == modePicker:
		return "↑/↓ move · / filter · enter select · esc cancel"
	case m.mode == modeHelp:
		return "↑/↓ scroll · esc close"
	case m.err != nil:
		return "r reload · ? help · q quit"
	case m.tab == tabTimetable:
		return "m mode · enter pick · x clear · tab switch · ? help · q quit"
	default:
		return "/ search · [ ] page · s page size · tab switch · ? help · q quit"
	}
}
