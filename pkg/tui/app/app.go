// Package teaui hosts the Bubble Tea program for the jadwal TUI.
package teaui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/listing"
	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/store"
	"tableflip.dev/jadwal/pkg/timetable"
	"tableflip.dev/jadwal/pkg/tui/components/help"
	"tableflip.dev/jadwal/pkg/tui/components/panel"
	"tableflip.dev/jadwal/pkg/tui/theme"
)

type tab int

const (
	tabTimetable tab = iota
	tabTeachers
	tabClassrooms
	tabSubjects
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabTeachers:
		return "Teachers"
	case tabClassrooms:
		return "Classrooms"
	case tabSubjects:
		return "Subjects"
	default:
		return "Timetable"
	}
}

type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
	modePicker
	modeHelp
)

var errNoService = errors.New("no timetable service configured")

// Model is the root Bubble Tea model: a timetable tab plus the three entity
// tables.
type Model struct {
	ctx   context.Context
	svc   *app.Service
	theme theme.Theme
	watch bool

	termWidth  int
	termHeight int

	tab  tab
	mode inputMode

	view    timetable.View
	grid    timetable.Grid
	options []timetable.Option

	queries    [tabCount]app.Query
	teachers   app.Listing[record.Teacher]
	classrooms app.Listing[record.ClassRoom]
	courses    app.Listing[record.Course]

	input  textinput.Model
	picker list.Model
	errBox panel.Model
	help   *help.Model

	err    error
	status string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) *Model {
	return NewWithContext(context.Background(), svc)
}

// NewWithContext is New with a parent context for reloads and watching.
func NewWithContext(ctx context.Context, svc *app.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search by name"
	ti.CharLimit = 128
	ti.Prompt = "/ "

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	pl := list.New([]list.Item{}, delegate, 40, 16)
	pl.SetShowHelp(false)
	pl.SetShowStatusBar(false)
	pl.SetFilteringEnabled(true)

	th := theme.Default()
	m := &Model{
		ctx:    ctx,
		svc:    svc,
		theme:  th,
		input:  ti,
		picker: pl,
		errBox: panel.New(th.Panel),
		help:   help.New(th.Panel, 64, 20),
	}
	for i := range m.queries {
		m.queries[i] = app.Query{Page: 1, PerPage: listing.DefaultPerPage}
	}
	m.refresh()
	return m
}

// WithWatch makes Init subscribe to source changes.
func (m *Model) WithWatch(watch bool) *Model {
	m.watch = watch
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.watch {
		return startWatchCmd(m.ctx, m.svc)
	}
	return nil
}

type reloadedMsg struct {
	err error
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func reloadCmd(ctx context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		return reloadedMsg{err: svc.Reload(ctx)}
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// refresh recomputes every view from the current snapshot. A load failure
// replaces the whole screen with the error.
func (m *Model) refresh() {
	if m.svc == nil {
		m.err = errNoService
		return
	}
	grid, err := m.svc.Timetable(m.ctx, m.view.Filter())
	if err != nil {
		m.err = err
		return
	}
	m.grid = grid

	if m.teachers, err = m.svc.Teachers(m.ctx, m.queries[tabTeachers]); err != nil {
		m.err = err
		return
	}
	if m.classrooms, err = m.svc.ClassRooms(m.ctx, m.queries[tabClassrooms]); err != nil {
		m.err = err
		return
	}
	if m.courses, err = m.svc.Courses(m.ctx, m.queries[tabSubjects]); err != nil {
		m.err = err
		return
	}
	// Keep the stored page in step with the clamped one.
	m.queries[tabTeachers].Page = m.teachers.Meta.Page
	m.queries[tabClassrooms].Page = m.classrooms.Meta.Page
	m.queries[tabSubjects].Page = m.courses.Meta.Page

	if m.options, err = m.svc.Options(m.ctx, m.view.Mode(), ""); err != nil {
		m.err = err
		return
	}
	m.err = nil
}

func (m *Model) setStatus(s string) {
	m.status = s
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case reloadedMsg:
		m.refresh()
		if msg.err != nil {
			m.setStatus("Reload failed")
		} else {
			m.setStatus("Reloaded")
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus("Watch unavailable: " + msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		m.setStatus("Watching for changes")
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	default:
		switch m.mode {
		case modePicker:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			cmds = append(cmds, cmd)
		case modeSearch:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		case modeHelp:
			cmds = append(cmds, m.help.Update(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleWatchEvent(ev store.Event) {
	m.refresh()
	switch ev.Type {
	case store.EventReloaded:
		m.setStatus("Source changed, reloaded")
	case store.EventFailed:
		m.setStatus("Source changed, reload failed")
	}
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.stopWatch()
		*cmds = append(*cmds, tea.Quit)
		return
	}
	switch m.mode {
	case modeSearch:
		m.handleSearchKey(msg, cmds)
	case modePicker:
		m.handlePickerKey(msg, cmds)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			m.mode = modeNormal
		default:
			*cmds = append(*cmds, m.help.Update(msg))
		}
	default:
		m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		m.stopWatch()
		*cmds = append(*cmds, tea.Quit)
		return
	case "?":
		m.mode = modeHelp
		return
	case "r":
		m.setStatus("Reloading...")
		if cmd := reloadCmd(m.ctx, m.svc); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		return
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % tabCount
		m.setStatus("")
		return
	case "shift+tab", "left", "h":
		m.tab = (m.tab + tabCount - 1) % tabCount
		m.setStatus("")
		return
	case "1", "2", "3", "4":
		m.tab = tab(key[0] - '1')
		m.setStatus("")
		return
	}
	// With the source unavailable only navigation, reload and quit apply.
	if m.err != nil {
		return
	}
	if m.tab == tabTimetable {
		m.handleTimetableKey(key, cmds)
		return
	}
	m.handleTableKey(key, cmds)
}

func (m *Model) handleTimetableKey(key string, cmds *[]tea.Cmd) {
	switch key {
	case "m":
		m.cycleMode()
	case "enter", "p":
		if !m.view.PickerEnabled() {
			m.setStatus("Pick a mode with m first")
			return
		}
		m.openPicker(cmds)
	case "x", "backspace":
		if m.view.PickerEnabled() {
			_ = m.view.Select("")
			m.refresh()
			m.setStatus("Selection cleared")
		}
	}
}

func (m *Model) cycleMode() {
	next := timetable.Modes[0]
	for i, mode := range timetable.Modes {
		if mode == m.view.Mode() {
			next = timetable.Modes[(i+1)%len(timetable.Modes)]
			break
		}
	}
	m.view.SetMode(next)
	m.refresh()
	m.setStatus("Mode: " + next.Title())
}

func (m *Model) handleTableKey(key string, cmds *[]tea.Cmd) {
	q := &m.queries[m.tab]
	meta := m.currentPage()
	switch key {
	case "/":
		m.mode = modeSearch
		m.input.SetValue(q.Search)
		m.input.CursorEnd()
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		return
	case "esc":
		if q.Search == "" {
			return
		}
		q.Search = ""
		q.Page = 1
		m.setStatus("Search cleared")
	case "]", "n", "pgdown":
		if !meta.HasNext {
			return
		}
		q.Page = meta.Page + 1
	case "[", "b", "pgup":
		if !meta.HasPrev {
			return
		}
		q.Page = meta.Page - 1
	case "g", "home":
		q.Page = 1
	case "G", "end":
		q.Page = max(meta.TotalPages, 1)
	case "s":
		q.PerPage = nextPageSize(q.PerPage)
		q.Page = 1
		m.setStatus(fmt.Sprintf("Showing %d entries per page", q.PerPage))
	default:
		return
	}
	m.refresh()
}

func nextPageSize(current int) int {
	for i, n := range listing.PageSizes {
		if n == current {
			return listing.PageSizes[(i+1)%len(listing.PageSizes)]
		}
	}
	return listing.PageSizes[0]
}

func (m *Model) currentPage() listing.Page {
	switch m.tab {
	case tabTeachers:
		return m.teachers.Meta
	case tabClassrooms:
		return m.classrooms.Meta
	case tabSubjects:
		return m.courses.Meta
	}
	return listing.Page{}
}

// handleSearchKey filters the table as the user types.
func (m *Model) handleSearchKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeNormal
		m.input.Blur()
		return
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		m.input.SetValue("")
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
	q := &m.queries[m.tab]
	if q.Search == m.input.Value() {
		return
	}
	q.Search = m.input.Value()
	q.Page = 1
	m.refresh()
}

func (m *Model) handlePickerKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	filtering := m.picker.FilterState() == list.Filtering
	switch msg.String() {
	case "esc":
		if !filtering {
			m.mode = modeNormal
			return
		}
	case "enter":
		if !filtering {
			m.selectFromPicker()
			return
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	*cmds = append(*cmds, cmd)
}

func (m *Model) openPicker(cmds *[]tea.Cmd) {
	items := make([]list.Item, 0, len(m.options))
	selected := 0
	for i, o := range m.options {
		items = append(items, optionItem(o))
		if o.ID == m.view.Selected() {
			selected = i
		}
	}
	m.picker.Title = m.view.Mode().Placeholder()
	m.picker.ResetFilter()
	if cmd := m.picker.SetItems(items); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	m.picker.Select(selected)
	m.mode = modePicker
}

func (m *Model) selectFromPicker() {
	m.mode = modeNormal
	item, ok := m.picker.SelectedItem().(optionItem)
	if !ok {
		return
	}
	if err := m.view.Select(item.ID); err != nil {
		m.setStatus(err.Error())
		return
	}
	m.refresh()
	m.setStatus("Showing " + item.Name)
}

type optionItem timetable.Option

func (o optionItem) Title() string       { return o.Name }
func (o optionItem) Description() string { return o.ID }
func (o optionItem) FilterValue() string { return o.Name }

// applySizes recalculates component sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	w := min(max(m.termWidth/2, 30), 60)
	h := max(m.termHeight-6, 6)
	m.picker.SetSize(w, h)
	m.help.SetSize(min(m.termWidth-4, 72), h)
	m.errBox.SetWidth(min(m.termWidth-4, 72))
}

// Run launches the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, svc *app.Service, watch bool) error {
	m := NewWithContext(ctx, svc).WithWatch(watch)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.stopWatch()
	return err
}
