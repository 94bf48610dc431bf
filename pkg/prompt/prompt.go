// Package prompt asks for the timetable mode and entity on the terminal.
package prompt

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/jadwal/pkg/timetable"
)

// Prompter reads answers from In and draws the prompt on Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

func (p *Prompter) stdin() io.ReadCloser {
	if p.In == nil {
		return nil
	}
	return io.NopCloser(p.In)
}

func (p *Prompter) stdout() io.WriteCloser {
	if p.Out == nil {
		return nil
	}
	return nopCloser{p.Out}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type modeItem struct {
	Mode  timetable.Mode
	Title string
	Hint  string
}

// Mode asks which entity should narrow the grid.
func (p *Prompter) Mode() (timetable.Mode, error) {
	items := []modeItem{
		{Mode: timetable.ModeNone, Title: timetable.ModeNone.Title(), Hint: "every lesson"},
		{Mode: timetable.ModeTeacher, Title: timetable.ModeTeacher.Title(), Hint: "one teacher"},
		{Mode: timetable.ModeClassroom, Title: timetable.ModeClassroom.Title(), Hint: "one class"},
	}
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Title | bold }} {{ .Hint | green }}",
		Inactive: "   {{ .Title }} {{ .Hint | cyan }}",
		Selected: "{{ .Title | bold }}",
	}
	sel := promptui.Select{
		HideHelp:  true,
		Label:     "Filter",
		Items:     items,
		Templates: templates,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	i, _, err := sel.Run()
	if err != nil {
		return timetable.ModeNone, err
	}
	return items[i].Mode, nil
}

// Option asks for one of opts, with type-to-search on the name.
func (p *Prompter) Option(mode timetable.Mode, opts []timetable.Option) (timetable.Option, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "➜  {{ .Name | bold }} {{ .ID | faint }}",
		Inactive: "   {{ .Name }} {{ .ID | faint }}",
		Selected: "{{ .Name | bold }}",
	}
	sel := promptui.Select{
		HideHelp:          true,
		Label:             mode.Placeholder(),
		Items:             opts,
		Templates:         templates,
		Size:              10,
		Searcher:          Searcher(opts),
		StartInSearchMode: true,
		Stdin:             p.stdin(),
		Stdout:            p.stdout(),
	}
	i, _, err := sel.Run()
	if err != nil {
		return timetable.Option{}, err
	}
	return opts[i], nil
}

// Filter runs both prompts. Mode none skips the entity prompt.
func (p *Prompter) Filter(options func(timetable.Mode) []timetable.Option) (timetable.Filter, error) {
	mode, err := p.Mode()
	if err != nil {
		return timetable.Filter{}, err
	}
	if mode == timetable.ModeNone {
		return timetable.Filter{}, nil
	}
	opt, err := p.Option(mode, options(mode))
	if err != nil {
		return timetable.Filter{}, err
	}
	return timetable.Filter{Mode: mode, SelectedID: opt.ID}, nil
}

// Searcher matches the typed text against option names, ignoring case and
// spaces.
func Searcher(opts []timetable.Option) func(input string, index int) bool {
	return func(input string, index int) bool {
		name := strings.ReplaceAll(strings.ToLower(opts[index].Name), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}
}
