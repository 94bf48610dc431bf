package printers

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"tableflip.dev/jadwal/pkg/record"
	"tableflip.dev/jadwal/pkg/timetable"
)

const (
	timeWidth = 15
	cellWidth = 20
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// Blend flattens a cell tint onto a white background. Hex tints with an alpha
// suffix are mixed by that alpha; opaque hex colors are returned as is. Named
// colors and "transparent" report false.
func Blend(tint string) (colorful.Color, bool) {
	if !strings.HasPrefix(tint, "#") {
		return colorful.Color{}, false
	}
	hex, alpha := tint, 1.0
	switch len(tint) {
	case 9: // #rrggbbaa
		hex = tint[:7]
		a, err := strconv.ParseUint(tint[7:], 16, 8)
		if err != nil {
			return colorful.Color{}, false
		}
		alpha = float64(a) / 255
	case 6: // #rgbaa
		hex = tint[:4]
		a, err := strconv.ParseUint(tint[4:], 16, 8)
		if err != nil {
			return colorful.Color{}, false
		}
		alpha = float64(a) / 255
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return white.BlendRgb(c, alpha).Clamped(), true
}

func (pp *PrettyPrint) termOutput() *termenv.Output {
	w := pp.out()
	profile := termenv.EnvColorProfile()
	if color.NoColor {
		profile = termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		profile = termenv.Ascii
	}
	return termenv.NewOutput(w, termenv.WithProfile(profile))
}

func (pp *PrettyPrint) colorSample(c string) string {
	if c == "" {
		return "-"
	}
	out := pp.termOutput()
	if _, err := colorful.Hex(c); err != nil {
		return c
	}
	return out.String("  ").Background(out.Color(c)).String() + " " + c
}

func fit(s string, width int) string {
	return padding.String(truncate.StringWithTail(s, uint(width), "…"), uint(width))
}

// Grid prints the week view. Each period takes three lines: subject, teacher
// and room. Occupied cells get the teacher tint as background.
func (pp *PrettyPrint) Grid(g timetable.Grid) {
	out := pp.termOutput()
	w := pp.out()
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	header := []string{bold.Sprint(fit("Time", timeWidth))}
	for _, d := range g.Days {
		header = append(header, bold.Sprint(fit(d.Label(), cellWidth)))
	}
	_, _ = fmt.Fprintln(w, strings.Join(header, " "))

	if len(g.Rows) == 0 {
		pp.Empty("periods")
		return
	}
	for _, r := range g.Rows {
		for line := 0; line < 3; line++ {
			parts := []string{faint.Sprint(fit(timeLine(r.Period, line), timeWidth))}
			for _, s := range r.Slots {
				parts = append(parts, cellLine(out, s.Cell, line))
			}
			_, _ = fmt.Fprintln(w, strings.Join(parts, " "))
		}
		_, _ = fmt.Fprintln(w, faint.Sprint(strings.Repeat("─", timeWidth+len(r.Slots)*(cellWidth+1))))
	}
	pp.legend(w, g)
}

func timeLine(p record.Period, line int) string {
	switch line {
	case 0:
		if p.Short != "" {
			return p.Short
		}
		return p.Name
	case 1:
		return p.TimeLabel()
	default:
		return ""
	}
}

func cellLine(out *termenv.Output, c *timetable.Cell, line int) string {
	if c == nil {
		return fit("", cellWidth)
	}
	var text string
	switch line {
	case 0:
		text = c.SubjectLabel
	case 1:
		text = c.TeacherLabel
	default:
		text = c.RoomLabel
	}
	s := out.String(fit(text, cellWidth))
	if line == 0 {
		s = s.Bold()
	}
	if bg, ok := Blend(c.Tint); ok {
		s = s.Background(out.Color(bg.Hex())).Foreground(out.Color("#000000"))
	}
	return s.String()
}

func (pp *PrettyPrint) legend(w io.Writer, g timetable.Grid) {
	f := color.New(color.Faint)
	switch g.Filter.Mode {
	case timetable.ModeNone:
		_, _ = f.Fprintf(w, "%d lessons\n", g.Occupied())
	default:
		sel := g.Filter.SelectedID
		if sel == "" {
			sel = "all"
		}
		_, _ = f.Fprintf(w, "%d lessons, %s %s\n", g.Occupied(), g.Filter.Mode, sel)
	}
}

// Cell prints a single resolved cell.
func (pp *PrettyPrint) Cell(day record.DayMask, p record.Period, c *timetable.Cell) {
	w := pp.out()
	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(w, "%s %s (%s)\n", day.Label(), p.Name, p.TimeLabel())
	if c == nil {
		pp.Empty("lesson")
		return
	}
	out := pp.termOutput()
	for line := 0; line < 3; line++ {
		_, _ = fmt.Fprintln(w, cellLine(out, c, line))
	}
}
