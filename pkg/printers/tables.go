package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jadwal/pkg/listing"
	"tableflip.dev/jadwal/pkg/record"
)

func (pp *PrettyPrint) table(header ...interface{}) *uitable.Table {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	row := make([]interface{}, 0, len(header)+1)
	if pp.ShowID {
		row = append(row, bold.Sprint("ID"))
	}
	for _, h := range header {
		row = append(row, bold.Sprint(h))
	}
	tbl.AddRow(row...)
	return tbl
}

func (pp *PrettyPrint) row(tbl *uitable.Table, id string, cells ...interface{}) {
	if pp.ShowID {
		y := color.New(color.FgHiYellow, color.Faint)
		cells = append([]interface{}{y.Sprint(id)}, cells...)
	}
	tbl.AddRow(cells...)
}

// Teachers prints the teacher table: short code, name, gender and color.
func (pp *PrettyPrint) Teachers(items []record.Teacher) {
	if len(items) == 0 {
		pp.Empty("teachers")
		return
	}
	tbl := pp.table("Short", "Name", "Gender", "Color")
	for _, t := range items {
		pp.row(tbl, t.ID, t.Short, t.Name, t.GenderLabel(), pp.colorSample(t.Color))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// ClassRooms prints the classroom table.
func (pp *PrettyPrint) ClassRooms(items []record.ClassRoom) {
	if len(items) == 0 {
		pp.Empty("classrooms")
		return
	}
	tbl := pp.table("Short", "Name", "Capacity")
	for _, c := range items {
		capacity := c.Capacity
		if capacity == "" {
			capacity = "-"
		}
		pp.row(tbl, c.ID, c.Short, c.Name, capacity)
	}
	tbl.RightAlign(len(tbl.Rows[0].Cells) - 1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Courses prints the subject table.
func (pp *PrettyPrint) Courses(items []record.Course) {
	if len(items) == 0 {
		pp.Empty("subjects")
		return
	}
	tbl := pp.table("Short", "Name")
	for _, c := range items {
		pp.row(tbl, c.ID, c.Short, c.Name)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Footer prints the page summary and the page-number widget.
func (pp *PrettyPrint) Footer(p listing.Page) {
	f := color.New(color.Faint)
	cur := color.New(color.Bold, color.FgHiBlue)

	_, _ = f.Fprint(pp.out(), p.Summary())
	items := listing.PageNumbers(p.Page, p.TotalPages)
	if len(items) > 1 {
		parts := make([]string, 0, len(items))
		for _, it := range items {
			if it.Current {
				parts = append(parts, cur.Sprint(it.String()))
				continue
			}
			parts = append(parts, f.Sprint(it.String()))
		}
		_, _ = fmt.Fprint(pp.out(), "   ", strings.Join(parts, " "))
	}
	pp.NewLine()
}
