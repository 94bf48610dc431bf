// Package list prints one page of an entity table.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/printers"
)

// Kind names an entity table.
type Kind string

const (
	Teachers   Kind = "teachers"
	ClassRooms Kind = "classrooms"
	Subjects   Kind = "subjects"
)

// Title is the table heading.
func (k Kind) Title() string {
	switch k {
	case Teachers:
		return "Teachers"
	case ClassRooms:
		return "Classrooms"
	case Subjects:
		return "Subjects"
	}
	return string(k)
}

type List struct {
	Service *app.Service
	Kind    Kind
	Query   app.Query
	ShowID  bool
	JSON    bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out, ShowID: n.ShowID}

	switch n.Kind {
	case Teachers:
		l, err := n.Service.Teachers(ctx, n.Query)
		if err != nil {
			return err
		}
		if n.JSON {
			return encode(out, l)
		}
		pp.TitleWithCount(n.Kind.Title(), l.Meta.Total)
		pp.Teachers(l.Items)
		pp.Footer(l.Meta)
	case ClassRooms:
		l, err := n.Service.ClassRooms(ctx, n.Query)
		if err != nil {
			return err
		}
		if n.JSON {
			return encode(out, l)
		}
		pp.TitleWithCount(n.Kind.Title(), l.Meta.Total)
		pp.ClassRooms(l.Items)
		pp.Footer(l.Meta)
	case Subjects:
		l, err := n.Service.Courses(ctx, n.Query)
		if err != nil {
			return err
		}
		if n.JSON {
			return encode(out, l)
		}
		pp.TitleWithCount(n.Kind.Title(), l.Meta.Total)
		pp.Courses(l.Items)
		pp.Footer(l.Meta)
	default:
		return fmt.Errorf("unknown table %q", n.Kind)
	}
	return nil
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
