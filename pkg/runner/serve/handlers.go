package serve

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/timetable"
)

// Paging fields are pointers so an explicit page=0 fails validation instead
// of reading as absent.
type listQuery struct {
	Search  string `query:"search" validate:"max=100"`
	Page    *int   `query:"page" validate:"omitempty,min=1"`
	PerPage *int   `query:"per_page" validate:"omitempty,oneof=10 25 50 100"`
}

func (q listQuery) query() app.Query {
	out := app.Query{Search: q.Search}
	if q.Page != nil {
		out.Page = *q.Page
	}
	if q.PerPage != nil {
		out.PerPage = *q.PerPage
	}
	return out
}

type timetableQuery struct {
	Mode string `query:"mode" validate:"omitempty,oneof=none teacher teachers classroom classrooms class"`
	ID   string `query:"id" validate:"max=64"`
}

type cellQuery struct {
	Day    string `query:"day" validate:"required"`
	Period string `query:"period" validate:"required"`
	Mode   string `query:"mode" validate:"omitempty,oneof=none teacher teachers classroom classrooms class"`
	ID     string `query:"id" validate:"max=64"`
}

type optionsQuery struct {
	Mode   string `query:"mode" validate:"required,oneof=teacher teachers classroom classrooms class"`
	Search string `query:"search" validate:"max=100"`
}

func filterOf(mode, id string) (timetable.Filter, error) {
	m, err := timetable.ParseMode(mode)
	if err != nil {
		return timetable.Filter{}, err
	}
	return timetable.Filter{Mode: m, SelectedID: strings.TrimSpace(id)}, nil
}

type handlers struct {
	svc      *app.Service
	validate *validator.Validate
}

func newHandlers(svc *app.Service) *handlers {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &handlers{svc: svc, validate: v}
}

// parse reads the query string into out and validates it.
func (h *handlers) parse(c *fiber.Ctx, out interface{}) error {
	if err := c.QueryParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query: "+err.Error())
	}
	return h.validate.Struct(out)
}

func (h *handlers) health(c *fiber.Ctx) error {
	_, err := h.svc.Catalog.Snapshot()
	body := fiber.Map{
		"status": "ok",
		"source": h.svc.Catalog.Source(),
		"loaded": err == nil,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.JSON(body)
}

func (h *handlers) teachers(c *fiber.Ctx) error {
	var q listQuery
	if err := h.parse(c, &q); err != nil {
		return err
	}
	l, err := h.svc.Teachers(c.UserContext(), q.query())
	if err != nil {
		return err
	}
	return c.JSON(l)
}

func (h *handlers) teacher(c *fiber.Ctx) error {
	t, err := h.svc.Teacher(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(t)
}

func (h *handlers) classRooms(c *fiber.Ctx) error {
	var q listQuery
	if err := h.parse(c, &q); err != nil {
		return err
	}
	l, err := h.svc.ClassRooms(c.UserContext(), q.query())
	if err != nil {
		return err
	}
	return c.JSON(l)
}

func (h *handlers) subjects(c *fiber.Ctx) error {
	var q listQuery
	if err := h.parse(c, &q); err != nil {
		return err
	}
	l, err := h.svc.Courses(c.UserContext(), q.query())
	if err != nil {
		return err
	}
	return c.JSON(l)
}

func (h *handlers) grid(c *fiber.Ctx) error {
	var q timetableQuery
	if err := h.parse(c, &q); err != nil {
		return err
	}
	f, err := filterOf(q.Mode, q.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	g, err := h.svc.Timetable(c.UserContext(), f)
	if err != nil {
		return err
	}
	return c.JSON(g)
}

func (h *handlers) cell(c *fiber.Ctx) error {
	var q cellQuery
	if err := h.parse(c, &q); err != nil {
		return err
	}
	f, err := filterOf(q.Mode, q.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	res, err := h.svc.Cell(c.UserContext(), app.CellQuery{Day: q.Day, Period: q.Period, Filter: f})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *handlers) options(c *fiber.Ctx) error {
	var q optionsQuery
	if err := h.parse(c, &q); err != nil {
		return err
	}
	m, err := timetable.ParseMode(q.Mode)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	opts, err := h.svc.Options(c.UserContext(), m, q.Search)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"mode":        m.String(),
		"placeholder": m.Placeholder(),
		"items":       opts,
	})
}

func (h *handlers) summary(c *fiber.Ctx) error {
	s, err := h.svc.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(s)
}
