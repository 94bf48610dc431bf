package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/jadwal/pkg/app"
	"tableflip.dev/jadwal/pkg/listing"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListTeachersTool(srv, svc)
	registerListClassRoomsTool(srv, svc)
	registerListSubjectsTool(srv, svc)
	registerGetTimetableTool(srv, svc)
	registerResolveCellTool(srv, svc)
}

func listOptions(what string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithDescription(fmt.Sprintf("List %s, filtered by a case-insensitive name search and paged.", what)),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("search",
			mcp.Description("Only return rows whose name contains this text."),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number, starting at 1."),
			mcp.Min(1),
		),
		mcp.WithNumber("per_page",
			mcp.Description("Rows per page: 10, 25, 50 or 100."),
		),
	}
}

func queryFrom(request mcp.CallToolRequest) (app.Query, error) {
	q := app.Query{
		Search:  request.GetString("search", ""),
		Page:    request.GetInt("page", 1),
		PerPage: request.GetInt("per_page", listing.DefaultPerPage),
	}
	if q.Page < 1 {
		return q, fmt.Errorf("page must be >= 1")
	}
	if !listing.ValidPerPage(q.PerPage) {
		return q, fmt.Errorf("per_page must be one of %v", listing.PageSizes)
	}
	return q, nil
}

func registerListTeachersTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("list_teachers", listOptions("teachers")...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := queryFrom(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		l, err := svc.ListTeachers(ctx, q)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(l)
	})
}

func registerListClassRoomsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("list_classrooms", listOptions("classrooms")...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := queryFrom(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		l, err := svc.ListClassRooms(ctx, q)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(l)
	})
}

func registerListSubjectsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("list_subjects", listOptions("subjects")...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := queryFrom(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		l, err := svc.ListSubjects(ctx, q)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(l)
	})
}

func registerGetTimetableTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_timetable",
		mcp.WithDescription("Build the Monday to Friday grid, optionally for one teacher or one classroom. Returns the grid and a flat list of lessons."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("mode",
			mcp.Description("Filter mode."),
			mcp.Enum("none", "teacher", "classroom"),
		),
		mcp.WithString("id",
			mcp.Description("Teacher or classroom id; requires mode."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		f, err := ParseFilter(request.GetString("mode", ""), request.GetString("id", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		g, ls, err := svc.Timetable(ctx, f)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"grid":    g,
			"lessons": ls,
			"count":   len(ls),
		})
	})
}

func registerResolveCellTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"resolve_cell",
		mcp.WithDescription("Resolve the lesson held at one day and period. An empty cell returns cell: null."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("day",
			mcp.Required(),
			mcp.Description("Mon..Fri, a weekday name, or a five-digit day mask such as 10000."),
		),
		mcp.WithString("period",
			mcp.Required(),
			mcp.Description("Period name."),
		),
		mcp.WithString("mode",
			mcp.Description("Filter mode."),
			mcp.Enum("none", "teacher", "classroom"),
		),
		mcp.WithString("id",
			mcp.Description("Teacher or classroom id; requires mode."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := request.RequireString("day")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		period, err := request.RequireString("period")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		f, err := ParseFilter(request.GetString("mode", ""), request.GetString("id", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := svc.ResolveCell(ctx, app.CellQuery{Day: day, Period: period, Filter: f})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
