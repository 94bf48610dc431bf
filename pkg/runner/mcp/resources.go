package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const jsonMIME = "application/json"

func registerResources(srv *server.MCPServer, svc *Service) {
	srv.AddResource(
		mcp.NewResource("jadwal://summary", "Timetable Summary",
			mcp.WithResourceDescription("Source, collection counts and the period list of the loaded timetable."),
			mcp.WithMIMEType(jsonMIME),
		),
		jsonResource(func(ctx context.Context, _ mcp.ReadResourceRequest) (any, error) {
			return svc.Summary(ctx)
		}),
	)

	srv.AddResourceTemplate(
		mcp.NewResourceTemplate("jadwal://teachers/{id}", "Teacher Week",
			mcp.WithTemplateDescription("A teacher and every lesson they hold during the week."),
			mcp.WithTemplateMIMEType(jsonMIME),
		),
		jsonResource(func(ctx context.Context, req mcp.ReadResourceRequest) (any, error) {
			id := templateArg(req.Params.Arguments["id"])
			if id == "" {
				return nil, errors.New("teacher id is required")
			}
			return svc.TeacherByID(ctx, id)
		}),
	)
}

// jsonResource adapts a payload loader into a handler that returns the payload
// as a single JSON text content under the requested URI.
func jsonResource(load func(context.Context, mcp.ReadResourceRequest) (any, error)) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		payload, err := load(ctx, req)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: req.Params.URI, MIMEType: jsonMIME, Text: string(data)},
		}, nil
	}
}

// templateArg reads a URI template variable, which the server may hand over
// as a string or a one-element list.
func templateArg(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case []string:
		if len(a) > 0 {
			return a[0]
		}
	}
	return ""
}
