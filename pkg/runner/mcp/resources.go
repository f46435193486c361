package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerWeekResource(srv, svc)
	registerDayTemplate(srv, svc)
}

func registerWeekResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"weekly://week",
		"Week",
		mcp.WithResourceDescription("Every day of the current week with its tasks."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		wk, err := svc.Week(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, wk)
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"weekly://days/{day}",
		"Day Tasks",
		mcp.WithTemplateDescription("Tasks of a single day."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArg(request.Params.Arguments["day"])
		if name == "" {
			return nil, fmt.Errorf("day is required")
		}
		d, err := svc.ParseDay(name)
		if err != nil {
			return nil, err
		}
		dto, err := svc.Day(ctx, d)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

// templateArg reads a URI template variable, which arrives either as a
// string or as a list of strings.
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

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
