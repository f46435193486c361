package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/weekly/pkg/day"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListWeekTool(srv, svc)
	registerListDayTool(srv, svc)
	registerAddTaskTool(srv, svc)
	registerToggleTaskTool(srv, svc)
	registerDeleteTaskTool(srv, svc)
	registerRenameTaskTool(srv, svc)
	registerMoveTaskTool(srv, svc)
	registerClearCompletedTool(srv, svc)
}

func dayOption(name, description string) mcp.ToolOption {
	return mcp.WithString(name,
		mcp.Required(),
		mcp.Description(description+" A day name (monday..sunday), a three letter alias or today."),
	)
}

func registerListWeekTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_week",
		mcp.WithDescription("List the tasks of every day of the current week."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		wk, err := svc.Week(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(wk)
	})
}

func registerListDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_day",
		mcp.WithDescription("List the tasks of one day."),
		dayOption("day", "Day to list."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		d, err := requireDay(svc, request, "day")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.Day(ctx, d)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add a task to the end of a day."),
		dayOption("day", "Day that should hold the new task."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text of the task."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Day  string `json:"day"`
			Text string `json:"text"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		d, err := svc.ParseDay(args.Day)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.AddTask(ctx, d, args.Text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Mark a task done, or open again if it already is."),
		dayOption("day", "Day the task is on."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		d, id, err := requireDayAndID(svc, request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ToggleTask(ctx, d, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task."),
		dayOption("day", "Day the task is on."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		d, id, err := requireDayAndID(svc, request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteTask(ctx, d, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": id,
			"day":     d,
		})
	})
}

func registerRenameTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"rename_task",
		mcp.WithDescription("Replace the text of a task."),
		dayOption("day", "Day the task is on."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("New text of the task."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		d, id, err := requireDayAndID(svc, request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.RenameTask(ctx, d, id, text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMoveTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_task",
		mcp.WithDescription("Move a task to the end of another day."),
		dayOption("from", "Day the task is on."),
		dayOption("to", "Day to move the task to."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		from, err := requireDay(svc, request, "from")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		to, err := requireDay(svc, request, "to")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.MoveTask(ctx, from, to, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerClearCompletedTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"clear_completed",
		mcp.WithDescription("Delete every completed task of the week."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		n, err := svc.ClearCompleted(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"removed": n,
		})
	})
}

func requireDay(svc *Service, request mcp.CallToolRequest, name string) (day.Key, error) {
	v, err := request.RequireString(name)
	if err != nil {
		return "", err
	}
	return svc.ParseDay(v)
}

func requireDayAndID(svc *Service, request mcp.CallToolRequest) (day.Key, string, error) {
	d, err := requireDay(svc, request, "day")
	if err != nil {
		return "", "", err
	}
	id, err := request.RequireString("id")
	if err != nil {
		return "", "", err
	}
	return d, id, nil
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
