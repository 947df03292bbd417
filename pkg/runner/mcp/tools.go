package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListListsTool(srv, svc)
	registerListTagsTool(srv, svc)
	registerSetTagTool(srv, svc)
	registerSelectListTool(srv, svc)
}

func registerListListsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_lists",
		mcp.WithDescription("Return one page of lists, newest first unless a sort is given. Lists whose tags are all inactive are left out."),
		mcp.WithNumber("page",
			mcp.Description("1-based page number."),
		),
		mcp.WithString("sort",
			mcp.Description(`Sort order such as "name", "size:desc" or "-timestamp".`),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Page int    `json:"page"`
			Sort string `json:"sort"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		page, err := svc.ListPage(ctx, args.Page, args.Sort)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(page)
	})
}

func registerListTagsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tags",
		mcp.WithDescription("Return every tag with its usage count, color and active flag."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		all, err := svc.Tags(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(all)
	})
}

func registerSetTagTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_tag",
		mcp.WithDescription("Show or hide the lists carrying a tag."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Tag name, case-sensitive."),
		),
		mcp.WithBoolean("active",
			mcp.Required(),
			mcp.Description("Whether lists with this tag are shown."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name   string `json:"name"`
			Active bool   `json:"active"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		all, err := svc.SetTag(ctx, args.Name, args.Active)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(all)
	})
}

func registerSelectListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"select_list",
		mcp.WithDescription("Select a list by name and submit it as the choice."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("List name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Name string `json:"name"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Name == "" {
			return mcp.NewToolResultError("name is required"), nil
		}
		snap, err := svc.Choose(ctx, args.Name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(snap)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
