package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/emojisel/pkg/emoji"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerSearchTool(srv, svc)
	registerListCategoryTool(srv, svc)
	registerRecentTool(srv, svc)
	registerRecordTool(srv, svc)
}

func registerSearchTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_emoji",
		mcp.WithDescription("Find emoji whose short names contain the query, ordered like the picker shows them."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Part of a short name, for example \"dog\" or \"smil\"."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results; 0 returns all."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		results, err := svc.Search(ctx, query, request.GetInt("limit", 0))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return toJSONResult(map[string]any{
			"query":   query,
			"count":   len(results),
			"results": results,
		})
	})
}

func registerListCategoryTool(srv *server.MCPServer, svc *Service) {
	keys := make([]string, 0, len(emoji.Categories()))
	for _, c := range emoji.Categories() {
		keys = append(keys, c.Key)
	}

	tool := mcp.NewTool(
		"list_category",
		mcp.WithDescription("List the emoji of one picker category. \"all\" concatenates every real category."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category key."),
			mcp.Enum(keys...),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results; 0 returns all."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := request.RequireString("category")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		items, err := svc.ListCategory(ctx, key, request.GetInt("limit", 0))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return toJSONResult(map[string]any{
			"category": key,
			"count":    len(items),
			"items":    items,
		})
	})
}

func registerRecentTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"recent_emoji",
		mcp.WithDescription("List recently used emoji, most recent first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results; 0 returns all."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, err := svc.Recent(ctx, request.GetInt("limit", 0))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"count": len(items),
			"items": items,
		})
	})
}

func registerRecordTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"record_emoji",
		mcp.WithDescription("Mark an emoji as used so it shows up in the recently used list."),
		mcp.WithString("emoji",
			mcp.Required(),
			mcp.Description("Short name such as \"dog\" or \":dog:\", or a unified code such as \"1F436\"."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("emoji")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		items, err := svc.Record(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"count": len(items),
			"items": items,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
