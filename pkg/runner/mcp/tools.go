package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/questnote/pkg/translate"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListGamesTool(srv, svc)
	registerAddGameTool(srv, svc)
	registerRemoveGameTool(srv, svc)
	registerAddEntryTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerEntriesOnDayTool(srv, svc)
	registerCalendarMonthTool(srv, svc)
	registerTranslateTool(srv, svc)
}

func registerListGamesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_games",
		mcp.WithDescription("List tracked games, most recently played first."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		games, err := svc.ListGames(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"games": games,
			"count": len(games),
		})
	})
}

func registerAddGameTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_game",
		mcp.WithDescription("Start tracking a game."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Game title."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		added, err := svc.AddGame(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"name": name, "added": added})
	})
}

func registerRemoveGameTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_game",
		mcp.WithDescription("Stop tracking a game. Its diary entries are kept."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Game title to remove."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		removed, err := svc.RemoveGame(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"name": name, "removed": removed})
	})
}

func registerAddEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_entry",
		mcp.WithDescription("Record a diary entry for a game, stamped with the current time."),
		mcp.WithString("game",
			mcp.Required(),
			mcp.Description("Game the entry belongs to. Unknown games are added."),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Entry body."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Game string `json:"game"`
			Text string `json:"text"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddEntry(ctx, args.Game, args.Text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete a diary entry. Unknown ids are reported, not treated as errors."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		deleted, err := svc.DeleteEntry(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"id": id, "deleted": deleted})
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List entries for a game (newest first) or the entire diary."),
		mcp.WithString("game",
			mcp.Description("Optional game filter."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		game := strings.TrimSpace(request.GetString("game", ""))
		results, err := svc.ListEntries(ctx, game)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"game":    game,
			"entries": results,
			"count":   len(results),
		})
	})
}

func registerEntriesOnDayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"entries_on_day",
		mcp.WithDescription("List entries recorded on a calendar day."),
		mcp.WithString("day",
			mcp.Required(),
			mcp.Description("Day as YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := request.RequireString("day")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		results, err := svc.EntriesOnDay(ctx, day)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"day":     day,
			"entries": results,
			"count":   len(results),
		})
	})
}

func registerCalendarMonthTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"calendar_month",
		mcp.WithDescription("Month grid with the days that have entries marked."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM; defaults to the current month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month, err := svc.Month(ctx, request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(month)
	})
}

func registerTranslateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"translate",
		mcp.WithDescription("Translate text between English and Spanish."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text to translate."),
		),
		mcp.WithString("from",
			mcp.Description("Source language (default es)."),
			mcp.Enum(translate.Spanish, translate.English),
		),
		mcp.WithString("to",
			mcp.Description("Destination language (default en)."),
			mcp.Enum(translate.Spanish, translate.English),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		from := request.GetString("from", translate.Spanish)
		to := request.GetString("to", translate.English)

		out, err := svc.Translate(ctx, text, from, to)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"text":        text,
			"from":        from,
			"to":          to,
			"translation": out,
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
