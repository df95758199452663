package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerGamesResource(srv, svc)
	registerGameTemplate(srv, svc)
}

func registerGamesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"questnote://games",
		"Games",
		mcp.WithResourceDescription("All tracked games with entry counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		games, err := svc.ListGames(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"games": games,
			"count": len(games),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerGameTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"questnote://games/{name}",
		"Game Diary",
		mcp.WithTemplateDescription("Diary entries recorded for a game, newest first."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArg(request.Params.Arguments["name"])
		if name == "" {
			return nil, fmt.Errorf("game name is required")
		}
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}

		entries, err := svc.ListEntries(ctx, name)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"game":    name,
			"count":   len(entries),
			"entries": entries,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateArg accepts both a plain string and the single-element list some
// template matchers produce.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
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
