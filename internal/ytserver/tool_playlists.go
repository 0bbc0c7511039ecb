package ytserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/yts/internal/engine"
	"github.com/anatolykoptev/yts/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type PlaylistSearchInput struct {
	Query string `json:"query" jsonschema:"Playlist search keywords"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max playlists to return (default 20, max 50)"`
}

func registerPlaylists(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_playlists",
		Description: "Search YouTube playlists only. Returns playlist titles, URLs, owning channels, and video counts.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input PlaylistSearchInput) (*mcp.CallToolResult, engine.SearchOutput, error) {
		if input.Query == "" {
			return nil, engine.SearchOutput{}, fmt.Errorf("query is required")
		}

		results, err := engine.Search(ctx, engine.SearchOptions{
			Query:      input.Query,
			Kind:       engine.KindPlaylist,
			MaxResults: toolutil.ClampLimit(input.Limit, engine.Cfg.MaxResults, maxToolLimit),
		})
		if err != nil {
			slog.Warn("youtube_playlists error", slog.Any("error", err))
			return nil, engine.SearchOutput{}, fmt.Errorf("youtube playlist search failed: %w", err)
		}
		return nil, engine.GroupResults(input.Query, results), nil
	})
}
