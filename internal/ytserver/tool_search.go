package ytserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/yts/internal/engine"
	"github.com/anatolykoptev/yts/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type SearchInput struct {
	Query    string `json:"query" jsonschema:"Search query"`
	Type     string `json:"type,omitempty" jsonschema:"Result type: video (default), channel, playlist, all"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max results to return (default 20, max 50)"`
	Order    string `json:"order,omitempty" jsonschema:"Sort order: relevance (default), date, viewCount, rating"`
	Duration string `json:"duration,omitempty" jsonschema:"Video duration filter: short, medium, long"`
	Region   string `json:"region,omitempty" jsonschema:"Region code (e.g. US)"`
}

func registerSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_search",
		Description: "Search YouTube for videos, channels, and playlists by scraping the public results page — no API key or quota. Returns structured JSON with titles, URLs, channels, view counts, and durations. Supports sort order and duration filters.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, engine.SearchOutput, error) {
		if input.Query == "" {
			return nil, engine.SearchOutput{}, fmt.Errorf("query is required")
		}
		kind, err := engine.ParseKind(input.Type)
		if err != nil {
			return nil, engine.SearchOutput{}, err
		}

		results, err := engine.Search(ctx, engine.SearchOptions{
			Query:      input.Query,
			Kind:       kind,
			MaxResults: toolutil.ClampLimit(input.Limit, engine.Cfg.MaxResults, maxToolLimit),
			Order:      input.Order,
			Duration:   input.Duration,
			RegionCode: input.Region,
		})
		if err != nil {
			slog.Warn("youtube_search error", slog.Any("error", err))
			return nil, engine.SearchOutput{}, fmt.Errorf("youtube search failed: %w", err)
		}
		return nil, engine.GroupResults(input.Query, results), nil
	})
}
