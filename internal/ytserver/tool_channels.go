package ytserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/yts/internal/engine"
	"github.com/anatolykoptev/yts/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ChannelSearchInput struct {
	Query string `json:"query" jsonschema:"Channel search keywords"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max channels to return (default 20, max 50)"`
}

func registerChannels(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_channels",
		Description: "Search YouTube channels only. Returns channel names, URLs, subscriber counts, and descriptions.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ChannelSearchInput) (*mcp.CallToolResult, engine.SearchOutput, error) {
		if input.Query == "" {
			return nil, engine.SearchOutput{}, fmt.Errorf("query is required")
		}

		results, err := engine.Search(ctx, engine.SearchOptions{
			Query:      input.Query,
			Kind:       engine.KindChannel,
			MaxResults: toolutil.ClampLimit(input.Limit, engine.Cfg.MaxResults, maxToolLimit),
		})
		if err != nil {
			slog.Warn("youtube_channels error", slog.Any("error", err))
			return nil, engine.SearchOutput{}, fmt.Errorf("youtube channel search failed: %w", err)
		}
		return nil, engine.GroupResults(input.Query, results), nil
	})
}
