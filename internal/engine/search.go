package engine

import (
	"context"
	"log/slog"
	"strings"
)

// SearchOptions are the per-call knobs of one search.
type SearchOptions struct {
	Query      string
	Kind       Kind   // video (default), channel, playlist, all
	MaxResults int    // <=0 uses the configured default
	Order      string // relevance (default), date, viewCount, rating
	Duration   string // "", short, medium, long
	RegionCode string // e.g. "US"
	ChannelID  string // restrict to one channel
}

// Search runs one search call: a single page fetch followed by in-memory
// extraction. Calls are independent — no shared mutable state, so they may
// run concurrently. An empty result list with a nil error means either "no
// matches" or "the site layout changed"; the two are indistinguishable.
func Search(ctx context.Context, opts SearchOptions) ([]Result, error) {
	if strings.TrimSpace(opts.Query) == "" {
		return nil, ErrEmptyQuery
	}
	if opts.Kind == "" {
		opts.Kind = KindVideo
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = cfg.MaxResults
	}

	metrics.SearchRequests.Add(1)

	searchURL := BuildSearchURL(opts)
	slog.Debug("fetching search page",
		slog.String("query", opts.Query),
		slog.String("kind", string(opts.Kind)),
		slog.String("url", searchURL))

	page, err := FetchPage(ctx, searchURL)
	if err != nil {
		metrics.FetchErrors.Add(1)
		return nil, err
	}

	results := ExtractResults(page, opts.Kind, opts.MaxResults)
	slog.Debug("search done", slog.Int("results", len(results)))
	return results, nil
}
