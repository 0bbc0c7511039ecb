package engine

import "fmt"

// --- Result kinds ---

// Kind selects which result types a search returns.
type Kind string

const (
	KindVideo    Kind = "video"
	KindChannel  Kind = "channel"
	KindPlaylist Kind = "playlist"
	KindAll      Kind = "all"
)

// ParseKind validates a kind string. Empty input defaults to KindVideo,
// matching the CLI default.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "":
		return KindVideo, nil
	case KindVideo, KindChannel, KindPlaylist, KindAll:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown result type %q (want video, channel, playlist or all)", s)
}

// --- Result variants ---

// Field is one name/value pair of a flattened result, in render order.
// Optional fields carry a nil value when absent.
type Field struct {
	Name  string
	Value any
}

// Result is one typed search result. The implementation set is closed:
// VideoResult, ChannelResult, PlaylistResult. Results are value objects —
// built once by an extractor and never mutated.
type Result interface {
	Kind() Kind
	Fields() []Field
}

// VideoResult is a single video search result.
type VideoResult struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	ChannelTitle    string `json:"channel_title"`
	ViewCount       *int64 `json:"view_count,omitempty"`
	Duration        string `json:"duration,omitempty"` // human form, e.g. "10:30"
	DurationSeconds *int64 `json:"duration_seconds,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
}

func (v VideoResult) Kind() Kind { return KindVideo }

func (v VideoResult) Fields() []Field {
	return []Field{
		{"title", v.Title},
		{"url", v.URL},
		{"channel_title", v.ChannelTitle},
		{"view_count", optInt(v.ViewCount)},
		{"duration", v.Duration},
		{"duration_seconds", optInt(v.DurationSeconds)},
		{"thumbnail_url", v.ThumbnailURL},
	}
}

// ChannelResult is a single channel search result.
type ChannelResult struct {
	Name            string `json:"name"`
	URL             string `json:"url"`
	SubscriberCount *int64 `json:"subscriber_count,omitempty"`
	VideoCount      *int64 `json:"video_count,omitempty"`
	Description     string `json:"description,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"`
}

func (c ChannelResult) Kind() Kind { return KindChannel }

func (c ChannelResult) Fields() []Field {
	return []Field{
		{"name", c.Name},
		{"url", c.URL},
		{"subscriber_count", optInt(c.SubscriberCount)},
		{"video_count", optInt(c.VideoCount)},
		{"description", c.Description},
		{"avatar_url", c.AvatarURL},
	}
}

// PlaylistResult is a single playlist search result.
type PlaylistResult struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	ChannelTitle string `json:"channel_title"`
	VideoCount   *int64 `json:"video_count,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

func (p PlaylistResult) Kind() Kind { return KindPlaylist }

func (p PlaylistResult) Fields() []Field {
	return []Field{
		{"title", p.Title},
		{"url", p.URL},
		{"channel_title", p.ChannelTitle},
		{"video_count", optInt(p.VideoCount)},
		{"thumbnail_url", p.ThumbnailURL},
	}
}

func optInt(n *int64) any {
	if n == nil {
		return nil
	}
	return *n
}

// --- MCP tool output ---

// SearchOutput groups results by kind for the MCP tool responses.
type SearchOutput struct {
	Query     string           `json:"query"`
	Total     int              `json:"total"`
	Videos    []VideoResult    `json:"videos,omitempty"`
	Channels  []ChannelResult  `json:"channels,omitempty"`
	Playlists []PlaylistResult `json:"playlists,omitempty"`
}

// GroupResults splits a mixed result list into a SearchOutput container.
func GroupResults(query string, results []Result) SearchOutput {
	out := SearchOutput{Query: query, Total: len(results)}
	for _, r := range results {
		switch v := r.(type) {
		case VideoResult:
			out.Videos = append(out.Videos, v)
		case ChannelResult:
			out.Channels = append(out.Channels, v)
		case PlaylistResult:
			out.Playlists = append(out.Playlists, v)
		}
	}
	return out
}
