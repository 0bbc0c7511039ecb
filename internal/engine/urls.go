package engine

import (
	"net/url"
	"strings"
)

const (
	ytBaseURL       = "https://www.youtube.com"
	ytSearchBaseURL = ytBaseURL + "/results?search_query="
)

// Canonical result URLs built from extracted ids.

func WatchURL(videoID string) string { return ytBaseURL + "/watch?v=" + videoID }

func ChannelURL(channelID string) string { return ytBaseURL + "/channel/" + channelID }

func PlaylistURL(playlistID string) string { return ytBaseURL + "/playlist?list=" + playlistID }

// Encoded "sp" filter tokens, keyed by filter value. These mirror YouTube's
// internal protobuf parameter scheme and go stale when it changes; they are
// lookup data, not logic — refresh them independently of the extractors.
var (
	kindFilterTokens = map[Kind]string{
		KindVideo:    "EgIQAQ%253D%253D",
		KindChannel:  "EgIQAg%253D%253D",
		KindPlaylist: "EgIQAw%253D%253D",
	}

	orderFilterTokens = map[string]string{
		"date":      "CAI%253D",
		"viewCount": "CAM%253D",
		"rating":    "CAE%253D",
	}

	durationFilterTokens = map[string]string{
		"short":  "EgIYAQ%253D%253D", // under 4 minutes
		"medium": "EgIYAw%253D%253D", // 4-20 minutes
		"long":   "EgIYAg%253D%253D", // over 20 minutes
	}
)

// BuildSearchURL assembles the results-page URL for the given options.
// Only the first applicable filter token is attached; combining tokens
// needs the full protobuf encoding, which is out of scope here.
func BuildSearchURL(opts SearchOptions) string {
	var b strings.Builder
	b.WriteString(ytSearchBaseURL)
	b.WriteString(url.QueryEscape(opts.Query))

	var filters []string
	if tok, ok := kindFilterTokens[opts.Kind]; ok {
		filters = append(filters, tok)
	}
	if tok, ok := orderFilterTokens[opts.Order]; ok {
		filters = append(filters, tok)
	}
	if tok, ok := durationFilterTokens[opts.Duration]; ok {
		filters = append(filters, tok)
	}
	if len(filters) > 0 {
		b.WriteString("&sp=")
		b.WriteString(filters[0])
	}

	if opts.ChannelID != "" {
		b.WriteString("&channel=")
		b.WriteString(url.QueryEscape(opts.ChannelID))
	}
	if opts.RegionCode != "" {
		b.WriteString("&region=")
		b.WriteString(url.QueryEscape(opts.RegionCode))
	}
	return b.String()
}

// normalizeAssetURL prefixes protocol-relative thumbnail/avatar URLs
// ("//host/path") with https:.
func normalizeAssetURL(u string) string {
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}
