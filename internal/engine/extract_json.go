package engine

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Structured extraction: YouTube ships the search results twice — rendered
// tags and an inline JSON blob assigned to ytInitialData. The blob is the
// reliable source, so it is tried first. Everything here degrades to "no
// results" on structural drift; the tag fallback handles the rest.

// Lazy match from the opening brace to the first "};" after the marker.
var ytInitialDataRE = regexp.MustCompile(`(?s)var ytInitialData = ({.+?});`)

// findInitialData locates the ytInitialData blob. It walks the script
// elements so the regex runs on a few KB of script text instead of the
// whole multi-megabyte page, and falls back to a whole-page scan when the
// tree parse yields nothing.
func findInitialData(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err == nil {
		if blob := findInitialDataNode(doc); blob != "" {
			return blob
		}
	}
	if m := ytInitialDataRE.FindStringSubmatch(page); m != nil {
		return m[1]
	}
	return ""
}

func findInitialDataNode(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "script" {
		if c := n.FirstChild; c != nil && c.Type == html.TextNode {
			if m := ytInitialDataRE.FindStringSubmatch(c.Data); m != nil {
				return m[1]
			}
		}
		return ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if blob := findInitialDataNode(c); blob != "" {
			return blob
		}
	}
	return ""
}

// ExtractStructured parses the embedded ytInitialData JSON and returns the
// results matching kind. A missing blob, malformed JSON or unexpected node
// shape yields an empty list — that is the fallback trigger, not an error.
func ExtractStructured(page string, kind Kind) []Result {
	blob := findInitialData(page)
	if blob == "" {
		return nil
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &root); err != nil {
		slog.Debug("ytInitialData unparsable", slog.Any("error", err))
		return nil
	}

	// contents → twoColumnSearchResultsRenderer → primaryContents →
	// sectionListRenderer → contents[] → itemSectionRenderer → contents[]
	sections := childArray(childObject(childObject(childObject(
		childObject(root, "contents"),
		"twoColumnSearchResultsRenderer"),
		"primaryContents"),
		"sectionListRenderer"),
		"contents")

	var results []Result
	for _, section := range sections {
		items := childArray(childObject(asObject(section), "itemSectionRenderer"), "contents")
		for _, item := range items {
			if r, ok := parseRendererItem(asObject(item), kind); ok {
				results = append(results, r)
			}
		}
	}
	return results
}

// parseRendererItem dispatches on which renderer key marks the item.
// Items of another kind, unknown items and items without the required
// identity fields report ok=false.
func parseRendererItem(item map[string]json.RawMessage, kind Kind) (Result, bool) {
	if raw, ok := item["videoRenderer"]; ok && (kind == KindVideo || kind == KindAll) {
		return parseVideoRenderer(raw)
	}
	if raw, ok := item["channelRenderer"]; ok && (kind == KindChannel || kind == KindAll) {
		return parseChannelRenderer(raw)
	}
	if raw, ok := item["playlistRenderer"]; ok && (kind == KindPlaylist || kind == KindAll) {
		return parsePlaylistRenderer(raw)
	}
	return nil, false
}

func parseVideoRenderer(raw json.RawMessage) (Result, bool) {
	var v struct {
		VideoID       string       `json:"videoId"`
		Title         ytText       `json:"title"`
		OwnerText     ytText       `json:"ownerText"`
		LengthText    ytText       `json:"lengthText"`
		ViewCountText ytText       `json:"viewCountText"`
		Thumbnail     ytThumbnails `json:"thumbnail"`
	}
	if err := json.Unmarshal(raw, &v); err != nil || v.VideoID == "" || v.Title == "" {
		return nil, false
	}
	duration := string(v.LengthText)
	return VideoResult{
		Title:           string(v.Title),
		URL:             WatchURL(v.VideoID),
		ChannelTitle:    string(v.OwnerText),
		ViewCount:       ParseCompactCount(string(v.ViewCountText)),
		Duration:        duration,
		DurationSeconds: ParseDurationSeconds(duration),
		ThumbnailURL:    v.Thumbnail.best(),
	}, true
}

func parseChannelRenderer(raw json.RawMessage) (Result, bool) {
	var c struct {
		ChannelID           string       `json:"channelId"`
		Title               ytText       `json:"title"`
		DescriptionSnippet  ytText       `json:"descriptionSnippet"`
		SubscriberCountText ytText       `json:"subscriberCountText"`
		VideoCountText      ytText       `json:"videoCountText"`
		Thumbnail           ytThumbnails `json:"thumbnail"`
	}
	if err := json.Unmarshal(raw, &c); err != nil || c.ChannelID == "" || c.Title == "" {
		return nil, false
	}
	return ChannelResult{
		Name:            string(c.Title),
		URL:             ChannelURL(c.ChannelID),
		SubscriberCount: ParseCompactCount(string(c.SubscriberCountText)),
		VideoCount:      ParseCountFromPhrase(string(c.VideoCountText)),
		Description:     string(c.DescriptionSnippet),
		AvatarURL:       c.Thumbnail.best(),
	}, true
}

func parsePlaylistRenderer(raw json.RawMessage) (Result, bool) {
	var p struct {
		PlaylistID     string         `json:"playlistId"`
		Title          ytText         `json:"title"`
		OwnerText      ytText         `json:"ownerText"`
		VideoCountText ytText         `json:"videoCountText"`
		Thumbnails     []ytThumbnails `json:"thumbnails"`
	}
	if err := json.Unmarshal(raw, &p); err != nil || p.PlaylistID == "" || p.Title == "" {
		return nil, false
	}
	var thumb string
	if len(p.Thumbnails) > 0 {
		thumb = p.Thumbnails[0].best()
	}
	return PlaylistResult{
		Title:        string(p.Title),
		URL:          PlaylistURL(p.PlaylistID),
		ChannelTitle: string(p.OwnerText),
		VideoCount:   ParseCountFromPhrase(string(p.VideoCountText)),
		ThumbnailURL: thumb,
	}, true
}

// --- loose-shape helpers ---

// ytText is a text node that may arrive as a bare string, {"simpleText": s}
// or {"runs": [{"text": s}, ...]}. Run texts concatenate in order; any other
// shape decodes to "".
type ytText string

func (t *ytText) UnmarshalJSON(data []byte) error {
	var s string
	if json.Unmarshal(data, &s) == nil {
		*t = ytText(s)
		return nil
	}
	var obj struct {
		SimpleText string `json:"simpleText"`
		Runs       []struct {
			Text string `json:"text"`
		} `json:"runs"`
	}
	if json.Unmarshal(data, &obj) != nil {
		*t = ""
		return nil
	}
	if obj.SimpleText != "" {
		*t = ytText(obj.SimpleText)
		return nil
	}
	var b strings.Builder
	for _, run := range obj.Runs {
		b.WriteString(run.Text)
	}
	*t = ytText(b.String())
	return nil
}

// ytThumbnails lists thumbnail variants in ascending resolution.
type ytThumbnails struct {
	Thumbnails []struct {
		URL string `json:"url"`
	} `json:"thumbnails"`
}

// best returns the highest-resolution (last) thumbnail URL.
func (t ytThumbnails) best() string {
	if len(t.Thumbnails) == 0 {
		return ""
	}
	return t.Thumbnails[len(t.Thumbnails)-1].URL
}

// childObject navigates one mapping key down, tolerating absence and
// non-object nodes.
func childObject(obj map[string]json.RawMessage, key string) map[string]json.RawMessage {
	if obj == nil {
		return nil
	}
	return asObject(obj[key])
}

func asObject(raw json.RawMessage) map[string]json.RawMessage {
	if raw == nil {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}

func childArray(obj map[string]json.RawMessage, key string) []json.RawMessage {
	if obj == nil {
		return nil
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(obj[key], &arr); err != nil {
		return nil
	}
	return arr
}
