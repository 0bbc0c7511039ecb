package engine

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fallback tag extraction: when the ytInitialData blob is missing or
// unparsable, scrape the rendered tag tree instead. Selector lists are
// ordered from the current markup to older layouts; a container that yields
// no usable record is skipped, never fatal.

var (
	watchHrefRE = regexp.MustCompile(`watch\?v=([^&]+)`)
	listHrefRE  = regexp.MustCompile(`list=([^&]+)`)
)

// ExtractFromTags parses the page as HTML and scrapes results matching kind.
// A page that fails to parse or matches no containers yields an empty list.
func ExtractFromTags(page string, kind Kind) []Result {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		slog.Debug("fallback html parse failed", slog.Any("error", err))
		return nil
	}

	var results []Result
	if kind == KindVideo || kind == KindAll {
		doc.Find("div[data-context-item-id], .ytd-video-renderer").Each(func(_ int, s *goquery.Selection) {
			if r, ok := parseVideoContainer(s); ok {
				results = append(results, r)
			}
		})
	}
	if kind == KindChannel || kind == KindAll {
		doc.Find(".ytd-channel-renderer").Each(func(_ int, s *goquery.Selection) {
			if r, ok := parseChannelContainer(s); ok {
				results = append(results, r)
			}
		})
	}
	if kind == KindPlaylist || kind == KindAll {
		doc.Find(".ytd-playlist-renderer").Each(func(_ int, s *goquery.Selection) {
			if r, ok := parsePlaylistContainer(s); ok {
				results = append(results, r)
			}
		})
	}
	return results
}

func parseVideoContainer(s *goquery.Selection) (Result, bool) {
	videoID, ok := s.Attr("data-context-item-id")
	if !ok || videoID == "" {
		href, _ := s.Find(`a[href*="watch?v="]`).First().Attr("href")
		if m := watchHrefRE.FindStringSubmatch(href); len(m) > 1 {
			videoID = m[1]
		}
	}
	if videoID == "" {
		return nil, false
	}

	title := titleOrText(s.Find("h3 a, .video-title, #video-title").First())
	if title == "" {
		return nil, false
	}

	duration := strings.TrimSpace(s.Find(".ytd-thumbnail-overlay-time-status-renderer, .duration").First().Text())
	return VideoResult{
		Title:           title,
		URL:             WatchURL(videoID),
		ChannelTitle:    strings.TrimSpace(s.Find(".ytd-channel-name a, .channel-name").First().Text()),
		ViewCount:       ParseCompactCount(s.Find(".view-count, .ytd-video-meta-block span").First().Text()),
		Duration:        duration,
		DurationSeconds: ParseDurationSeconds(duration),
		ThumbnailURL:    imageURL(s),
	}, true
}

func parseChannelContainer(s *goquery.Selection) (Result, bool) {
	href, ok := s.Find(`a[href*="/channel/"], a[href*="/c/"], a[href*="/@"]`).First().Attr("href")
	if !ok || href == "" {
		return nil, false
	}

	name := strings.TrimSpace(s.Find(".ytd-channel-name, .channel-title, h3 a").First().Text())
	if name == "" {
		return nil, false
	}

	return ChannelResult{
		Name:            name,
		URL:             absoluteURL(href),
		SubscriberCount: ParseCompactCount(s.Find("#subscribers, .subscriber-count").First().Text()),
		VideoCount:      ParseCountFromPhrase(s.Find("#video-count, .video-count").First().Text()),
		Description:     strings.TrimSpace(s.Find(".channel-description, .description-snippet").First().Text()),
		AvatarURL:       imageURL(s),
	}, true
}

func parsePlaylistContainer(s *goquery.Selection) (Result, bool) {
	href, _ := s.Find(`a[href*="list="]`).First().Attr("href")
	m := listHrefRE.FindStringSubmatch(href)
	if len(m) < 2 {
		return nil, false
	}

	title := titleOrText(s.Find(".playlist-title, h3 a, #video-title").First())
	if title == "" {
		return nil, false
	}

	return PlaylistResult{
		Title:        title,
		URL:          PlaylistURL(m[1]),
		ChannelTitle: strings.TrimSpace(s.Find(".ytd-channel-name a, .playlist-owner").First().Text()),
		VideoCount:   ParseCountFromPhrase(s.Find(".ytd-thumbnail-overlay-side-panel-renderer, .video-count").First().Text()),
		ThumbnailURL: imageURL(s),
	}, true
}

// titleOrText prefers an element's title attribute over its visible text.
func titleOrText(s *goquery.Selection) string {
	if title, ok := s.Attr("title"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	return strings.TrimSpace(s.Text())
}

// imageURL reads the container's first img, preferring src over the
// lazy-loading data-src, and fixes protocol-relative URLs.
func imageURL(s *goquery.Selection) string {
	img := s.Find("img").First()
	u, ok := img.Attr("src")
	if !ok || u == "" {
		u, _ = img.Attr("data-src")
	}
	return normalizeAssetURL(u)
}

// absoluteURL resolves a scraped href against the site base.
func absoluteURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return ytBaseURL + href
}
