package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrapInitialData embeds a JSON blob in a minimal results page the way
// YouTube ships it.
func wrapInitialData(blob string) string {
	return `<!DOCTYPE html><html><head><script nonce="x">var ytInitialData = ` +
		blob + `;</script></head><body><div id="app"></div></body></html>`
}

const sampleInitialData = `{
  "contents": {
    "twoColumnSearchResultsRenderer": {
      "primaryContents": {
        "sectionListRenderer": {
          "contents": [
            {
              "itemSectionRenderer": {
                "contents": [
                  {
                    "videoRenderer": {
                      "videoId": "abc123",
                      "title": {"simpleText": "Intro"},
                      "ownerText": {"runs": [{"text": "Go "}, {"text": "Channel"}]},
                      "viewCountText": {"simpleText": "2.5M views"},
                      "lengthText": {"simpleText": "10:30"},
                      "thumbnail": {"thumbnails": [
                        {"url": "https://i.ytimg.com/vi/abc123/default.jpg"},
                        {"url": "https://i.ytimg.com/vi/abc123/hqdefault.jpg"}
                      ]}
                    }
                  },
                  {
                    "channelRenderer": {
                      "channelId": "UCxyz",
                      "title": {"simpleText": "Go Channel"},
                      "descriptionSnippet": {"runs": [{"text": "Weekly "}, {"text": "Go talks"}]},
                      "subscriberCountText": {"simpleText": "120K subscribers"},
                      "videoCountText": {"runs": [{"text": "200"}, {"text": " videos"}]},
                      "thumbnail": {"thumbnails": [{"url": "//yt3.ggpht.com/avatar.jpg"}]}
                    }
                  },
                  {
                    "playlistRenderer": {
                      "playlistId": "PL42",
                      "title": "Go Talks",
                      "ownerText": {"simpleText": "Gopher Academy"},
                      "videoCountText": {"simpleText": "123 videos"},
                      "thumbnails": [
                        {"thumbnails": [
                          {"url": "https://i.ytimg.com/pl/small.jpg"},
                          {"url": "https://i.ytimg.com/pl/large.jpg"}
                        ]}
                      ]
                    }
                  },
                  {
                    "videoRenderer": {"videoId": "notitle1"}
                  },
                  {
                    "shelfRenderer": {"title": {"simpleText": "People also watched"}}
                  }
                ]
              }
            }
          ]
        }
      }
    }
  }
}`

func TestExtractStructuredVideo(t *testing.T) {
	page := wrapInitialData(sampleInitialData)

	results := ExtractStructured(page, KindVideo)
	require.Len(t, results, 1)

	v, ok := results[0].(VideoResult)
	require.True(t, ok, "expected VideoResult, got %T", results[0])
	assert.Equal(t, "Intro", v.Title)
	assert.True(t, strings.HasSuffix(v.URL, "watch?v=abc123"), "url = %q", v.URL)
	assert.Equal(t, "Go Channel", v.ChannelTitle)
	require.NotNil(t, v.ViewCount)
	assert.Equal(t, int64(2500000), *v.ViewCount)
	assert.Equal(t, "10:30", v.Duration)
	require.NotNil(t, v.DurationSeconds)
	assert.Equal(t, int64(630), *v.DurationSeconds)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", v.ThumbnailURL,
		"thumbnail must be the last (highest-resolution) entry")
}

func TestExtractStructuredChannel(t *testing.T) {
	page := wrapInitialData(sampleInitialData)

	results := ExtractStructured(page, KindChannel)
	require.Len(t, results, 1)

	c, ok := results[0].(ChannelResult)
	require.True(t, ok, "expected ChannelResult, got %T", results[0])
	assert.Equal(t, "Go Channel", c.Name)
	assert.Equal(t, "https://www.youtube.com/channel/UCxyz", c.URL)
	assert.Equal(t, "Weekly Go talks", c.Description, "run texts concatenate in order")
	require.NotNil(t, c.SubscriberCount)
	assert.Equal(t, int64(120000), *c.SubscriberCount)
	require.NotNil(t, c.VideoCount)
	assert.Equal(t, int64(200), *c.VideoCount)
}

func TestExtractStructuredPlaylist(t *testing.T) {
	page := wrapInitialData(sampleInitialData)

	results := ExtractStructured(page, KindPlaylist)
	require.Len(t, results, 1)

	p, ok := results[0].(PlaylistResult)
	require.True(t, ok, "expected PlaylistResult, got %T", results[0])
	assert.Equal(t, "Go Talks", p.Title, "bare-string text node")
	assert.Equal(t, "https://www.youtube.com/playlist?list=PL42", p.URL)
	assert.Equal(t, "Gopher Academy", p.ChannelTitle)
	require.NotNil(t, p.VideoCount)
	assert.Equal(t, int64(123), *p.VideoCount)
	assert.Equal(t, "https://i.ytimg.com/pl/large.jpg", p.ThumbnailURL)
}

func TestExtractStructuredAllKinds(t *testing.T) {
	page := wrapInitialData(sampleInitialData)

	results := ExtractStructured(page, KindAll)
	require.Len(t, results, 3, "one record per well-formed renderer, in page order")
	assert.Equal(t, KindVideo, results[0].Kind())
	assert.Equal(t, KindChannel, results[1].Kind())
	assert.Equal(t, KindPlaylist, results[2].Kind())
}

func TestExtractStructuredEmptyCases(t *testing.T) {
	tests := []struct {
		name string
		page string
	}{
		{name: "no blob at all", page: "<html><body>nothing embedded</body></html>"},
		{name: "malformed json", page: wrapInitialData(`{"contents": oops}`)},
		{name: "unexpected node shape", page: wrapInitialData(`{"contents": {"twoColumnSearchResultsRenderer": 7}}`)},
		{name: "known path missing", page: wrapInitialData(`{"responseContext": {}}`)},
		{name: "empty page", page: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractStructured(tt.page, KindAll)
			if len(got) != 0 {
				t.Errorf("expected no structured results, got %d", len(got))
			}
		})
	}
}

func TestExtractStructuredDropsMissingIdentity(t *testing.T) {
	// A renderer without its id or without a title must be dropped silently.
	blob := `{"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{"sectionListRenderer":{"contents":[
		{"itemSectionRenderer":{"contents":[
			{"videoRenderer":{"title":{"simpleText":"No id"}}},
			{"videoRenderer":{"videoId":"id-only"}},
			{"channelRenderer":{"channelId":"UCempty","title":{"simpleText":""}}},
			{"videoRenderer":{"videoId":"ok1","title":{"simpleText":"Keeper"}}}
		]}}
	]}}}}}`
	results := ExtractStructured(wrapInitialData(blob), KindAll)
	require.Len(t, results, 1)
	assert.Equal(t, "Keeper", results[0].(VideoResult).Title)
}
