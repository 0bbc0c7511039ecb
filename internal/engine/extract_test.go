package engine

import "testing"

// pageWith glues an optional ytInitialData blob and optional tag markup
// into one page, mimicking how both live side by side in a real response.
func pageWith(blob, tags string) string {
	head := ""
	if blob != "" {
		head = `<script>var ytInitialData = ` + blob + `;</script>`
	}
	return "<!DOCTYPE html><html><head>" + head + "</head><body>" + tags + "</body></html>"
}

const structuredOneVideo = `{"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{"sectionListRenderer":{"contents":[{"itemSectionRenderer":{"contents":[{"videoRenderer":{"videoId":"json1","title":{"simpleText":"From JSON"}}}]}}]}}}}}`

const structuredThreeVideos = `{"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{"sectionListRenderer":{"contents":[{"itemSectionRenderer":{"contents":[
	{"videoRenderer":{"videoId":"v1","title":{"simpleText":"First"}}},
	{"videoRenderer":{"videoId":"v2","title":{"simpleText":"Second"}}},
	{"videoRenderer":{"videoId":"v3","title":{"simpleText":"Third"}}}
]}}]}}}}}`

const tagOneVideo = `<div class="ytd-video-renderer">
	<h3><a href="/watch?v=tag1" title="From Tags">From Tags</a></h3>
</div>`

func TestExtractResultsPrefersStructured(t *testing.T) {
	// Both paths would yield results; the structured one must win.
	page := pageWith(structuredOneVideo, tagOneVideo)

	results := ExtractResults(page, KindVideo, 10)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if got := results[0].(VideoResult).Title; got != "From JSON" {
		t.Errorf("structured result must win over fallback, got %q", got)
	}
}

func TestExtractResultsFallsBackWhenBlobMissing(t *testing.T) {
	page := pageWith("", tagOneVideo)

	results := ExtractResults(page, KindVideo, 10)
	if len(results) != 1 {
		t.Fatalf("expected 1 fallback result, got %d", len(results))
	}
	if got := results[0].(VideoResult).Title; got != "From Tags" {
		t.Errorf("expected fallback result, got %q", got)
	}
}

func TestExtractResultsFallsBackOnMalformedBlob(t *testing.T) {
	page := pageWith(`{"contents": not json}`, tagOneVideo)

	results := ExtractResults(page, KindVideo, 10)
	if len(results) != 1 || results[0].(VideoResult).Title != "From Tags" {
		t.Fatalf("malformed blob must trigger the tag fallback, got %v", results)
	}
}

func TestExtractResultsTruncation(t *testing.T) {
	page := pageWith(structuredThreeVideos, "")

	tests := []struct {
		name       string
		maxResults int
		wantLen    int
	}{
		{name: "fewer available than requested", maxResults: 10, wantLen: 3},
		{name: "exact", maxResults: 3, wantLen: 3},
		{name: "truncated", maxResults: 2, wantLen: 2},
		{name: "zero max", maxResults: 0, wantLen: 0},
		{name: "negative max clamps to zero", maxResults: -1, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := ExtractResults(page, KindVideo, tt.maxResults)
			if len(results) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(results), tt.wantLen)
			}
			// Relative order is preserved.
			wantTitles := []string{"First", "Second", "Third"}
			for i, r := range results {
				if got := r.(VideoResult).Title; got != wantTitles[i] {
					t.Errorf("results[%d] = %q, want %q", i, got, wantTitles[i])
				}
			}
		})
	}
}

func TestExtractResultsNoResultsAnywhere(t *testing.T) {
	results := ExtractResults("<html><body>empty page</body></html>", KindAll, 10)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
