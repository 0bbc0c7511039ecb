package engine

import "log/slog"

// ExtractResults converts a search-results page into typed records: the
// structured extractor runs first, the tag fallback only when it found
// nothing. The chosen list is truncated to maxResults; an empty list is a
// legitimate outcome (no matches, or the page layout drifted).
func ExtractResults(page string, kind Kind, maxResults int) []Result {
	results := ExtractStructured(page, kind)
	if len(results) > 0 {
		metrics.StructuredHits.Add(1)
	} else {
		metrics.FallbackAttempts.Add(1)
		results = ExtractFromTags(page, kind)
		slog.Debug("structured extraction empty, used tag fallback",
			slog.Int("fallback_results", len(results)))
	}
	if maxResults < 0 {
		maxResults = 0
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
