package format

import (
	"strings"

	"github.com/anatolykoptev/yts/internal/engine"
)

// Simple renders one plain-text line per result.
type Simple struct{}

func (Simple) Format(results []engine.Result) string {
	if len(results) == 0 {
		return noResults
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		switch v := r.(type) {
		case engine.VideoResult:
			lines = append(lines, v.Title+" - "+v.ChannelTitle)
		case engine.ChannelResult:
			lines = append(lines, v.Name)
		case engine.PlaylistResult:
			lines = append(lines, v.Title+" - "+v.ChannelTitle)
		}
	}
	return strings.Join(lines, "\n")
}
