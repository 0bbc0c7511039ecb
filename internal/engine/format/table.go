package format

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
	"github.com/anatolykoptev/yts/internal/engine"
)

const maxTableDescription = 100

// Table renders a numbered, human-readable listing.
type Table struct{}

func (Table) Format(results []engine.Result) string {
	if len(results) == 0 {
		return noResults
	}

	var b strings.Builder
	for i, r := range results {
		writeTableEntry(&b, i+1, r, func(url string) string {
			return "URL: " + url
		})
		if i < len(results)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// writeTableEntry writes one numbered entry; urlLine lets the yt-dlp table
// variant swap the URL line for a download command.
func writeTableEntry(b *strings.Builder, n int, r engine.Result, urlLine func(url string) string) {
	switch v := r.(type) {
	case engine.VideoResult:
		fmt.Fprintf(b, "%d. %s\n", n, v.Title)
		fmt.Fprintf(b, "   Channel: %s\n", v.ChannelTitle)
		if v.Duration != "" {
			fmt.Fprintf(b, "   Duration: %s\n", v.Duration)
		}
		if v.ViewCount != nil {
			fmt.Fprintf(b, "   Views: %s\n", formatCount(*v.ViewCount))
		}
		fmt.Fprintf(b, "   %s\n", urlLine(v.URL))

	case engine.ChannelResult:
		fmt.Fprintf(b, "%d. %s\n", n, v.Name)
		if v.Description != "" {
			fmt.Fprintf(b, "   Description: %s\n", strutil.TruncateWith(v.Description, maxTableDescription, "..."))
		}
		if v.SubscriberCount != nil {
			fmt.Fprintf(b, "   Subscribers: %s\n", formatCount(*v.SubscriberCount))
		}
		fmt.Fprintf(b, "   URL: %s\n", v.URL)

	case engine.PlaylistResult:
		fmt.Fprintf(b, "%d. %s\n", n, v.Title)
		fmt.Fprintf(b, "   Channel: %s\n", v.ChannelTitle)
		if v.VideoCount != nil {
			fmt.Fprintf(b, "   Videos: %d\n", *v.VideoCount)
		}
		fmt.Fprintf(b, "   %s\n", urlLine(v.URL))
	}
}
