// Package format renders search result lists into output formats.
// Formatters are pure functions over result lists; resolving one happens
// before any network work so a bad -format flag fails fast.
package format

import (
	"fmt"

	"github.com/anatolykoptev/yts/internal/engine"
)

// Formatter renders a result list into a format-specific string.
type Formatter interface {
	Format(results []engine.Result) string
}

// UnknownFormatError reports a format name with no registered renderer.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q", e.Name)
}

// Get resolves a formatter by name.
func Get(name string) (Formatter, error) {
	switch name {
	case "table":
		return &Table{}, nil
	case "json":
		return &JSON{}, nil
	case "csv":
		return &CSV{}, nil
	case "simple":
		return &Simple{}, nil
	case "ytdlp":
		return &YtdlpCommands{}, nil
	case "ytdlpa":
		return &YtdlpTable{Audio: true}, nil
	case "ytdlpv":
		return &YtdlpTable{}, nil
	}
	return nil, &UnknownFormatError{Name: name}
}

const noResults = "No results found."

// formatCount compacts large numbers with K/M/B suffixes for display.
func formatCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1e9)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1e3)
	}
	return fmt.Sprintf("%d", n)
}
