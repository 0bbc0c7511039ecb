package format

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/anatolykoptev/yts/internal/engine"
)

// CSV renders results grouped by kind, one labelled CSV block per kind.
// Columns come from each record's flattened field list, so all three result
// shapes share one code path.
type CSV struct{}

func (CSV) Format(results []engine.Result) string {
	if len(results) == 0 {
		return ""
	}

	out := engine.GroupResults("", results)
	var b strings.Builder
	writeCSVBlock(&b, "Videos:", toResults(out.Videos))
	writeCSVBlock(&b, "Channels:", toResults(out.Channels))
	writeCSVBlock(&b, "Playlists:", toResults(out.Playlists))
	return b.String()
}

func writeCSVBlock(b *strings.Builder, label string, results []engine.Result) {
	if len(results) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(label + "\n")

	w := csv.NewWriter(b)
	header := make([]string, 0, len(results[0].Fields()))
	for _, f := range results[0].Fields() {
		header = append(header, f.Name)
	}
	_ = w.Write(header)

	for _, r := range results {
		row := make([]string, 0, len(header))
		for _, f := range r.Fields() {
			row = append(row, fieldString(f.Value))
		}
		_ = w.Write(row)
	}
	w.Flush()
}

func fieldString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func toResults[T engine.Result](rs []T) []engine.Result {
	out := make([]engine.Result, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}
