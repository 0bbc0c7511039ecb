package format

import (
	"strings"

	"github.com/anatolykoptev/yts/internal/engine"
)

// yt-dlp command variants. Only videos and playlists are downloadable;
// channel results are listed as bare URLs in the table variant and skipped
// in the command list.

// YtdlpCommands renders one yt-dlp invocation per downloadable result.
type YtdlpCommands struct {
	Audio bool
}

func (f YtdlpCommands) Format(results []engine.Result) string {
	if len(results) == 0 {
		return noResults
	}

	var lines []string
	for _, r := range results {
		switch v := r.(type) {
		case engine.VideoResult:
			lines = append(lines, ytdlpCommand(v.URL, f.Audio))
		case engine.PlaylistResult:
			lines = append(lines, ytdlpCommand(v.URL, f.Audio))
		}
	}
	return strings.Join(lines, "\n")
}

// YtdlpTable renders the numbered table with a yt-dlp command in place of
// the URL line.
type YtdlpTable struct {
	Audio bool
}

func (f YtdlpTable) Format(results []engine.Result) string {
	if len(results) == 0 {
		return noResults
	}

	var b strings.Builder
	for i, r := range results {
		writeTableEntry(&b, i+1, r, func(url string) string {
			return ytdlpCommand(url, f.Audio)
		})
		if i < len(results)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func ytdlpCommand(url string, audio bool) string {
	if audio {
		return "yt-dlp -x --audio-format mp3 '" + url + "'"
	}
	return "yt-dlp '" + url + "'"
}
