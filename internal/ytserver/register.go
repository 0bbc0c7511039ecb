// Package ytserver exposes the search engine as MCP tools.
package ytserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Hard cap on tool result limits; the default comes from engine.Cfg.
const maxToolLimit = 50

// RegisterTools registers the YouTube search tools on the given MCP server:
// youtube_search, youtube_channels, youtube_playlists.
func RegisterTools(server *mcp.Server) {
	registerSearch(server)
	registerChannels(server)
	registerPlaylists(server)
}
