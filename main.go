// yts — YouTube search without the API.
//
// Scrapes the public results page and extracts videos, channels, and
// playlists from the embedded ytInitialData blob, falling back to tag
// scraping when the blob is missing or unparsable. Runs as a CLI or as an
// MCP server (yts mcp).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/yts/internal/engine"
	"github.com/anatolykoptev/yts/internal/engine/format"
	"github.com/anatolykoptev/yts/internal/ytserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "search":
		runSearch(cmd, args, "")
	case "videos":
		runSearch(cmd, args, engine.KindVideo)
	case "channels":
		runSearch(cmd, args, engine.KindChannel)
	case "playlists":
		runSearch(cmd, args, engine.KindPlaylist)
	case "quota":
		fmt.Println("yts does not use the YouTube API, so there are no quota limits.")
	case "mcp":
		runMCP()
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `yts — YouTube search without API

Usage:
  yts search <query>     search (use -type to pick video/channel/playlist/all)
  yts videos <query>     search videos only
  yts channels <query>   search channels only
  yts playlists <query>  search playlists only
  yts quota              explain why there is no quota
  yts mcp                run as an MCP server

Flags (after the command):
  -max-results N   maximum results (default 20)
  -type T          search only: video (default), channel, playlist, all
  -order O         relevance (default), date, viewCount, rating
  -duration D      short, medium, long
  -region CC       region code (e.g. US)
  -channel-id ID   restrict to one channel
  -format F        table (default), json, csv, simple, ytdlp
  -output FILE     write results to a file
  -ytdlpa          render yt-dlp audio download commands
  -ytdlpv          render yt-dlp video download commands
  -stealth         fetch with a Chrome TLS fingerprint
  -debug           verbose logging
`)
}

// runSearch handles the search/videos/channels/playlists commands.
// fixedKind pins the result kind; empty means the -type flag decides.
func runSearch(name string, args []string, fixedKind engine.Kind) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	maxResults := fs.Int("max-results", 0, "maximum number of results")
	typeName := fs.String("type", "", "result type: video, channel, playlist, all")
	order := fs.String("order", "relevance", "sort order: relevance, date, viewCount, rating")
	duration := fs.String("duration", "", "video duration filter: short, medium, long")
	region := fs.String("region", "", "region code (e.g. US)")
	channelID := fs.String("channel-id", "", "search within a specific channel")
	formatName := fs.String("format", "table", "output format: table, json, csv, simple, ytdlp")
	output := fs.String("output", "", "output file")
	ytdlpa := fs.Bool("ytdlpa", false, "generate yt-dlp audio download commands")
	ytdlpv := fs.Bool("ytdlpv", false, "generate yt-dlp video download commands")
	stealth := fs.Bool("stealth", false, "fetch with a Chrome TLS fingerprint")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(args)

	initEngine(*debug, *stealth)

	kind := fixedKind
	if kind == "" {
		k, err := engine.ParseKind(*typeName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		kind = k
	}

	// yt-dlp flags override -format, like the original --ytdlpa/--ytdlpv.
	if *ytdlpa {
		*formatName = "ytdlpa"
	} else if *ytdlpv {
		*formatName = "ytdlpv"
	}

	// Resolve the formatter before any network work.
	formatter, err := format.Get(*formatName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	results, err := engine.Search(context.Background(), engine.SearchOptions{
		Query:      strings.Join(fs.Args(), " "),
		Kind:       kind,
		MaxResults: *maxResults,
		Order:      *order,
		Duration:   *duration,
		RegionCode: *region,
		ChannelID:  *channelID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "search error: %v\n", err)
		os.Exit(1)
	}

	text := formatter.Format(results)
	if *output != "" {
		if err := os.WriteFile(*output, []byte(text+"\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Results saved to %s\n", *output)
		return
	}
	fmt.Println(text)
}

func runMCP() {
	initEngine(env.Str("YTS_DEBUG", "") != "", env.Str("YTS_STEALTH", "") != "")

	slog.Info("starting yts", slog.String("port", mcpPort))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "yts",
		Version: version,
	}, nil)

	ytserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 3))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "yts",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 60 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine(debug, stealth bool) {
	if debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	c := engine.Config{
		MaxResults:   env.Int("YTS_MAX_RESULTS", 20),
		FetchTimeout: env.Duration("YTS_TIMEOUT", 30*time.Second),
		UserAgent:    env.Str("YTS_USER_AGENT", engine.UserAgentChrome),
		HTTPClient: &http.Client{
			Timeout: env.Duration("YTS_TIMEOUT", 30*time.Second),
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if stealth {
		bc, err := engine.NewBrowserClient(int(c.FetchTimeout / time.Second))
		if err != nil {
			slog.Warn("stealth client init failed, using plain HTTP", slog.Any("error", err))
		} else {
			c.BrowserClient = bc
			slog.Debug("stealth browser client initialized")
		}
	}

	engine.Init(c)
}
