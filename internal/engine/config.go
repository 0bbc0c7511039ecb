package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	MaxResults    int           // default result cap when a caller passes none
	FetchTimeout  time.Duration // deadline for one page fetch
	UserAgent     string        // sent with every page request
	HTTPClient    *http.Client
	BrowserClient *BrowserClient // nil = plain HTTP transport
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration, filling in
// defaults for zero fields.
func Init(c Config) {
	if c.MaxResults <= 0 {
		c.MaxResults = 20
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 30 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = UserAgentChrome
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.FetchTimeout}
	}
	cfg = c
	Cfg = &cfg
}
