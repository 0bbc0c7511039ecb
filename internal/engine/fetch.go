package engine

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
)

// User-Agent strings used across HTTP clients.
const (
	UserAgentChrome = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

// Search pages are a few hundred KB; anything past this is not a results page.
const maxPageBytes = 4 * 1024 * 1024

// FetchPage performs one GET for the given URL and returns the page text.
// Network failures and non-200 statuses come back as *TransportError; there
// is no internal retry — one search call means one outbound request.
func FetchPage(ctx context.Context, pageURL string) (string, error) {
	if cfg.BrowserClient != nil {
		return fetchPageStealth(pageURL)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{StatusCode: resp.StatusCode}
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}
	return string(body), nil
}

// fetchPageStealth fetches through the Chrome-fingerprint client.
func fetchPageStealth(pageURL string) (string, error) {
	headers := ChromeHeaders()
	headers["user-agent"] = cfg.UserAgent

	data, status, err := cfg.BrowserClient.Do(http.MethodGet, pageURL, headers, nil)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	if status != http.StatusOK {
		return "", &TransportError{StatusCode: status}
	}
	return string(data), nil
}

// readResponseBody reads the response body, handling gzip decompression if needed.
func readResponseBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return io.ReadAll(io.LimitReader(r, maxPageBytes))
}
