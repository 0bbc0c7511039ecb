package engine

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSearchRejectsEmptyQuery(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()
	Init(Config{HTTPClient: srv.Client()})

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := Search(context.Background(), SearchOptions{Query: query})
		if !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Search(%q) err = %v, want ErrEmptyQuery", query, err)
		}
	}
	if requested {
		t.Error("empty query must be rejected before any network call")
	}
}

func TestFetchPageOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "Mozilla") {
			t.Errorf("unexpected user agent %q", ua)
		}
		_, _ = w.Write([]byte("<html>page text</html>"))
	}))
	defer srv.Close()
	Init(Config{HTTPClient: srv.Client()})

	page, err := FetchPage(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchPage() error: %v", err)
	}
	if page != "<html>page text</html>" {
		t.Errorf("page = %q", page)
	}
}

func TestFetchPageStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()
	Init(Config{HTTPClient: srv.Client()})

	_, err := FetchPage(context.Background(), srv.URL)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
	if te.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", te.StatusCode, http.StatusTooManyRequests)
	}
}

func TestFetchPageNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // connection refused from here on
	Init(Config{})

	_, err := FetchPage(context.Background(), url)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
	if te.StatusCode != 0 {
		t.Errorf("status = %d, want 0 for network failure", te.StatusCode)
	}
}

func TestSearchEndToEnd(t *testing.T) {
	page := wrapInitialData(sampleInitialData)
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	// Point the client at the test server regardless of the request host.
	Init(Config{HTTPClient: &http.Client{Transport: rewriteTransport{srv: srv}}})

	results, err := Search(context.Background(), SearchOptions{Query: "golang tutorial", Kind: KindVideo, MaxResults: 5})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 video, got %d", len(results))
	}
	v := results[0].(VideoResult)
	if !strings.HasSuffix(v.URL, "watch?v=abc123") {
		t.Errorf("url = %q", v.URL)
	}
	if v.ViewCount == nil || *v.ViewCount != 2500000 {
		t.Errorf("view count = %v, want 2500000", v.ViewCount)
	}
	if v.DurationSeconds == nil || *v.DurationSeconds != 630 {
		t.Errorf("duration seconds = %v, want 630", v.DurationSeconds)
	}
	if !strings.Contains(gotPath, "search_query=golang+tutorial") {
		t.Errorf("query not encoded in request path: %q", gotPath)
	}
	if !strings.Contains(gotPath, "sp=EgIQAQ%253D%253D") {
		t.Errorf("video filter token missing from request path: %q", gotPath)
	}
}

// rewriteTransport redirects every request to the test server.
type rewriteTransport struct {
	srv *httptest.Server
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	u := *req.URL
	u.Scheme = "http"
	u.Host = strings.TrimPrefix(t.srv.URL, "http://")
	clone := req.Clone(req.Context())
	clone.URL = &u
	clone.Host = u.Host
	return http.DefaultTransport.RoundTrip(clone)
}
