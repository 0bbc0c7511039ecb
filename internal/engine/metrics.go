package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests   atomic.Int64
	FetchErrors      atomic.Int64
	StructuredHits   atomic.Int64
	FallbackAttempts atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"search_requests":   metrics.SearchRequests.Load(),
		"fetch_errors":      metrics.FetchErrors.Load(),
		"structured_hits":   metrics.StructuredHits.Load(),
		"fallback_attempts": metrics.FallbackAttempts.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{"search_requests", "fetch_errors", "structured_hits", "fallback_attempts"}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
