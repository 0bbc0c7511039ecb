// Package toolutil provides shared helper functions for yts MCP tools.
package toolutil

// ClampLimit normalises a tool-supplied result limit: non-positive values
// fall back to the default, oversized values are capped.
func ClampLimit(n, fallback, max int) int {
	if n <= 0 {
		return fallback
	}
	if n > max {
		return max
	}
	return n
}
