package format

import (
	"encoding/json"

	"github.com/anatolykoptev/yts/internal/engine"
)

// JSON renders results as an indented JSON array.
type JSON struct{}

func (JSON) Format(results []engine.Result) string {
	if len(results) == 0 {
		return "[]"
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		// result structs are plain data; this cannot happen
		return "[]"
	}
	return string(data)
}
