package engine

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Normalizers for the display strings YouTube renders counts and durations
// with ("1.2M views", "10:30", "123 videos"). All of them return nil instead
// of an error: a string that does not parse means "unknown", not "broken".

var countUnits = strings.NewReplacer(",", "", " views", "", " subscribers", "")

var countMultipliers = map[byte]float64{
	'K': 1e3,
	'M': 1e6,
	'B': 1e9,
}

// ParseCompactCount parses a display count like "1.2M views", "15K
// subscribers" or "1,234,567" into an absolute number.
func ParseCompactCount(text string) *int64 {
	s := strings.TrimSpace(countUnits.Replace(text))
	if s == "" {
		return nil
	}

	last := s[len(s)-1]
	if 'a' <= last && last <= 'z' {
		last -= 'a' - 'A'
	}
	if mult, ok := countMultipliers[last]; ok {
		f, err := strconv.ParseFloat(s[:len(s)-1], 64)
		if err != nil {
			return nil
		}
		n := int64(math.Round(f * mult))
		return &n
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

var firstDigitsRE = regexp.MustCompile(`\d+`)

// ParseCountFromPhrase extracts the first run of digits from a phrase like
// "123 videos".
func ParseCountFromPhrase(text string) *int64 {
	m := firstDigitsRE.FindString(text)
	if m == "" {
		return nil
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ParseDurationSeconds converts "M:SS" or "H:MM:SS" into seconds.
// Any other shape yields nil.
func ParseDurationSeconds(text string) *int64 {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return nil
	}
	var total int64
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 {
			return nil
		}
		total = total*60 + n
	}
	return &total
}
