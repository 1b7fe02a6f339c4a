package services

import (
	"regexp"
	"strconv"
	"strings"
)

// Attraction durations come from admin-entered free text ("2 hours",
// "90 minutes", "Full day", "45"). The mutation surface needs them as hours
// to enforce the per-day cap, so this parses on a best-effort heuristic.

var (
	hoursRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*h(?:(?:ou)?rs?)?\b`)
	minutesRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*m(?:in(?:ute)?s?)?\b`)
	bareNumRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)$`)
)

const minAttractionHours = 0.5

// ParseDurationHours converts a free-text duration into hours, clamped to a
// minimum of half an hour. Unparseable input is treated as the default two
// hour visit.
func ParseDurationHours(text string) float64 {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return 2
	}

	hours := 0.0
	matched := false

	if m := hoursRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			hours += v
			matched = true
		}
	}
	if m := minutesRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			hours += v / 60
			matched = true
		}
	}
	if matched {
		return clampHours(hours)
	}

	// A bare number is minutes when large enough to plausibly be minutes.
	if m := bareNumRe.FindStringSubmatch(lower); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			if v >= 30 {
				return clampHours(v / 60)
			}
			return clampHours(v)
		}
	}

	switch {
	case strings.Contains(lower, "full day"):
		return 8
	case strings.Contains(lower, "half day"):
		return 4
	case strings.Contains(lower, "morning"), strings.Contains(lower, "afternoon"):
		return 3
	case strings.Contains(lower, "evening"):
		return 2
	}

	return 2
}

func clampHours(h float64) float64 {
	if h < minAttractionHours {
		return minAttractionHours
	}
	return h
}
