package invite

import (
	"strings"
	"unicode"
)

// SplitDateSegments splits a commemoration date on any of "/", "-" or "."
// into trimmed display segments. This is a display transform only, not a
// calendar parse: input with no delimiter comes back as a single segment.
func SplitDateSegments(value string) []string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		segments = append(segments, strings.TrimSpace(p))
	}
	if len(segments) == 0 {
		return []string{strings.TrimSpace(value)}
	}
	return segments
}

// EventDay is the display breakdown of an event day string such as
// "7th May 2025".
type EventDay struct {
	Day   string
	Month string
	Year  string
}

// ParseEventDay tokenizes the event day on whitespace into day, month and
// year. The day token has ordinal suffixes stripped ("7th" -> "7"); an
// input that starts with the month ("May 2025") keeps its tokens and the
// day falls back to "1". The month defaults to January and is upper-cased
// for display; the year defaults to "2025". Missing trailing tokens are
// tolerated; the day is never validated as a real calendar day.
func ParseEventDay(value string) EventDay {
	tokens := strings.Fields(value)

	day := "1"
	if len(tokens) > 0 {
		digits := digitsOf(tokens[0])
		if digits != "" {
			day = digits
		} else {
			// No day token present; the remaining tokens shift left.
			tokens = append([]string{""}, tokens...)
		}
	}

	month := "January"
	if len(tokens) > 1 {
		month = tokens[1]
	}

	year := "2025"
	if len(tokens) > 2 {
		year = tokens[2]
	}

	return EventDay{Day: day, Month: strings.ToUpper(month), Year: year}
}

func digitsOf(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
