package datetime

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeOffsetPattern = regexp.MustCompile(`^([+-])(\d{1,4})([dwm])$`)

// ResolveRelative turns a date expression into a canonical YYYY-MM-DD string.
// now must already be expressed in the field's timezone; the calendar day of
// now in that zone is the anchor for every keyword and offset.
//
// Supported expressions: a literal YYYY-MM-DD, today, tomorrow, yesterday and
// signed offsets in days, weeks or months (+3d, -1w, +2m). Anything else
// reports false.
func ResolveRelative(expr string, now time.Time) (string, bool) {
	d, ok := ResolveRelativeDate(expr, now)
	if !ok {
		return "", false
	}
	return d.String(), true
}

// ResolveRelativeDate is ResolveRelative returning the Date.
func ResolveRelativeDate(expr string, now time.Time) (Date, bool) {
	normalized := strings.ToLower(strings.TrimSpace(expr))
	if normalized == "" {
		return Date{}, false
	}
	if MatchesDate(normalized) {
		return ParseDate(normalized)
	}

	today := DateOf(now)
	switch normalized {
	case "today":
		return today, true
	case "tomorrow":
		return today.AddDays(1), true
	case "yesterday":
		return today.AddDays(-1), true
	}

	match := relativeOffsetPattern.FindStringSubmatch(normalized)
	if match == nil {
		return Date{}, false
	}
	n, err := strconv.Atoi(match[2])
	if err != nil {
		return Date{}, false
	}
	if match[1] == "-" {
		n = -n
	}
	switch match[3] {
	case "d":
		return today.AddDays(n), true
	case "w":
		return today.AddDays(7 * n), true
	case "m":
		return today.AddMonths(n), true
	}
	return Date{}, false
}

// IsRelative reports whether expr is a keyword or offset rather than a literal
// date.
func IsRelative(expr string) bool {
	normalized := strings.ToLower(strings.TrimSpace(expr))
	if MatchesDate(normalized) {
		return false
	}
	_, ok := ResolveRelativeDate(normalized, time.Time{})
	return ok
}
