package datetime

import (
	"fmt"
	"regexp"
	"time"

	"github.com/goliatone/go-datefield/pkg/model"
)

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)
)

const (
	dateLayout    = "2006-01-02"
	instantLayout = "2006-01-02T15:04:05Z"
)

// MatchesDate reports whether s has the exact YYYY-MM-DD shape. It does not
// check that the day exists.
func MatchesDate(s string) bool { return datePattern.MatchString(s) }

// MatchesDateTime reports whether s has the exact YYYY-MM-DDTHH:mm:ssZ shape.
func MatchesDateTime(s string) bool { return dateTimePattern.MatchString(s) }

// ParseDate parses a canonical date string. Impossible days such as
// 2026-02-30 are rejected.
func ParseDate(s string) (Date, bool) {
	if !MatchesDate(s) {
		return Date{}, false
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, false
	}
	return DateOf(t), true
}

// ParseInstant parses a canonical UTC datetime string.
func ParseInstant(s string) (time.Time, bool) {
	if !MatchesDateTime(s) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(instantLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Parse converts a stored value into a time in loc. Date values become local
// midnight of the same calendar day so no offset can shift them to a
// neighbouring day; datetime values keep their instant. Anything that does not
// match the canonical shape for kind fails.
func Parse(kind model.Kind, stored string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	switch kind {
	case model.KindDate:
		d, ok := ParseDate(stored)
		if !ok {
			return time.Time{}, false
		}
		return d.In(loc), true
	case model.KindDateTime:
		t, ok := ParseInstant(stored)
		if !ok {
			return time.Time{}, false
		}
		return t.In(loc), true
	default:
		return time.Time{}, false
	}
}

// Serialize renders t in canonical form. Date values use the wall-clock day of
// t in its own location; datetime values are converted to UTC with seconds
// zeroed.
func Serialize(t time.Time, includeTime bool) string {
	if !includeTime {
		return DateOf(t).String()
	}
	u := t.UTC()
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:00Z", u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute())
}

// SerializeKind is Serialize keyed by field kind.
func SerializeKind(kind model.Kind, t time.Time) string {
	return Serialize(t, kind == model.KindDateTime)
}

// ValidStored reports whether stored is a well-formed, real value for kind.
func ValidStored(kind model.Kind, stored string) bool {
	_, ok := Parse(kind, stored, time.UTC)
	return ok
}
