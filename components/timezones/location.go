package timezones

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

var locationCache sync.Map

// LoadLocation is time.LoadLocation with a process-wide cache. Blank names are
// rejected instead of mapping to UTC.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("timezones: empty zone name")
	}
	if cached, ok := locationCache.Load(name); ok {
		return cached.(*time.Location), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("timezones: load %q: %w", name, err)
	}
	locationCache.Store(name, loc)
	return loc, nil
}

// ResolveLocation returns the zone a date field operates in: the field's
// pinned location when it loads, otherwise the user's zone, otherwise UTC.
func ResolveLocation(locationTimezone, userTimezone string) *time.Location {
	for _, name := range []string{locationTimezone, userTimezone} {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if loc, err := LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.UTC
}

// Abbreviation returns the short zone name in effect at the given instant,
// e.g. "GMT" or "EST". Zones without a lettered abbreviation fall back to the
// UTC offset form.
func Abbreviation(loc *time.Location, at time.Time) string {
	if loc == nil {
		loc = time.UTC
	}
	name, _ := at.In(loc).Zone()
	if name == "" || strings.HasPrefix(name, "+") || strings.HasPrefix(name, "-") {
		return OffsetLabel(at.In(loc))
	}
	return name
}

// OffsetLabel renders the offset of t as "UTC+01:00".
func OffsetLabel(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, offset/3600, (offset%3600)/60)
}

// Label renders a zone for option lists, e.g. "Europe/Paris (UTC+01:00)".
// Zones that fail to load are returned as-is.
func Label(zone string, at time.Time) string {
	loc, err := LoadLocation(zone)
	if err != nil {
		return zone
	}
	return fmt.Sprintf("%s (%s)", zone, OffsetLabel(at.In(loc)))
}
