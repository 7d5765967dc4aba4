package timezones

import (
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-datefield/pkg/model"
)

// Option is a dynamic select entry: the zone name as value and a label with
// its current UTC offset as text.
type Option = model.Option

// Match tiers, best first.
const (
	tierExact = iota
	tierNamePrefix
	tierCityPrefix
	tierContains
	tierAbbreviation
)

type matchedZone struct {
	name string
	tier int
}

// Search returns up to limit zones matching query, case-insensitively. A zone
// matches on its full name ("Europe/Paris"), its city with spaces for
// underscores ("new york"), or, for short alphabetic queries, the abbreviation
// in effect at opts.Now ("CET"). Exact and prefix matches sort first.
func Search(zones []string, query string, limit int, opts Options) []string {
	limit = opts.pageSize(limit)
	if limit == 0 {
		return nil
	}

	q := normalizeQuery(query)
	if q == "" {
		if opts.EmptySearch != EmptySearchTop {
			return nil
		}
		if len(zones) > limit {
			zones = zones[:limit]
		}
		return append([]string{}, zones...)
	}

	var at time.Time
	if looksLikeAbbreviation(q) {
		at = time.Now()
		if opts.Now != nil {
			at = opts.Now()
		}
	}

	matches := make([]matchedZone, 0, 32)
	for _, zone := range zones {
		if tier, ok := matchZone(zone, q, at); ok {
			matches = append(matches, matchedZone{name: zone, tier: tier})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].tier != matches[j].tier {
			return matches[i].tier < matches[j].tier
		}
		return matches[i].name < matches[j].name
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}

func matchZone(zone, q string, at time.Time) (int, bool) {
	name := normalizeQuery(zone)
	city := name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		city = name[i+1:]
	}

	switch {
	case name == q || city == q:
		return tierExact, true
	case strings.HasPrefix(name, q):
		return tierNamePrefix, true
	case strings.HasPrefix(city, q):
		return tierCityPrefix, true
	case strings.Contains(name, q):
		return tierContains, true
	}

	if at.IsZero() {
		return 0, false
	}
	loc, err := LoadLocation(zone)
	if err != nil {
		return 0, false
	}
	if strings.EqualFold(Abbreviation(loc, at), q) {
		return tierAbbreviation, true
	}
	return 0, false
}

func normalizeQuery(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
}

func looksLikeAbbreviation(q string) bool {
	if len(q) < 2 || len(q) > 5 {
		return false
	}
	for _, r := range q {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// SearchOptions is Search mapped to labelled options.
func SearchOptions(zones []string, query string, limit int, opts Options) []Option {
	results := Search(zones, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	at := time.Now()
	if opts.Now != nil {
		at = opts.Now()
	}
	out := make([]Option, 0, len(results))
	for _, zone := range results {
		out = append(out, Option{Value: zone, Text: Label(zone, at)})
	}
	return out
}
