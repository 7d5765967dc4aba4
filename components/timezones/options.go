package timezones

import (
	"fmt"
	"strings"
	"time"
)

// Query parameters a dynamic select sends with each lookup.
const (
	QueryParam = "q"
	LimitParam = "limit"
)

const (
	defaultRoutePath   = "/dialog/timezones"
	defaultPageSize    = 50
	defaultMaxPageSize = 200
)

// EmptySearchMode controls what a blank query returns. Dialogs open their
// dynamic selects with an empty query, so "top" pre-fills the menu.
type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

// ParseEmptySearchMode accepts "none" or "top", case-insensitively. Blank
// means none.
func ParseEmptySearchMode(s string) (EmptySearchMode, error) {
	switch mode := EmptySearchMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "", EmptySearchNone:
		return EmptySearchNone, nil
	case EmptySearchTop:
		return EmptySearchTop, nil
	default:
		return "", fmt.Errorf("timezones: unknown empty search mode %q (want none or top)", s)
	}
}

// Options configures how zone options are served to dynamic select elements.
type Options struct {
	// RoutePath is joined under the base path the handler is mounted at.
	RoutePath string

	// PageSize applies when a lookup names no limit. MaxPageSize caps any
	// requested limit.
	PageSize    int
	MaxPageSize int

	EmptySearch EmptySearchMode

	// Now anchors the UTC offsets in labels and the abbreviations search
	// matches against.
	Now func() time.Time

	// Zones replaces the embedded list when non-nil.
	Zones []string
}

type OptionFn func(*Options)

// DefaultOptions returns the lookup defaults: served at /dialog/timezones,
// 50 options per page and 200 at most, nothing for a blank query.
func DefaultOptions() Options {
	return Options{
		RoutePath:   defaultRoutePath,
		PageSize:    defaultPageSize,
		MaxPageSize: defaultMaxPageSize,
		EmptySearch: EmptySearchNone,
		Now:         time.Now,
	}
}

// NewOptions applies fns over the defaults.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}
	return opts.normalized()
}

// normalized repairs zero values and detaches the zone slice from the caller.
func (o Options) normalized() Options {
	if strings.TrimSpace(o.RoutePath) == "" {
		o.RoutePath = defaultRoutePath
	}
	if o.PageSize <= 0 {
		o.PageSize = defaultPageSize
	}
	if o.MaxPageSize <= 0 {
		o.MaxPageSize = defaultMaxPageSize
	}
	if o.PageSize > o.MaxPageSize {
		o.PageSize = o.MaxPageSize
	}
	if o.EmptySearch == "" {
		o.EmptySearch = EmptySearchNone
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Zones != nil {
		o.Zones = append([]string{}, o.Zones...)
	}
	return o
}

// pageSize turns a requested limit into the number of options to return.
// Zero means the page size and negative values return nothing.
func (o Options) pageSize(requested int) int {
	switch {
	case requested < 0:
		return 0
	case requested == 0:
		return o.PageSize
	case requested > o.MaxPageSize:
		return o.MaxPageSize
	default:
		return requested
	}
}

// zones returns the configured list or the embedded one.
func (o Options) zones() ([]string, error) {
	if o.Zones != nil {
		return o.Zones, nil
	}
	return DefaultZones()
}

// WithRoutePath mounts the handler at path under the base path.
func WithRoutePath(path string) OptionFn {
	return func(o *Options) { o.RoutePath = path }
}

// WithPageSize sets the default and maximum number of options per lookup.
// Non-positive values keep the defaults.
func WithPageSize(size, max int) OptionFn {
	return func(o *Options) {
		o.PageSize, o.MaxPageSize = size, max
	}
}

// WithEmptySearch picks what a blank query returns.
func WithEmptySearch(mode EmptySearchMode) OptionFn {
	return func(o *Options) { o.EmptySearch = mode }
}

// WithZones serves zones instead of the embedded list.
func WithZones(zones []string) OptionFn {
	return func(o *Options) { o.Zones = zones }
}

// WithClock sets the clock used for offset labels and abbreviation matches.
func WithClock(now func() time.Time) OptionFn {
	return func(o *Options) { o.Now = now }
}
