package timezones

import "net/http"

// Component bundles the lookup handler with its configuration and routing.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return c.opts.normalized()
}

// Handler returns a net/http handler for timezone lookups.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return HandlerWithOptions(c.opts)
}

// RegisterRoutes registers the component handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}

// Lookup runs the same search the handler serves, without HTTP.
func (c *Component) Lookup(query string, limit int) ([]Option, error) {
	if c == nil {
		c = New()
	}
	zones, err := c.opts.zones()
	if err != nil {
		return nil, err
	}
	return SearchOptions(zones, query, limit, c.opts), nil
}
