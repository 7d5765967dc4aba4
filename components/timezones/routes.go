package timezones

import (
	"errors"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

var ErrMissingMux = errors.New("timezones: missing mux")

// Mux is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the route of the lookup handler under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	return joinRoute(basePath, NewOptions(fns...).RoutePath)
}

// DataSourceURL is the data_source_url a dynamic select element uses to
// reach a handler mounted under basePath. It carries the default limit so
// clients that send none get the handler's page size.
func DataSourceURL(basePath string, opts Options) string {
	opts = opts.normalized()
	query := url.Values{}
	query.Set(LimitParam, strconv.Itoa(opts.PageSize))
	return joinRoute(basePath, opts.RoutePath) + "?" + query.Encode()
}

// RegisterRoutes registers the lookup handler under basePath on mux and
// returns the pattern it used.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", ErrMissingMux
	}
	opts = opts.normalized()
	pattern := joinRoute(basePath, opts.RoutePath)
	mux.Handle(pattern, HandlerWithOptions(opts))
	return pattern, nil
}

func joinRoute(basePath, routePath string) string {
	routePath = strings.TrimSpace(routePath)
	if routePath == "" {
		routePath = "/"
	}
	return path.Join("/", strings.TrimSpace(basePath), routePath)
}
