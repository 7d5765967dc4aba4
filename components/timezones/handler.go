package timezones

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
)

// optionsResponse is the dynamic select payload dialogs expect.
type optionsResponse struct {
	Items []Option `json:"items"`
}

// lookupRequest is the body a dialog posts while the user types into a
// dynamic select.
type lookupRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

const maxLookupBody = 1 << 16

const allowedMethods = http.MethodGet + ", " + http.MethodHead + ", " + http.MethodPost

type lookupHandler struct {
	opts Options
}

// Handler serves timezone options with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions serves timezone options for a pre-built Options value.
func HandlerWithOptions(opts Options) http.Handler {
	return &lookupHandler{opts: opts.normalized()}
}

func (h *lookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodPost:
	default:
		w.Header().Set("Allow", allowedMethods)
		writeStatus(w, http.StatusMethodNotAllowed)
		return
	}

	lookup, err := readLookup(r)
	if err != nil {
		writeStatus(w, http.StatusBadRequest)
		return
	}

	zones, err := h.opts.zones()
	if err != nil {
		writeStatus(w, http.StatusInternalServerError)
		return
	}

	items := SearchOptions(zones, lookup.Query, lookup.Limit, h.opts)
	if items == nil {
		items = []Option{}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(optionsResponse{Items: items})
}

// readLookup takes the query and limit from the URL, then lets a POST body
// override them.
func readLookup(r *http.Request) (lookupRequest, error) {
	params := r.URL.Query()
	req := lookupRequest{Query: params.Get(QueryParam)}
	if raw := params.Get(LimitParam); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			req.Limit = n
		}
	}
	if r.Method != http.MethodPost || r.Body == nil {
		return req, nil
	}

	var body lookupRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxLookupBody))
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return lookupRequest{}, err
	}
	req.Query = body.Query
	if body.Limit != 0 {
		req.Limit = body.Limit
	}
	return req, nil
}

func writeStatus(w http.ResponseWriter, code int) {
	http.Error(w, http.StatusText(code), code)
}
