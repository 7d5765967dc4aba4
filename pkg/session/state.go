package session

import (
	"github.com/goliatone/go-datefield/pkg/model"
)

// State tracks collected values and server-provided errors keyed by element
// name.
type State struct {
	values model.Values
	errors map[string]string
}

// NewState seeds the state with prefilled values and errors. The inputs are
// copied.
func NewState(prefill model.Values, errs map[string]string) *State {
	return &State{
		values: cloneValues(prefill),
		errors: cloneErrors(errs),
	}
}

// Values returns a copy of the collected values.
func (s *State) Values() model.Values {
	if s == nil {
		return nil
	}
	return cloneValues(s.values)
}

// Value returns the value held for name, Empty when unset.
func (s *State) Value(name string) model.Value {
	if s == nil {
		return model.Empty()
	}
	return s.values.Get(name)
}

// Set stores v for name. Empty values remove the entry.
func (s *State) Set(name string, v model.Value) {
	if s.values == nil {
		s.values = make(model.Values)
	}
	if v.Kind() == model.ValueEmpty {
		delete(s.values, name)
		return
	}
	s.values[name] = v
}

// ErrorFor returns the server error attached to name.
func (s *State) ErrorFor(name string) string {
	if s == nil {
		return ""
	}
	return s.errors[name]
}

// ClearError drops the server error for name once the user has revisited it.
func (s *State) ClearError(name string) {
	if s != nil {
		delete(s.errors, name)
	}
}

// SetErrors replaces the server errors.
func (s *State) SetErrors(errs map[string]string) {
	s.errors = cloneErrors(errs)
}

func cloneValues(src model.Values) model.Values {
	out := make(model.Values, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func cloneErrors(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
