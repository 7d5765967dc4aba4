package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueSingle
	ValueRange
	ValueBool
)

func (k ValueKind) String() string {
	switch k {
	case ValueEmpty:
		return "empty"
	case ValueSingle:
		return "single"
	case ValueRange:
		return "range"
	case ValueBool:
		return "bool"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

var errUnsupportedValue = errors.New("model: unsupported value payload")

// Value is the value of a dialog element: nothing, a single string, a
// start/end range or a boolean. The zero Value is Empty.
type Value struct {
	kind   ValueKind
	text   string
	end    string
	hasEnd bool
	flag   bool
}

// Empty returns the absent value.
func Empty() Value { return Value{} }

// Single wraps a scalar string value.
func Single(s string) Value { return Value{kind: ValueSingle, text: s} }

// RangeStart returns a range that has a start and no end.
func RangeStart(start string) Value { return Value{kind: ValueRange, text: start} }

// Range returns a complete range.
func Range(start, end string) Value {
	return Value{kind: ValueRange, text: start, end: end, hasEnd: true}
}

// Bool wraps a boolean value.
func Bool(b bool) Value { return Value{kind: ValueBool, flag: b} }

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the scalar string of a Single value.
func (v Value) Text() string {
	if v.kind != ValueSingle {
		return ""
	}
	return v.text
}

// Start returns the start of a Range value.
func (v Value) Start() string {
	if v.kind != ValueRange {
		return ""
	}
	return v.text
}

// End returns the end of a Range value and whether it is present.
func (v Value) End() (string, bool) {
	if v.kind != ValueRange || !v.hasEnd {
		return "", false
	}
	return v.end, true
}

// Flag returns the boolean of a Bool value.
func (v Value) Flag() bool { return v.kind == ValueBool && v.flag }

// WithoutEnd drops the end of a range.
func (v Value) WithoutEnd() Value {
	if v.kind != ValueRange {
		return v
	}
	return RangeStart(v.text)
}

// IsEmpty applies the required-field notion of emptiness: no value, an empty
// string, a range without a start, or false.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case ValueEmpty:
		return true
	case ValueSingle, ValueRange:
		return v.text == ""
	case ValueBool:
		return !v.flag
	default:
		return true
	}
}

// Equal reports whether both values hold the same variant and payload.
func (v Value) Equal(other Value) bool { return v == other }

// String renders the value for logs and terminal output.
func (v Value) String() string {
	switch v.kind {
	case ValueSingle:
		return v.text
	case ValueRange:
		if !v.hasEnd {
			return v.text + " -"
		}
		return v.text + " - " + v.end
	case ValueBool:
		if v.flag {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

type rangePayload struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// MarshalJSON encodes the value as null, a string, a {start,end} object or a
// boolean.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueEmpty:
		return []byte("null"), nil
	case ValueSingle:
		return json.Marshal(v.text)
	case ValueRange:
		payload := rangePayload{Start: v.text}
		if v.hasEnd {
			end := v.end
			payload.End = &end
		}
		return json.Marshal(payload)
	case ValueBool:
		return json.Marshal(v.flag)
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedValue, v.kind)
	}
}

// UnmarshalJSON accepts every shape produced by MarshalJSON. Bare numbers are
// kept as their literal text.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = Empty()
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("model: decode value: %w", err)
		}
		*v = Single(s)
	case '{':
		var payload rangePayload
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return fmt.Errorf("model: decode range: %w", err)
		}
		if payload.End != nil {
			*v = Range(payload.Start, *payload.End)
		} else {
			*v = RangeStart(payload.Start)
		}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return fmt.Errorf("model: decode bool: %w", err)
		}
		*v = Bool(b)
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return fmt.Errorf("%w: %s", errUnsupportedValue, string(trimmed))
		}
		*v = Single(n.String())
	}
	return nil
}

// Values maps element names to their values.
type Values map[string]Value

// Get returns the named value, Empty when absent.
func (vs Values) Get(name string) Value {
	if vs == nil {
		return Empty()
	}
	return vs[name]
}
