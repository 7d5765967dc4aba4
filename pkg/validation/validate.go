package validation

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/model"
)

// Validate checks value against el and returns the first failing rule, or nil.
func Validate(el model.Element, value model.Value) *FieldError {
	if value.IsEmpty() {
		if el.Required() {
			return newFieldError(el.Name, ErrRequired, nil)
		}
	}

	if el.Required() && el.IsRange() {
		end, hasEnd := value.End()
		if value.Kind() != model.ValueRange || value.Start() == "" || !hasEnd || end == "" {
			return newFieldError(el.Name, ErrRangeIncomplete, nil)
		}
	}

	switch el.Type {
	case model.ElementTypeText, model.ElementTypeTextarea:
		return validateText(el, value)
	case model.ElementTypeRadio:
		return validateRadio(el, value)
	case model.ElementTypeDate, model.ElementTypeDateTime:
		return validateDate(el, value)
	}
	return nil
}

func validateText(el model.Element, value model.Value) *FieldError {
	if value.Kind() != model.ValueSingle {
		return nil
	}
	text := value.Text()
	if text == "" {
		return nil
	}
	if el.MinLength > 0 && utf8.RuneCountInString(text) < el.MinLength {
		return newFieldError(el.Name, ErrTooShort, map[string]any{"minLength": el.MinLength})
	}
	switch el.Subtype {
	case model.SubtypeEmail:
		if !strings.Contains(text, "@") {
			return newFieldError(el.Name, ErrBadEmail, nil)
		}
	case model.SubtypeNumber:
		if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
			return newFieldError(el.Name, ErrBadNumber, nil)
		}
	case model.SubtypeURL:
		if !strings.Contains(text, "http://") && !strings.Contains(text, "https://") {
			return newFieldError(el.Name, ErrBadURL, nil)
		}
	}
	return nil
}

func validateRadio(el model.Element, value model.Value) *FieldError {
	if value.Kind() == model.ValueEmpty || len(el.Options) == 0 {
		return nil
	}
	if value.Kind() != model.ValueSingle || !el.HasOption(value.Text()) {
		return newFieldError(el.Name, ErrInvalidOption, nil)
	}
	return nil
}

func validateDate(el model.Element, value model.Value) *FieldError {
	switch value.Kind() {
	case model.ValueRange:
		if err := checkDateString(el.Kind(), value.Start()); err != nil {
			return newFieldError(el.Name, err, nil)
		}
		if end, ok := value.End(); ok && end != "" {
			if err := checkDateString(el.Kind(), end); err != nil {
				return newFieldError(el.Name, err, nil)
			}
		}
	case model.ValueSingle:
		if value.Text() == "" {
			return nil
		}
		if err := checkDateString(el.Kind(), value.Text()); err != nil {
			return newFieldError(el.Name, err, nil)
		}
	}
	return nil
}

// isoLayouts are the ISO 8601 shapes recognised as "a date" before the exact
// storage format is enforced.
var isoLayouts = []string{
	"2006",
	"2006-01",
	"2006-01-02",
	"2006-01-02T15",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
}

func looksLikeISODate(s string) bool {
	for _, layout := range isoLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// checkDateString returns ErrBadFormat for strings that are no date at all,
// and the kind-specific format error for real dates in the wrong shape.
func checkDateString(kind model.Kind, s string) error {
	if !looksLikeISODate(s) {
		return ErrBadFormat
	}
	if kind == model.KindDate {
		if !datetime.MatchesDate(s) {
			return ErrBadDateFormat
		}
		return nil
	}
	if !datetime.MatchesDateTime(s) {
		return ErrBadDateTimeFormat
	}
	return nil
}

// ValidateDialog validates every element of d. The result is keyed by
// element name and is empty when the submission is valid.
func ValidateDialog(d model.Dialog, values model.Values) map[string]*FieldError {
	out := make(map[string]*FieldError)
	for _, el := range d.Elements {
		if err := Validate(el, values.Get(el.Name)); err != nil {
			out[el.Name] = err
		}
	}
	return out
}
