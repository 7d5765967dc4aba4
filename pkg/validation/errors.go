package validation

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-datefield/pkg/i18n"
)

var (
	ErrRequired          = errors.New("validation: value is required")
	ErrRangeIncomplete   = errors.New("validation: range needs both start and end")
	ErrBadFormat         = errors.New("validation: invalid date format")
	ErrBadDateFormat     = fmt.Errorf("%w: expected YYYY-MM-DD", ErrBadFormat)
	ErrBadDateTimeFormat = fmt.Errorf("%w: expected YYYY-MM-DDTHH:mm:ssZ", ErrBadFormat)
	ErrTooShort          = errors.New("validation: value is too short")
	ErrBadEmail          = errors.New("validation: invalid email")
	ErrBadNumber         = errors.New("validation: not a number")
	ErrBadURL            = errors.New("validation: url must use http or https")
	ErrInvalidOption     = errors.New("validation: not one of the options")
)

var messageIDs = map[error]string{
	ErrRequired:          i18n.IDRequired,
	ErrRangeIncomplete:   i18n.IDRangeIncomplete,
	ErrBadFormat:         i18n.IDBadFormat,
	ErrBadDateFormat:     i18n.IDBadDateFormat,
	ErrBadDateTimeFormat: i18n.IDBadDateTimeFormat,
	ErrTooShort:          i18n.IDTooShort,
	ErrBadEmail:          i18n.IDBadEmail,
	ErrBadNumber:         i18n.IDBadNumber,
	ErrBadURL:            i18n.IDBadURL,
	ErrInvalidOption:     i18n.IDInvalidOption,
}

// FieldError is a validation failure for one element.
type FieldError struct {
	Field          string
	ID             string
	DefaultMessage string
	Values         map[string]any
	Err            error
}

func newFieldError(field string, err error, values map[string]any) *FieldError {
	id := messageIDs[err]
	return &FieldError{
		Field:          field,
		ID:             id,
		DefaultMessage: i18n.Text(i18n.DefaultLocale, id, values),
		Values:         values,
		Err:            err,
	}
}

func (e *FieldError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Field, e.DefaultMessage)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Message returns the error text for locale from the default catalog.
func (e *FieldError) Message(locale string) string {
	if e == nil {
		return ""
	}
	return i18n.Text(locale, e.ID, e.Values)
}
