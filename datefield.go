// Package datefield is the entry point for dialog date and datetime fields:
// loading dialog definitions, validating submitted values and driving the
// field controllers.
package datefield

import (
	"context"

	"github.com/goliatone/go-datefield/pkg/dialog"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/model"
	"github.com/goliatone/go-datefield/pkg/validation"
)

type (
	Dialog         = model.Dialog
	Element        = model.Element
	DateTimeConfig = model.DateTimeConfig
	Value          = model.Value
	Values         = model.Values

	// Env carries the clock, user timezone, locale and clock preference the
	// controllers read.
	Env        = field.Env
	ChangeFunc = field.ChangeFunc
	Controller = field.Controller

	FieldError     = validation.FieldError
	SubmitResponse = validation.SubmitResponse
	SubmitOutcome  = validation.SubmitOutcome
)

// LoadDialog parses a JSON or YAML dialog definition.
func LoadDialog(data []byte, source string) (Dialog, error) {
	return dialog.Load(data, source)
}

// DialogFromOpenAPI derives a dialog from the request body of an OpenAPI
// operation.
func DialogFromOpenAPI(ctx context.Context, raw []byte, operationID string) (Dialog, error) {
	return dialog.FromOpenAPI(ctx, raw, operationID)
}

// Validate checks one element value and returns nil when it passes.
func Validate(el Element, value Value) *FieldError {
	return validation.Validate(el, value)
}

// ValidateDialog checks every element of d against values, keyed by element
// name.
func ValidateDialog(d Dialog, values Values) map[string]*FieldError {
	return validation.ValidateDialog(d, values)
}

// InterpretResponse maps an integration's submission response onto d.
func InterpretResponse(d Dialog, resp SubmitResponse) SubmitOutcome {
	return validation.InterpretResponse(d, resp)
}

// NewController picks the controller for el.
func NewController(el Element, current Value, env Env, onChange ChangeFunc) (Controller, error) {
	return field.New(el, current, env, onChange)
}

func NewSingle(el Element, current Value, env Env, onChange ChangeFunc) (*field.Single, error) {
	return field.NewSingle(el, current, env, onChange)
}

func NewRange(el Element, current Value, env Env, onChange ChangeFunc) (*field.Range, error) {
	return field.NewRange(el, current, env, onChange)
}

func NewRangePicker(el Element, current Value, env Env, onChange ChangeFunc) (*field.RangePicker, error) {
	return field.NewRangePicker(el, current, env, onChange)
}
