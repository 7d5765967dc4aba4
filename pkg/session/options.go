package session

import (
	"context"

	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/model"
	"github.com/goliatone/go-datefield/pkg/prompt"
)

// OptionSource supplies the choices of a dynamic select element.
type OptionSource func(ctx context.Context, el model.Element) ([]model.Option, error)

// Option configures a Runner.
type Option func(*Runner)

// WithDriver overrides the prompt driver.
func WithDriver(driver prompt.Driver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithEnv sets the clock, user timezone, locale and clock preference handed
// to the date controllers.
func WithEnv(env field.Env) Option {
	return func(r *Runner) {
		r.env = env
	}
}

// WithOptionSource resolves options for data_source "dynamic" selects.
func WithOptionSource(src OptionSource) Option {
	return func(r *Runner) {
		r.optionSource = src
	}
}

// WithMaxRounds caps how many times the dialog is revisited while it fails
// validation.
func WithMaxRounds(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxRounds = n
		}
	}
}
