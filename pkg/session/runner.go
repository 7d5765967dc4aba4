package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/i18n"
	"github.com/goliatone/go-datefield/pkg/model"
	"github.com/goliatone/go-datefield/pkg/prompt"
	"github.com/goliatone/go-datefield/pkg/validation"
)

var (
	ErrInvalid          = errors.New("session: dialog is still invalid")
	ErrNoOptionSource   = errors.New("session: no option source for dynamic select")
	ErrUnsupportedInput = errors.New("session: unsupported element type")
)

const (
	defaultMaxRounds = 3
	skipOption       = "(skip)"
)

// Runner drives a dialog through a prompt driver.
type Runner struct {
	driver       prompt.Driver
	env          field.Env
	optionSource OptionSource
	maxRounds    int
}

// New constructs a Runner. Without WithDriver it prompts through survey on
// stdout.
func New(options ...Option) *Runner {
	r := &Runner{maxRounds: defaultMaxRounds}
	for _, opt := range options {
		opt(r)
	}
	if r.driver == nil {
		r.driver = prompt.NewSurvey(nil)
	}
	return r
}

// Run asks every element of d, then revisits the failing ones until the
// values validate. state may carry a draft and server errors; it is updated
// as answers come in. ErrInvalid is returned with the last values when the
// dialog still fails after the configured rounds.
func (r *Runner) Run(ctx context.Context, d model.Dialog, state *State) (model.Values, error) {
	if state == nil {
		state = NewState(nil, nil)
	}
	if d.IntroductionText != "" {
		if err := r.driver.Info(ctx, d.IntroductionText); err != nil {
			return nil, err
		}
	}

	pending := d.Elements
	for round := 0; round < r.maxRounds; round++ {
		for _, el := range pending {
			if err := r.ask(ctx, el, state); err != nil {
				return nil, err
			}
		}

		failures := validation.ValidateDialog(d, state.Values())
		if len(failures) == 0 {
			return state.Values(), nil
		}

		next := make([]model.Element, 0, len(failures))
		for _, el := range d.Elements {
			fe, ok := failures[el.Name]
			if !ok {
				continue
			}
			if err := r.info(ctx, fmt.Sprintf("%s: %s", el.Label(), fe.Message(r.env.Locale))); err != nil {
				return nil, err
			}
			next = append(next, el)
		}
		pending = next
	}
	return state.Values(), ErrInvalid
}

func (r *Runner) ask(ctx context.Context, el model.Element, state *State) error {
	if msg := state.ErrorFor(el.Name); msg != "" {
		if err := r.info(ctx, fmt.Sprintf("%s: %s", el.Label(), msg)); err != nil {
			return err
		}
		state.ClearError(el.Name)
	}

	switch el.Type {
	case model.ElementTypeText:
		return r.askText(ctx, el, state)
	case model.ElementTypeTextarea:
		return r.askTextArea(ctx, el, state)
	case model.ElementTypeSelect, model.ElementTypeRadio:
		return r.askChoice(ctx, el, state)
	case model.ElementTypeBool:
		return r.askBool(ctx, el, state)
	case model.ElementTypeDate, model.ElementTypeDateTime:
		return r.askDate(ctx, el, state)
	}
	return fmt.Errorf("%w: %q (element %s)", ErrUnsupportedInput, el.Type, el.Name)
}

func textDefault(el model.Element, state *State) string {
	if v := state.Value(el.Name); v.Kind() == model.ValueSingle {
		return v.Text()
	}
	return el.Default
}

func setText(state *State, name, answer string) {
	if answer == "" {
		state.Set(name, model.Empty())
		return
	}
	state.Set(name, model.Single(answer))
}

func (r *Runner) askText(ctx context.Context, el model.Element, state *State) error {
	cfg := prompt.InputConfig{
		Message: el.Label(),
		Default: textDefault(el, state),
		Help:    el.HelpText,
		Validator: func(answer string) error {
			if fe := validation.Validate(el, model.Single(answer)); fe != nil {
				return errors.New(fe.Message(r.env.Locale))
			}
			return nil
		},
	}

	var (
		answer string
		err    error
	)
	if el.Subtype == model.SubtypePassword {
		answer, err = r.driver.Password(ctx, cfg)
	} else {
		answer, err = r.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}
	setText(state, el.Name, answer)
	return nil
}

func (r *Runner) askTextArea(ctx context.Context, el model.Element, state *State) error {
	answer, err := r.driver.TextArea(ctx, prompt.TextAreaConfig{
		Message: el.Label(),
		Default: textDefault(el, state),
		Help:    el.HelpText,
	})
	if err != nil {
		return err
	}
	setText(state, el.Name, answer)
	return nil
}

func (r *Runner) options(ctx context.Context, el model.Element) ([]model.Option, error) {
	if el.DataSource != model.DataSourceDynamic {
		return el.Options, nil
	}
	if r.optionSource == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoOptionSource, el.Name)
	}
	return r.optionSource(ctx, el)
}

func (r *Runner) askChoice(ctx context.Context, el model.Element, state *State) error {
	options, err := r.options(ctx, el)
	if err != nil {
		return err
	}

	offset := 0
	labels := make([]string, 0, len(options)+1)
	if !el.Required() {
		labels = append(labels, skipOption)
		offset = 1
	}
	current := textDefault(el, state)
	selected := 0
	for i, opt := range options {
		labels = append(labels, opt.Text)
		if opt.Value == current {
			selected = i + offset
		}
	}

	idx, err := r.driver.Select(ctx, prompt.SelectConfig{
		Message:      el.Label(),
		Options:      labels,
		DefaultIndex: selected,
		Help:         el.HelpText,
		PageSize:     10,
	})
	if err != nil {
		return err
	}
	if idx < offset || idx-offset >= len(options) {
		state.Set(el.Name, model.Empty())
		return nil
	}
	state.Set(el.Name, model.Single(options[idx-offset].Value))
	return nil
}

func (r *Runner) askBool(ctx context.Context, el model.Element, state *State) error {
	def := strings.EqualFold(strings.TrimSpace(el.Default), "true")
	if v := state.Value(el.Name); v.Kind() == model.ValueBool {
		def = v.Flag()
	}
	answer, err := r.driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: el.Label(),
		Default: def,
		Help:    el.HelpText,
	})
	if err != nil {
		return err
	}
	state.Set(el.Name, model.Bool(answer))
	return nil
}

func (r *Runner) text(id string, values map[string]any) string {
	return i18n.Text(r.env.Locale, id, values)
}

func (r *Runner) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, msg)
}

// dayPrompt asks for one calendar day.
type dayPrompt struct {
	message string
	def     string
	help    string
	today   datetime.Date
	pick    func(datetime.Date) bool
}

// askDay prompts until the answer resolves to a day pick accepts. Answers may
// be literal dates or relative expressions such as "tomorrow" or "+2w". A
// blank answer returns false.
func (r *Runner) askDay(ctx context.Context, p dayPrompt) (bool, error) {
	anchor := p.today.In(time.UTC)
	for {
		answer, err := r.driver.Input(ctx, prompt.InputConfig{Message: p.message, Default: p.def, Help: p.help})
		if err != nil {
			return false, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return false, nil
		}

		day, ok := datetime.ResolveRelativeDate(answer, anchor)
		if !ok {
			if err := r.info(ctx, r.text(i18n.IDBadFormat, nil)); err != nil {
				return false, err
			}
			continue
		}
		if p.pick(day) {
			return true, nil
		}
		msg := r.text(i18n.IDDateOutOfBounds, map[string]any{"date": datetime.FormatDate(day, r.env.Locale)})
		if err := r.info(ctx, msg); err != nil {
			return false, err
		}
	}
}

func dayString(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return datetime.DateOf(t).String()
}
