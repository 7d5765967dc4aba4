package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/i18n"
	"github.com/goliatone/go-datefield/pkg/model"
	"github.com/goliatone/go-datefield/pkg/prompt"
)

type indicator interface {
	TimezoneIndicator() string
}

func (r *Runner) askDate(ctx context.Context, el model.Element, state *State) error {
	ctrl, err := field.New(el, state.Value(el.Name), r.env, state.Set)
	if err != nil {
		return err
	}
	ctrl.Mount()

	if c, ok := ctrl.(indicator); ok {
		if note := c.TimezoneIndicator(); note != "" {
			if err := r.info(ctx, note); err != nil {
				return err
			}
		}
	}

	switch c := ctrl.(type) {
	case *field.Single:
		return r.askSingle(ctx, c)
	case *field.Range:
		return r.askRange(ctx, c)
	case *field.RangePicker:
		return r.askPicker(ctx, c)
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedInput, ctrl)
}

func (r *Runner) askSingle(ctx context.Context, s *field.Single) error {
	el := s.Element()
	picked, err := r.askDay(ctx, dayPrompt{
		message: el.Label(),
		def:     dayString(s.Time()),
		help:    s.Placeholder(),
		today:   s.Today(),
		pick:    s.SelectDate,
	})
	if err != nil {
		return err
	}
	if !picked {
		s.Clear()
		return nil
	}
	if el.Kind() != model.KindDateTime {
		return nil
	}

	t, _ := s.Time()
	return r.askTime(ctx, timeSlot{
		message:  fmt.Sprintf("%s (%s)", el.Label(), r.text(i18n.IDTimeLabel, nil)),
		manual:   s.ManualTimeEntry(),
		text:     s.TimeText,
		typeText: s.TypeTime,
		blur:     s.BlurTime,
		hasError: s.TimeError,
		options:  s.TimeOptions,
		selected: datetime.ClockOf(t),
		pick:     s.SelectTime,
	})
}

func (r *Runner) askRange(ctx context.Context, rg *field.Range) error {
	el := rg.Element()
	start, hasStart := rg.Start()
	picked, err := r.askDay(ctx, dayPrompt{
		message: fmt.Sprintf("%s: %s", el.Label(), rg.StartLabel()),
		def:     dayString(start, hasStart),
		help:    rg.Placeholder(),
		today:   rg.Today(),
		pick:    rg.SelectStartDate,
	})
	if err != nil {
		return err
	}
	if !picked {
		rg.Clear()
		return nil
	}

	manual := rg.ManualTimeEntry()
	start, _ = rg.Start()
	err = r.askTime(ctx, timeSlot{
		message:  fmt.Sprintf("%s: %s (%s)", el.Label(), rg.StartLabel(), r.text(i18n.IDTimeLabel, nil)),
		manual:   manual,
		text:     rg.StartTimeText,
		typeText: rg.TypeStartTime,
		blur:     rg.BlurStartTime,
		hasError: func() bool { s, _ := rg.TimeErrors(); return s },
		options:  rg.StartTimeOptions,
		selected: datetime.ClockOf(start),
		pick:     rg.SelectStartTime,
	})
	if err != nil {
		return err
	}

	end, hasEnd := rg.End()
	picked, err = r.askDay(ctx, dayPrompt{
		message: fmt.Sprintf("%s: %s", el.Label(), rg.EndLabel()),
		def:     dayString(end, hasEnd),
		help:    rg.Placeholder(),
		today:   rg.Today(),
		pick:    rg.SelectEndDate,
	})
	if err != nil || !picked {
		return err
	}

	end, _ = rg.End()
	return r.askTime(ctx, timeSlot{
		message:  fmt.Sprintf("%s: %s (%s)", el.Label(), rg.EndLabel(), r.text(i18n.IDTimeLabel, nil)),
		manual:   manual,
		text:     rg.EndTimeText,
		typeText: rg.TypeEndTime,
		blur:     rg.BlurEndTime,
		hasError: func() bool { _, e := rg.TimeErrors(); return e },
		options:  rg.EndTimeOptions,
		selected: datetime.ClockOf(end),
		pick:     rg.SelectEndTime,
		rejected: i18n.IDEndBeforeStart,
	})
}

func (r *Runner) askPicker(ctx context.Context, p *field.RangePicker) error {
	el := p.Element()
	startDef, endDef := "", ""
	if v := p.Value(); v.Kind() == model.ValueRange {
		startDef = v.Start()
		var hasEnd bool
		if endDef, hasEnd = v.End(); !hasEnd {
			// A pending start would take the next click as the end.
			p.Clear()
		}
	}

	p.Open()
	picked, err := r.askDay(ctx, dayPrompt{
		message: fmt.Sprintf("%s: %s", el.Label(), r.text(i18n.IDRangeStartLabel, nil)),
		def:     startDef,
		help:    p.Placeholder(),
		today:   p.Today(),
		pick:    p.ClickDay,
	})
	if err != nil {
		return err
	}
	if !picked {
		p.Clear()
		p.Close()
		return nil
	}

	// A start click resets a complete range, so the end is always asked.
	if !p.IsOpen() {
		return nil
	}
	_, err = r.askDay(ctx, dayPrompt{
		message: fmt.Sprintf("%s: %s", el.Label(), r.text(i18n.IDRangeEndLabel, nil)),
		def:     endDef,
		help:    p.Placeholder(),
		today:   p.Today(),
		pick:    p.ClickDay,
	})
	p.Close()
	return err
}

// timeSlot adapts one time box of a controller, typed or picked.
type timeSlot struct {
	message  string
	manual   bool
	text     func() string
	typeText func(string)
	blur     func() bool
	hasError func() bool
	options  func() []field.TimeOption
	selected datetime.TimeOfDay
	pick     func(datetime.TimeOfDay) bool
	// rejected is the message shown when a parsed time is refused.
	rejected string
}

func (r *Runner) askTime(ctx context.Context, slot timeSlot) error {
	if slot.manual {
		return r.typeTime(ctx, slot)
	}

	options := slot.options()
	if len(options) == 0 {
		return nil
	}
	labels := make([]string, len(options))
	selected := 0
	for i, opt := range options {
		labels[i] = opt.Label
		if opt.Time == slot.selected {
			selected = i
		}
	}
	idx, err := r.driver.Select(ctx, prompt.SelectConfig{
		Message:      slot.message,
		Options:      labels,
		DefaultIndex: selected,
		PageSize:     12,
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(options) {
		slot.pick(options[idx].Time)
	}
	return nil
}

func (r *Runner) typeTime(ctx context.Context, slot timeSlot) error {
	for {
		answer, err := r.driver.Input(ctx, prompt.InputConfig{Message: slot.message, Default: slot.text()})
		if err != nil {
			return err
		}
		slot.typeText(answer)
		if slot.blur() || strings.TrimSpace(answer) == "" {
			return nil
		}

		id := i18n.IDInvalidTime
		if !slot.hasError() {
			if slot.rejected == "" {
				return nil
			}
			id = slot.rejected
		}
		if err := r.info(ctx, r.text(id, nil)); err != nil {
			return err
		}
	}
}
