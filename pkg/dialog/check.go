package dialog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-datefield/components/timezones"
	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/model"
)

var (
	ErrMissingTitle     = errors.New("dialog: title is required")
	ErrMissingName      = errors.New("dialog: element name is required")
	ErrDuplicateElement = errors.New("dialog: duplicate element name")
	ErrUnknownType      = errors.New("dialog: unknown element type")
	ErrMissingOptions   = errors.New("dialog: element has no options")
	ErrInvalidInterval  = errors.New("dialog: time interval must be between 1 and 1440 minutes")
	ErrInvalidTimezone  = errors.New("dialog: unknown location timezone")
	ErrInvalidBound     = errors.New("dialog: date bound is neither a date nor a relative expression")
	ErrInvertedBounds   = errors.New("dialog: min_date is after max_date")
)

const maxInterval = 24 * 60

// Check reports every structural problem in d, joined into one error.
func Check(d model.Dialog) error {
	var errs []error
	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, ErrMissingTitle)
	}

	seen := make(map[string]struct{}, len(d.Elements))
	for i, el := range d.Elements {
		name := strings.TrimSpace(el.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("element %d: %w", i, ErrMissingName))
			continue
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("element %q: %w", name, ErrDuplicateElement))
		}
		seen[name] = struct{}{}

		for _, err := range checkElement(el) {
			errs = append(errs, fmt.Errorf("element %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func checkElement(el model.Element) []error {
	if !el.Type.Known() {
		return []error{fmt.Errorf("%w %q", ErrUnknownType, el.Type)}
	}

	var errs []error
	switch el.Type {
	case model.ElementTypeRadio:
		if len(el.Options) == 0 {
			errs = append(errs, ErrMissingOptions)
		}
	case model.ElementTypeSelect:
		if len(el.Options) == 0 && el.DataSource == "" {
			errs = append(errs, ErrMissingOptions)
		}
	}
	if !el.IsDateKind() {
		return errs
	}

	for _, interval := range []int{el.TimeIntervalMinutes, configInterval(el)} {
		if interval < 0 || interval > maxInterval {
			errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidInterval, interval))
		}
	}
	if zone := el.LocationTimezone(); zone != "" {
		if _, err := timezones.LoadLocation(zone); err != nil {
			errs = append(errs, fmt.Errorf("%w %q", ErrInvalidTimezone, zone))
		}
	}

	// Bounds are resolved against a fixed day; only literal pairs can be
	// compared without a clock.
	anchor := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	minDay, minOK := checkBound(el.MinDate, anchor, &errs)
	maxDay, maxOK := checkBound(el.MaxDate, anchor, &errs)
	if minOK && maxOK && !datetime.IsRelative(el.MinDate) && !datetime.IsRelative(el.MaxDate) && minDay.After(maxDay) {
		errs = append(errs, ErrInvertedBounds)
	}
	return errs
}

func configInterval(el model.Element) int {
	if el.DateTimeConfig == nil {
		return 0
	}
	return el.DateTimeConfig.TimeInterval
}

func checkBound(expr string, anchor time.Time, errs *[]error) (datetime.Date, bool) {
	if strings.TrimSpace(expr) == "" {
		return datetime.Date{}, false
	}
	day, ok := datetime.ResolveRelativeDate(expr, anchor)
	if !ok {
		*errs = append(*errs, fmt.Errorf("%w: %q", ErrInvalidBound, expr))
	}
	return day, ok
}
