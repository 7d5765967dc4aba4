package field

import (
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-datefield/components/timezones"
	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/i18n"
	"github.com/goliatone/go-datefield/pkg/model"
)

var (
	ErrNotDateElement  = errors.New("field: element is not a date or datetime")
	ErrRangeElement    = errors.New("field: element collects a range")
	ErrSingleElement   = errors.New("field: element does not collect a range")
	ErrUnsupportedKind = errors.New("field: range picker only supports date elements")
)

// Env carries the ambient inputs every controller needs.
type Env struct {
	Now          func() time.Time
	UserTimezone string
	Locale       string
	Use24Hour    bool
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// ChangeFunc receives the element name and its new value.
type ChangeFunc func(name string, value model.Value)

// TimeOption is an entry of the time menu.
type TimeOption struct {
	Time  datetime.TimeOfDay
	Label string
}

// Controller is the surface shared by all field controllers.
type Controller interface {
	Element() model.Element
	Mount() bool
	Sync(value model.Value)
	Value() model.Value
	Clear() bool
	DisplayValue() string
}

// New picks the controller matching the element: RangePicker for date
// ranges, Range for datetime ranges, Single otherwise.
func New(el model.Element, current model.Value, env Env, onChange ChangeFunc) (Controller, error) {
	switch {
	case !el.IsDateKind():
		return nil, ErrNotDateElement
	case el.IsRange() && el.Kind() == model.KindDate:
		return NewRangePicker(el, current, env, onChange)
	case el.IsRange():
		return NewRange(el, current, env, onChange)
	default:
		return NewSingle(el, current, env, onChange)
	}
}

type base struct {
	element  model.Element
	env      Env
	onChange ChangeFunc
	loc      *time.Location
	bounds   bounds
	mounted  bool
}

func newBase(el model.Element, env Env, onChange ChangeFunc) base {
	loc := timezones.ResolveLocation(el.LocationTimezone(), env.UserTimezone)
	return base{
		element:  el,
		env:      env,
		onChange: onChange,
		loc:      loc,
		bounds:   newBounds(el, loc, env.now()),
	}
}

// Element returns the element definition.
func (b *base) Element() model.Element { return b.element }

// Today returns the current day in the field's timezone, as resolved at
// construction.
func (b *base) Today() datetime.Date { return b.bounds.today }

// Location returns the zone the field operates in.
func (b *base) Location() *time.Location { return b.loc }

// TimezoneIndicator returns the "Times in ..." note shown when the element is
// pinned to a location timezone, or "" when it is not.
func (b *base) TimezoneIndicator() string {
	if b.element.LocationTimezone() == "" {
		return ""
	}
	abbr := timezones.Abbreviation(b.loc, b.env.now())
	return i18n.Text(b.env.Locale, i18n.IDTimezoneIndicator, map[string]any{"timezone": abbr})
}

// Placeholder returns the element placeholder or the localized default.
func (b *base) Placeholder() string {
	if b.element.Placeholder != "" {
		return b.element.Placeholder
	}
	return i18n.Text(b.env.Locale, i18n.IDDatePlaceholder, nil)
}

func (b *base) emit(v model.Value) {
	if b.onChange != nil {
		b.onChange(b.element.Name, v)
	}
}

func (b *base) localNow() time.Time { return b.env.now().In(b.loc) }

func (b *base) kind() model.Kind { return b.element.Kind() }

func (b *base) parse(stored string) (time.Time, bool) {
	return datetime.Parse(b.kind(), stored, b.loc)
}

func (b *base) serialize(t time.Time) string {
	return datetime.SerializeKind(b.kind(), t)
}

// defaultTime is the time of day given to a freshly picked date.
func (b *base) defaultTime() datetime.TimeOfDay {
	if b.kind() != model.KindDateTime {
		return datetime.TimeOfDay{}
	}
	return datetime.RoundedTimeOfDay(b.localNow(), b.element.TimeInterval())
}

// resolveDefault turns the configured default into a time in the field zone.
// Datetime fields accept a canonical instant or a date expression, which gets
// the rounded current time. A default that lands on a day the calendar
// disables is dropped.
func (b *base) resolveDefault() (time.Time, bool) {
	expr := strings.TrimSpace(b.element.Default)
	if expr == "" {
		return time.Time{}, false
	}
	var t time.Time
	if b.kind() == model.KindDateTime {
		if instant, ok := datetime.ParseInstant(expr); ok {
			t = instant.In(b.loc)
		}
	}
	if t.IsZero() {
		d, ok := datetime.ResolveRelativeDate(expr, b.localNow())
		if !ok {
			return time.Time{}, false
		}
		t = d.At(b.defaultTime(), b.loc)
	}
	if b.bounds.disabled(datetime.DateOf(t)) {
		return time.Time{}, false
	}
	return t, true
}

func (b *base) display(t time.Time) string {
	if b.kind() == model.KindDateTime {
		return datetime.FormatDateTime(t, b.env.Locale, b.env.Use24Hour)
	}
	return datetime.FormatDate(datetime.DateOf(t), b.env.Locale)
}

func (b *base) timeOptions(day datetime.Date, after *time.Time) []TimeOption {
	slots := datetime.TimeOptions(day, b.loc, b.element.TimeInterval(), b.env.now(), b.bounds.allowPast)
	out := make([]TimeOption, 0, len(slots))
	for _, slot := range slots {
		if after != nil && slot.Before(*after) {
			continue
		}
		tod := datetime.ClockOf(slot)
		out = append(out, TimeOption{Time: tod, Label: datetime.FormatTime(tod, b.env.Use24Hour)})
	}
	return out
}
