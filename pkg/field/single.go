package field

import (
	"time"

	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/model"
	"github.com/goliatone/go-datefield/pkg/timeinput"
)

// Single controls a date or datetime element holding one value.
type Single struct {
	base

	value        time.Time
	has          bool
	calendarOpen bool
	timeMenuOpen bool
	timeInput    *timeinput.Input
}

var _ Controller = (*Single)(nil)

// NewSingle builds a controller for a non-range date or datetime element,
// seeded with the value the host currently holds.
func NewSingle(el model.Element, current model.Value, env Env, onChange ChangeFunc) (*Single, error) {
	if !el.IsDateKind() {
		return nil, ErrNotDateElement
	}
	if el.IsRange() {
		return nil, ErrRangeElement
	}
	s := &Single{base: newBase(el, env, onChange)}
	if el.Kind() == model.KindDateTime && el.AllowManualTimeEntry() {
		s.timeInput = timeinput.NewInput(env.Use24Hour)
	}
	s.Sync(current)
	return s, nil
}

// Mount resolves the configured default when the field has no value and
// emits it. Only the first call has any effect.
func (s *Single) Mount() bool {
	if s.mounted {
		return false
	}
	s.mounted = true
	if s.has {
		return false
	}
	t, ok := s.resolveDefault()
	if !ok {
		return false
	}
	s.set(t)
	s.emit(s.Value())
	return true
}

// Sync replaces the held value with the host's copy without emitting.
// Unparseable or non-scalar values clear the field.
func (s *Single) Sync(v model.Value) {
	s.has = false
	s.value = time.Time{}
	if v.Kind() == model.ValueSingle {
		if t, ok := s.parse(v.Text()); ok {
			s.value, s.has = t, true
		}
	}
	s.syncInput()
}

// Value returns the canonical value.
func (s *Single) Value() model.Value {
	if !s.has {
		return model.Empty()
	}
	return model.Single(s.serialize(s.value))
}

// Time returns the held value in the field zone.
func (s *Single) Time() (time.Time, bool) { return s.value, s.has }

// OpenCalendar shows the day picker.
func (s *Single) OpenCalendar() { s.calendarOpen = true }

// CloseCalendar hides the day picker.
func (s *Single) CloseCalendar() { s.calendarOpen = false }

// CalendarOpen reports whether the day picker is visible.
func (s *Single) CalendarOpen() bool { return s.calendarOpen }

// OpenTimeMenu shows the time menu of datetime fields.
func (s *Single) OpenTimeMenu() {
	if s.kind() == model.KindDateTime && s.timeInput == nil {
		s.timeMenuOpen = true
	}
}

// TimeMenuOpen reports whether the time menu is visible.
func (s *Single) TimeMenuOpen() bool { return s.timeMenuOpen }

// IsDisabled reports whether day cannot be picked.
func (s *Single) IsDisabled(day datetime.Date) bool { return s.bounds.disabled(day) }

// SelectDate handles a calendar click. Datetime fields keep the current time
// of day, or take the rounded current time when empty. The calendar closes
// after the pick.
func (s *Single) SelectDate(day datetime.Date) bool {
	if s.IsDisabled(day) {
		return false
	}
	tod := s.defaultTime()
	if s.has && s.kind() == model.KindDateTime {
		tod = datetime.ClockOf(s.value)
	}
	s.set(day.At(tod, s.loc))
	s.calendarOpen = false
	s.emit(s.Value())
	return true
}

// SelectTime handles a time menu pick. It is ignored until a date is set.
func (s *Single) SelectTime(tod datetime.TimeOfDay) bool {
	if s.kind() != model.KindDateTime || !s.has || !tod.Valid() {
		return false
	}
	s.set(datetime.DateOf(s.value).At(tod, s.loc))
	s.timeMenuOpen = false
	s.emit(s.Value())
	return true
}

// TypeTime records a keystroke in the manual time box.
func (s *Single) TypeTime(text string) {
	if s.timeInput != nil {
		s.timeInput.Type(text)
	}
}

// BlurTime commits the manual time box. A parsed time is applied like
// SelectTime; the box is reformatted even when no date is set yet.
func (s *Single) BlurTime() bool {
	if s.timeInput == nil {
		return false
	}
	tod, ok := s.timeInput.Blur()
	if !ok {
		return false
	}
	return s.SelectTime(tod)
}

// TimeText returns the manual time box contents.
func (s *Single) TimeText() string {
	if s.timeInput == nil {
		return ""
	}
	return s.timeInput.Text()
}

// TimeError reports whether the manual time box shows a parse error.
func (s *Single) TimeError() bool {
	return s.timeInput != nil && s.timeInput.HasError()
}

// ManualTimeEntry reports whether the time is typed rather than picked.
func (s *Single) ManualTimeEntry() bool { return s.timeInput != nil }

// TimeOptions lists the time menu for the selected day, or for today when
// empty.
func (s *Single) TimeOptions() []TimeOption {
	day := s.bounds.today
	if s.has {
		day = datetime.DateOf(s.value)
	}
	return s.timeOptions(day, nil)
}

// Clear empties the field.
func (s *Single) Clear() bool {
	if !s.has {
		return false
	}
	s.has = false
	s.value = time.Time{}
	s.syncInput()
	s.emit(model.Empty())
	return true
}

// DisplayValue renders the value for the input box, "" when empty.
func (s *Single) DisplayValue() string {
	if !s.has {
		return ""
	}
	return s.display(s.value)
}

func (s *Single) set(t time.Time) {
	s.value, s.has = t, true
	s.syncInput()
}

func (s *Single) syncInput() {
	if s.timeInput == nil {
		return
	}
	if s.has {
		s.timeInput.SetValue(datetime.ClockOf(s.value))
		return
	}
	s.timeInput.Reset()
}
