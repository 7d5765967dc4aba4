package field

import (
	"time"

	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/i18n"
	"github.com/goliatone/go-datefield/pkg/model"
	"github.com/goliatone/go-datefield/pkg/timeinput"
)

// Range controls a start/end pair where each side has its own calendar and,
// for datetime elements, its own time input.
//
// The value never inverts: the end day is after the start day, or equal to it
// when single-day ranges are allowed, and on the same day the end time is not
// earlier than the start time.
type Range struct {
	base

	start    time.Time
	end      time.Time
	hasStart bool
	hasEnd   bool

	startInput *timeinput.Input
	endInput   *timeinput.Input
}

var _ Controller = (*Range)(nil)

// NewRange builds a controller for a range element.
func NewRange(el model.Element, current model.Value, env Env, onChange ChangeFunc) (*Range, error) {
	if !el.IsDateKind() {
		return nil, ErrNotDateElement
	}
	if !el.IsRange() {
		return nil, ErrSingleElement
	}
	r := &Range{base: newBase(el, env, onChange)}
	if el.Kind() == model.KindDateTime && el.AllowManualTimeEntry() {
		r.startInput = timeinput.NewInput(env.Use24Hour)
		r.endInput = timeinput.NewInput(env.Use24Hour)
	}
	r.Sync(current)
	return r, nil
}

// Mount resolves the configured default into the start when the field is
// empty. Only the first call has any effect.
func (r *Range) Mount() bool {
	if r.mounted {
		return false
	}
	r.mounted = true
	if r.hasStart {
		return false
	}
	t, ok := r.resolveDefault()
	if !ok {
		return false
	}
	r.setStart(t)
	r.emit(r.Value())
	return true
}

// Sync replaces the held range with the host's copy without emitting. An end
// that fails to parse or precedes the start is dropped.
func (r *Range) Sync(v model.Value) {
	r.hasStart, r.hasEnd = false, false
	r.start, r.end = time.Time{}, time.Time{}
	if v.Kind() == model.ValueRange {
		if t, ok := r.parse(v.Start()); ok {
			r.start, r.hasStart = t, true
			if raw, present := v.End(); present {
				if e, ok := r.parse(raw); ok && !e.Before(t) {
					r.end, r.hasEnd = e, true
				}
			}
		}
	}
	r.syncInputs()
}

// Value returns Empty, {start} or {start, end}.
func (r *Range) Value() model.Value {
	if !r.hasStart {
		return model.Empty()
	}
	start := r.serialize(r.start)
	if !r.hasEnd {
		return model.RangeStart(start)
	}
	return model.Range(start, r.serialize(r.end))
}

// Start returns the start in the field zone.
func (r *Range) Start() (time.Time, bool) { return r.start, r.hasStart }

// End returns the end in the field zone.
func (r *Range) End() (time.Time, bool) { return r.end, r.hasEnd }

// StartDisabled reports whether day cannot be picked as the start.
func (r *Range) StartDisabled(day datetime.Date) bool { return r.bounds.disabled(day) }

// EndDisabled reports whether day cannot be picked as the end: days before
// the start, and the start day itself unless single-day ranges are allowed.
func (r *Range) EndDisabled(day datetime.Date) bool {
	if r.bounds.disabled(day) {
		return true
	}
	if !r.hasStart {
		return false
	}
	startDay := datetime.DateOf(r.start)
	if day.Before(startDay) {
		return true
	}
	return day == startDay && !r.element.AllowSingleDayRange()
}

// SelectStartDate sets the start day, keeping the start time when one is
// set. A start on or after the end day discards the end.
func (r *Range) SelectStartDate(day datetime.Date) bool {
	if r.StartDisabled(day) {
		return false
	}
	tod := r.defaultTime()
	if r.hasStart && r.kind() == model.KindDateTime {
		tod = datetime.ClockOf(r.start)
	}
	r.setStart(day.At(tod, r.loc))
	if r.hasEnd && !datetime.DateOf(r.end).After(day) {
		r.dropEnd()
	}
	r.emit(r.Value())
	return true
}

// SelectEndDate sets the end day. It is ignored without a start. On the
// start day the end time is raised to the start time if needed.
func (r *Range) SelectEndDate(day datetime.Date) bool {
	if !r.hasStart || r.EndDisabled(day) {
		return false
	}
	tod := r.defaultTime()
	if r.hasEnd && r.kind() == model.KindDateTime {
		tod = datetime.ClockOf(r.end)
	}
	end := day.At(tod, r.loc)
	if end.Before(r.start) {
		end = day.At(datetime.ClockOf(r.start), r.loc)
	}
	r.setEnd(end)
	r.emit(r.Value())
	return true
}

// SelectStartTime changes the start time. Moving the start past a same-day
// end discards the end.
func (r *Range) SelectStartTime(tod datetime.TimeOfDay) bool {
	if r.kind() != model.KindDateTime || !r.hasStart || !tod.Valid() {
		return false
	}
	r.setStart(datetime.DateOf(r.start).At(tod, r.loc))
	if r.hasEnd && r.end.Before(r.start) {
		r.dropEnd()
	}
	r.emit(r.Value())
	return true
}

// SelectEndTime changes the end time. It is ignored without an end day and
// rejected when it would put the end before the start.
func (r *Range) SelectEndTime(tod datetime.TimeOfDay) bool {
	if r.kind() != model.KindDateTime || !r.hasStart || !r.hasEnd || !tod.Valid() {
		return false
	}
	end := datetime.DateOf(r.end).At(tod, r.loc)
	if end.Before(r.start) {
		return false
	}
	r.setEnd(end)
	r.emit(r.Value())
	return true
}

// TypeStartTime records a keystroke in the manual start time box.
func (r *Range) TypeStartTime(text string) {
	if r.startInput != nil {
		r.startInput.Type(text)
	}
}

// BlurStartTime commits the manual start time box.
func (r *Range) BlurStartTime() bool {
	if r.startInput == nil {
		return false
	}
	tod, ok := r.startInput.Blur()
	if !ok {
		return false
	}
	return r.SelectStartTime(tod)
}

// TypeEndTime records a keystroke in the manual end time box.
func (r *Range) TypeEndTime(text string) {
	if r.endInput != nil {
		r.endInput.Type(text)
	}
}

// BlurEndTime commits the manual end time box.
func (r *Range) BlurEndTime() bool {
	if r.endInput == nil {
		return false
	}
	tod, ok := r.endInput.Blur()
	if !ok {
		return false
	}
	if r.SelectEndTime(tod) {
		return true
	}
	syncInput(r.endInput, r.end, r.hasEnd)
	return false
}

// ManualTimeEntry reports whether times are typed rather than picked.
func (r *Range) ManualTimeEntry() bool { return r.startInput != nil }

// StartTimeText returns the manual start time box contents.
func (r *Range) StartTimeText() string {
	if r.startInput == nil {
		return ""
	}
	return r.startInput.Text()
}

// EndTimeText returns the manual end time box contents.
func (r *Range) EndTimeText() string {
	if r.endInput == nil {
		return ""
	}
	return r.endInput.Text()
}

// TimeErrors reports parse errors of the start and end time boxes.
func (r *Range) TimeErrors() (start, end bool) {
	if r.startInput == nil {
		return false, false
	}
	return r.startInput.HasError(), r.endInput.HasError()
}

// StartTimeOptions lists the start time menu.
func (r *Range) StartTimeOptions() []TimeOption {
	day := r.bounds.today
	if r.hasStart {
		day = datetime.DateOf(r.start)
	}
	return r.timeOptions(day, nil)
}

// EndTimeOptions lists the end time menu. On the start day, entries before
// the start time are left out.
func (r *Range) EndTimeOptions() []TimeOption {
	if !r.hasStart {
		return nil
	}
	day := datetime.DateOf(r.start)
	if r.hasEnd {
		day = datetime.DateOf(r.end)
	}
	if day == datetime.DateOf(r.start) {
		start := r.start
		return r.timeOptions(day, &start)
	}
	return r.timeOptions(day, nil)
}

// StartLabel and EndLabel title the two halves of the range.
func (r *Range) StartLabel() string {
	return i18n.Text(r.env.Locale, i18n.IDRangeStartLabel, nil)
}

func (r *Range) EndLabel() string {
	return i18n.Text(r.env.Locale, i18n.IDRangeEndLabel, nil)
}

// Clear empties the range.
func (r *Range) Clear() bool {
	if !r.hasStart {
		return false
	}
	r.hasStart, r.hasEnd = false, false
	r.start, r.end = time.Time{}, time.Time{}
	r.syncInputs()
	r.emit(model.Empty())
	return true
}

// DisplayValue renders "start - end", the start alone, or "".
func (r *Range) DisplayValue() string {
	if !r.hasStart {
		return ""
	}
	end := ""
	if r.hasEnd {
		end = r.display(r.end)
	}
	return datetime.FormatRange(r.display(r.start), end, r.hasEnd)
}

func (r *Range) setStart(t time.Time) {
	r.start, r.hasStart = t, true
	syncInput(r.startInput, r.start, r.hasStart)
}

func (r *Range) setEnd(t time.Time) {
	r.end, r.hasEnd = t, true
	syncInput(r.endInput, r.end, r.hasEnd)
}

func (r *Range) dropEnd() {
	r.end, r.hasEnd = time.Time{}, false
	syncInput(r.endInput, r.end, r.hasEnd)
}

func (r *Range) syncInputs() {
	syncInput(r.startInput, r.start, r.hasStart)
	syncInput(r.endInput, r.end, r.hasEnd)
}

func syncInput(in *timeinput.Input, t time.Time, ok bool) {
	if in == nil {
		return
	}
	if ok {
		in.SetValue(datetime.ClockOf(t))
		return
	}
	in.Reset()
}
