package field

import (
	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/model"
)

// RangePicker controls a date range collected on one calendar. The first
// click sets the start and keeps the calendar open, the second click sets the
// end and closes it, and a click on a complete range starts over.
type RangePicker struct {
	base

	start    datetime.Date
	end      datetime.Date
	hasStart bool
	hasEnd   bool
	open     bool
}

var _ Controller = (*RangePicker)(nil)

// NewRangePicker builds a picker for a date range element.
func NewRangePicker(el model.Element, current model.Value, env Env, onChange ChangeFunc) (*RangePicker, error) {
	if !el.IsDateKind() {
		return nil, ErrNotDateElement
	}
	if !el.IsRange() {
		return nil, ErrSingleElement
	}
	if el.Kind() != model.KindDate {
		return nil, ErrUnsupportedKind
	}
	p := &RangePicker{base: newBase(el, env, onChange)}
	p.Sync(current)
	return p, nil
}

// Mount resolves the configured default into the start when the field is
// empty. Only the first call has any effect.
func (p *RangePicker) Mount() bool {
	if p.mounted {
		return false
	}
	p.mounted = true
	if p.hasStart {
		return false
	}
	t, ok := p.resolveDefault()
	if !ok {
		return false
	}
	p.start, p.hasStart = datetime.DateOf(t), true
	p.emit(p.Value())
	return true
}

// Sync replaces the held range with the host's copy without emitting.
func (p *RangePicker) Sync(v model.Value) {
	p.hasStart, p.hasEnd = false, false
	p.start, p.end = datetime.Date{}, datetime.Date{}
	if v.Kind() != model.ValueRange {
		return
	}
	start, ok := datetime.ParseDate(v.Start())
	if !ok {
		return
	}
	p.start, p.hasStart = start, true
	if raw, present := v.End(); present {
		if end, ok := datetime.ParseDate(raw); ok && !end.Before(start) {
			p.end, p.hasEnd = end, true
		}
	}
}

// Value returns Empty, {start} or {start, end}.
func (p *RangePicker) Value() model.Value {
	switch {
	case !p.hasStart:
		return model.Empty()
	case !p.hasEnd:
		return model.RangeStart(p.start.String())
	default:
		return model.Range(p.start.String(), p.end.String())
	}
}

// Open shows the calendar.
func (p *RangePicker) Open() { p.open = true }

// Close hides the calendar.
func (p *RangePicker) Close() { p.open = false }

// IsOpen reports whether the calendar is visible.
func (p *RangePicker) IsOpen() bool { return p.open }

// IsDisabled reports whether day cannot be clicked. While the end is pending
// the start day is disabled unless single-day ranges are allowed.
func (p *RangePicker) IsDisabled(day datetime.Date) bool {
	if p.bounds.disabled(day) {
		return true
	}
	return p.hasStart && !p.hasEnd && day == p.start && !p.element.AllowSingleDayRange()
}

// ClickDay handles a calendar click. Clicking before a pending start
// completes the range backwards.
func (p *RangePicker) ClickDay(day datetime.Date) bool {
	if p.IsDisabled(day) {
		return false
	}
	switch {
	case !p.hasStart || p.hasEnd:
		p.start, p.hasStart = day, true
		p.end, p.hasEnd = datetime.Date{}, false
		p.open = true
	case day.Before(p.start):
		p.start, p.end, p.hasEnd = day, p.start, true
		p.open = false
	default:
		p.end, p.hasEnd = day, true
		p.open = false
	}
	p.emit(p.Value())
	return true
}

// Clear empties the range.
func (p *RangePicker) Clear() bool {
	if !p.hasStart {
		return false
	}
	p.hasStart, p.hasEnd = false, false
	p.start, p.end = datetime.Date{}, datetime.Date{}
	p.emit(model.Empty())
	return true
}

// DisplayValue renders "start - end", the start alone, or "".
func (p *RangePicker) DisplayValue() string {
	if !p.hasStart {
		return ""
	}
	end := ""
	if p.hasEnd {
		end = datetime.FormatDate(p.end, p.env.Locale)
	}
	return datetime.FormatRange(datetime.FormatDate(p.start, p.env.Locale), end, p.hasEnd)
}
