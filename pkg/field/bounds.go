package field

import (
	"time"

	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/model"
)

// bounds holds the selectable window resolved at construction. Relative
// min/max expressions are evaluated once against the field zone's today.
type bounds struct {
	today     datetime.Date
	min       datetime.Date
	max       datetime.Date
	hasMin    bool
	hasMax    bool
	allowPast bool
}

func newBounds(el model.Element, loc *time.Location, now time.Time) bounds {
	local := now.In(loc)
	b := bounds{today: datetime.DateOf(local), allowPast: true}
	if d, ok := datetime.ResolveRelativeDate(el.MinDate, local); ok {
		b.min, b.hasMin = d, true
		b.allowPast = d.Before(b.today)
	}
	if d, ok := datetime.ResolveRelativeDate(el.MaxDate, local); ok {
		b.max, b.hasMax = d, true
	}
	return b
}

func (b bounds) disabled(day datetime.Date) bool {
	if b.hasMin && day.Before(b.min) {
		return true
	}
	if b.hasMax && day.After(b.max) {
		return true
	}
	return !b.allowPast && day.Before(b.today)
}
