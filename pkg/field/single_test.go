package field_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/model"
)

func TestNewSingleRejectsWrongElements(t *testing.T) {
	if _, err := field.NewSingle(model.Element{Type: model.ElementTypeText}, model.Empty(), testEnv(), nil); !errors.Is(err, field.ErrNotDateElement) {
		t.Fatalf("expected ErrNotDateElement, got %v", err)
	}
	ranged := model.Element{Type: model.ElementTypeDate, DateTimeConfig: &model.DateTimeConfig{IsRange: true}}
	if _, err := field.NewSingle(ranged, model.Empty(), testEnv(), nil); !errors.Is(err, field.ErrRangeElement) {
		t.Fatalf("expected ErrRangeElement, got %v", err)
	}
}

func TestSingleDateSelectClosesCalendar(t *testing.T) {
	rec := &recorder{}
	el := model.Element{Name: "due", Type: model.ElementTypeDate}
	s, err := field.NewSingle(el, model.Empty(), testEnv(), rec.onChange)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	s.OpenCalendar()
	if !s.SelectDate(day(12)) {
		t.Fatalf("expected selection to be accepted")
	}
	if s.CalendarOpen() {
		t.Fatalf("expected calendar to close after a date pick")
	}
	rec.expect(t, model.Single("2026-01-12"))
	if rec.names[0] != "due" {
		t.Fatalf("expected element name in change event, got %q", rec.names[0])
	}
	if got := s.DisplayValue(); got != "Jan 12, 2026" {
		t.Fatalf("unexpected display %q", got)
	}
}

func TestSingleDateTimeSelectClosesCalendar(t *testing.T) {
	rec := &recorder{}
	el := model.Element{Name: "meeting", Type: model.ElementTypeDateTime}
	s, _ := field.NewSingle(el, model.Empty(), testEnv(), rec.onChange)

	s.OpenCalendar()
	if !s.SelectDate(day(12)) {
		t.Fatalf("expected selection to be accepted")
	}
	if s.CalendarOpen() {
		t.Fatalf("expected calendar to close after a datetime date pick")
	}
	rec.expect(t, model.Single("2026-01-12T11:00:00Z"))
}

func TestSingleDateTimeUsesRoundedDefaultTime(t *testing.T) {
	rec := &recorder{}
	el := model.Element{Name: "meeting", Type: model.ElementTypeDateTime}
	s, _ := field.NewSingle(el, model.Empty(), testEnv(), rec.onChange)

	s.SelectDate(day(12))
	rec.expect(t, model.Single("2026-01-12T11:00:00Z"))
}

func TestSingleDateTimeKeepsExistingTime(t *testing.T) {
	rec := &recorder{}
	el := model.Element{Name: "meeting", Type: model.ElementTypeDateTime}
	s, _ := field.NewSingle(el, model.Single("2026-01-11T16:45:00Z"), testEnv(), rec.onChange)

	s.SelectDate(day(14))
	rec.expect(t, model.Single("2026-01-14T16:45:00Z"))
}

func TestSingleTimeIgnoredWithoutDate(t *testing.T) {
	rec := &recorder{}
	el := model.Element{Name: "meeting", Type: model.ElementTypeDateTime}
	s, _ := field.NewSingle(el, model.Empty(), testEnv(), rec.onChange)

	if s.SelectTime(datetime.TimeOfDay{Hour: 9}) {
		t.Fatalf("expected time without date to be ignored")
	}
	rec.expect(t)

	s.SelectDate(day(12))
	s.OpenTimeMenu()
	if !s.SelectTime(datetime.TimeOfDay{Hour: 9, Minute: 30}) {
		t.Fatalf("expected time with date to be accepted")
	}
	if s.TimeMenuOpen() {
		t.Fatalf("expected time menu to close")
	}
	rec.expect(t, model.Single("2026-01-12T11:00:00Z"), model.Single("2026-01-12T09:30:00Z"))
}

func TestSingleMinMaxRelativeBounds(t *testing.T) {
	el := model.Element{Name: "due", Type: model.ElementTypeDate, MinDate: "today", MaxDate: "+7d"}
	s, _ := field.NewSingle(el, model.Empty(), testEnv(), nil)

	cases := map[int]bool{9: true, 10: false, 17: false, 18: true}
	for d, want := range cases {
		if got := s.IsDisabled(day(d)); got != want {
			t.Fatalf("IsDisabled(2026-01-%02d) = %v, want %v", d, got, want)
		}
	}
	if s.SelectDate(day(18)) {
		t.Fatalf("expected disabled day to be rejected")
	}
	if got := s.Value(); got.Kind() != model.ValueEmpty {
		t.Fatalf("expected value untouched, got %s", got)
	}
}

func TestSingleUnresolvableBoundsAreIgnored(t *testing.T) {
	el := model.Element{Name: "due", Type: model.ElementTypeDate, MinDate: "someday"}
	s, _ := field.NewSingle(el, model.Empty(), testEnv(), nil)
	if s.IsDisabled(day(1)) {
		t.Fatalf("expected garbage min_date to leave days enabled")
	}
}

func TestSingleTimeOptionsHidePastWhenMinIsToday(t *testing.T) {
	el := model.Element{Name: "meeting", Type: model.ElementTypeDateTime, MinDate: "today"}
	s, _ := field.NewSingle(el, model.Empty(), testEnv(), nil)

	options := s.TimeOptions()
	if len(options) == 0 || options[0].Label != "11:00 AM" {
		t.Fatalf("expected options to start at 11:00 AM, got %#v", options)
	}

	open := model.Element{Name: "meeting", Type: model.ElementTypeDateTime, MinDate: "-30d"}
	s2, _ := field.NewSingle(open, model.Empty(), testEnv(), nil)
	if got := s2.TimeOptions(); len(got) != 24 || got[0].Label != "12:00 AM" {
		t.Fatalf("expected the full day when past dates are allowed, got %d options", len(got))
	}
}

func TestSingleMountResolvesDefaultOnce(t *testing.T) {
	rec := &recorder{}
	el := model.Element{Name: "due", Type: model.ElementTypeDate, Default: "+1d"}
	s, _ := field.NewSingle(el, model.Empty(), testEnv(), rec.onChange)

	if !s.Mount() {
		t.Fatalf("expected first mount to apply the default")
	}
	if s.Mount() {
		t.Fatalf("expected second mount to be a no-op")
	}
	s.Sync(s.Value())
	rec.expect(t, model.Single("2026-01-11"))
	if diff := cmp.Diff(model.Single("2026-01-11"), s.Value()); diff != "" {
		t.Fatalf("value changed across re-render (-want +got):\n%s", diff)
	}
}

func TestSingleMountKeepsExistingValue(t *testing.T) {
	rec := &recorder{}
	el := model.Element{Name: "due", Type: model.ElementTypeDate, Default: "today"}
	s, _ := field.NewSingle(el, model.Single("2026-02-01"), testEnv(), rec.onChange)

	if s.Mount() {
		t.Fatalf("expected mount not to override a value")
	}
	rec.expect(t)
}

func TestSingleMountUnparseableDefaultStaysEmpty(t *testing.T) {
	rec := &recorder{}
	el := model.Element{Name: "due", Type: model.ElementTypeDate, Default: "next week-ish"}
	s, _ := field.NewSingle(el, model.Empty(), testEnv(), rec.onChange)

	if s.Mount() {
		t.Fatalf("expected unparseable default to be ignored")
	}
	rec.expect(t)
}

func TestSingleMountSkipsDisabledDefault(t *testing.T) {
	cases := []model.Element{
		{Name: "due", Type: model.ElementTypeDate, Default: "-1d", MinDate: "today"},
		{Name: "due", Type: model.ElementTypeDate, Default: "+10d", MaxDate: "+7d"},
		{Name: "meeting", Type: model.ElementTypeDateTime, Default: "2026-01-09T09:00:00Z", MinDate: "today"},
	}
	for _, el := range cases {
		rec := &recorder{}
		s, _ := field.NewSingle(el, model.Empty(), testEnv(), rec.onChange)
		if s.Mount() {
			t.Fatalf("expected default %q outside the bounds to be ignored", el.Default)
		}
		rec.expect(t)
		if !s.Value().IsEmpty() {
			t.Fatalf("expected empty value, got %s", s.Value())
		}
	}
}

func TestSingleDateTimeRelativeDefault(t *testing.T) {
	rec := &recorder{}
	el := model.Element{
		Name:           "meeting",
		Type:           model.ElementTypeDateTime,
		Default:        "+1d",
		DateTimeConfig: &model.DateTimeConfig{TimeInterval: 30},
	}
	s, _ := field.NewSingle(el, model.Empty(), testEnv(), rec.onChange)
	s.Mount()
	rec.expect(t, model.Single("2026-01-11T10:30:00Z"))
}

func TestSingleLocationTimezone(t *testing.T) {
	rec := &recorder{}
	el := model.Element{
		Name:           "call",
		Type:           model.ElementTypeDateTime,
		DateTimeConfig: &model.DateTimeConfig{LocationTimezone: "America/New_York"},
	}
	env := testEnv()
	env.UserTimezone = "Europe/Paris"
	s, _ := field.NewSingle(el, model.Empty(), env, rec.onChange)

	if got := s.Location().String(); got != "America/New_York" {
		t.Fatalf("expected pinned zone, got %s", got)
	}
	if got := s.TimezoneIndicator(); got != "Times in EST" {
		t.Fatalf("unexpected indicator %q", got)
	}

	// 10:07 UTC is 05:07 in New York, rounded to 06:00 local, 11:00 UTC.
	s.SelectDate(day(12))
	rec.expect(t, model.Single("2026-01-12T11:00:00Z"))

	plain := model.Element{Name: "call", Type: model.ElementTypeDateTime}
	s2, _ := field.NewSingle(plain, model.Empty(), env, nil)
	if got := s2.TimezoneIndicator(); got != "" {
		t.Fatalf("expected no indicator without a pinned zone, got %q", got)
	}
}

func TestSingleManualTimeEntry(t *testing.T) {
	rec := &recorder{}
	el := model.Element{
		Name:           "meeting",
		Type:           model.ElementTypeDateTime,
		DateTimeConfig: &model.DateTimeConfig{AllowManualTimeEntry: true},
	}
	s, _ := field.NewSingle(el, model.Single("2026-01-12T08:00:00Z"), testEnv(), rec.onChange)
	if !s.ManualTimeEntry() {
		t.Fatalf("expected manual time entry")
	}
	if got := s.TimeText(); got != "8:00 AM" {
		t.Fatalf("expected synced text, got %q", got)
	}

	s.TypeTime("abc")
	if s.BlurTime() {
		t.Fatalf("expected abc to be rejected")
	}
	if !s.TimeError() {
		t.Fatalf("expected error flag")
	}
	rec.expect(t)

	s.TypeTime("2:30pm")
	if s.TimeError() {
		t.Fatalf("expected error to clear on a parsable keystroke")
	}
	if !s.BlurTime() {
		t.Fatalf("expected 2:30pm to be accepted")
	}
	if got := s.TimeText(); got != "2:30 PM" {
		t.Fatalf("unexpected reformatted text %q", got)
	}
	rec.expect(t, model.Single("2026-01-12T14:30:00Z"))
}

func TestSingleClear(t *testing.T) {
	rec := &recorder{}
	el := model.Element{Name: "due", Type: model.ElementTypeDate, Optional: true}
	s, _ := field.NewSingle(el, model.Single("2026-01-12"), testEnv(), rec.onChange)

	if !s.Clear() {
		t.Fatalf("expected clear to emit")
	}
	if s.Clear() {
		t.Fatalf("expected clearing an empty field to be a no-op")
	}
	rec.expect(t, model.Empty())
}

func TestSingleSyncRejectsMalformed(t *testing.T) {
	el := model.Element{Name: "due", Type: model.ElementTypeDate}
	s, _ := field.NewSingle(el, model.Single("2026-13-40"), testEnv(), nil)
	if _, ok := s.Time(); ok {
		t.Fatalf("expected malformed value to be dropped")
	}
	if got := s.Placeholder(); got != "Select a date" {
		t.Fatalf("unexpected placeholder %q", got)
	}
}
