package field_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/model"
)

func TestRangePickerRejectsDateTime(t *testing.T) {
	if _, err := field.NewRangePicker(rangeElement(model.ElementTypeDateTime, false), model.Empty(), testEnv(), nil); !errors.Is(err, field.ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
}

func TestRangePickerTwoClicks(t *testing.T) {
	rec := &recorder{}
	p, _ := field.NewRangePicker(rangeElement(model.ElementTypeDate, false), model.Empty(), testEnv(), rec.onChange)

	p.Open()
	p.ClickDay(day(12))
	if !p.IsOpen() {
		t.Fatalf("expected picker to stay open after the first click")
	}
	if p.ClickDay(day(12)) {
		t.Fatalf("expected same-day end to be rejected")
	}
	p.ClickDay(day(15))
	if p.IsOpen() {
		t.Fatalf("expected picker to close after the second click")
	}
	rec.expect(t, model.RangeStart("2026-01-12"), model.Range("2026-01-12", "2026-01-15"))
	if got := p.DisplayValue(); got != "Jan 12, 2026 - Jan 15, 2026" {
		t.Fatalf("unexpected display %q", got)
	}
}

func TestRangePickerResetsCompleteRange(t *testing.T) {
	rec := &recorder{}
	p, _ := field.NewRangePicker(rangeElement(model.ElementTypeDate, false), model.Range("2026-01-12", "2026-01-15"), testEnv(), rec.onChange)

	p.ClickDay(day(20))
	if !p.IsOpen() {
		t.Fatalf("expected picker open while the end is pending")
	}
	rec.expect(t, model.RangeStart("2026-01-20"))
}

func TestRangePickerSingleDayAllowed(t *testing.T) {
	rec := &recorder{}
	p, _ := field.NewRangePicker(rangeElement(model.ElementTypeDate, true), model.RangeStart("2026-01-12"), testEnv(), rec.onChange)

	if p.IsDisabled(day(12)) {
		t.Fatalf("expected the start day to be clickable")
	}
	p.ClickDay(day(12))
	rec.expect(t, model.Range("2026-01-12", "2026-01-12"))
}

func TestRangePickerClickBeforeStartCompletesBackwards(t *testing.T) {
	rec := &recorder{}
	p, _ := field.NewRangePicker(rangeElement(model.ElementTypeDate, false), model.RangeStart("2026-01-12"), testEnv(), rec.onChange)

	p.ClickDay(day(11))
	rec.expect(t, model.Range("2026-01-11", "2026-01-12"))
}

func TestRangePickerRespectsBounds(t *testing.T) {
	rec := &recorder{}
	el := rangeElement(model.ElementTypeDate, false)
	el.MinDate = "today"
	p, _ := field.NewRangePicker(el, model.Empty(), testEnv(), rec.onChange)

	if p.ClickDay(day(9)) {
		t.Fatalf("expected a day before min_date to be rejected")
	}
	rec.expect(t)
}

func TestRangePickerMountSkipsDisabledDefault(t *testing.T) {
	rec := &recorder{}
	el := rangeElement(model.ElementTypeDate, false)
	el.Default = "-1d"
	el.MinDate = "today"
	p, _ := field.NewRangePicker(el, model.Empty(), testEnv(), rec.onChange)
	if p.Mount() {
		t.Fatalf("expected a start default before min_date to be ignored")
	}
	rec.expect(t)
}

func TestNewPicksController(t *testing.T) {
	cases := []struct {
		el   model.Element
		want string
	}{
		{model.Element{Type: model.ElementTypeDate}, "*field.Single"},
		{rangeElement(model.ElementTypeDate, false), "*field.RangePicker"},
		{rangeElement(model.ElementTypeDateTime, false), "*field.Range"},
	}
	for _, tc := range cases {
		c, err := field.New(tc.el, model.Empty(), testEnv(), nil)
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		var got string
		switch c.(type) {
		case *field.Single:
			got = "*field.Single"
		case *field.RangePicker:
			got = "*field.RangePicker"
		case *field.Range:
			got = "*field.Range"
		}
		if got != tc.want {
			t.Fatalf("New(%s range=%v) = %s, want %s", tc.el.Type, tc.el.IsRange(), got, tc.want)
		}
	}
	if _, err := field.New(model.Element{Type: model.ElementTypeText}, model.Empty(), testEnv(), nil); !errors.Is(err, field.ErrNotDateElement) {
		t.Fatalf("expected ErrNotDateElement, got %v", err)
	}
}
