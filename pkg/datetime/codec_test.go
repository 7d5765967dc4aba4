package datetime_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/model"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %s: %v", name, err)
	}
	return loc
}

func TestDateRoundTripAcrossZones(t *testing.T) {
	zones := []string{"UTC", "America/New_York", "Asia/Tokyo", "Pacific/Kiritimati", "Pacific/Pago_Pago"}
	for _, zone := range zones {
		loc := mustLocation(t, zone)
		parsed, ok := datetime.Parse(model.KindDate, "2026-01-10", loc)
		if !ok {
			t.Fatalf("%s: parse failed", zone)
		}
		if parsed.Hour() != 0 || parsed.Minute() != 0 {
			t.Fatalf("%s: expected local midnight, got %s", zone, parsed)
		}
		if got := datetime.Serialize(parsed, false); got != "2026-01-10" {
			t.Fatalf("%s: round trip = %q", zone, got)
		}
	}
}

func TestDateTimeRoundTripForcesZeroSeconds(t *testing.T) {
	loc := mustLocation(t, "America/New_York")
	parsed, ok := datetime.Parse(model.KindDateTime, "2026-01-10T14:30:45Z", loc)
	if !ok {
		t.Fatalf("parse failed")
	}
	if parsed.Location() != loc {
		t.Fatalf("expected value converted into field zone, got %s", parsed.Location())
	}
	if parsed.Hour() != 9 || parsed.Minute() != 30 {
		t.Fatalf("expected 09:30 local, got %s", parsed)
	}
	if got := datetime.Serialize(parsed, true); got != "2026-01-10T14:30:00Z" {
		t.Fatalf("serialize = %q", got)
	}
	if got := datetime.Serialize(parsed, false); got != "2026-01-10" {
		t.Fatalf("date-only serialize = %q", got)
	}
}

func TestParseFailsClosed(t *testing.T) {
	cases := []struct {
		kind  model.Kind
		input string
	}{
		{model.KindDate, ""},
		{model.KindDate, "2026-1-10"},
		{model.KindDate, "2026-13-40"},
		{model.KindDate, "2026-02-30"},
		{model.KindDate, "2026-01-10T10:00:00Z"},
		{model.KindDate, " 2026-01-10"},
		{model.KindDateTime, "2026-01-10"},
		{model.KindDateTime, "2026-01-10T10:00:00+02:00"},
		{model.KindDateTime, "2026-01-10T25:00:00Z"},
		{model.KindDateTime, "2026-01-10 10:00:00Z"},
		{model.KindNone, "2026-01-10"},
	}
	for _, tc := range cases {
		if _, ok := datetime.Parse(tc.kind, tc.input, time.UTC); ok {
			t.Fatalf("expected %s %q to fail", tc.kind, tc.input)
		}
	}
}

func TestMatchesShapeWithoutValidity(t *testing.T) {
	if !datetime.MatchesDate("2026-13-40") {
		t.Fatalf("expected shape match for 2026-13-40")
	}
	if _, ok := datetime.ParseDate("2026-13-40"); ok {
		t.Fatalf("expected impossible date to be rejected")
	}
	if datetime.MatchesDateTime("2026-01-10T10:00Z") {
		t.Fatalf("expected missing seconds to be rejected")
	}
}

func TestNewDateRejectsOverflow(t *testing.T) {
	if _, ok := datetime.NewDate(2024, time.February, 29); !ok {
		t.Fatalf("expected leap day to be valid")
	}
	if _, ok := datetime.NewDate(2026, time.February, 29); ok {
		t.Fatalf("expected 2026-02-29 to be invalid")
	}
}

func TestDateOrdering(t *testing.T) {
	a := datetime.Date{Year: 2026, Month: time.January, Day: 31}
	b := a.AddDays(1)
	if b != (datetime.Date{Year: 2026, Month: time.February, Day: 1}) {
		t.Fatalf("unexpected next day %s", b)
	}
	if !a.Before(b) || !b.After(a) || a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Fatalf("expected %s before %s", a, b)
	}
	if !a.Equal(datetime.Date{Year: 2026, Month: time.January, Day: 31}) || a.Equal(b) {
		t.Fatal("unexpected equality")
	}
}
