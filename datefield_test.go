package datefield_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield"
	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/model"
)

const tripYAML = `
callback_id: plan_trip
title: Plan trip
elements:
  - name: travel
    display_name: Travel dates
    type: date
    datetime_config:
      is_range: true
  - name: kickoff
    display_name: Kickoff
    type: datetime
    datetime_config:
      time_interval: 30
`

func TestQuickstart(t *testing.T) {
	d, err := datefield.LoadDialog([]byte(tripYAML), "trip.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	env := datefield.Env{
		Now:          func() time.Time { return time.Date(2026, time.January, 10, 10, 7, 0, 0, time.UTC) },
		UserTimezone: "UTC",
		Locale:       "en",
	}
	values := datefield.Values{}
	onChange := func(name string, v datefield.Value) { values[name] = v }

	travelEl, _ := d.Element("travel")
	ctrl, err := datefield.NewController(travelEl, model.Empty(), env, onChange)
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	picker, ok := ctrl.(*field.RangePicker)
	if !ok {
		t.Fatalf("expected a range picker for a date range, got %T", ctrl)
	}
	picker.ClickDay(datetime.Date{Year: 2026, Month: time.January, Day: 12})
	picker.ClickDay(datetime.Date{Year: 2026, Month: time.January, Day: 15})

	kickoffEl, _ := d.Element("kickoff")
	single, err := datefield.NewSingle(kickoffEl, model.Empty(), env, onChange)
	if err != nil {
		t.Fatalf("single: %v", err)
	}
	single.SelectDate(datetime.Date{Year: 2026, Month: time.January, Day: 12})

	want := datefield.Values{
		"travel":  model.Range("2026-01-12", "2026-01-15"),
		"kickoff": model.Single("2026-01-12T10:30:00Z"),
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if errs := datefield.ValidateDialog(d, values); len(errs) != 0 {
		t.Fatalf("expected a valid submission, got %v", errs)
	}

	outcome := datefield.InterpretResponse(d, datefield.SubmitResponse{
		Errors: map[string]string{"travel.end": "Too long."},
	})
	if outcome.Complete || outcome.Fields["travel"] != "Too long." {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}

func TestValidateReportsRangeIncomplete(t *testing.T) {
	el := datefield.Element{Name: "travel", Type: model.ElementTypeDate, DateTimeConfig: &datefield.DateTimeConfig{IsRange: true}}
	fe := datefield.Validate(el, model.RangeStart("2026-01-12"))
	if fe == nil || fe.ID != "interactive_dialog.error.range_incomplete" {
		t.Fatalf("expected range_incomplete, got %+v", fe)
	}
}
