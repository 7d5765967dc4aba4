package model_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/model"
)

func TestValueJSONShapes(t *testing.T) {
	cases := []struct {
		name  string
		value model.Value
		want  string
	}{
		{name: "empty", value: model.Empty(), want: `null`},
		{name: "single", value: model.Single("2026-01-10"), want: `"2026-01-10"`},
		{name: "range open", value: model.RangeStart("2026-01-10"), want: `{"start":"2026-01-10"}`},
		{name: "range complete", value: model.Range("2026-01-10", "2026-01-12"), want: `{"start":"2026-01-10","end":"2026-01-12"}`},
		{name: "range empty end", value: model.Range("2026-01-10", ""), want: `{"start":"2026-01-10","end":""}`},
		{name: "bool", value: model.Bool(true), want: `true`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := json.Marshal(tc.value)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(raw) != tc.want {
				t.Fatalf("marshal = %s, want %s", raw, tc.want)
			}

			var decoded model.Value
			if err := json.Unmarshal(raw, &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if diff := cmp.Diff(tc.value, decoded); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValueMissingEndDiffersFromEmptyEnd(t *testing.T) {
	open := model.RangeStart("2026-01-10")
	blank := model.Range("2026-01-10", "")

	if open.Equal(blank) {
		t.Fatalf("expected open range and empty-end range to differ")
	}
	if _, ok := open.End(); ok {
		t.Fatalf("expected open range to report no end")
	}
	if end, ok := blank.End(); !ok || end != "" {
		t.Fatalf("expected empty end to be present, got %q %v", end, ok)
	}
}

func TestValueIsEmpty(t *testing.T) {
	cases := map[string]struct {
		value model.Value
		want  bool
	}{
		"zero":           {model.Value{}, true},
		"blank single":   {model.Single(""), true},
		"single":         {model.Single("x"), false},
		"range no start": {model.Range("", "2026-01-10"), true},
		"range start":    {model.RangeStart("2026-01-10"), false},
		"false":          {model.Bool(false), true},
		"true":           {model.Bool(true), false},
	}
	for name, tc := range cases {
		if got := tc.value.IsEmpty(); got != tc.want {
			t.Fatalf("%s: IsEmpty() = %v, want %v", name, got, tc.want)
		}
	}
}

func TestValuesDecodeDialogSubmission(t *testing.T) {
	payload := `{"when":"2026-01-10T14:00:00Z","trip":{"start":"2026-01-10"},"count":3,"agree":false,"notes":null}`

	var values model.Values
	if err := json.Unmarshal([]byte(payload), &values); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := model.Values{
		"when":  model.Single("2026-01-10T14:00:00Z"),
		"trip":  model.RangeStart("2026-01-10"),
		"count": model.Single("3"),
		"agree": model.Bool(false),
		"notes": model.Empty(),
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if got := values.Get("missing"); got.Kind() != model.ValueEmpty {
		t.Fatalf("expected missing value to be empty, got %s", got.Kind())
	}
}

func TestElementAccessors(t *testing.T) {
	el := model.Element{
		Name:                "meeting",
		Type:                model.ElementTypeText,
		DateTimeConfig:      &model.DateTimeConfig{IsRange: true, AllowSingleDayRange: true},
		TimeIntervalMinutes: 15,
	}
	if el.IsRange() {
		t.Fatalf("expected range flag to be ignored on text elements")
	}
	if el.AllowSingleDayRange() {
		t.Fatalf("expected single day range to require a range element")
	}

	el.Type = model.ElementTypeDateTime
	if !el.IsRange() || !el.AllowSingleDayRange() {
		t.Fatalf("expected datetime range flags to apply")
	}
	if got := el.TimeInterval(); got != 15 {
		t.Fatalf("expected top-level interval fallback, got %d", got)
	}
	el.DateTimeConfig.TimeInterval = 30
	if got := el.TimeInterval(); got != 30 {
		t.Fatalf("expected config interval to win, got %d", got)
	}
	if got := (model.Element{}).TimeInterval(); got != model.DefaultTimeInterval {
		t.Fatalf("expected default interval, got %d", got)
	}
	if got := el.Layout(); got != model.RangeLayoutHorizontal {
		t.Fatalf("expected horizontal layout by default, got %s", got)
	}
}
