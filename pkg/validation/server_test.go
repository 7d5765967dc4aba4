package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/model"
)

func TestErrorsMatchElements(t *testing.T) {
	elements := []model.Element{{Name: "start_date"}, {Name: "notes"}}

	if ErrorsMatchElements(nil, elements) {
		t.Fatal("nil errors should not match")
	}
	if ErrorsMatchElements(map[string]string{"unknown": "bad"}, elements) {
		t.Fatal("unknown names should not match")
	}
	if !ErrorsMatchElements(map[string]string{"unknown": "bad", "notes": "too long"}, elements) {
		t.Fatal("expected a match when one name is known")
	}
}

func TestInterpretResponse(t *testing.T) {
	d := model.Dialog{Elements: []model.Element{
		{Name: "start_date", Type: model.ElementTypeDate},
		{Name: "trip", Type: model.ElementTypeDate, DateTimeConfig: &model.DateTimeConfig{IsRange: true}},
	}}

	tests := []struct {
		name string
		resp SubmitResponse
		want SubmitOutcome
	}{
		{
			name: "empty response completes",
			want: SubmitOutcome{Complete: true},
		},
		{
			name: "unknown names are dropped",
			resp: SubmitResponse{Errors: map[string]string{"ghost": "nope", "other": "x"}},
			want: SubmitOutcome{Dropped: []string{"ghost", "other"}, Complete: true},
		},
		{
			name: "known and wrapped paths",
			resp: SubmitResponse{Errors: map[string]string{
				"/submission/start_date": "Too early",
				"trip.end":               "End is required",
				"ghost":                  "nope",
			}},
			want: SubmitOutcome{
				Fields: map[string]string{
					"start_date": "Too early",
					"trip":       "End is required",
				},
				Dropped: []string{"ghost"},
			},
		},
		{
			name: "generic error keeps dialog open",
			resp: SubmitResponse{
				Error:  "Service unavailable",
				Errors: map[string]string{"__all__": "Try again later"},
			},
			want: SubmitOutcome{Form: []string{"Service unavailable", "Try again later"}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := InterpretResponse(d, tc.resp)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterServerErrors(t *testing.T) {
	d := model.Dialog{Elements: []model.Element{{Name: "start_date", Type: model.ElementTypeDate}}}

	got := FilterServerErrors(d, map[string]string{
		"submission.start_date": "Pick a weekday.",
		"nonexistent":           "ignored",
	})
	want := map[string]string{"start_date": "Pick a weekday."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filtered errors mismatch (-want +got):\n%s", diff)
	}

	if got := FilterServerErrors(d, map[string]string{"nonexistent": "ignored"}); len(got) != 0 {
		t.Fatalf("expected no errors, got %v", got)
	}
}
