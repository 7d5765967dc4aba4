package dialog

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-datefield/pkg/model"
	"github.com/goliatone/go-datefield/pkg/testsupport"
)

func TestLoadSanitisesYAML(t *testing.T) {
	data := testsupport.MustReadFixture(t, "testdata/dialogs/trip.yaml")

	got, err := Load(data, "trip.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	golden := "testdata/golden/plan_trip.json"
	testsupport.WriteGolden(t, golden, got)
	want := testsupport.MustLoadDialog(t, golden)
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("dialog mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAccessors(t *testing.T) {
	got, err := Load(testsupport.MustReadFixture(t, "testdata/dialogs/trip.yaml"), "trip.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	kickoff, ok := got.Element("kickoff")
	if !ok {
		t.Fatal("expected kickoff element")
	}
	if kickoff.TimeInterval() != 15 {
		t.Fatalf("expected top-level interval fallback 15, got %d", kickoff.TimeInterval())
	}
	if kickoff.IsRange() {
		t.Fatal("kickoff should not be a range")
	}

	dates, _ := got.Element("travel_dates")
	if !dates.IsRange() || dates.Layout() != model.RangeLayoutVertical {
		t.Fatalf("unexpected range config %+v", dates.DateTimeConfig)
	}
}

func TestLoadRejectsEmptyAndGarbage(t *testing.T) {
	if _, err := Load([]byte("  \n"), "blank.yaml"); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := Load([]byte("elements: [unterminated"), "bad.yaml"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCheck(t *testing.T) {
	base := func(elements ...model.Element) model.Dialog {
		return model.Dialog{Title: "T", Elements: elements}
	}

	tests := []struct {
		name   string
		dialog model.Dialog
		want   []error
	}{
		{
			name:   "valid",
			dialog: base(model.Element{Name: "when", Type: model.ElementTypeDate, MinDate: "2026-01-01", MaxDate: "+1m"}),
		},
		{
			name:   "missing title",
			dialog: model.Dialog{Elements: []model.Element{{Name: "a", Type: model.ElementTypeText}}},
			want:   []error{ErrMissingTitle},
		},
		{
			name: "duplicate and unnamed",
			dialog: base(
				model.Element{Name: "a", Type: model.ElementTypeText},
				model.Element{Name: "a", Type: model.ElementTypeText},
				model.Element{Type: model.ElementTypeText},
			),
			want: []error{ErrDuplicateElement, ErrMissingName},
		},
		{
			name:   "unknown type",
			dialog: base(model.Element{Name: "a", Type: "slider"}),
			want:   []error{ErrUnknownType},
		},
		{
			name:   "radio without options",
			dialog: base(model.Element{Name: "a", Type: model.ElementTypeRadio}),
			want:   []error{ErrMissingOptions},
		},
		{
			name:   "dynamic select needs no options",
			dialog: base(model.Element{Name: "tz", Type: model.ElementTypeSelect, DataSource: model.DataSourceDynamic}),
		},
		{
			name: "bad interval and timezone",
			dialog: base(model.Element{
				Name:                "a",
				Type:                model.ElementTypeDateTime,
				TimeIntervalMinutes: 2000,
				DateTimeConfig:      &model.DateTimeConfig{LocationTimezone: "Mars/Olympus"},
			}),
			want: []error{ErrInvalidInterval, ErrInvalidTimezone},
		},
		{
			name:   "bad bound",
			dialog: base(model.Element{Name: "a", Type: model.ElementTypeDate, MinDate: "someday"}),
			want:   []error{ErrInvalidBound},
		},
		{
			name:   "inverted literal bounds",
			dialog: base(model.Element{Name: "a", Type: model.ElementTypeDate, MinDate: "2026-02-01", MaxDate: "2026-01-01"}),
			want:   []error{ErrInvertedBounds},
		},
		{
			name:   "bounds ignored on text",
			dialog: base(model.Element{Name: "a", Type: model.ElementTypeText, MinDate: "someday"}),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := Check(tc.dialog)
			if len(tc.want) == 0 {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %v, got nil", tc.want)
			}
			for _, want := range tc.want {
				if !errors.Is(err, want) {
					t.Fatalf("expected errors.Is(%v) in %v", want, err)
				}
			}
		})
	}
}

func TestLoadFS(t *testing.T) {
	store, err := LoadFS(os.DirFS("testdata/dialogs"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if got := store.IDs(); len(got) != 2 || got[0] != "plan_trip" || got[1] != "standup" {
		t.Fatalf("unexpected ids %v", got)
	}
	if src := store.Source("standup"); src != "standup.json" {
		t.Fatalf("unexpected source %q", src)
	}
	standup, ok := store.Dialog("standup")
	if !ok || len(standup.Elements) != 2 {
		t.Fatalf("unexpected standup dialog %+v", standup)
	}
}

func TestLoadFSCallbackFallbackAndDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"nested/review.yml": {Data: []byte("title: Review\nelements:\n  - name: due\n    display_name: Due\n    type: date\n")},
		"README.md":         {Data: []byte("not a dialog")},
	}
	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	d, ok := store.Dialog("review")
	if !ok || d.CallbackID != "review" {
		t.Fatalf("expected callback id from file name, got %+v", d)
	}

	fsys["archive/review.yaml"] = &fstest.MapFile{Data: fsys["nested/review.yml"].Data}
	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("expected duplicate callback id error")
	}

	var nilStore *Store
	if ids := nilStore.IDs(); ids != nil {
		t.Fatalf("expected nil ids, got %v", ids)
	}
}
