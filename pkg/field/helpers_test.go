package field_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/model"
)

// 2026-01-10 is a Saturday.
var fixedNow = time.Date(2026, time.January, 10, 10, 7, 0, 0, time.UTC)

func testEnv() field.Env {
	return field.Env{
		Now:          func() time.Time { return fixedNow },
		UserTimezone: "UTC",
		Locale:       "en",
	}
}

func day(d int) datetime.Date {
	return datetime.Date{Year: 2026, Month: time.January, Day: d}
}

type recorder struct {
	names  []string
	events []model.Value
}

func (r *recorder) onChange(name string, v model.Value) {
	r.names = append(r.names, name)
	r.events = append(r.events, v)
}

func (r *recorder) expect(t *testing.T, want ...model.Value) {
	t.Helper()
	if want == nil {
		want = []model.Value{}
	}
	got := r.events
	if got == nil {
		got = []model.Value{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("emitted values mismatch (-want +got):\n%s", diff)
	}
}

func (r *recorder) reset() {
	r.names, r.events = nil, nil
}
