package timeinput_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/timeinput"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  datetime.TimeOfDay
	}{
		{"12a", datetime.TimeOfDay{Hour: 0}},
		{"12p", datetime.TimeOfDay{Hour: 12}},
		{"12:15 AM", datetime.TimeOfDay{Hour: 0, Minute: 15}},
		{"9pm", datetime.TimeOfDay{Hour: 21}},
		{"9 PM", datetime.TimeOfDay{Hour: 21}},
		{"9", datetime.TimeOfDay{Hour: 9}},
		{"9:05", datetime.TimeOfDay{Hour: 9, Minute: 5}},
		{"2:30pm", datetime.TimeOfDay{Hour: 14, Minute: 30}},
		{"2:30 p.m.", datetime.TimeOfDay{Hour: 14, Minute: 30}},
		{"14:30", datetime.TimeOfDay{Hour: 14, Minute: 30}},
		{"00:00", datetime.TimeOfDay{}},
		{" 23:59 ", datetime.TimeOfDay{Hour: 23, Minute: 59}},
	}
	for _, tc := range cases {
		got, err := timeinput.Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, input := range []string{"abc", "", "24:00", "13pm", "0am", "9:60", "9:5", "2:30 xm", "1430"} {
		if _, err := timeinput.Parse(input); !errors.Is(err, timeinput.ErrInvalidTime) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalidTime", input, err)
		}
	}
}
