package timeinput_test

import (
	"testing"

	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/timeinput"
)

func TestInputBlurReformats(t *testing.T) {
	in := timeinput.NewInput(false)
	in.Type("14:30")
	tod, ok := in.Blur()
	if !ok || tod != (datetime.TimeOfDay{Hour: 14, Minute: 30}) {
		t.Fatalf("expected 14:30 to commit, got %s %v", tod, ok)
	}
	if got := in.Text(); got != "2:30 PM" {
		t.Fatalf("expected 12h reformat, got %q", got)
	}

	in24 := timeinput.NewInput(true)
	in24.Type("9pm")
	if _, ok := in24.Blur(); !ok {
		t.Fatalf("expected 9pm to commit")
	}
	if got := in24.Text(); got != "21:00" {
		t.Fatalf("expected 24h reformat, got %q", got)
	}
}

func TestInputErrorClearsOnNextValidInput(t *testing.T) {
	in := timeinput.NewInput(false)

	in.Type("abc")
	if in.HasError() {
		t.Fatalf("expected no error while typing")
	}
	if _, ok := in.Blur(); ok {
		t.Fatalf("expected abc to be rejected")
	}
	if !in.HasError() {
		t.Fatalf("expected error flag after blur")
	}
	if got := in.Text(); got != "abc" {
		t.Fatalf("expected typed text to stay visible, got %q", got)
	}

	in.Type("2:3")
	if !in.HasError() {
		t.Fatalf("expected error to remain for unparsable text")
	}
	in.Type("2:30pm")
	if in.HasError() {
		t.Fatalf("expected error to clear once the text parses")
	}
	tod, ok := in.Blur()
	if !ok || tod != (datetime.TimeOfDay{Hour: 14, Minute: 30}) {
		t.Fatalf("expected 14:30, got %s %v", tod, ok)
	}
}

func TestInputBlankBlurRestoresValue(t *testing.T) {
	in := timeinput.NewInput(false)
	in.SetValue(datetime.TimeOfDay{Hour: 9})
	in.Type("   ")
	if _, ok := in.Blur(); ok {
		t.Fatalf("expected blank blur not to commit")
	}
	if in.HasError() {
		t.Fatalf("expected blank blur not to flag an error")
	}
	if got := in.Text(); got != "9:00 AM" {
		t.Fatalf("expected previous value restored, got %q", got)
	}
}
