package timeinput

import (
	"strings"

	"github.com/goliatone/go-datefield/pkg/datetime"
)

// Input is the state of a manual time box. Text is kept as typed until blur;
// only blur raises the error flag, and any later keystroke that parses clears
// it again.
type Input struct {
	use24Hour bool
	text      string
	invalid   bool
	value     datetime.TimeOfDay
	hasValue  bool
}

// NewInput returns an empty input formatting on the 12 or 24 hour clock.
func NewInput(use24Hour bool) *Input {
	return &Input{use24Hour: use24Hour}
}

// SetValue syncs the box with a value chosen elsewhere.
func (in *Input) SetValue(tod datetime.TimeOfDay) {
	in.value = tod
	in.hasValue = true
	in.text = datetime.FormatTime(tod, in.use24Hour)
	in.invalid = false
}

// Reset clears the box.
func (in *Input) Reset() {
	*in = Input{use24Hour: in.use24Hour}
}

// Type records a keystroke.
func (in *Input) Type(text string) {
	in.text = text
	if in.invalid {
		if _, err := Parse(text); err == nil {
			in.invalid = false
		}
	}
}

// Blur commits the typed text. On success the text is reformatted to the
// display preference and the parsed time is returned. Blank text restores the
// last committed value without flagging an error.
func (in *Input) Blur() (datetime.TimeOfDay, bool) {
	if strings.TrimSpace(in.text) == "" {
		in.invalid = false
		if in.hasValue {
			in.text = datetime.FormatTime(in.value, in.use24Hour)
		} else {
			in.text = ""
		}
		return datetime.TimeOfDay{}, false
	}

	tod, err := Parse(in.text)
	if err != nil {
		in.invalid = true
		return datetime.TimeOfDay{}, false
	}
	in.SetValue(tod)
	return tod, true
}

// Text returns what the box currently shows.
func (in *Input) Text() string { return in.text }

// HasError reports whether the last blur failed to parse.
func (in *Input) HasError() bool { return in.invalid }

// Value returns the last committed time.
func (in *Input) Value() (datetime.TimeOfDay, bool) { return in.value, in.hasValue }
