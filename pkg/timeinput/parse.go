// Package timeinput parses free-typed times of day and tracks the state of a
// manual time entry box.
package timeinput

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-datefield/pkg/datetime"
)

// ErrInvalidTime is returned when typed text is not a recognisable time.
var ErrInvalidTime = errors.New("timeinput: invalid time")

var timePattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(a|p|am|pm|a\.m\.|p\.m\.)?$`)

// Parse reads a time of day typed by a user. Accepted forms include "9",
// "9:30", "9pm", "9 PM", "9:30am", "12a" (midnight), "12p" (noon) and 24-hour
// "14:30". Matching is case-insensitive and a space before the meridiem is
// optional. The returned error wraps ErrInvalidTime.
func Parse(text string) (datetime.TimeOfDay, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	match := timePattern.FindStringSubmatch(normalized)
	if match == nil {
		return datetime.TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, text)
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return datetime.TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, text)
	}
	minute := 0
	if match[2] != "" {
		minute, err = strconv.Atoi(match[2])
		if err != nil || minute > 59 {
			return datetime.TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, text)
		}
	}

	if meridiem := match[3]; meridiem != "" {
		if hour < 1 || hour > 12 {
			return datetime.TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, text)
		}
		pm := strings.HasPrefix(meridiem, "p")
		switch {
		case hour == 12 && !pm:
			hour = 0
		case hour != 12 && pm:
			hour += 12
		}
	} else if hour > 23 {
		return datetime.TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, text)
	}

	return datetime.TimeOfDay{Hour: hour, Minute: minute}, nil
}
