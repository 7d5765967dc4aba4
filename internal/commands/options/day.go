package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/pkg/datetime"
)

// DayOptions picks a calendar day with a literal or relative expression.
type DayOptions struct {
	Day string
}

func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVar(&o.Day, "day", "today",
		`Day to use, example: --day="2026-02-28" or --day="+1w".`)
}

// Resolve returns the day relative to now.
func (o *DayOptions) Resolve(now time.Time) (datetime.Date, error) {
	day, ok := datetime.ResolveRelativeDate(o.Day, now)
	if !ok {
		return datetime.Date{}, fmt.Errorf("unrecognised day %q", o.Day)
	}
	return day, nil
}

// SlotOptions configure a time menu.
type SlotOptions struct {
	Interval  int
	AllowPast bool
}

func AddSlotArgs(cmd *cobra.Command, o *SlotOptions) {
	cmd.Flags().IntVar(&o.Interval, "interval", 60,
		"Minutes between time slots.")
	cmd.Flags().BoolVar(&o.AllowPast, "allow-past", true,
		"Include slots earlier than the current time.")
}
