package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/components/timezones"
	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/pkg/datetime"
)

type timeSlot struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func addTimes(topLevel *cobra.Command, po *options.PreferenceOptions) {
	do := &options.DayOptions{}
	so := &options.SlotOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "times",
		Short: "List the time menu of a day",
		Example: `
datefield times --interval 30
datefield times --day tomorrow --timezone Europe/London --24h
datefield times --allow-past=false
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := po.Load(cmd)
			if err != nil {
				return err
			}
			loc := cfg.Location()
			current := now().In(loc)

			day, err := do.Resolve(current)
			if err != nil {
				return err
			}

			slots := datetime.TimeOptions(day, loc, so.Interval, current, so.AllowPast)
			out := make([]timeSlot, 0, len(slots))
			for _, slot := range slots {
				out = append(out, timeSlot{
					Label: datetime.FormatTime(datetime.ClockOf(slot), cfg.Use24Hour),
					Value: datetime.Serialize(slot, true),
				})
			}
			if oo.JSON {
				return oo.Print(cmd.OutOrStdout(), out)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (Times in %s)\n",
				bold.Sprint(datetime.FormatDate(day, cfg.Locale)),
				timezones.Abbreviation(loc, day.In(loc)))
			tbl := newTable("Time", "Stored")
			for _, s := range out {
				tbl.AddRow(s.Label, s.Value)
			}
			tbl.RightAlign(0)
			printTable(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddSlotArgs(cmd, so)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
