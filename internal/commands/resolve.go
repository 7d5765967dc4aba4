package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/timeinput"
)

type resolvedDate struct {
	Expression string `json:"expression"`
	Date       string `json:"date,omitempty"`
	OK         bool   `json:"ok"`
}

func addResolve(topLevel *cobra.Command, po *options.PreferenceOptions) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <expression>...",
		Short: "Resolve date expressions to calendar dates",
		Example: `
datefield resolve today
datefield resolve +3d -1w +2m 2026-02-28
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := po.Load(cmd)
			if err != nil {
				return err
			}
			today := now().In(cfg.Location())

			results := make([]resolvedDate, 0, len(args))
			for _, expr := range args {
				date, ok := datetime.ResolveRelative(expr, today)
				results = append(results, resolvedDate{Expression: expr, Date: date, OK: ok})
			}
			if oo.JSON {
				return oo.Print(cmd.OutOrStdout(), results)
			}

			tbl := newTable("Expression", "Date", "Display")
			for _, r := range results {
				if !r.OK {
					tbl.AddRow(r.Expression, red.Sprint("unrecognised"), "")
					continue
				}
				day, _ := datetime.ParseDate(r.Date)
				tbl.AddRow(r.Expression, r.Date, datetime.FormatDate(day, cfg.Locale))
			}
			printTable(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

type parsedTime struct {
	Input   string `json:"input"`
	Time    string `json:"time,omitempty"`
	Display string `json:"display,omitempty"`
	OK      bool   `json:"ok"`
}

func addParseTime(topLevel *cobra.Command, po *options.PreferenceOptions) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "parse-time <text>...",
		Short: "Parse manually typed times",
		Example: `
datefield parse-time 9 "2:30 pm" 14:30 9a
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := po.Load(cmd)
			if err != nil {
				return err
			}

			results := make([]parsedTime, 0, len(args))
			failed := 0
			for _, text := range args {
				tod, err := timeinput.Parse(text)
				if err != nil {
					failed++
					results = append(results, parsedTime{Input: text})
					continue
				}
				results = append(results, parsedTime{
					Input:   text,
					Time:    tod.String(),
					Display: datetime.FormatTime(tod, cfg.Use24Hour),
					OK:      true,
				})
			}

			if oo.JSON {
				if err := oo.Print(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			} else {
				tbl := newTable("Input", "Time")
				for _, r := range results {
					if !r.OK {
						tbl.AddRow(r.Input, red.Sprint("invalid"))
						continue
					}
					tbl.AddRow(r.Input, r.Display)
				}
				printTable(cmd.OutOrStdout(), tbl)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d inputs", timeinput.ErrInvalidTime, failed, len(args))
			}
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
