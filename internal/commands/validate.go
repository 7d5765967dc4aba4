package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/pkg/dialog"
	"github.com/goliatone/go-datefield/pkg/model"
	"github.com/goliatone/go-datefield/pkg/validation"
)

var errValidation = errors.New("validation failed")

type validateOptions struct {
	ValuesPath   string
	ResponsePath string
}

type fieldReport struct {
	Field   string `json:"field"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

type validateReport struct {
	Dialog   string                    `json:"dialog"`
	Fields   []fieldReport             `json:"fields,omitempty"`
	Response *validation.SubmitOutcome `json:"response,omitempty"`
}

func addValidate(topLevel *cobra.Command, po *options.PreferenceOptions) {
	vo := &validateOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "validate <dialog-file>",
		Short: "Check a dialog definition and optionally a set of submitted values",
		Example: `
datefield validate dialogs/trip.yaml
datefield validate dialogs/trip.yaml --values submission.json
datefield validate dialogs/trip.yaml --response server.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := po.Load(cmd)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			d, err := dialog.Load(data, args[0])
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}

			report := validateReport{Dialog: d.CallbackID}
			if vo.ValuesPath != "" {
				values := model.Values{}
				if err := readJSON(vo.ValuesPath, &values); err != nil {
					return err
				}
				failures := validation.ValidateDialog(d, values)
				for name, fe := range failures {
					report.Fields = append(report.Fields, fieldReport{
						Field:   name,
						ID:      fe.ID,
						Message: fe.Message(cfg.Locale),
					})
				}
				sort.Slice(report.Fields, func(i, j int) bool {
					return report.Fields[i].Field < report.Fields[j].Field
				})
			}
			if vo.ResponsePath != "" {
				resp := validation.SubmitResponse{}
				if err := readJSON(vo.ResponsePath, &resp); err != nil {
					return err
				}
				outcome := validation.InterpretResponse(d, resp)
				report.Response = &outcome
			}

			failed := len(report.Fields) > 0 || (report.Response != nil && !report.Response.Complete)
			if oo.JSON {
				if err := oo.Print(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				printValidateReport(cmd, d, report)
			}
			if failed {
				return errValidation
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vo.ValuesPath, "values", "",
		"JSON file of submitted values keyed by element name.")
	cmd.Flags().StringVar(&vo.ResponsePath, "response", "",
		`JSON file with an integration response, {"error": ..., "errors": {...}}.`)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func printValidateReport(cmd *cobra.Command, d model.Dialog, report validateReport) {
	w := cmd.OutOrStdout()
	green := color.New(color.FgGreen)
	_, _ = fmt.Fprintf(w, "%s %s (%d elements)\n", green.Sprint("ok"), d.Title, len(d.Elements))

	if len(report.Fields) > 0 {
		tbl := newTable("Field", "Error")
		for _, f := range report.Fields {
			tbl.AddRow(f.Field, red.Sprint(f.Message))
		}
		printTable(w, tbl)
	}
	if report.Response == nil {
		return
	}
	for _, msg := range report.Response.Form {
		_, _ = fmt.Fprintln(w, red.Sprint(msg))
	}
	if len(report.Response.Fields) > 0 {
		names := make([]string, 0, len(report.Response.Fields))
		for name := range report.Response.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		tbl := newTable("Field", "Server error")
		for _, name := range names {
			tbl.AddRow(name, red.Sprint(report.Response.Fields[name]))
		}
		printTable(w, tbl)
	}
	for _, key := range report.Response.Dropped {
		_, _ = fmt.Fprintf(w, "dropped error for unknown element %q\n", key)
	}
	if report.Response.Complete {
		_, _ = fmt.Fprintln(w, green.Sprint("dialog would close"))
	}
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
