// Package commands builds the datefield command tree.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/internal/commands/options"
)

// now is the clock every command reads; tests replace it.
var now = time.Now

var (
	bold = color.New(color.Bold)
	red  = color.New(color.FgRed)
)

func New() *cobra.Command {
	po := &options.PreferenceOptions{}

	cmd := &cobra.Command{
		Use:          "datefield",
		Short:        options.Wrap80("Fill, check and inspect date and datetime dialog fields on the command line."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddPreferenceArgs(cmd, po)

	AddCommands(cmd, po)
	return cmd
}

func AddCommands(topLevel *cobra.Command, po *options.PreferenceOptions) {
	addFill(topLevel, po)
	addValidate(topLevel, po)
	addResolve(topLevel, po)
	addParseTime(topLevel, po)
	addTimes(topLevel, po)
	addFromOpenAPI(topLevel)
	addHistory(topLevel, po)
	addDrafts(topLevel, po)
	addTimezones(topLevel)
}

func newTable(headers ...string) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	row := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		row = append(row, bold.Sprint(h))
	}
	tbl.AddRow(row...)
	return tbl
}

func printTable(w io.Writer, tbl *uitable.Table) {
	_, _ = fmt.Fprintln(w, tbl)
}
