package commands

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/components/timezones"
	"github.com/goliatone/go-datefield/components/timezones/dialogwiring"
	"github.com/goliatone/go-datefield/internal/commands/options"
)

func addTimezones(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "timezones",
		Short: "Search IANA timezones or serve the dynamic select endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newTimezonesSearchCmd(), newTimezonesServeCmd())
	topLevel.AddCommand(cmd)
}

func newTimezonesSearchCmd() *cobra.Command {
	oo := &options.OutputOptions{}
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search timezones by name, city or offset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			component := timezones.New(
				timezones.WithEmptySearch(timezones.EmptySearchTop),
				timezones.WithClock(now),
			)
			found, err := component.Lookup(query, limit)
			if err != nil {
				return err
			}
			if oo.JSON {
				return oo.Print(cmd.OutOrStdout(), found)
			}
			tbl := newTable("Zone", "Label")
			for _, opt := range found {
				tbl.AddRow(opt.Value, opt.Text)
			}
			printTable(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20,
		"Maximum number of zones to list.")
	options.AddOutputArg(cmd, oo)
	return cmd
}

func newTimezonesServeCmd() *cobra.Command {
	lo := &options.LookupOptions{}
	var addr, basePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve timezone options for dynamic select elements",
		Example: `
datefield timezones serve --addr :8080 --base /api
datefield timezones serve --zones-file ~/zones.txt --page-size 20
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fns, err := lo.OptionFns()
			if err != nil {
				return err
			}
			component := timezones.New(fns...)
			mux := http.NewServeMux()
			pattern, err := component.RegisterRoutes(mux, basePath)
			if err != nil {
				return err
			}

			el := dialogwiring.TimezoneSelectElement("timezone", "Timezone", basePath, fns...)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "data_source_url for dynamic selects: %s\n", el.DataSourceURL)

			server := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
			}
			go func() {
				<-cmd.Context().Done()
				_ = server.Close()
			}()

			log.Printf("serving timezone lookups at http://%s%s", addr, pattern)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080",
		"Listen address.")
	cmd.Flags().StringVar(&basePath, "base", "",
		"Path prefix the lookup route is mounted under.")
	options.AddLookupArgs(cmd, lo)
	return cmd
}
