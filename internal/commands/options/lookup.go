package options

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/components/timezones"
)

// LookupOptions configure the timezone options served to dynamic selects.
type LookupOptions struct {
	Route       string
	PageSize    int
	MaxPageSize int
	EmptySearch string
	ZonesFile   string
}

func AddLookupArgs(cmd *cobra.Command, o *LookupOptions) {
	defaults := timezones.DefaultOptions()
	cmd.Flags().StringVar(&o.Route, "route", defaults.RoutePath,
		"Route of the lookup handler under the base path.")
	cmd.Flags().IntVar(&o.PageSize, "page-size", defaults.PageSize,
		"Options returned when a lookup sends no limit.")
	cmd.Flags().IntVar(&o.MaxPageSize, "max-page-size", defaults.MaxPageSize,
		"Largest limit a lookup may request.")
	cmd.Flags().StringVar(&o.EmptySearch, "empty", string(timezones.EmptySearchTop),
		`What a blank query returns: "top" or "none".`)
	cmd.Flags().StringVar(&o.ZonesFile, "zones-file", "",
		"Serve the zones listed in this file instead of the built-in list.")
}

// OptionFns turns the flags into component options.
func (o *LookupOptions) OptionFns() ([]timezones.OptionFn, error) {
	mode, err := timezones.ParseEmptySearchMode(o.EmptySearch)
	if err != nil {
		return nil, err
	}
	fns := []timezones.OptionFn{
		timezones.WithRoutePath(o.Route),
		timezones.WithPageSize(o.PageSize, o.MaxPageSize),
		timezones.WithEmptySearch(mode),
	}
	if o.ZonesFile != "" {
		zones, err := timezones.ReadZonesFile(o.ZonesFile)
		if err != nil {
			return nil, err
		}
		fns = append(fns, timezones.WithZones(zones))
	}
	return fns, nil
}
