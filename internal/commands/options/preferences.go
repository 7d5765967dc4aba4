// Package options defines the flag sets shared by datefield commands.
package options

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/internal/config"
)

// PreferenceOptions are the persistent flags overriding .datefield.yaml.
type PreferenceOptions struct {
	ConfigPath string
}

// AddPreferenceArgs registers the preference flags on the root command.
func AddPreferenceArgs(cmd *cobra.Command, o *PreferenceOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.ConfigPath, "config-path", "",
		"Directory holding .datefield.yaml.")
	flags.Bool("24h", false,
		"Show times on a 24-hour clock.")
	flags.String("timezone", "",
		`IANA timezone of the user, example: --timezone="America/New_York".`)
	flags.String("locale", "",
		"Locale for messages and dates (en, es).")
	flags.String("dialogs", "",
		"Directory of dialog definitions.")
}

// Load reads the configuration with the command's flags bound over it.
func (o *PreferenceOptions) Load(cmd *cobra.Command) (config.Config, error) {
	bindings := map[string]string{
		config.KeyUse24Hour: "24h",
		config.KeyTimezone:  "timezone",
		config.KeyLocale:    "locale",
		config.KeyDialogDir: "dialogs",
	}
	opts := []config.Option{config.WithFlags(cmd.Flags(), bindings)}
	if o.ConfigPath != "" {
		opts = append(opts, config.WithConfigPath(o.ConfigPath))
	}
	return config.Load(opts...)
}
