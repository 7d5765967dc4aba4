// Package config loads the datefield CLI preferences from .datefield.yaml,
// DATEFIELD_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-datefield/components/timezones"
	"github.com/goliatone/go-datefield/pkg/field"
	"github.com/goliatone/go-datefield/pkg/i18n"
)

const (
	KeyUse24Hour   = "use_24_hour"
	KeyTimezone    = "timezone"
	KeyLocale      = "locale"
	KeyDraftDir    = "draft_dir"
	KeyArchivePath = "archive_path"
	KeyDialogDir   = "dialog_dir"
)

var ErrUnknownTimezone = errors.New("config: unknown timezone")

// Config holds the user's preferences.
type Config struct {
	Use24Hour   bool   `mapstructure:"use_24_hour"`
	Timezone    string `mapstructure:"timezone"`
	Locale      string `mapstructure:"locale"`
	DraftDir    string `mapstructure:"draft_dir"`
	ArchivePath string `mapstructure:"archive_path"`
	DialogDir   string `mapstructure:"dialog_dir"`
}

type loadOptions struct {
	flags      *pflag.FlagSet
	configPath string
	bindings   map[string]string
}

// Option configures Load.
type Option func(*loadOptions)

// WithFlags binds config keys to flags of fs. Keys map to flag names; only
// flags present in fs are bound.
func WithFlags(fs *pflag.FlagSet, keyToFlag map[string]string) Option {
	return func(o *loadOptions) {
		o.flags = fs
		o.bindings = keyToFlag
	}
}

// WithConfigPath adds a directory searched before the defaults.
func WithConfigPath(dir string) Option {
	return func(o *loadOptions) {
		o.configPath = dir
	}
}

// Load reads the configuration. A missing config file is not an error.
func Load(opts ...Option) (Config, error) {
	lo := loadOptions{}
	for _, opt := range opts {
		opt(&lo)
	}

	v := viper.New()
	v.SetDefault(KeyUse24Hour, false)
	v.SetDefault(KeyTimezone, "")
	v.SetDefault(KeyLocale, i18n.DefaultLocale)
	v.SetDefault(KeyDraftDir, "~/.datefield/drafts")
	v.SetDefault(KeyArchivePath, "~/.datefield/archive.db")
	v.SetDefault(KeyDialogDir, "./dialogs")

	v.SetConfigName(".datefield") // .yaml is implicit
	v.SetEnvPrefix("DATEFIELD")
	v.AutomaticEnv()

	if lo.configPath != "" {
		v.AddConfigPath(lo.configPath)
	}
	if override := os.Getenv("DATEFIELD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	if lo.flags != nil {
		for key, name := range lo.bindings {
			flag := lo.flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("config: bind %s: %w", name, err)
			}
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Timezone == "" {
		return nil
	}
	if _, err := timezones.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownTimezone, c.Timezone)
	}
	return nil
}

// Location returns the configured timezone, or the local zone when unset.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := timezones.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Env builds the controller environment for these preferences.
func (c Config) Env(now func() time.Time) field.Env {
	tz := c.Timezone
	if tz == "" {
		tz = time.Local.String()
	}
	return field.Env{
		Now:          now,
		UserTimezone: tz,
		Locale:       c.Locale,
		Use24Hour:    c.Use24Hour,
	}
}
