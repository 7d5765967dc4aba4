package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/components/timezones"
	"github.com/goliatone/go-datefield/components/timezones/dialogwiring"
	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/internal/config"
	"github.com/goliatone/go-datefield/pkg/archive"
	"github.com/goliatone/go-datefield/pkg/dialog"
	"github.com/goliatone/go-datefield/pkg/draft"
	"github.com/goliatone/go-datefield/pkg/model"
	"github.com/goliatone/go-datefield/pkg/prompt"
	"github.com/goliatone/go-datefield/pkg/session"
)

// newDriver builds the prompt driver for fill; tests swap in a scripted one.
var newDriver = func(out io.Writer) prompt.Driver {
	return prompt.NewSurvey(out)
}

type fillOptions struct {
	File     string
	Fresh    bool
	Location string
	Rounds   int
}

func addFill(topLevel *cobra.Command, po *options.PreferenceOptions) {
	fo := &fillOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "fill [callback-id]",
		Short: "Fill a dialog interactively and archive the submission",
		Example: `
datefield fill plan_trip
datefield fill --file dialogs/standup.json --24h
datefield fill plan_trip --location Europe/London
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := po.Load(cmd)
			if err != nil {
				return err
			}
			d, err := loadDialog(cfg, fo.File, args)
			if err != nil {
				return err
			}
			if fo.Location != "" {
				for i := range d.Elements {
					dialogwiring.PinTimezone(&d.Elements[i], fo.Location)
				}
			}

			drafts, err := draft.Open(cfg.DraftDir)
			if err != nil {
				return err
			}
			state := session.NewState(nil, nil)
			if !fo.Fresh {
				saved, ok, err := drafts.Load(d.CallbackID)
				if err != nil {
					return err
				}
				if ok {
					state = session.NewState(saved.Values, saved.Errors)
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Resuming draft saved %s\n", saved.Saved.Format("Jan 2 15:04"))
				}
			}

			runner := session.New(
				session.WithDriver(newDriver(cmd.OutOrStdout())),
				session.WithEnv(cfg.Env(now)),
				session.WithOptionSource(timezoneOptions(timezones.New(timezones.WithEmptySearch(timezones.EmptySearchTop)))),
				session.WithMaxRounds(fo.Rounds),
			)
			values, err := runner.Run(cmd.Context(), d, state)
			if err != nil {
				if errors.Is(err, prompt.ErrAborted) || errors.Is(err, session.ErrInvalid) {
					if saveErr := drafts.Save(draft.Draft{CallbackID: d.CallbackID, Values: state.Values()}); saveErr != nil {
						return fmt.Errorf("%v (draft not saved: %w)", err, saveErr)
					}
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Draft of %s saved, run fill again to resume\n", d.CallbackID)
				}
				return err
			}

			arc, err := archive.Open(cfg.ArchivePath, archive.WithLogOutput(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer arc.Close()
			entry, err := arc.Record(cmd.Context(), d, values, now())
			if err != nil {
				return err
			}
			if err := drafts.Delete(d.CallbackID); err != nil {
				return err
			}

			if oo.JSON {
				return oo.Print(cmd.OutOrStdout(), entry)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (#%d)\n", color.New(color.FgGreen).Sprint("submitted"), d.Title, entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fo.File, "file", "f", "",
		"Dialog definition file, instead of a callback id from the dialogs directory.")
	cmd.Flags().BoolVar(&fo.Fresh, "fresh", false,
		"Ignore any saved draft.")
	cmd.Flags().StringVar(&fo.Location, "location", "",
		"Pin every date element to this IANA timezone.")
	cmd.Flags().IntVar(&fo.Rounds, "rounds", 3,
		"How many times invalid answers are asked again.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func loadDialog(cfg config.Config, file string, args []string) (model.Dialog, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return model.Dialog{}, err
		}
		return dialog.Load(data, file)
	}
	if len(args) == 0 {
		return model.Dialog{}, errors.New("a callback id or --file is required")
	}
	store, err := dialog.LoadFS(os.DirFS(cfg.DialogDir))
	if err != nil {
		return model.Dialog{}, err
	}
	d, ok := store.Dialog(args[0])
	if !ok {
		return model.Dialog{}, fmt.Errorf("no dialog %q in %s", args[0], cfg.DialogDir)
	}
	return d, nil
}

// timezoneOptions answers dynamic selects from the timezone component, reading
// the query and limit the element's data source URL carries.
func timezoneOptions(component *timezones.Component) session.OptionSource {
	return func(_ context.Context, el model.Element) ([]model.Option, error) {
		query, limit := "", 0
		if u, err := url.Parse(el.DataSourceURL); err == nil {
			query = u.Query().Get(timezones.QueryParam)
			limit, _ = strconv.Atoi(u.Query().Get(timezones.LimitParam))
		}
		return component.Lookup(query, limit)
	}
}
