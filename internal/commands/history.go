package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-datefield/internal/commands/options"
	"github.com/goliatone/go-datefield/pkg/archive"
	"github.com/goliatone/go-datefield/pkg/datetime"
	"github.com/goliatone/go-datefield/pkg/draft"
	"github.com/goliatone/go-datefield/pkg/model"
)

func addHistory(topLevel *cobra.Command, po *options.PreferenceOptions) {
	oo := &options.OutputOptions{}
	var limit int

	cmd := &cobra.Command{
		Use:   "history [callback-id]",
		Short: "Show archived submissions, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := po.Load(cmd)
			if err != nil {
				return err
			}
			arc, err := archive.Open(cfg.ArchivePath, archive.WithLogOutput(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer arc.Close()

			callbackID := ""
			if len(args) == 1 {
				callbackID = args[0]
			}
			entries, err := arc.List(cmd.Context(), callbackID, limit)
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			if oo.JSON {
				return oo.Print(cmd.OutOrStdout(), entries)
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No submissions.")
				return nil
			}

			loc := cfg.Location()
			tbl := newTable("#", "Submitted", "Dialog", "Values")
			for _, e := range entries {
				tbl.AddRow(e.ID,
					datetime.FormatDateTime(e.SubmittedAt.In(loc), cfg.Locale, cfg.Use24Hour),
					e.Title,
					summarizeValues(e.Values))
			}
			tbl.RightAlign(0)
			tbl.MaxColWidth = 60
			tbl.Wrap = true
			printTable(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20,
		"Maximum number of submissions to show, 0 for all.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func summarizeValues(values model.Values) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+values[name].String())
	}
	return strings.Join(parts, " ")
}

func addDrafts(topLevel *cobra.Command, po *options.PreferenceOptions) {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "List or discard saved drafts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newDraftsListCmd(po), newDraftsDropCmd(po))
	topLevel.AddCommand(cmd)
}

func newDraftsListCmd(po *options.PreferenceOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved drafts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := po.Load(cmd)
			if err != nil {
				return err
			}
			store, err := draft.Open(cfg.DraftDir)
			if err != nil {
				return err
			}
			ids := store.List(cmd.Context())
			if len(ids) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No drafts.")
				return nil
			}
			tbl := newTable("Dialog", "Saved", "Answers")
			for _, id := range ids {
				d, ok, err := store.Load(id)
				if err != nil || !ok {
					continue
				}
				tbl.AddRow(id, d.Saved.In(cfg.Location()).Format("Jan 2 15:04"), len(d.Values))
			}
			printTable(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
}

func newDraftsDropCmd(po *options.PreferenceOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "drop <callback-id>",
		Short: "Discard a saved draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := po.Load(cmd)
			if err != nil {
				return err
			}
			store, err := draft.Open(cfg.DraftDir)
			if err != nil {
				return err
			}
			return store.Delete(args[0])
		},
	}
}
