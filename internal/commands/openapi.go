package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-datefield/pkg/dialog"
)

type fromOpenAPIOptions struct {
	OperationID string
	Format      string
	Output      string
}

func addFromOpenAPI(topLevel *cobra.Command) {
	fo := &fromOpenAPIOptions{}

	cmd := &cobra.Command{
		Use:   "from-openapi <document>",
		Short: "Build a dialog definition from an OpenAPI request body",
		Example: `
datefield from-openapi api.yaml --operation planTrip > dialogs/trip.yaml
datefield from-openapi api.json --operation planTrip --format json -o trip.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			d, err := dialog.FromOpenAPI(cmd.Context(), raw, fo.OperationID)
			if err != nil {
				return err
			}

			var out []byte
			switch fo.Format {
			case "yaml", "yml":
				out, err = yaml.Marshal(d)
			case "json":
				out, err = json.MarshalIndent(d, "", "  ")
			default:
				return fmt.Errorf("unknown format %q (use yaml or json)", fo.Format)
			}
			if err != nil {
				return err
			}

			if fo.Output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			}
			if err := os.WriteFile(fo.Output, out, 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Dialog written to %s\n", fo.Output)
			return nil
		},
	}

	cmd.Flags().StringVar(&fo.OperationID, "operation", "",
		"Operation id, or \"method:path\", whose request body becomes the dialog.")
	cmd.Flags().StringVar(&fo.Format, "format", "yaml",
		"Output format: yaml or json.")
	cmd.Flags().StringVarP(&fo.Output, "output", "o", "",
		"Output file (stdout if empty).")
	_ = cmd.MarkFlagRequired("operation")
	topLevel.AddCommand(cmd)
}
