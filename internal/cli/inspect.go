package cli

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/infra/fsio"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file> <jsonpath>",
		Short: "Query a scheme document with a JSONPath expression",
		Example: `  rimsdb-submit inspect Ti.json '$.rims_scheme.scheme.element'
  rimsdb-submit inspect Ti.json '$.saturation_curves[0].data.x'`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			raw, err := fsio.New().ReadFile(args[0])
			if err != nil {
				return err
			}

			var doc any
			if err := json.Unmarshal(raw, &doc); err != nil {
				return fmt.Errorf("not a valid JSON document: %w", err)
			}

			v, err := jsonpath.Get(args[1], doc)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
