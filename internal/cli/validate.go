package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/infra/fsio"
	"github.com/RIMS-Code/rimsdb-scheme-submission/internal/usecase"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a file parses as a scheme document (current or legacy shape)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			uc := usecase.NewImportDocument(fsio.New())
			doc, err := uc.Execute(args[0])
			if err != nil {
				return err
			}

			steps := 0
			for _, tr := range doc.Scheme.Transitions {
				if !tr.Empty() {
					steps++
				}
			}
			fmt.Printf("OK: %s scheme, %d step(s), %d reference(s), %d saturation curve(s)\n",
				doc.Scheme.Element, steps, len(doc.References), len(doc.SaturationCurves))
			return nil
		},
	}
}
