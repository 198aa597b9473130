package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clearform/sf86gen/pkg/fill"
	"github.com/clearform/sf86gen/pkg/formdata"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <filled.pdf>",
		Short: "Read a filled PDF back into an applicant document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := buildResolver()
			if err != nil {
				return err
			}

			values, err := fill.NewPDFCPUFiller().Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			doc := formdata.New()
			skipped := 0
			for name, value := range values {
				if value == "" {
					continue
				}
				path, err := resolver.ReverseResolve(name)
				if err != nil {
					skipped++
					logger.Debug("exported field has no logical binding", zap.String("field", name))
					continue
				}
				if err := doc.Set(path, value); err != nil {
					return fmt.Errorf("record %s: %w", path, err)
				}
			}
			if skipped > 0 {
				logger.Warn("some pdf fields were not recognised", zap.Int("count", skipped))
			}

			raw, err := doc.ToJSON()
			if err != nil {
				return err
			}
			return emit(cmd, string(raw), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to a file")
	return cmd
}
