package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clearform/sf86gen/pkg/report"
	"github.com/clearform/sf86gen/pkg/validation"
)

func validateCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "validate <data.json>",
		Short: "Run schema, branch, and format checks over applicant data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			resolver, err := buildResolver()
			if err != nil {
				return err
			}

			results := validation.New(resolver, validation.WithLogger(logger)).ValidateAll(doc)

			renderer, err := report.New()
			if err != nil {
				return err
			}
			content, err := renderer.Validation(results, reportFormat(format))
			if err != nil {
				return err
			}
			if err := emit(cmd, content, output); err != nil {
				return err
			}
			if !validation.AllValid(results) {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "report format (text, html)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file")
	return cmd
}
