package commands

import (
	"github.com/spf13/cobra"

	"github.com/clearform/sf86gen/pkg/report"
)

func coverageCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Compare the mapping tables against the field catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			resolver, err := buildResolver()
			if err != nil {
				return err
			}

			renderer, err := report.New()
			if err != nil {
				return err
			}
			content, err := renderer.Coverage(resolver.Coverage(cat), reportFormat(format))
			if err != nil {
				return err
			}
			return emit(cmd, content, output)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "report format (text, html)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file")
	return cmd
}
