package commands

import (
	"github.com/spf13/cobra"

	"github.com/clearform/sf86gen/pkg/report"
	"github.com/clearform/sf86gen/pkg/sectionizer"
)

func sectionizeCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "sectionize",
		Short: "Classify catalog fields into SF-86 sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			dist := sectionizer.New(sectionizer.WithLogger(logger)).Distribution(cat)
			renderer, err := report.New()
			if err != nil {
				return err
			}
			content, err := renderer.Distribution(dist, reportFormat(format))
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
