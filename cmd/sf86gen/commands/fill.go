package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clearform/sf86gen/pkg/fill"
	"github.com/clearform/sf86gen/pkg/validation"
)

func fillCmd() *cobra.Command {
	var (
		output         string
		dryRun         bool
		skipValidation bool
	)

	cmd := &cobra.Command{
		Use:   "fill <data.json>",
		Short: "Fill the SF-86 template PDF from applicant data",
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

			if !skipValidation {
				results := validation.New(resolver, validation.WithLogger(logger)).ValidateAll(doc)
				if !validation.AllValid(results) {
					return fmt.Errorf("document failed validation; run the validate command for details")
				}
			}

			planner := fill.NewPlanner(resolver, fill.WithLogger(logger))
			if cat, err := loadCatalog(cmd.Context()); err == nil {
				planner = fill.NewPlanner(resolver, fill.WithLogger(logger), fill.WithCatalog(cat))
			} else {
				logger.Warn("filling without a catalog; export values fall back to defaults",
					zap.Error(err))
			}

			plan, err := planner.Build(doc)
			if err != nil {
				return err
			}
			for _, warning := range plan.Warnings {
				logger.Warn("fill plan warning", zap.String("detail", warning))
			}
			if len(plan.Unmapped) > 0 {
				logger.Warn("some answers have no pdf binding and will be dropped",
					zap.Int("count", len(plan.Unmapped)))
			}

			if dryRun {
				raw, err := json.MarshalIndent(plan, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			}

			filler := fill.NewPDFCPUFiller()
			if err := filler.Fill(cmd.Context(), cfg.TemplatePDF, output, plan); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d fields)\n", output, len(plan.Fields))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "filled.pdf", "path of the filled PDF")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the fill plan instead of writing a PDF")
	cmd.Flags().BoolVar(&skipValidation, "skip-validation", false, "fill even when validation fails")
	return cmd
}
