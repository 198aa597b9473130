package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clearform/sf86gen/pkg/formdata"
	"github.com/clearform/sf86gen/pkg/prompt"
)

func promptCmd() *cobra.Command {
	var (
		draftID string
		name    string
		noSave  bool
	)

	cmd := &cobra.Command{
		Use:   "prompt <section>",
		Short: "Fill a section interactively from the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := buildResolver()
			if err != nil {
				return err
			}

			options := []prompt.WalkerOption{prompt.WithLogger(logger)}
			if cat, err := loadCatalog(cmd.Context()); err == nil {
				options = append(options, prompt.WithCatalog(cat))
			} else {
				logger.Warn("prompting without a catalog; dropdowns accept free text",
					zap.Error(err))
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			doc := formdata.New()
			if draftID != "" {
				doc, err = s.Load(cmd.Context(), draftID)
				if err != nil {
					return err
				}
			}

			walker := prompt.NewWalker(resolver, prompt.NewSurveyDriver(), options...)
			if err := walker.FillSection(cmd.Context(), doc, args[0]); err != nil {
				return err
			}

			if noSave {
				raw, err := doc.ToJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			}

			savedID, err := s.Save(cmd.Context(), draftID, name, doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved draft %s\n", savedID)
			return nil
		},
	}
	cmd.Flags().StringVar(&draftID, "draft", "", "continue an existing draft")
	cmd.Flags().StringVar(&name, "name", "", "draft name used when saving")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "print the document instead of saving a draft")
	return cmd
}
