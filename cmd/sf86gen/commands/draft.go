package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func draftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage saved drafts in the local store",
	}
	cmd.AddCommand(draftListCmd(), draftSaveCmd(), draftLoadCmd(), draftDeleteCmd())
	return cmd
}

func draftListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved drafts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			drafts, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(drafts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no drafts saved")
				return nil
			}
			for _, d := range drafts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					d.ID, d.UpdatedAt.Format("2006-01-02 15:04"), d.Name)
			}
			return nil
		},
	}
}

func draftSaveCmd() *cobra.Command {
	var (
		id   string
		name string
	)

	cmd := &cobra.Command{
		Use:   "save <data.json>",
		Short: "Save applicant data as a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			savedID, err := s.Save(cmd.Context(), id, name, doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), savedID)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "overwrite an existing draft")
	cmd.Flags().StringVar(&name, "name", "", "human readable draft name")
	return cmd
}

func draftLoadCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "load <id>",
		Short: "Print a saved draft as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := s.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			raw, err := doc.ToJSON()
			if err != nil {
				return err
			}
			return emit(cmd, string(raw), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the draft to a file")
	return cmd
}

func draftDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			return s.Delete(cmd.Context(), args[0])
		},
	}
}
