package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func fieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Inspect the PDF field catalog",
	}
	cmd.AddCommand(fieldsListCmd(), fieldsLookupCmd())
	return cmd
}

func fieldsListCmd() *cobra.Command {
	var section int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog fields, optionally for one section",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if section > 0 {
				defs := cat.Section(section)
				if len(defs) == 0 {
					return fmt.Errorf("no fields recorded for section %d", section)
				}
				for _, def := range defs {
					fmt.Fprintf(out, "%s\t%s\tpage %d\n", def.Name, def.Type, def.Page)
				}
				return nil
			}

			for _, name := range cat.Names() {
				fmt.Fprintln(out, name)
			}
			fmt.Fprintf(out, "%d fields across sections %v\n", cat.Len(), cat.Sections())
			return nil
		},
	}
	cmd.Flags().IntVar(&section, "section", 0, "restrict to one section number")
	return cmd
}

func fieldsLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <field-name>",
		Short: "Show one catalog definition as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			def, ok := cat.Lookup(args[0])
			if !ok {
				return fmt.Errorf("field %q is not in the catalog", args[0])
			}
			raw, err := json.MarshalIndent(def, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		},
	}
}
