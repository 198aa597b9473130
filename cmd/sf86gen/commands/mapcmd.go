package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func mapCmd() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "map <logical-path | pdf-field-name>",
		Short: "Resolve a logical path to its PDF field name, or back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := buildResolver()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if reverse {
				path, err := resolver.ReverseResolve(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, path)
				return nil
			}

			name, err := resolver.Resolve(args[0])
			if err != nil {
				return err
			}
			kind, err := resolver.Kind(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\t%s\n", name, kind)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "treat the argument as a PDF field name")
	return cmd
}
