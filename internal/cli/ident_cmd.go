package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"enumevent-generator/naming"
)

func newIdentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ident <EnumName>...",
		Short: "Print the namespace generated for enum names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintln(cmd.OutOrStdout(), naming.ModuleIdent(name))
			}

			return nil
		},
	}
}
