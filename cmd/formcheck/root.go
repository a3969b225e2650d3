package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t4thdd/aid-efrh/modules/forms"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "formcheck",
		Short: "Validate aid dashboard form snapshots",
		Long: `formcheck runs the dashboard form rules against a snapshot file
(YAML or JSON) and prints errors, warnings and successes per field.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newValidateCmd(), newFormsCmd())
	return root
}

func newFormsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List the known form names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range forms.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
