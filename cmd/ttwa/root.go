package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ttwa",
		Short:         "Partition a commuting-flow graph into travel-to-work areas",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newFitCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newReportCmd())

	return root
}
