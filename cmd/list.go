package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/opcheck/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the suite's cases",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).List(domain.ListArgs{})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
