package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/opcheck/internal/domain"
)

// mutateCmd represents the mutate command.
var mutateCmd = newMutateCmd()

func newMutateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate",
		Short: "Check the suite against operator mutations",
		Long:  mutateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).Mutate(cmd.Context(), domain.MutateArgs{
				Threads: parallelFlag,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(mutateCmd)
}
