// Package cmd provides the root command and CLI setup for opcheck.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/opcheck/internal/controller"
	"github.com/mouse-blink/opcheck/internal/domain"
)

var runner domain.AssertionRunner
var mutagen domain.Mutagen
var orchestrator domain.Orchestrator

// newWorkflow builds the workflow that drives a command's UI.
var newWorkflow = func(ui controller.UI) domain.Workflow {
	return domain.NewWorkflow(ui, runner, mutagen, orchestrator)
}

func init() {
	runner = domain.NewAssertionRunner()
	mutagen = domain.NewMutagen()
	orchestrator = domain.NewOrchestrator()
}

var parallelFlag int
var tuiFlag bool
var strictFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "opcheck",
		Short:        "Smoke test arithmetic and bitwise operator semantics",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflowFor(cmd).Run(cmd.Context(), domain.RunArgs{
				Threads: parallelFlag,
				Strict:  strictFlag,
			})
		},
	}
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers evaluating cases")
	cmd.PersistentFlags().BoolVar(&tuiFlag, "tui", false, "show results in an interactive view when stdout is a terminal")
	cmd.Flags().BoolVar(&strictFlag, "strict", false, "exit with a non-zero status when any case fails")

	return cmd
}

// workflowFor picks the UI for cmd. The interactive view is only used when
// requested and stdout is a terminal.
func workflowFor(cmd *cobra.Command) domain.Workflow {
	useTTY := tuiFlag && controller.IsTTY(cmd.OutOrStdout())

	return newWorkflow(controller.NewUI(cmd, useTTY))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
