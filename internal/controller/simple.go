package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/opcheck/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately, plain output needs no user interaction.
func (s *SimpleUI) Wait() {

}

// DisplayCases prints the cases as a table.
func (s *SimpleUI) DisplayCases(cases []m.Case) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Expression", "Expected", "Label"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for i, c := range cases {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			c.Expression(),
			c.Expected.String(),
			c.Label,
		})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total Cases %d", len(cases)), "", ""})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayResult prints one pass/fail line, plus a detail line on failure.
func (s *SimpleUI) DisplayResult(result m.Result) {
	switch {
	case result.Passed:
		s.printf("passed: %s\n", result.Case.Label)
	case result.Err != nil:
		s.printf("FAILED: %s\n", result.Case.Label)
		s.printf("\tERROR: %v\n", result.Err)
	default:
		s.printf("FAILED: %s\n", result.Case.Label)
		s.printf("\tRESULT: %s != %s\n", result.Computed, result.Case.Expected)
	}
}

// DisplaySummary prints the final tally line.
func (s *SimpleUI) DisplaySummary(tally m.Tally) {
	s.printf("%s\n", tally)
}

// DisplayMutationReport prints one line per checked mutation.
func (s *SimpleUI) DisplayMutationReport(report m.MutationReport) {
	if report.Status == m.Survived {
		s.printf("SURVIVED: %s (%s)\n", report.Mutation.Expression(), report.Mutation.Case.Label)
		return
	}

	s.printf("killed: %s\n", report.Mutation.Expression())
}

// DisplayMutationSummary prints the mutation tally line.
func (s *SimpleUI) DisplayMutationSummary(tally m.MutationTally) {
	s.printf("%s\n", tally)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
