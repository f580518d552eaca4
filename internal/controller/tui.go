package controller

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/opcheck/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	input   io.Reader
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	return &TUI{output: output, input: input}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	return t.startWithModel(newResultsModel(cfg.mode))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.program = tea.NewProgram(
		model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
	)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, t.err = t.program.Run()
	}()

	return nil
}

// Close stops the program and waits for it to exit.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}

	t.program.Quit()
	t.Wait()
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	if t.done == nil {
		return
	}

	<-t.done
}

// Err returns the error the program exited with, if any. Call after Wait.
func (t *TUI) Err() error {
	return t.err
}

// DisplayCases shows the case list.
func (t *TUI) DisplayCases(cases []m.Case) error {
	t.send(casesMsg{cases: cases})
	return nil
}

// DisplayResult appends a case result.
func (t *TUI) DisplayResult(result m.Result) {
	t.send(resultMsg{result: result})
}

// DisplaySummary shows the final tally.
func (t *TUI) DisplaySummary(tally m.Tally) {
	t.send(summaryMsg{text: tally.String(), passed: tally.Passed, total: tally.Total})
}

// DisplayMutationReport appends a mutation report.
func (t *TUI) DisplayMutationReport(report m.MutationReport) {
	t.send(mutationMsg{report: report})
}

// DisplayMutationSummary shows the mutation tally.
func (t *TUI) DisplayMutationSummary(tally m.MutationTally) {
	t.send(summaryMsg{text: tally.String(), passed: tally.Killed, total: tally.Total})
}

func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}
