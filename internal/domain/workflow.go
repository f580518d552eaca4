// Package domain contains the operator check workflow and logic.
package domain

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/opcheck/internal/controller"
	m "github.com/mouse-blink/opcheck/internal/model"
)

// ErrCasesFailed is returned by a strict run when at least one case failed.
var ErrCasesFailed = errors.New("cases failed")

// RunArgs configures a suite run.
type RunArgs struct {
	Threads int
	Strict  bool // fail the run when any case fails
}

// ListArgs configures a case listing.
type ListArgs struct{}

// MutateArgs configures a mutation check of the suite.
type MutateArgs struct {
	Threads int
}

// Workflow defines the interface for operator check operations.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(args ListArgs) error
	Mutate(ctx context.Context, args MutateArgs) error
}

type workflow struct {
	ui      controller.UI
	runner  AssertionRunner
	mutagen Mutagen
	orch    Orchestrator
	suite   func() []m.Case
}

// NewWorkflow creates a new Workflow over the default suite.
func NewWorkflow(
	ui controller.UI,
	runner AssertionRunner,
	mutagen Mutagen,
	orch Orchestrator,
) Workflow {
	return &workflow{
		ui:      ui,
		runner:  runner,
		mutagen: mutagen,
		orch:    orch,
		suite:   DefaultSuite,
	}
}

// Run evaluates the suite and displays one result per case followed by
// the tally. Failing cases are reported, not returned, unless args.Strict.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	results, err := w.runner.RunAll(ctx, w.suite(), args.Threads)
	if err != nil {
		return fmt.Errorf("failed to run cases: %w", err)
	}

	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	for _, result := range results {
		w.ui.DisplayResult(result)
	}

	tally := m.TallyOf(results)
	w.ui.DisplaySummary(tally)
	w.ui.Wait()

	if args.Strict && tally.Passed < tally.Total {
		return fmt.Errorf("%w: %d of %d", ErrCasesFailed, tally.Total-tally.Passed, tally.Total)
	}

	return nil
}

// List displays the suite without evaluating it.
func (w *workflow) List(_ ListArgs) error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	if err := w.ui.DisplayCases(w.suite()); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// Mutate checks that every case's expected value rejects the other
// operators of the same arity.
func (w *workflow) Mutate(ctx context.Context, args MutateArgs) error {
	mutations := w.mutagen.GenerateMutations(w.suite())

	reports, err := w.testMutations(ctx, mutations, args.Threads)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithMutateMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	tally := m.MutationTally{Total: len(reports)}

	for _, report := range reports {
		if report.Status == m.Killed {
			tally.Killed++
		}

		w.ui.DisplayMutationReport(report)
	}

	w.ui.DisplayMutationSummary(tally)
	w.ui.Wait()

	return nil
}

// testMutations runs the orchestrator over a bounded worker pool. Reports
// keep the order of mutations.
func (w *workflow) testMutations(ctx context.Context, mutations []m.Mutation, threads int) ([]m.MutationReport, error) {
	reports := make([]m.MutationReport, len(mutations))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(normalizeThreads(threads))

	for i, mutation := range mutations {
		i, mutation := i, mutation
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			report, err := w.orch.TestMutation(mutation)
			if err != nil {
				return fmt.Errorf("failed to test mutation %d: %w", mutation.ID, err)
			}

			reports[i] = report

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
