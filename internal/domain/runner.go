package domain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/opcheck/internal/domain/operators"
	m "github.com/mouse-blink/opcheck/internal/model"
)

// AssertionRunner evaluates cases and compares them with their expected
// values.
type AssertionRunner interface {
	// RunAll evaluates every case with up to threads workers. Results are in
	// declaration order regardless of threads.
	RunAll(ctx context.Context, cases []m.Case, threads int) ([]m.Result, error)
}

type assertionRunner struct{}

// NewAssertionRunner creates a new AssertionRunner.
func NewAssertionRunner() AssertionRunner {
	return &assertionRunner{}
}

func (ar *assertionRunner) RunAll(ctx context.Context, cases []m.Case, threads int) ([]m.Result, error) {
	results := make([]m.Result, len(cases))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(normalizeThreads(threads))

	for i, c := range cases {
		i, c := i, c
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = Evaluate(i, c)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Evaluate runs a single case. Evaluation errors are recorded on the result
// and make the case fail.
func Evaluate(index int, c m.Case) m.Result {
	result := m.Result{Index: index, Case: c}

	computed, err := operators.Apply(c.Op, c.Operands...)
	if err != nil {
		result.Err = fmt.Errorf("evaluate %s: %w", c.Expression(), err)
		return result
	}

	result.Computed = computed
	result.Passed = computed.Equal(c.Expected)

	return result
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}
