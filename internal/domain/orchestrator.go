package domain

import (
	"fmt"

	"github.com/mouse-blink/opcheck/internal/domain/operators"
	m "github.com/mouse-blink/opcheck/internal/model"
)

// Orchestrator evaluates a mutated case and decides whether the case's
// expected value catches the mutation.
type Orchestrator interface {
	TestMutation(mutation m.Mutation) (m.MutationReport, error)
}

type orchestrator struct{}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator() Orchestrator {
	return &orchestrator{}
}

func (to *orchestrator) TestMutation(mutation m.Mutation) (m.MutationReport, error) {
	if err := to.validateMutation(mutation); err != nil {
		return m.MutationReport{}, err
	}

	report := m.MutationReport{Mutation: mutation, Status: m.Killed}

	computed, err := operators.Apply(mutation.Op, mutation.Case.Operands...)
	if err != nil {
		report.Err = err
		return report, nil
	}

	report.Computed = computed
	if computed.Equal(mutation.Case.Expected) {
		report.Status = m.Survived
	}

	return report, nil
}

func (to *orchestrator) validateMutation(mutation m.Mutation) error {
	if mutation.Op.Arity() != len(mutation.Case.Operands) {
		return fmt.Errorf("mutation %d: %s needs %d operands, case %q has %d",
			mutation.ID, mutation.Op, mutation.Op.Arity(), mutation.Case.Label, len(mutation.Case.Operands))
	}

	if mutation.Op == mutation.Case.Op {
		return fmt.Errorf("mutation %d: operator %s is unchanged", mutation.ID, mutation.Op)
	}

	return nil
}
