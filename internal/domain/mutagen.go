package domain

import (
	m "github.com/mouse-blink/opcheck/internal/model"
)

// Mutagen defines the interface for mutation generation.
type Mutagen interface {
	GenerateMutations(cases []m.Case) []m.Mutation
}

// mutagen swaps each case's operator for every other operator of the same
// arity.
type mutagen struct{}

// NewMutagen creates a new Mutagen instance.
func NewMutagen() Mutagen {
	return &mutagen{}
}

func (mg *mutagen) GenerateMutations(cases []m.Case) []m.Mutation {
	var mutations []m.Mutation

	for _, c := range cases {
		for _, op := range alternatives(c.Op) {
			mutations = append(mutations, m.Mutation{
				ID:   len(mutations),
				Case: c,
				Op:   op,
			})
		}
	}

	return mutations
}

func alternatives(original m.Operator) []m.Operator {
	allOps := m.BinaryOperators()
	if original.Arity() == 1 {
		allOps = m.UnaryOperators()
	}

	var alts []m.Operator

	for _, op := range allOps {
		if op != original {
			alts = append(alts, op)
		}
	}

	return alts
}
