package model

import "fmt"

// TestStatus is the outcome of checking a mutation.
type TestStatus int

const (
	// Killed means the mutated expression no longer produced the expected value.
	Killed TestStatus = iota
	// Survived means the mutated expression still matched the expected value.
	Survived
)

func (s TestStatus) String() string {
	switch s {
	case Killed:
		return "killed"
	case Survived:
		return "survived"
	default:
		return "unknown"
	}
}

// Mutation is a case with its operator swapped for another of the same arity.
type Mutation struct {
	ID   int
	Case Case
	Op   Operator
}

// Expression renders the mutated expression.
func (mu Mutation) Expression() string {
	return mu.Case.ExpressionWith(mu.Op)
}

// MutationReport represents the result of checking a mutation.
type MutationReport struct {
	Mutation Mutation
	Status   TestStatus
	Computed Number
	Err      error // evaluation error, counts as killed
}

// MutationTally counts killed mutations.
type MutationTally struct {
	Killed int
	Total  int
}

// String renders the mutation summary line.
func (t MutationTally) String() string {
	return fmt.Sprintf("Killed %d / %d mutations", t.Killed, t.Total)
}
