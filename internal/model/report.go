package model

import "fmt"

// Result holds the outcome of evaluating one case.
type Result struct {
	Index    int // position of the case in its suite
	Case     Case
	Computed Number
	Err      error // evaluation error, the case failed without a value
	Passed   bool
}

// Tally counts passing cases.
type Tally struct {
	Passed int
	Total  int
}

// String renders the final summary line.
func (t Tally) String() string {
	return fmt.Sprintf("Passed %d / %d tests", t.Passed, t.Total)
}

// TallyOf counts the passing results.
func TallyOf(results []Result) Tally {
	tally := Tally{Total: len(results)}

	for _, r := range results {
		if r.Passed {
			tally.Passed++
		}
	}

	return tally
}
