package cmd

const rootLongDescription = `Opcheck is a smoke test of arithmetic and bitwise operator semantics.

It evaluates a fixed suite of cases over unbounded integers and floats,
following Python's numeric conventions:
  - floor division rounds toward negative infinity   (7 // 4 = 1)
  - true division always yields a float             (5 / 2 = 2.5)
  - modulo takes the sign of the divisor             (5 % -3 = -1)
  - a negative exponent yields a float reciprocal    (5 ** -2 = 0.04)
  - inversion is two's-complement                    (~5 = -6)

Each case prints "passed: <label>" or "FAILED: <label>" with the computed
and expected values, followed by a final tally. Failures are reported, not
turned into an exit status, unless --strict is given.`

const listLongDescription = `List the cases of the suite with their expressions and expected values
without evaluating them.`

const mutateLongDescription = `Check the suite against operator mutations.

Every case is re-evaluated with its operator replaced by each other operator
of the same arity. A mutation is killed when the case's expected value
rejects it and survives when the mutated expression still produces the
expected value.`
