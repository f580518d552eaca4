package model

import "strings"

// Case is a single operator check: an expression over literal operands and
// the value it must produce.
type Case struct {
	Label    string
	Op       Operator
	Operands []Number
	Expected Number
}

// Expression renders the case's expression, e.g. "5 + (-2)" or "~5".
func (c Case) Expression() string {
	return c.ExpressionWith(c.Op)
}

// ExpressionWith renders the case's operands joined by op instead of the
// case's own operator.
func (c Case) ExpressionWith(op Operator) string {
	if len(c.Operands) == 1 {
		return op.Symbol() + operand(c.Operands[0], true)
	}

	// Only + and - bracket a negative right operand, as in "5 + (-2)".
	wrap := op == OpAdd || op == OpSub

	parts := make([]string, 0, len(c.Operands))
	for i, n := range c.Operands {
		parts = append(parts, operand(n, wrap && i > 0))
	}

	return strings.Join(parts, " "+op.Symbol()+" ")
}

func operand(n Number, wrapNegative bool) string {
	if wrapNegative && n.Sign() < 0 {
		return "(" + n.String() + ")"
	}

	return n.String()
}
