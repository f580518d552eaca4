package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCase_Expression(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		want string
	}{
		{"binary", Case{Op: OpFloorDiv, Operands: []Number{Int(7), Int(4)}}, "7 // 4"},
		{"negative right operand", Case{Op: OpAdd, Operands: []Number{Int(5), Int(-2)}}, "5 + (-2)"},
		{"negative divisor", Case{Op: OpMod, Operands: []Number{Int(5), Int(-3)}}, "5 % -3"},
		{"negative exponent", Case{Op: OpPow, Operands: []Number{Int(5), Int(-2)}}, "5 ** -2"},
		{"negative left operand", Case{Op: OpMod, Operands: []Number{Int(-5), Int(4)}}, "-5 % 4"},
		{"float operand", Case{Op: OpTrueDiv, Operands: []Number{Int(5), Float(2)}}, "5 / 2.0"},
		{"unary", Case{Op: OpInvert, Operands: []Number{Int(5)}}, "~5"},
		{"unary negative", Case{Op: OpNeg, Operands: []Number{Int(-5)}}, "-(-5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Expression())
		})
	}
}

func TestCase_ExpressionWith(t *testing.T) {
	c := Case{Op: OpAdd, Operands: []Number{Int(5), Int(1)}}

	assert.Equal(t, "5 ** 1", c.ExpressionWith(OpPow))
	assert.Equal(t, "5 + 1", c.Expression())
}

func TestOperator_SymbolAndArity(t *testing.T) {
	for _, op := range BinaryOperators() {
		assert.Equal(t, 2, op.Arity(), op.Symbol())
		assert.NotEqual(t, "?", op.Symbol())
	}

	for _, op := range UnaryOperators() {
		assert.Equal(t, 1, op.Arity(), op.Symbol())
	}

	assert.Equal(t, "?", Operator(99).String())
}

func TestTally(t *testing.T) {
	results := []Result{{Passed: true}, {Passed: false}, {Passed: true}}

	tally := TallyOf(results)
	assert.Equal(t, Tally{Passed: 2, Total: 3}, tally)
	assert.Equal(t, "Passed 2 / 3 tests", tally.String())
}

func TestMutationTallyAndStatus(t *testing.T) {
	assert.Equal(t, "Killed 4 / 5 mutations", MutationTally{Killed: 4, Total: 5}.String())
	assert.Equal(t, "killed", Killed.String())
	assert.Equal(t, "survived", Survived.String())
	assert.Equal(t, "unknown", TestStatus(7).String())
}
