package model

// Operator identifies an arithmetic or bitwise operation.
type Operator int

// Supported operators.
const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpFloorDiv
	OpTrueDiv
	OpMod
	OpPow
	OpLShift
	OpRShift
	OpAnd
	OpOr
	OpXor
	OpInvert
	OpNeg
)

var operatorSymbols = map[Operator]string{
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpFloorDiv: "//",
	OpTrueDiv:  "/",
	OpMod:      "%",
	OpPow:      "**",
	OpLShift:   "<<",
	OpRShift:   ">>",
	OpAnd:      "&",
	OpOr:       "|",
	OpXor:      "^",
	OpInvert:   "~",
	OpNeg:      "-",
}

// Symbol returns the source form of the operator.
func (op Operator) Symbol() string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}

	return "?"
}

// String implements fmt.Stringer.
func (op Operator) String() string {
	return op.Symbol()
}

// Arity returns the number of operands the operator takes.
func (op Operator) Arity() int {
	if op == OpInvert || op == OpNeg {
		return 1
	}

	return 2
}

// BinaryOperators lists every two-operand operator in declaration order.
func BinaryOperators() []Operator {
	return []Operator{
		OpAdd, OpSub, OpMul, OpFloorDiv, OpTrueDiv, OpMod, OpPow,
		OpLShift, OpRShift, OpAnd, OpOr, OpXor,
	}
}

// UnaryOperators lists every one-operand operator.
func UnaryOperators() []Operator {
	return []Operator{OpInvert, OpNeg}
}
