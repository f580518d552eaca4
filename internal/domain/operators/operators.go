// Package operators evaluates arithmetic and bitwise operators over
// model.Number using Python's numeric conventions: floor division, modulo
// signed like the divisor, true division that always yields a float, and
// bitwise operators over unbounded two's-complement integers.
package operators

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/opcheck/internal/model"
)

// Evaluation errors. They are returned wrapped with operand details.
var (
	ErrZeroDivision       = errors.New("division by zero")
	ErrNegativeShift      = errors.New("negative shift count")
	ErrUnsupportedOperand = errors.New("unsupported operand type(s)")
	ErrDomain             = errors.New("math domain error")
	ErrOverflow           = errors.New("result too large")
	ErrArity              = errors.New("wrong number of operands")
	ErrUnknownOperator    = errors.New("unknown operator")
)

type binaryFunc func(a, b m.Number) (m.Number, error)

var binaryFuncs = map[m.Operator]binaryFunc{
	m.OpAdd:      Add,
	m.OpSub:      Sub,
	m.OpMul:      Mul,
	m.OpFloorDiv: FloorDiv,
	m.OpTrueDiv:  TrueDiv,
	m.OpMod:      Mod,
	m.OpPow:      Pow,
	m.OpLShift:   LShift,
	m.OpRShift:   RShift,
	m.OpAnd:      And,
	m.OpOr:       Or,
	m.OpXor:      Xor,
}

// Apply evaluates op over operands.
func Apply(op m.Operator, operands ...m.Number) (m.Number, error) {
	if len(operands) != op.Arity() {
		return m.Number{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op, op.Arity(), len(operands))
	}

	switch op {
	case m.OpInvert:
		return Invert(operands[0])
	case m.OpNeg:
		return Neg(operands[0]), nil
	}

	fn, ok := binaryFuncs[op]
	if !ok {
		return m.Number{}, fmt.Errorf("%w: %d", ErrUnknownOperator, int(op))
	}

	return fn(operands[0], operands[1])
}

func bothInts(a, b m.Number) bool {
	return !a.IsFloat() && !b.IsFloat()
}

func isZero(n m.Number) bool {
	if n.IsFloat() {
		return n.Float64() == 0
	}

	return n.Integer().Sign() == 0
}

func typeName(n m.Number) string {
	if n.IsFloat() {
		return "float"
	}

	return "int"
}

func unsupported(op m.Operator, a, b m.Number) error {
	return fmt.Errorf("%w for %s: '%s' and '%s'", ErrUnsupportedOperand, op, typeName(a), typeName(b))
}

func zeroDivision(op m.Operator, a m.Number) error {
	return fmt.Errorf("%w: %s %s 0", ErrZeroDivision, a, op)
}
