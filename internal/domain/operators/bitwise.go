package operators

import (
	"fmt"
	"math/big"

	m "github.com/mouse-blink/opcheck/internal/model"
)

// maxShiftBits bounds left shifts of non-zero values.
const maxShiftBits = 1 << 24

// LShift returns a << b.
func LShift(a, b m.Number) (m.Number, error) {
	if !bothInts(a, b) {
		return m.Number{}, unsupported(m.OpLShift, a, b)
	}

	x, n := a.Integer(), b.Integer()
	if n.Sign() < 0 {
		return m.Number{}, ErrNegativeShift
	}

	if x.Sign() == 0 {
		return m.Int(0), nil
	}

	if !n.IsInt64() || n.Int64() > maxShiftBits {
		return m.Number{}, fmt.Errorf("%w: %s << %s", ErrOverflow, a, b)
	}

	return m.BigInt(x.Lsh(x, uint(n.Int64()))), nil
}

// RShift returns a >> b, an arithmetic shift that rounds toward negative
// infinity.
func RShift(a, b m.Number) (m.Number, error) {
	if !bothInts(a, b) {
		return m.Number{}, unsupported(m.OpRShift, a, b)
	}

	x, n := a.Integer(), b.Integer()
	if n.Sign() < 0 {
		return m.Number{}, ErrNegativeShift
	}

	if !n.IsInt64() || n.Int64() > int64(x.BitLen()) {
		if x.Sign() < 0 {
			return m.Int(-1), nil
		}

		return m.Int(0), nil
	}

	return m.BigInt(x.Rsh(x, uint(n.Int64()))), nil
}

// And returns a & b.
func And(a, b m.Number) (m.Number, error) {
	if !bothInts(a, b) {
		return m.Number{}, unsupported(m.OpAnd, a, b)
	}

	return m.BigInt(new(big.Int).And(a.Integer(), b.Integer())), nil
}

// Or returns a | b.
func Or(a, b m.Number) (m.Number, error) {
	if !bothInts(a, b) {
		return m.Number{}, unsupported(m.OpOr, a, b)
	}

	return m.BigInt(new(big.Int).Or(a.Integer(), b.Integer())), nil
}

// Xor returns a ^ b.
func Xor(a, b m.Number) (m.Number, error) {
	if !bothInts(a, b) {
		return m.Number{}, unsupported(m.OpXor, a, b)
	}

	return m.BigInt(new(big.Int).Xor(a.Integer(), b.Integer())), nil
}

// Invert returns ~a, which is -a-1.
func Invert(a m.Number) (m.Number, error) {
	if a.IsFloat() {
		return m.Number{}, fmt.Errorf("%w for unary %s: '%s'", ErrUnsupportedOperand, m.OpInvert, typeName(a))
	}

	return m.BigInt(new(big.Int).Not(a.Integer())), nil
}
