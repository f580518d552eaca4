package operators

import (
	"math"
	"math/big"
	"testing"

	m "github.com/mouse-blink/opcheck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_PythonSemantics(t *testing.T) {
	tests := []struct {
		name     string
		op       m.Operator
		operands []m.Number
		want     m.Number
	}{
		{"add", m.OpAdd, []m.Number{m.Int(5), m.Int(1)}, m.Int(6)},
		{"add negative", m.OpAdd, []m.Number{m.Int(5), m.Int(-2)}, m.Int(3)},
		{"sub", m.OpSub, []m.Number{m.Int(5), m.Int(1)}, m.Int(4)},
		{"mul", m.OpMul, []m.Number{m.Int(5), m.Int(3)}, m.Int(15)},
		{"floor div", m.OpFloorDiv, []m.Number{m.Int(7), m.Int(4)}, m.Int(1)},
		{"floor div negative", m.OpFloorDiv, []m.Number{m.Int(-7), m.Int(4)}, m.Int(-2)},
		{"floor div float", m.OpFloorDiv, []m.Number{m.Float(7.5), m.Int(2)}, m.Float(3)},
		{"floor div negative float", m.OpFloorDiv, []m.Number{m.Float(-7.5), m.Int(2)}, m.Float(-4)},
		{"true div ints", m.OpTrueDiv, []m.Number{m.Int(5), m.Int(2)}, m.Float(2.5)},
		{"true div float", m.OpTrueDiv, []m.Number{m.Int(5), m.Float(2.0)}, m.Float(2.5)},
		{"true div exact", m.OpTrueDiv, []m.Number{m.Int(4), m.Int(2)}, m.Float(2)},
		{"mod", m.OpMod, []m.Number{m.Int(5), m.Int(2)}, m.Int(1)},
		{"mod negative dividend", m.OpMod, []m.Number{m.Int(-5), m.Int(4)}, m.Int(3)},
		{"mod negative divisor", m.OpMod, []m.Number{m.Int(5), m.Int(-3)}, m.Int(-1)},
		{"mod exact", m.OpMod, []m.Number{m.Int(-8), m.Int(4)}, m.Int(0)},
		{"mod float negative divisor", m.OpMod, []m.Number{m.Float(5.5), m.Int(-2)}, m.Float(-0.5)},
		{"pow", m.OpPow, []m.Number{m.Int(5), m.Int(4)}, m.Int(625)},
		{"pow negative exponent", m.OpPow, []m.Number{m.Int(5), m.Int(-2)}, m.Float(0.04)},
		{"pow negative base", m.OpPow, []m.Number{m.Int(-2), m.Int(3)}, m.Int(-8)},
		{"pow float", m.OpPow, []m.Number{m.Float(2), m.Float(0.5)}, m.Float(math.Sqrt2)},
		{"left shift", m.OpLShift, []m.Number{m.Int(5), m.Int(2)}, m.Int(20)},
		{"right shift", m.OpRShift, []m.Number{m.Int(5), m.Int(2)}, m.Int(1)},
		{"right shift negative", m.OpRShift, []m.Number{m.Int(-5), m.Int(1)}, m.Int(-3)},
		{"right shift past width", m.OpRShift, []m.Number{m.Int(-5), m.Int(100)}, m.Int(-1)},
		{"and", m.OpAnd, []m.Number{m.Int(5), m.Int(3)}, m.Int(1)},
		{"and negative", m.OpAnd, []m.Number{m.Int(-6), m.Int(7)}, m.Int(2)},
		{"or", m.OpOr, []m.Number{m.Int(5), m.Int(19)}, m.Int(23)},
		{"xor", m.OpXor, []m.Number{m.Int(5), m.Int(14)}, m.Int(11)},
		{"invert", m.OpInvert, []m.Number{m.Int(5)}, m.Int(-6)},
		{"invert negative", m.OpInvert, []m.Number{m.Int(-1)}, m.Int(0)},
		{"neg", m.OpNeg, []m.Number{m.Int(5)}, m.Int(-5)},
		{"neg float", m.OpNeg, []m.Number{m.Float(2.5)}, m.Float(-2.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.op, tt.operands...)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			assert.Equal(t, tt.want.IsFloat(), got.IsFloat(), "kind of %s", got)
		})
	}
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name     string
		op       m.Operator
		operands []m.Number
		want     error
	}{
		{"true div by zero", m.OpTrueDiv, []m.Number{m.Int(5), m.Int(0)}, ErrZeroDivision},
		{"floor div by zero float", m.OpFloorDiv, []m.Number{m.Int(5), m.Float(0)}, ErrZeroDivision},
		{"mod by zero", m.OpMod, []m.Number{m.Int(5), m.Int(0)}, ErrZeroDivision},
		{"zero to negative power", m.OpPow, []m.Number{m.Int(0), m.Int(-1)}, ErrZeroDivision},
		{"negative fractional power", m.OpPow, []m.Number{m.Float(-8), m.Float(0.5)}, ErrDomain},
		{"negative left shift", m.OpLShift, []m.Number{m.Int(5), m.Int(-1)}, ErrNegativeShift},
		{"negative right shift", m.OpRShift, []m.Number{m.Int(5), m.Int(-1)}, ErrNegativeShift},
		{"huge left shift", m.OpLShift, []m.Number{m.Int(1), m.BigInt(new(big.Int).Lsh(big.NewInt(1), 70))}, ErrOverflow},
		{"float shift", m.OpLShift, []m.Number{m.Float(5), m.Int(1)}, ErrUnsupportedOperand},
		{"float and", m.OpAnd, []m.Number{m.Int(5), m.Float(1)}, ErrUnsupportedOperand},
		{"float or", m.OpOr, []m.Number{m.Float(5), m.Float(1)}, ErrUnsupportedOperand},
		{"float xor", m.OpXor, []m.Number{m.Float(5), m.Int(1)}, ErrUnsupportedOperand},
		{"float invert", m.OpInvert, []m.Number{m.Float(5)}, ErrUnsupportedOperand},
		{"missing operand", m.OpAdd, []m.Number{m.Int(5)}, ErrArity},
		{"extra operand", m.OpInvert, []m.Number{m.Int(5), m.Int(1)}, ErrArity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(tt.op, tt.operands...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestApply_UnknownOperator(t *testing.T) {
	_, err := Apply(m.Operator(99), m.Int(1), m.Int(2))
	require.ErrorIs(t, err, ErrUnknownOperator)
}

func TestApply_DoesNotMutateOperands(t *testing.T) {
	a, b := m.Int(-5), m.Int(4)

	for _, op := range m.BinaryOperators() {
		_, _ = Apply(op, a, b)
	}

	assert.Equal(t, "-5", a.String())
	assert.Equal(t, "4", b.String())
}

func TestApply_UnboundedIntegers(t *testing.T) {
	got, err := Apply(m.OpLShift, m.Int(1), m.Int(100))
	require.NoError(t, err)
	assert.Equal(t, "1267650600228229401496703205376", got.String())

	got, err = Apply(m.OpFloorDiv, got, m.Int(-3))
	require.NoError(t, err)
	assert.Equal(t, "-422550200076076467165567735126", got.String())
}

func TestFloatDivmod_SignedZero(t *testing.T) {
	q, r := floatDivmod(4, -2)
	assert.Equal(t, -2.0, q)
	assert.True(t, math.Signbit(r), "remainder should be -0.0")

	q, r = floatDivmod(0, -2)
	assert.True(t, math.Signbit(q), "quotient should be -0.0")
	assert.True(t, math.Signbit(r), "remainder should be -0.0")
}
