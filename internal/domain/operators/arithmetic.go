package operators

import (
	"fmt"
	"math"
	"math/big"

	m "github.com/mouse-blink/opcheck/internal/model"
)

// Add returns a + b.
func Add(a, b m.Number) (m.Number, error) {
	if bothInts(a, b) {
		return m.BigInt(new(big.Int).Add(a.Integer(), b.Integer())), nil
	}

	return m.Float(a.Float64() + b.Float64()), nil
}

// Sub returns a - b.
func Sub(a, b m.Number) (m.Number, error) {
	if bothInts(a, b) {
		return m.BigInt(new(big.Int).Sub(a.Integer(), b.Integer())), nil
	}

	return m.Float(a.Float64() - b.Float64()), nil
}

// Mul returns a * b.
func Mul(a, b m.Number) (m.Number, error) {
	if bothInts(a, b) {
		return m.BigInt(new(big.Int).Mul(a.Integer(), b.Integer())), nil
	}

	return m.Float(a.Float64() * b.Float64()), nil
}

// TrueDiv returns a / b as a float, even for integer operands. Integer
// quotients are rounded once from the exact rational.
func TrueDiv(a, b m.Number) (m.Number, error) {
	if isZero(b) {
		return m.Number{}, zeroDivision(m.OpTrueDiv, a)
	}

	if bothInts(a, b) {
		f, _ := new(big.Rat).SetFrac(a.Integer(), b.Integer()).Float64()
		return m.Float(f), nil
	}

	return m.Float(a.Float64() / b.Float64()), nil
}

// FloorDiv returns a // b, the quotient rounded toward negative infinity.
func FloorDiv(a, b m.Number) (m.Number, error) {
	if isZero(b) {
		return m.Number{}, zeroDivision(m.OpFloorDiv, a)
	}

	if bothInts(a, b) {
		q, _ := intDivmod(a.Integer(), b.Integer())
		return m.BigInt(q), nil
	}

	q, _ := floatDivmod(a.Float64(), b.Float64())

	return m.Float(q), nil
}

// Mod returns a % b. A non-zero result has the sign of b.
func Mod(a, b m.Number) (m.Number, error) {
	if isZero(b) {
		return m.Number{}, zeroDivision(m.OpMod, a)
	}

	if bothInts(a, b) {
		_, r := intDivmod(a.Integer(), b.Integer())
		return m.BigInt(r), nil
	}

	_, r := floatDivmod(a.Float64(), b.Float64())

	return m.Float(r), nil
}

// Pow returns a ** b. An integer raised to a negative integer is the
// correctly rounded float of the exact reciprocal.
func Pow(a, b m.Number) (m.Number, error) {
	if bothInts(a, b) {
		base, exp := a.Integer(), b.Integer()
		if exp.Sign() >= 0 {
			return m.BigInt(new(big.Int).Exp(base, exp, nil)), nil
		}

		if base.Sign() == 0 {
			return m.Number{}, zeroDivision(m.OpPow, a)
		}

		denom := new(big.Int).Exp(base, new(big.Int).Neg(exp), nil)
		f, _ := new(big.Rat).SetFrac(big.NewInt(1), denom).Float64()

		return m.Float(f), nil
	}

	x, y := a.Float64(), b.Float64()

	switch {
	case x == 0 && y < 0:
		return m.Number{}, zeroDivision(m.OpPow, a)
	case x < 0 && y != math.Trunc(y) && !math.IsInf(y, 0):
		return m.Number{}, fmt.Errorf("%w: negative number cannot be raised to a fractional power", ErrDomain)
	}

	return m.Float(math.Pow(x, y)), nil
}

// Neg returns -a.
func Neg(a m.Number) m.Number {
	if a.IsFloat() {
		return m.Float(-a.Float64())
	}

	return m.BigInt(new(big.Int).Neg(a.Integer()))
}

// intDivmod returns the floored quotient and the remainder signed like b.
func intDivmod(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}

	return q, r
}

// floatDivmod mirrors CPython's float divmod.
func floatDivmod(x, y float64) (float64, float64) {
	mod := math.Mod(x, y)
	div := (x - mod) / y

	if mod != 0 {
		if (y < 0) != (mod < 0) {
			mod += y
			div--
		}
	} else {
		mod = math.Copysign(0, y)
	}

	var floordiv float64

	if div != 0 {
		floordiv = math.Floor(div)
		if div-floordiv > 0.5 {
			floordiv++
		}
	} else {
		floordiv = math.Copysign(0, x/y)
	}

	return floordiv, mod
}
