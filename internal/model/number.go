// Package model defines the data structures for operator checks.
package model

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number is an immutable numeric value. It holds either an unbounded
// integer or a float64, never both.
type Number struct {
	i     *big.Int
	f     float64
	float bool
}

// Int returns an integer Number.
func Int(v int64) Number {
	return Number{i: big.NewInt(v)}
}

// BigInt returns an integer Number holding a copy of v.
func BigInt(v *big.Int) Number {
	return Number{i: new(big.Int).Set(v)}
}

// Float returns a float Number.
func Float(v float64) Number {
	return Number{f: v, float: true}
}

// IsFloat reports whether n holds a float64.
func (n Number) IsFloat() bool {
	return n.float
}

// Integer returns a copy of the integer value. It is zero for floats.
func (n Number) Integer() *big.Int {
	if n.float || n.i == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(n.i)
}

// Float64 converts n to the nearest float64. Integers too large for a
// float64 become ±Inf.
func (n Number) Float64() float64 {
	if n.float {
		return n.f
	}

	f, _ := new(big.Float).SetInt(n.Integer()).Float64()

	return f
}

// Rat returns the exact rational value of n. ok is false for NaN and ±Inf.
func (n Number) Rat() (r *big.Rat, ok bool) {
	if !n.float {
		return new(big.Rat).SetInt(n.Integer()), true
	}

	if math.IsNaN(n.f) || math.IsInf(n.f, 0) {
		return nil, false
	}

	return new(big.Rat).SetFloat64(n.f), true
}

// Equal compares the mathematical values of n and o, so Int(1) equals
// Float(1). NaN is not equal to anything.
func (n Number) Equal(o Number) bool {
	switch {
	case !n.float && !o.float:
		return n.Integer().Cmp(o.Integer()) == 0
	case n.float && o.float:
		return n.f == o.f
	}

	a, ok := n.Rat()
	if !ok {
		return false
	}

	b, ok := o.Rat()
	if !ok {
		return false
	}

	return a.Cmp(b) == 0
}

// Sign returns -1, 0 or +1. NaN reports 0.
func (n Number) Sign() int {
	if !n.float {
		return n.Integer().Sign()
	}

	switch {
	case n.f < 0:
		return -1
	case n.f > 0:
		return 1
	}

	return 0
}

// String renders n the way Python's repr does.
func (n Number) String() string {
	if !n.float {
		return n.Integer().String()
	}

	return formatFloat(n.f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}

		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)

	exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	out := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}

	return out
}
