package domain

import (
	m "github.com/mouse-blink/opcheck/internal/model"
)

// SuiteSize is the number of cases in DefaultSuite.
const SuiteSize = 18

// DefaultSuite returns the built-in operator checks in declaration order.
// Every call builds fresh cases, so runs never share state.
func DefaultSuite() []m.Case {
	return []m.Case{
		binary("Basic addition (5 + 1 = 6)", m.OpAdd, m.Int(5), m.Int(1), m.Int(6)),
		binary("Negative addition (5 + (-2) = 3)", m.OpAdd, m.Int(5), m.Int(-2), m.Int(3)),
		binary("Basic subtraction (5 - 1 = 4)", m.OpSub, m.Int(5), m.Int(1), m.Int(4)),
		binary("Basic multiplication (5 * 3 = 15)", m.OpMul, m.Int(5), m.Int(3), m.Int(15)),
		binary("Floor division (7 // 4 = 1)", m.OpFloorDiv, m.Int(7), m.Int(4), m.Int(1)),
		binary("Normal division (5 / 2 = 2.5)", m.OpTrueDiv, m.Int(5), m.Int(2), m.Float(2.5)),
		binary("Floating division (5 / 2.0 = 2.5)", m.OpTrueDiv, m.Int(5), m.Float(2.0), m.Float(2.5)),
		binary("Basic modulo (5 % 2 = 1)", m.OpMod, m.Int(5), m.Int(2), m.Int(1)),
		binary("Negative modulo (-5 % 4 = 3)", m.OpMod, m.Int(-5), m.Int(4), m.Int(3)),
		binary("Negative modulo (5 % -3 = -1)", m.OpMod, m.Int(5), m.Int(-3), m.Int(-1)),
		binary("Positive power (5 ** 4 = 625)", m.OpPow, m.Int(5), m.Int(4), m.Int(625)),
		binary("Negative power (5 ** -2 = 0.04)", m.OpPow, m.Int(5), m.Int(-2), m.Float(0.04)),
		binary("Left shift (5 << 2 = 20)", m.OpLShift, m.Int(5), m.Int(2), m.Int(20)),
		binary("Right shift (5 >> 2 = 1)", m.OpRShift, m.Int(5), m.Int(2), m.Int(1)),
		binary("Bitwise AND (5 & 3 = 1)", m.OpAnd, m.Int(5), m.Int(3), m.Int(1)),
		binary("Bitwise OR (5 | 19 = 23)", m.OpOr, m.Int(5), m.Int(19), m.Int(23)),
		binary("Bitwise XOR (5 ^ 14 = 11)", m.OpXor, m.Int(5), m.Int(14), m.Int(11)),
		unary("Inversion (~5 = -6)", m.OpInvert, m.Int(5), m.Int(-6)),
	}
}

func binary(label string, op m.Operator, a, b, expected m.Number) m.Case {
	return m.Case{Label: label, Op: op, Operands: []m.Number{a, b}, Expected: expected}
}

func unary(label string, op m.Operator, a, expected m.Number) m.Case {
	return m.Case{Label: label, Op: op, Operands: []m.Number{a}, Expected: expected}
}
