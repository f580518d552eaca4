package model

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_String(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{Int(0), "0"},
		{Int(-6), "-6"},
		{BigInt(new(big.Int).Lsh(big.NewInt(1), 64)), "18446744073709551616"},
		{Float(2.5), "2.5"},
		{Float(0.04), "0.04"},
		{Float(3), "3.0"},
		{Float(-1), "-1.0"},
		{Float(0), "0.0"},
		{Float(math.Copysign(0, -1)), "-0.0"},
		{Float(1e16), "1e+16"},
		{Float(1e-5), "1e-05"},
		{Float(0.0001), "0.0001"},
		{Float(123456789012345680.0), "1.2345678901234568e+17"},
		{Float(math.Inf(1)), "inf"},
		{Float(math.Inf(-1)), "-inf"},
		{Float(math.NaN()), "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.String())
		})
	}
}

func TestNumber_Equal(t *testing.T) {
	assert.True(t, Int(1).Equal(Float(1)))
	assert.True(t, Float(2.5).Equal(Float(2.5)))
	assert.True(t, Int(-6).Equal(Int(-6)))
	assert.False(t, Int(1).Equal(Float(1.5)))
	assert.False(t, Int(3).Equal(Int(4)))
	assert.False(t, Float(math.NaN()).Equal(Float(math.NaN())))
	assert.False(t, Int(1).Equal(Float(math.Inf(1))))

	// 2**53 + 1 has no exact float64 representation.
	big53 := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 53), big.NewInt(1))
	assert.False(t, BigInt(big53).Equal(Float(math.Pow(2, 53))))
}

func TestNumber_ZeroValueIsIntegerZero(t *testing.T) {
	var n Number

	assert.False(t, n.IsFloat())
	assert.Equal(t, "0", n.String())
	assert.True(t, n.Equal(Int(0)))
}

func TestNumber_BigIntCopies(t *testing.T) {
	v := big.NewInt(7)
	n := BigInt(v)
	v.SetInt64(8)

	assert.Equal(t, "7", n.String())

	n.Integer().SetInt64(9)
	assert.Equal(t, "7", n.String())
}

func TestNumber_Float64(t *testing.T) {
	assert.Equal(t, 5.0, Int(5).Float64())
	assert.Equal(t, 2.5, Float(2.5).Float64())

	huge := new(big.Int).Lsh(big.NewInt(1), 2000)
	assert.True(t, math.IsInf(BigInt(huge).Float64(), 1))
}

func TestNumber_Sign(t *testing.T) {
	assert.Equal(t, -1, Int(-3).Sign())
	assert.Equal(t, 0, Int(0).Sign())
	assert.Equal(t, 1, Float(0.5).Sign())
	assert.Equal(t, -1, Float(-0.5).Sign())
}
