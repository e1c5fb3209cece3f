// Package denomination converts token amounts expressed in their smallest
// indivisible unit into human denominated values.
package denomination

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// ToBaseDenomination rounds value to the nearest integer, half away from
// zero, then divides it by 10^decimals.
//
// NaN and infinite values are returned unchanged.
func ToBaseDenomination(value float64, decimals uint8) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(0).Shift(-int32(decimals)).InexactFloat64()
}

// FromSmallestUnit is the exact variant for on-chain integer amounts
func FromSmallestUnit(value *big.Int, decimals uint8) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -int32(decimals))
}

// ParseSmallestUnit parses a base 10 integer amount, which may exceed the
// float64 range, and scales it like FromSmallestUnit.
func ParseSmallestUnit(value string, decimals uint8) (decimal.Decimal, bool) {
	v, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return decimal.Zero, false
	}
	return FromSmallestUnit(v, decimals), true
}
