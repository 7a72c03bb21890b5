package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// MulDivFloor returns floor(a * b / c) with a checked multiplication.
// Error if any input is negative, c is zero, or a*b overflows 256 bits.
func MulDivFloor(a, b, c math.Int) (math.Int, error) {
	if a.IsNegative() || b.IsNegative() || c.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if c.IsZero() {
		return math.Int{}, fmt.Errorf("division by zero")
	}
	product, err := a.SafeMul(b)
	if err != nil {
		return math.Int{}, fmt.Errorf("%s * %s: %w", a, b, err)
	}
	return product.Quo(c), nil
}

// MulDivCeil returns ceil(a * b / c) under the same rules as MulDivFloor.
func MulDivCeil(a, b, c math.Int) (math.Int, error) {
	floor, err := MulDivFloor(a, b, c)
	if err != nil {
		return math.Int{}, err
	}
	if floor.Mul(c).Equal(a.Mul(b)) {
		return floor, nil
	}
	return floor.AddRaw(1), nil
}

// NormalizeValue converts amount * price, expressed with amountDecimals +
// priceDecimals of precision, into targetDecimals, flooring when precision
// is reduced.
func NormalizeValue(amount, price math.Int, amountDecimals, priceDecimals, targetDecimals uint32) (math.Int, error) {
	raw, err := amount.SafeMul(price)
	if err != nil {
		return math.Int{}, fmt.Errorf("value of %s at price %s: %w", amount, price, err)
	}
	return RescaleDecimals(raw, amountDecimals+priceDecimals, targetDecimals)
}
