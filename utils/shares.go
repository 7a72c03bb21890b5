package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// ShareDecimals is the fixed precision of vault shares.
const ShareDecimals = 18

// Pow10 returns 10^exp.
func Pow10(exp uint32) math.Int {
	return math.NewIntWithDecimal(1, int(exp))
}

// RescaleDecimals converts amount from `from` decimals to `to` decimals.
// Scaling up is exact; scaling down floors.
//
//	to >= from: amount * 10^(to-from)
//	to <  from: floor( amount / 10^(from-to) )
//
// Error if amount is negative or the result overflows 256 bits.
func RescaleDecimals(amount math.Int, from, to uint32) (math.Int, error) {
	if amount.IsNil() || amount.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	switch {
	case from == to:
		return amount, nil
	case to > from:
		out, err := amount.SafeMul(Pow10(to - from))
		if err != nil {
			return math.Int{}, fmt.Errorf("rescale %s from %d to %d decimals: %w", amount, from, to, err)
		}
		return out, nil
	default:
		return amount.Quo(Pow10(from - to)), nil
	}
}

// ConvertToShares returns the shares minted for assets of an underlying with
// assetDecimals precision. The conversion depends on decimals only, never on
// vault totals:
//
//	shares = assets * 10^(18 - assetDecimals)
//
// ConvertToShares(0) is always 0.
func ConvertToShares(assets math.Int, assetDecimals uint32) (math.Int, error) {
	if assetDecimals > ShareDecimals {
		return math.Int{}, fmt.Errorf("asset decimals %d exceed share decimals %d", assetDecimals, ShareDecimals)
	}
	return RescaleDecimals(assets, assetDecimals, ShareDecimals)
}

// ConvertToAssets is the inverse of ConvertToShares, flooring any share dust
// below one asset base unit:
//
//	assets = floor( shares / 10^(18 - assetDecimals) )
//
// ConvertToAssets(ConvertToShares(a)) == a for every a >= 0.
func ConvertToAssets(shares math.Int, assetDecimals uint32) (math.Int, error) {
	if assetDecimals > ShareDecimals {
		return math.Int{}, fmt.Errorf("asset decimals %d exceed share decimals %d", assetDecimals, ShareDecimals)
	}
	return RescaleDecimals(shares, ShareDecimals, assetDecimals)
}
