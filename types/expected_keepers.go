package types

import (
	context "context"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the bank functionality needed to move underlying assets.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// TokenRegistry is the authoritative list of recognized instrument tokens.
type TokenRegistry interface {
	// IsRegistered reports whether the denom is a recognized instrument.
	IsRegistered(ctx context.Context, denom string) bool
	// DecimalsOf returns the decimal precision of the denom, or an error
	// wrapping ErrTokenNotRegistered when it is unknown.
	DecimalsOf(ctx context.Context, denom string) (uint32, error)
}

// PriceOracle quotes instrument prices in the underlying asset.
type PriceOracle interface {
	// PriceOf returns the price of one whole unit of denom and the number of
	// decimals the price is expressed in. It returns an error wrapping
	// ErrPriceNotSet when no price is stored or the stored price is zero.
	PriceOf(ctx context.Context, denom string) (price math.Int, decimals uint32, err error)
}

// InstrumentAcquirer moves the vault in and out of instruments other than the
// underlying asset. The execution mechanism (swap, mint, transfer) is owned by
// the implementation. Both calls must leave the vault account holding exactly
// what the keeper records: Acquire takes spent from the vault and delivers
// received, Liquidate takes sold from the vault and delivers proceeds.
// The keeper calls both with a context that bypasses the vault send restriction.
type InstrumentAcquirer interface {
	Acquire(ctx context.Context, vaultAddr sdk.AccAddress, spent sdk.Coin, received sdk.Coin) error
	Liquidate(ctx context.Context, vaultAddr sdk.AccAddress, sold sdk.Coin, proceeds sdk.Coin) error
}
