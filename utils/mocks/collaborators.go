package mocks

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

var (
	_ types.TokenRegistry      = (*Registry)(nil)
	_ types.PriceOracle        = (*Oracle)(nil)
	_ types.InstrumentAcquirer = (*Acquirer)(nil)
)

// Registry is an in-memory token registry.
type Registry struct {
	decimals map[string]uint32
}

func NewRegistry() *Registry {
	return &Registry{decimals: map[string]uint32{}}
}

// Register records denom with the given decimals.
func (r *Registry) Register(denom string, decimals uint32) {
	r.decimals[denom] = decimals
}

// Unregister forgets denom.
func (r *Registry) Unregister(denom string) {
	delete(r.decimals, denom)
}

func (r *Registry) IsRegistered(_ context.Context, denom string) bool {
	_, ok := r.decimals[denom]
	return ok
}

func (r *Registry) DecimalsOf(_ context.Context, denom string) (uint32, error) {
	dec, ok := r.decimals[denom]
	if !ok {
		return 0, fmt.Errorf("%s: %w", denom, types.ErrTokenNotRegistered)
	}
	return dec, nil
}

type price struct {
	amount   math.Int
	decimals uint32
}

// Oracle is an in-memory price oracle.
type Oracle struct {
	prices map[string]price
}

func NewOracle() *Oracle {
	return &Oracle{prices: map[string]price{}}
}

// SetPrice stores the price of one whole unit of denom, expressed with decimals.
func (o *Oracle) SetPrice(denom string, amount math.Int, decimals uint32) {
	o.prices[denom] = price{amount: amount, decimals: decimals}
}

// ClearPrice removes the price of denom.
func (o *Oracle) ClearPrice(denom string) {
	delete(o.prices, denom)
}

func (o *Oracle) PriceOf(_ context.Context, denom string) (math.Int, uint32, error) {
	p, ok := o.prices[denom]
	if !ok || p.amount.IsNil() || p.amount.IsZero() {
		return math.Int{}, 0, fmt.Errorf("%s: %w", denom, types.ErrPriceNotSet)
	}
	return p.amount, p.decimals, nil
}

// AcquireCall records one InstrumentAcquirer.Acquire call.
type AcquireCall struct {
	Vault    sdk.AccAddress
	Spent    sdk.Coin
	Received sdk.Coin
}

// LiquidateCall records one InstrumentAcquirer.Liquidate call.
type LiquidateCall struct {
	Vault    sdk.AccAddress
	Sold     sdk.Coin
	Proceeds sdk.Coin
}

// Acquirer is an instrument desk backed by Bank. It takes what the vault pays
// into Desk and mints what the vault receives, so the vault's bank balances
// follow its recorded holdings. Calls fail with Err when set.
type Acquirer struct {
	Bank *Bank
	Desk sdk.AccAddress

	Calls        []AcquireCall
	Liquidations []LiquidateCall
	Err          error
}

func (a *Acquirer) Acquire(ctx context.Context, vaultAddr sdk.AccAddress, spent, received sdk.Coin) error {
	if a.Err != nil {
		return a.Err
	}
	if err := a.trade(ctx, vaultAddr, spent, received); err != nil {
		return err
	}
	a.Calls = append(a.Calls, AcquireCall{Vault: vaultAddr, Spent: spent, Received: received})
	return nil
}

func (a *Acquirer) Liquidate(ctx context.Context, vaultAddr sdk.AccAddress, sold, proceeds sdk.Coin) error {
	if a.Err != nil {
		return a.Err
	}
	if err := a.trade(ctx, vaultAddr, sold, proceeds); err != nil {
		return err
	}
	a.Liquidations = append(a.Liquidations, LiquidateCall{Vault: vaultAddr, Sold: sold, Proceeds: proceeds})
	return nil
}

func (a *Acquirer) trade(ctx context.Context, vaultAddr sdk.AccAddress, out, in sdk.Coin) error {
	if a.Bank == nil {
		return nil
	}
	if err := a.Bank.SendCoins(ctx, vaultAddr, a.Desk, sdk.NewCoins(out)); err != nil {
		return err
	}
	return a.Bank.Mint(ctx, vaultAddr, sdk.NewCoins(in))
}
