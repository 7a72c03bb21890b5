package mocks

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/provlabs/rwavault/types"
)

var _ types.BankKeeper = (*Bank)(nil)

// Bank is a minimal bank keeper storing balances in collections.
type Bank struct {
	balances    collections.Map[collections.Pair[sdk.AccAddress, string], math.Int]
	restriction banktypes.SendRestrictionFn

	// OnSend, if set, runs after every successful transfer with the transfer's
	// context. An error from it fails the send.
	OnSend func(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error
}

// NewBank creates a Bank that keeps balances under its own prefix of storeService.
func NewBank(storeService store.KVStoreService) *Bank {
	builder := collections.NewSchemaBuilder(storeService)
	bank := &Bank{
		balances: collections.NewMap(builder, collections.NewPrefix("mock_bank"), "mock_bank_balances",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
	}
	if _, err := builder.Build(); err != nil {
		panic(err)
	}
	return bank
}

// SetSendRestriction installs fn to vet every SendCoins call.
func (b *Bank) SetSendRestriction(fn banktypes.SendRestrictionFn) {
	b.restriction = fn
}

// Mint credits coins to addr out of thin air.
func (b *Bank) Mint(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) error {
	for _, coin := range coins {
		bal := b.GetBalance(ctx, addr, coin.Denom)
		if err := b.balances.Set(ctx, collections.Join(addr, coin.Denom), bal.Amount.Add(coin.Amount)); err != nil {
			return err
		}
	}
	return nil
}

// SendCoins moves amt from fromAddr to toAddr after applying the send restriction.
func (b *Bank) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if b.restriction != nil {
		var err error
		if toAddr, err = b.restriction(ctx, fromAddr, toAddr, amt); err != nil {
			return err
		}
	}

	for _, coin := range amt {
		from := b.GetBalance(ctx, fromAddr, coin.Denom)
		if from.Amount.LT(coin.Amount) {
			return fmt.Errorf("spendable balance %s is smaller than %s: insufficient funds", from, coin)
		}
		if err := b.balances.Set(ctx, collections.Join(fromAddr, coin.Denom), from.Amount.Sub(coin.Amount)); err != nil {
			return err
		}
		to := b.GetBalance(ctx, toAddr, coin.Denom)
		if err := b.balances.Set(ctx, collections.Join(toAddr, coin.Denom), to.Amount.Add(coin.Amount)); err != nil {
			return err
		}
	}

	if b.OnSend != nil {
		return b.OnSend(ctx, fromAddr, toAddr, amt)
	}
	return nil
}

// GetBalance returns the balance of addr in denom.
func (b *Bank) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amt, err := b.balances.Get(ctx, collections.Join(addr, denom))
	if errors.Is(err, collections.ErrNotFound) {
		return sdk.NewCoin(denom, math.ZeroInt())
	}
	if err != nil {
		panic(err)
	}
	return sdk.NewCoin(denom, amt)
}
