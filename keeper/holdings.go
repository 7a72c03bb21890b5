package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

// GetHolding returns the amount of denom the vault holds on its own books.
func (k Keeper) GetHolding(ctx context.Context, vaultAddr sdk.AccAddress, denom string) (math.Int, error) {
	amt, err := k.Holdings.Get(ctx, collections.Join(vaultAddr, denom))
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return amt, err
}

// GetHoldings returns every nonzero holding of the vault.
func (k Keeper) GetHoldings(ctx context.Context, vaultAddr sdk.AccAddress) (sdk.Coins, error) {
	holdings := sdk.NewCoins()
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, string](vaultAddr)
	err := k.Holdings.Walk(ctx, rng, func(key collections.Pair[sdk.AccAddress, string], amt math.Int) (bool, error) {
		holdings = holdings.Add(sdk.NewCoin(key.K2(), amt))
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk holdings of %s: %w", vaultAddr, err)
	}
	return holdings, nil
}

func (k Keeper) addHolding(ctx context.Context, vaultAddr sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	current, err := k.GetHolding(ctx, vaultAddr, denom)
	if err != nil {
		return err
	}
	updated, err := current.SafeAdd(amount)
	if err != nil {
		return fmt.Errorf("holding overflow for %s: %w", denom, err)
	}
	return k.Holdings.Set(ctx, collections.Join(vaultAddr, denom), updated)
}

func (k Keeper) subHolding(ctx context.Context, vaultAddr sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	current, err := k.GetHolding(ctx, vaultAddr, denom)
	if err != nil {
		return err
	}
	if current.LT(amount) {
		return fmt.Errorf("vault holds %s%s, needs %s%s: %w", current, denom, amount, denom, types.ErrInsufficientHoldings)
	}
	key := collections.Join(vaultAddr, denom)
	if current.Equal(amount) {
		return k.Holdings.Remove(ctx, key)
	}
	return k.Holdings.Set(ctx, key, current.Sub(amount))
}
