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

// BalanceOf returns the share balance of holder in the vault.
func (k Keeper) BalanceOf(ctx context.Context, vaultAddr, holder sdk.AccAddress) (math.Int, error) {
	bal, err := k.ShareBalances.Get(ctx, collections.Join(vaultAddr, holder))
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return bal, err
}

// TotalSupply returns the total share supply of the vault.
func (k Keeper) TotalSupply(ctx context.Context, vaultAddr sdk.AccAddress) (math.Int, error) {
	supply, err := k.ShareSupply.Get(ctx, vaultAddr)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return supply, err
}

// mintShares credits amount shares to holder and grows the supply by the same
// amount. A zero amount leaves both untouched.
func (k Keeper) mintShares(ctx context.Context, vaultAddr, holder sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return fmt.Errorf("cannot mint %v shares: %w", amount, types.ErrInvalidAmount)
	}
	if amount.IsZero() {
		return nil
	}

	supply, err := k.TotalSupply(ctx, vaultAddr)
	if err != nil {
		return err
	}
	newSupply, err := supply.SafeAdd(amount)
	if err != nil {
		return fmt.Errorf("share supply overflow: %w", err)
	}
	bal, err := k.BalanceOf(ctx, vaultAddr, holder)
	if err != nil {
		return err
	}

	if err := k.ShareBalances.Set(ctx, collections.Join(vaultAddr, holder), bal.Add(amount)); err != nil {
		return fmt.Errorf("failed to set share balance: %w", err)
	}
	return k.ShareSupply.Set(ctx, vaultAddr, newSupply)
}

// burnShares debits amount shares from holder and shrinks the supply by the
// same amount. A zero amount leaves both untouched.
func (k Keeper) burnShares(ctx context.Context, vaultAddr, holder sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return fmt.Errorf("cannot burn %v shares: %w", amount, types.ErrInvalidAmount)
	}
	if amount.IsZero() {
		return nil
	}

	bal, err := k.BalanceOf(ctx, vaultAddr, holder)
	if err != nil {
		return err
	}
	if bal.LT(amount) {
		return fmt.Errorf("balance %s is less than %s: %w", bal, amount, types.ErrInsufficientShares)
	}
	supply, err := k.TotalSupply(ctx, vaultAddr)
	if err != nil {
		return err
	}

	if err := k.setShareBalance(ctx, vaultAddr, holder, bal.Sub(amount)); err != nil {
		return err
	}
	return k.ShareSupply.Set(ctx, vaultAddr, supply.Sub(amount))
}

// moveShares transfers amount shares between two holders without touching supply.
func (k Keeper) moveShares(ctx context.Context, vaultAddr, from, to sdk.AccAddress, amount math.Int) error {
	fromBal, err := k.BalanceOf(ctx, vaultAddr, from)
	if err != nil {
		return err
	}
	if fromBal.LT(amount) {
		return fmt.Errorf("balance %s is less than %s: %w", fromBal, amount, types.ErrInsufficientShares)
	}
	if err := k.setShareBalance(ctx, vaultAddr, from, fromBal.Sub(amount)); err != nil {
		return err
	}
	toBal, err := k.BalanceOf(ctx, vaultAddr, to)
	if err != nil {
		return err
	}
	return k.setShareBalance(ctx, vaultAddr, to, toBal.Add(amount))
}

// setShareBalance stores a balance, pruning the entry when it reaches zero.
func (k Keeper) setShareBalance(ctx context.Context, vaultAddr, holder sdk.AccAddress, amount math.Int) error {
	key := collections.Join(vaultAddr, holder)
	if amount.IsZero() {
		return k.ShareBalances.Remove(ctx, key)
	}
	if err := k.ShareBalances.Set(ctx, key, amount); err != nil {
		return fmt.Errorf("failed to set share balance: %w", err)
	}
	return nil
}

// TransferShares moves shares of a vault from one holder to another.
func (k *Keeper) TransferShares(ctx sdk.Context, vaultAddr, from, to sdk.AccAddress, shares math.Int) error {
	if from.Empty() {
		return fmt.Errorf("sender: %w", types.ErrZeroAddress)
	}
	if to.Empty() {
		return fmt.Errorf("receiver: %w", types.ErrZeroAddress)
	}
	if shares.IsNil() || !shares.IsPositive() {
		return fmt.Errorf("shares must be positive: %w", types.ErrInvalidAmount)
	}
	if _, err := k.requireVault(ctx, vaultAddr); err != nil {
		return err
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if err := k.moveShares(ctx, vaultAddr, from, to, shares); err != nil {
			return err
		}
		k.emitEvent(ctx, types.NewEventSharesTransferred(vaultAddr.String(), from.String(), to.String(), shares))
		return nil
	})
}

// CheckShareSupplyInvariant verifies that the stored supply of every vault
// equals the sum of its holder balances.
func (k Keeper) CheckShareSupplyInvariant(ctx context.Context) error {
	vaults, err := k.GetVaults(ctx)
	if err != nil {
		return err
	}
	for _, vaultAddr := range vaults {
		sum := math.ZeroInt()
		rng := collections.NewPrefixedPairRange[sdk.AccAddress, sdk.AccAddress](vaultAddr)
		err := k.ShareBalances.Walk(ctx, rng, func(_ collections.Pair[sdk.AccAddress, sdk.AccAddress], bal math.Int) (bool, error) {
			sum = sum.Add(bal)
			return false, nil
		})
		if err != nil {
			return fmt.Errorf("failed to walk share balances of %s: %w", vaultAddr, err)
		}
		supply, err := k.TotalSupply(ctx, vaultAddr)
		if err != nil {
			return err
		}
		if !supply.Equal(sum) {
			return fmt.Errorf("vault %s share supply %s does not equal sum of balances %s", vaultAddr, supply, sum)
		}
	}
	return nil
}
