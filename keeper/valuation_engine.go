package keeper

import (
	"errors"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
	"github.com/provlabs/rwavault/utils"
)

// InstrumentValue converts a holding of denom into its value in the vault's
// underlying asset, using integer floor arithmetic:
//
//	value = amount * price / 10^(instrumentDecimals + priceDecimals - assetDecimals)
//
// A zero holding is worth zero without an oracle lookup. A missing or zero
// oracle price is reported as ErrPriceNotSet.
func (k Keeper) InstrumentValue(ctx sdk.Context, vault types.VaultConfig, holding sdk.Coin) (math.Int, error) {
	if holding.Amount.IsZero() {
		return math.ZeroInt(), nil
	}

	price, priceDecimals, err := k.Oracle.PriceOf(ctx, holding.Denom)
	if err != nil {
		if errors.Is(err, types.ErrPriceNotSet) {
			return math.Int{}, err
		}
		return math.Int{}, fmt.Errorf("%s: %w: %w", holding.Denom, types.ErrPriceNotSet, err)
	}
	if price.IsNil() || !price.IsPositive() {
		return math.Int{}, fmt.Errorf("%s: %w", holding.Denom, types.ErrPriceNotSet)
	}
	decimals, err := k.Registry.DecimalsOf(ctx, holding.Denom)
	if err != nil {
		return math.Int{}, fmt.Errorf("failed to get decimals of %s: %w", holding.Denom, err)
	}
	return utils.NormalizeValue(holding.Amount, price, decimals, priceDecimals, vault.AssetDecimals)
}

// TotalAssets returns the value of the vault's holdings in the underlying asset.
//
// Only active allocation entries are valued. An entry whose holding is zero
// contributes zero without an oracle lookup; any other entry without a usable
// price fails the whole valuation. A vault with no active entries, or only
// empty holdings, is worth zero. This function does not mutate state.
func (k Keeper) TotalAssets(ctx sdk.Context, vaultAddr sdk.AccAddress) (math.Int, error) {
	vault, err := k.requireVault(ctx, vaultAddr)
	if err != nil {
		return math.Int{}, err
	}
	table, err := k.GetAllocationTable(ctx, vaultAddr)
	if err != nil {
		return math.Int{}, fmt.Errorf("failed to get allocations: %w", err)
	}

	total := math.ZeroInt()
	for _, entry := range table.ActiveEntries() {
		bal, err := k.GetHolding(ctx, vaultAddr, entry.Denom)
		if err != nil {
			return math.Int{}, err
		}
		val, err := k.InstrumentValue(ctx, vault, sdk.Coin{Denom: entry.Denom, Amount: bal})
		if err != nil {
			return math.Int{}, err
		}
		if total, err = total.SafeAdd(val); err != nil {
			return math.Int{}, fmt.Errorf("total assets overflow: %w", err)
		}
	}
	return total, nil
}
