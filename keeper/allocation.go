package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
	"github.com/provlabs/rwavault/utils"
)

// SetAllocations replaces the vault's allocation table. The caller must hold
// the admin role. The new table is validated as a whole and stored only if
// every check passes; see types.ValidateAllocations for the check order.
func (k *Keeper) SetAllocations(ctx sdk.Context, vaultAddr, admin sdk.AccAddress, entries []types.Allocation) error {
	if _, err := k.requireVault(ctx, vaultAddr); err != nil {
		return err
	}
	if err := k.requireRole(ctx, vaultAddr, admin, types.RoleAdmin); err != nil {
		return err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("failed to get params: %w", err)
	}

	isRegistered := func(denom string) bool { return k.Registry.IsRegistered(ctx, denom) }
	if err := types.ValidateAllocations(entries, params.MaxAllocations, isRegistered); err != nil {
		return err
	}

	table := types.AllocationTable{Entries: make([]types.Allocation, len(entries))}
	copy(table.Entries, entries)

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if err := k.Allocations.Set(ctx, vaultAddr, table); err != nil {
			return fmt.Errorf("failed to store allocations: %w", err)
		}
		k.emitEvent(ctx, types.NewEventAllocationsUpdated(vaultAddr.String(), admin.String(), len(table.Entries)))
		k.getLogger(ctx).Info("allocations updated", "vault", vaultAddr.String(), "entries", len(table.Entries))
		return nil
	})
}

// allocationSplit is the portion of a deposit routed to one active entry, in
// units of the underlying asset.
type allocationSplit struct {
	Denom  string
	Amount math.Int
}

// splitDeposit divides assets across the active entries of the table.
//
// Each active entry receives floor(assets * weight / 1e18). The rounding dust
// of those floors is added to the last active entry so that the active
// entries together account for exactly floor(assets * activeWeight / 1e18).
// The returned unallocated amount is the share belonging to inactive weight,
// which is zero whenever the active weights sum to 1e18.
func splitDeposit(table types.AllocationTable, assets math.Int) (splits []allocationSplit, unallocated math.Int, err error) {
	active := table.ActiveEntries()
	if len(active) == 0 {
		return nil, assets, nil
	}

	activeWeight := math.ZeroInt()
	for _, entry := range active {
		activeWeight = activeWeight.Add(entry.Weight)
	}
	activeTotal, err := utils.MulDivFloor(assets, activeWeight, types.WeightScale)
	if err != nil {
		return nil, math.Int{}, err
	}

	splits = make([]allocationSplit, len(active))
	allocated := math.ZeroInt()
	for i, entry := range active {
		target, err := utils.MulDivFloor(assets, entry.Weight, types.WeightScale)
		if err != nil {
			return nil, math.Int{}, fmt.Errorf("failed to split deposit for %s: %w", entry.Denom, err)
		}
		splits[i] = allocationSplit{Denom: entry.Denom, Amount: target}
		allocated = allocated.Add(target)
	}

	last := len(splits) - 1
	splits[last].Amount = splits[last].Amount.Add(activeTotal.Sub(allocated))
	return splits, assets.Sub(activeTotal), nil
}

// allocateDeposit realizes a deposit that has already reached the vault
// account as holdings of each active instrument.
//
// Steps:
//  1. Split the deposit across active entries (see splitDeposit).
//  2. For an entry in the underlying asset, record the split as an underlying holding.
//  3. For any other instrument, rescale the split from the asset's decimals to the
//     instrument's registry decimals, hand it to the InstrumentAcquirer and record
//     the rescaled amount as a holding. Dust lost to rescaling is dropped.
//  4. Record any unallocated remainder as an underlying holding.
func (k *Keeper) allocateDeposit(ctx sdk.Context, vault types.VaultConfig, assets math.Int) error {
	vaultAddr := vault.GetAddress()
	table, err := k.GetAllocationTable(ctx, vaultAddr)
	if err != nil {
		return fmt.Errorf("failed to get allocations: %w", err)
	}

	splits, unallocated, err := splitDeposit(table, assets)
	if err != nil {
		return err
	}

	for _, split := range splits {
		if !split.Amount.IsPositive() {
			continue
		}
		spent := sdk.NewCoin(vault.UnderlyingAsset, split.Amount)
		received := spent

		if split.Denom != vault.UnderlyingAsset {
			decimals, err := k.Registry.DecimalsOf(ctx, split.Denom)
			if err != nil {
				return fmt.Errorf("failed to get decimals of %s: %w", split.Denom, err)
			}
			amount, err := utils.RescaleDecimals(split.Amount, vault.AssetDecimals, decimals)
			if err != nil {
				return fmt.Errorf("failed to rescale allocation to %s: %w", split.Denom, err)
			}
			received = sdk.NewCoin(split.Denom, amount)
			if err := k.Acquirer.Acquire(types.WithBypass(ctx), vaultAddr, spent, received); err != nil {
				return fmt.Errorf("failed to acquire %s: %w", received, err)
			}
		}

		if err := k.addHolding(ctx, vaultAddr, received.Denom, received.Amount); err != nil {
			return err
		}
		k.emitEvent(ctx, types.NewEventAllocation(vaultAddr.String(), spent, received))
	}

	return k.addHolding(ctx, vaultAddr, vault.UnderlyingAsset, unallocated)
}

// releaseLiquidity sells instrument holdings until the vault's underlying
// holding covers amount. Holdings are sold in denom order at their oracle
// value. Each sale is the smallest quantity whose value covers the remaining
// shortfall, or the whole holding when it is worth less. Any excess proceeds
// stay as underlying. If every holding together is worth less than the
// shortfall the caller's debit fails with ErrInsufficientHoldings.
func (k *Keeper) releaseLiquidity(ctx sdk.Context, vault types.VaultConfig, amount math.Int) error {
	vaultAddr := vault.GetAddress()
	available, err := k.GetHolding(ctx, vaultAddr, vault.UnderlyingAsset)
	if err != nil {
		return err
	}
	if available.GTE(amount) {
		return nil
	}
	holdings, err := k.GetHoldings(ctx, vaultAddr)
	if err != nil {
		return err
	}

	shortfall := amount.Sub(available)
	for _, holding := range holdings {
		if !shortfall.IsPositive() {
			break
		}
		if holding.Denom == vault.UnderlyingAsset {
			continue
		}
		value, err := k.InstrumentValue(ctx, vault, holding)
		if err != nil {
			return err
		}
		if !value.IsPositive() {
			continue
		}

		sold := holding
		if value.GT(shortfall) {
			qty, err := utils.MulDivCeil(shortfall, holding.Amount, value)
			if err != nil {
				return fmt.Errorf("failed to size sale of %s: %w", holding.Denom, err)
			}
			sold = sdk.NewCoin(holding.Denom, qty)
			if value, err = k.InstrumentValue(ctx, vault, sold); err != nil {
				return err
			}
		}
		proceeds := sdk.NewCoin(vault.UnderlyingAsset, value)

		if err := k.Acquirer.Liquidate(types.WithBypass(ctx), vaultAddr, sold, proceeds); err != nil {
			return fmt.Errorf("failed to liquidate %s: %w", sold, err)
		}
		if err := k.subHolding(ctx, vaultAddr, sold.Denom, sold.Amount); err != nil {
			return err
		}
		if err := k.addHolding(ctx, vaultAddr, vault.UnderlyingAsset, proceeds.Amount); err != nil {
			return err
		}
		k.emitEvent(ctx, types.NewEventLiquidation(vaultAddr.String(), sold, proceeds))
		k.getLogger(ctx).Debug("liquidated holding for redemption", "vault", vaultAddr.String(), "sold", sold.String(), "proceeds", proceeds.String())
		shortfall = shortfall.Sub(value)
	}
	return nil
}
