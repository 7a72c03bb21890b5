package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

// GetVaults returns the addresses of all vaults.
func (k *Keeper) GetVaults(ctx context.Context) ([]sdk.AccAddress, error) {
	vaults := []sdk.AccAddress{}
	err := k.Vaults.Walk(ctx, nil, func(vaultAddr sdk.AccAddress, _ types.VaultConfig) (stop bool, err error) {
		vaults = append(vaults, vaultAddr)
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk vaults: %w", err)
	}
	return vaults, nil
}

// GetVault finds a vault by a given address.
//
// This function will return nil if nothing exists at this address.
func (k Keeper) GetVault(ctx context.Context, vaultAddr sdk.AccAddress) (*types.VaultConfig, error) {
	vault, err := k.Vaults.Get(ctx, vaultAddr)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vault, nil
}

// requireVault is GetVault that treats a missing vault as ErrVaultNotFound.
func (k Keeper) requireVault(ctx context.Context, vaultAddr sdk.AccAddress) (types.VaultConfig, error) {
	vault, err := k.GetVault(ctx, vaultAddr)
	if err != nil {
		return types.VaultConfig{}, fmt.Errorf("failed to get vault %s: %w", vaultAddr, err)
	}
	if vault == nil {
		return types.VaultConfig{}, fmt.Errorf("%s: %w", vaultAddr, types.ErrVaultNotFound)
	}
	return *vault, nil
}

// GetVaultState returns the lifecycle flags of a vault, defaulting to the zero state.
func (k Keeper) GetVaultState(ctx context.Context, vaultAddr sdk.AccAddress) (types.VaultState, error) {
	state, err := k.VaultStates.Get(ctx, vaultAddr)
	if errors.Is(err, collections.ErrNotFound) {
		return types.VaultState{}, nil
	}
	return state, err
}

// GetAllocationTable returns the allocation table of a vault. A vault that
// never had allocations set returns an empty table.
func (k Keeper) GetAllocationTable(ctx context.Context, vaultAddr sdk.AccAddress) (types.AllocationTable, error) {
	table, err := k.Allocations.Get(ctx, vaultAddr)
	if errors.Is(err, collections.ErrNotFound) {
		return types.AllocationTable{}, nil
	}
	return table, err
}

// GetFeeConfig returns the fee configuration of a vault, defaulting to no fees.
func (k Keeper) GetFeeConfig(ctx context.Context, vaultAddr sdk.AccAddress) (types.FeeConfig, error) {
	fees, err := k.FeeConfigs.Get(ctx, vaultAddr)
	if errors.Is(err, collections.ErrNotFound) {
		return types.FeeConfig{}, nil
	}
	return fees, err
}

// GetParams returns the module params, falling back to the defaults when unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams(), nil
	}
	return params, err
}

// atomic runs fn against a cached context and writes its state changes and
// events back only when fn succeeds.
func (k Keeper) atomic(ctx sdk.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

// nonReentrant holds the vault's reentrancy lock for the duration of fn.
// It must be called with a cached context so that the lock never outlives a
// failed call.
func (k Keeper) nonReentrant(ctx sdk.Context, vaultAddr sdk.AccAddress, fn func() error) error {
	locked, err := k.ReentrancyLocks.Has(ctx, vaultAddr)
	if err != nil {
		return fmt.Errorf("failed to read reentrancy lock: %w", err)
	}
	if locked {
		return fmt.Errorf("vault %s: %w", vaultAddr, types.ErrReentrantCall)
	}
	if err := k.ReentrancyLocks.Set(ctx, vaultAddr); err != nil {
		return fmt.Errorf("failed to set reentrancy lock: %w", err)
	}
	if err := fn(); err != nil {
		return err
	}
	return k.ReentrancyLocks.Remove(ctx, vaultAddr)
}
