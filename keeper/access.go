package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

// HasRole reports whether addr holds role on the vault.
func (k Keeper) HasRole(ctx context.Context, vaultAddr, addr sdk.AccAddress, role types.Role) (bool, error) {
	switch role {
	case types.RoleOwner:
		vault, err := k.requireVault(ctx, vaultAddr)
		if err != nil {
			return false, err
		}
		return vault.Owner == addr.String(), nil
	case types.RoleAdmin:
		return k.VaultAdmins.Has(ctx, collections.Join(vaultAddr, addr))
	default:
		return false, fmt.Errorf("unknown role %d: %w", role, types.ErrInvalidRequest)
	}
}

func (k Keeper) requireRole(ctx context.Context, vaultAddr, addr sdk.AccAddress, role types.Role) error {
	ok, err := k.HasRole(ctx, vaultAddr, addr, role)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("account %s is missing role %s: %w", addr, role, types.ErrUnauthorized)
	}
	return nil
}

// GetAdmins returns the admin set of the vault.
func (k Keeper) GetAdmins(ctx context.Context, vaultAddr sdk.AccAddress) ([]sdk.AccAddress, error) {
	admins := []sdk.AccAddress{}
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, sdk.AccAddress](vaultAddr)
	err := k.VaultAdmins.Walk(ctx, rng, func(key collections.Pair[sdk.AccAddress, sdk.AccAddress]) (bool, error) {
		admins = append(admins, key.K2())
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk admins of %s: %w", vaultAddr, err)
	}
	return admins, nil
}

// GrantAdmin adds account to the vault's admin set. Only the owner may grant.
func (k *Keeper) GrantAdmin(ctx sdk.Context, vaultAddr, owner, account sdk.AccAddress) error {
	if account.Empty() {
		return fmt.Errorf("account: %w", types.ErrZeroAddress)
	}
	if err := k.requireRole(ctx, vaultAddr, owner, types.RoleOwner); err != nil {
		return err
	}
	key := collections.Join(vaultAddr, account)
	if has, err := k.VaultAdmins.Has(ctx, key); err != nil {
		return err
	} else if has {
		return fmt.Errorf("account %s is already an admin: %w", account, types.ErrInvalidRequest)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if err := k.VaultAdmins.Set(ctx, key); err != nil {
			return fmt.Errorf("failed to grant admin: %w", err)
		}
		k.emitEvent(ctx, types.NewEventAdminGranted(vaultAddr.String(), owner.String(), account.String()))
		return nil
	})
}

// RevokeAdmin removes account from the vault's admin set. Only the owner may revoke.
func (k *Keeper) RevokeAdmin(ctx sdk.Context, vaultAddr, owner, account sdk.AccAddress) error {
	if account.Empty() {
		return fmt.Errorf("account: %w", types.ErrZeroAddress)
	}
	if err := k.requireRole(ctx, vaultAddr, owner, types.RoleOwner); err != nil {
		return err
	}
	key := collections.Join(vaultAddr, account)
	if has, err := k.VaultAdmins.Has(ctx, key); err != nil {
		return err
	} else if !has {
		return fmt.Errorf("account %s is not an admin: %w", account, types.ErrInvalidRequest)
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if err := k.VaultAdmins.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to revoke admin: %w", err)
		}
		k.emitEvent(ctx, types.NewEventAdminRevoked(vaultAddr.String(), owner.String(), account.String()))
		return nil
	})
}

// PauseVault blocks deposits and redemptions on the vault until it is unpaused.
func (k *Keeper) PauseVault(ctx sdk.Context, vaultAddr, owner sdk.AccAddress) error {
	return k.setPaused(ctx, vaultAddr, owner, true)
}

// UnpauseVault resumes deposits and redemptions on a paused vault.
func (k *Keeper) UnpauseVault(ctx sdk.Context, vaultAddr, owner sdk.AccAddress) error {
	return k.setPaused(ctx, vaultAddr, owner, false)
}

func (k *Keeper) setPaused(ctx sdk.Context, vaultAddr, owner sdk.AccAddress, paused bool) error {
	if err := k.requireRole(ctx, vaultAddr, owner, types.RoleOwner); err != nil {
		return err
	}
	state, err := k.GetVaultState(ctx, vaultAddr)
	if err != nil {
		return fmt.Errorf("failed to get vault state: %w", err)
	}
	if paused && state.Paused {
		return fmt.Errorf("vault %s: %w", vaultAddr, types.ErrPaused)
	}
	if !paused && !state.Paused {
		return fmt.Errorf("vault %s: %w", vaultAddr, types.ErrNotPaused)
	}

	state.Paused = paused
	return k.atomic(ctx, func(ctx sdk.Context) error {
		if err := k.VaultStates.Set(ctx, vaultAddr, state); err != nil {
			return fmt.Errorf("failed to store vault state: %w", err)
		}
		if paused {
			k.emitEvent(ctx, types.NewEventVaultPaused(vaultAddr.String(), owner.String()))
		} else {
			k.emitEvent(ctx, types.NewEventVaultUnpaused(vaultAddr.String(), owner.String()))
		}
		k.getLogger(ctx).Info("vault pause state changed", "vault", vaultAddr.String(), "paused", paused)
		return nil
	})
}

func (k Keeper) requireNotPaused(ctx context.Context, vaultAddr sdk.AccAddress) (types.VaultState, error) {
	state, err := k.GetVaultState(ctx, vaultAddr)
	if err != nil {
		return types.VaultState{}, fmt.Errorf("failed to get vault state: %w", err)
	}
	if state.Paused {
		return types.VaultState{}, fmt.Errorf("vault %s: %w", vaultAddr, types.ErrPaused)
	}
	return state, nil
}
