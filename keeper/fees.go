package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/fees"
	"github.com/provlabs/rwavault/types"
)

// SetFees sets the exit and management fees of the vault. The caller must
// hold the admin role and each fee must be within the MaxFeeBps param.
func (k *Keeper) SetFees(ctx sdk.Context, vaultAddr, admin sdk.AccAddress, exitFeeBps, managementFeeBps uint32) error {
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
	if err := types.ValidateFeeBps(exitFeeBps, managementFeeBps, params.MaxFeeBps); err != nil {
		return err
	}

	cfg, err := k.GetFeeConfig(ctx, vaultAddr)
	if err != nil {
		return fmt.Errorf("failed to get fee config: %w", err)
	}
	cfg.ExitFeeBps = exitFeeBps
	cfg.ManagementFeeBps = managementFeeBps

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if err := k.FeeConfigs.Set(ctx, vaultAddr, cfg); err != nil {
			return fmt.Errorf("failed to store fee config: %w", err)
		}
		k.emitEvent(ctx, types.NewEventFeesUpdated(vaultAddr.String(), admin.String(), exitFeeBps, managementFeeBps))
		return nil
	})
}

// SetFeeReceiver sets the account that receives management fee shares. Only
// the owner may set it.
func (k *Keeper) SetFeeReceiver(ctx sdk.Context, vaultAddr, owner, receiver sdk.AccAddress) error {
	if receiver.Empty() {
		return fmt.Errorf("fee receiver: %w", types.ErrZeroAddress)
	}
	if err := k.requireRole(ctx, vaultAddr, owner, types.RoleOwner); err != nil {
		return err
	}

	cfg, err := k.GetFeeConfig(ctx, vaultAddr)
	if err != nil {
		return fmt.Errorf("failed to get fee config: %w", err)
	}
	cfg.FeeReceiver = receiver.String()

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if err := k.FeeConfigs.Set(ctx, vaultAddr, cfg); err != nil {
			return fmt.Errorf("failed to store fee config: %w", err)
		}
		k.emitEvent(ctx, types.NewEventFeeReceiverUpdated(vaultAddr.String(), owner.String(), cfg.FeeReceiver))
		return nil
	})
}

// CalculateManagementFee returns totalSupply * managementFeeBps / 10_000 for
// the vault. It is zero when the fee or the supply is zero.
func (k Keeper) CalculateManagementFee(ctx sdk.Context, vaultAddr sdk.AccAddress) (math.Int, error) {
	if _, err := k.requireVault(ctx, vaultAddr); err != nil {
		return math.Int{}, err
	}
	cfg, err := k.GetFeeConfig(ctx, vaultAddr)
	if err != nil {
		return math.Int{}, fmt.Errorf("failed to get fee config: %w", err)
	}
	supply, err := k.TotalSupply(ctx, vaultAddr)
	if err != nil {
		return math.Int{}, err
	}
	return fees.CalculateManagementFee(supply, cfg.ManagementFeeBps)
}

// AccrueManagementFee mints shares to the fee receiver. The amount is chosen
// by the admin and need not match CalculateManagementFee.
//
// It fails with ErrZeroAddress when no fee receiver is set, ErrInvalidAmount
// for a non-positive amount, and ErrManagementFeeCooldownNotMet when the
// previous accrual is more recent than the cooldown param. The first accrual
// of a vault is never subject to the cooldown.
func (k *Keeper) AccrueManagementFee(ctx sdk.Context, vaultAddr, admin sdk.AccAddress, shares math.Int) error {
	if _, err := k.requireVault(ctx, vaultAddr); err != nil {
		return err
	}
	if err := k.requireRole(ctx, vaultAddr, admin, types.RoleAdmin); err != nil {
		return err
	}
	return k.accrueManagementFee(ctx, vaultAddr, shares)
}

// ScheduleManagementFee computes the management fee and accrues it through the
// same path as AccrueManagementFee, returning the minted shares.
func (k *Keeper) ScheduleManagementFee(ctx sdk.Context, vaultAddr, admin sdk.AccAddress) (math.Int, error) {
	if _, err := k.requireVault(ctx, vaultAddr); err != nil {
		return math.Int{}, err
	}
	if err := k.requireRole(ctx, vaultAddr, admin, types.RoleAdmin); err != nil {
		return math.Int{}, err
	}

	shares, err := k.CalculateManagementFee(ctx, vaultAddr)
	if err != nil {
		return math.Int{}, err
	}
	if shares.IsZero() {
		return math.Int{}, fmt.Errorf("vault %s: %w", vaultAddr, types.ErrManagementFeeNotConfigured)
	}
	if err := k.accrueManagementFee(ctx, vaultAddr, shares); err != nil {
		return math.Int{}, err
	}
	return shares, nil
}

func (k *Keeper) accrueManagementFee(ctx sdk.Context, vaultAddr sdk.AccAddress, shares math.Int) error {
	cfg, err := k.GetFeeConfig(ctx, vaultAddr)
	if err != nil {
		return fmt.Errorf("failed to get fee config: %w", err)
	}
	if cfg.FeeReceiver == "" {
		return fmt.Errorf("fee receiver: %w", types.ErrZeroAddress)
	}
	if shares.IsNil() || !shares.IsPositive() {
		return fmt.Errorf("management fee shares must be positive: %w", types.ErrInvalidAmount)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("failed to get params: %w", err)
	}
	now := ctx.BlockTime().Unix()
	if cfg.LastManagementAccrual != 0 && !fees.CooldownElapsed(cfg.LastManagementAccrual, now, params.ManagementFeeCooldownSeconds) {
		next := fees.NextAccrualTime(cfg.LastManagementAccrual, params.ManagementFeeCooldownSeconds)
		return fmt.Errorf("next accrual allowed at %d, now %d: %w", next, now, types.ErrManagementFeeCooldownNotMet)
	}

	receiver, err := sdk.AccAddressFromBech32(cfg.FeeReceiver)
	if err != nil {
		return fmt.Errorf("invalid fee receiver %q: %w", cfg.FeeReceiver, err)
	}

	err = k.atomic(ctx, func(ctx sdk.Context) error {
		if err := k.mintShares(ctx, vaultAddr, receiver, shares); err != nil {
			return fmt.Errorf("failed to mint management fee: %w", err)
		}
		cfg.LastManagementAccrual = now
		if err := k.FeeConfigs.Set(ctx, vaultAddr, cfg); err != nil {
			return fmt.Errorf("failed to store fee config: %w", err)
		}
		k.emitEvent(ctx, types.NewEventManagementFeeAccrued(vaultAddr.String(), cfg.FeeReceiver, shares, now))
		return nil
	})
	if err != nil {
		return err
	}

	telemetry.IncrCounter(1, types.ModuleName, "management_fee")
	k.getLogger(ctx).Info("management fee accrued", "vault", vaultAddr.String(), "receiver", cfg.FeeReceiver, "shares", shares.String())
	return nil
}
