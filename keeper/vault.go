package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/fees"
	"github.com/provlabs/rwavault/types"
	"github.com/provlabs/rwavault/utils"
)

// CreateVault creates a vault whose shares are named shareDenom and whose
// deposits are made in underlyingAsset. The underlying must be registered
// with at most 18 decimals. The owner is also granted the admin role.
func (k *Keeper) CreateVault(ctx sdk.Context, owner, treasury sdk.AccAddress, shareDenom, underlyingAsset, strategy string) (*types.VaultConfig, error) {
	if owner.Empty() {
		return nil, fmt.Errorf("owner: %w", types.ErrZeroAddress)
	}
	if treasury.Empty() {
		return nil, fmt.Errorf("treasury: %w", types.ErrZeroAddress)
	}

	decimals, err := k.Registry.DecimalsOf(ctx, underlyingAsset)
	if err != nil {
		return nil, fmt.Errorf("underlying asset %q: %w", underlyingAsset, err)
	}

	vault := types.NewVaultConfig(owner.String(), treasury.String(), shareDenom, underlyingAsset, decimals, strategy)
	if err := vault.Validate(); err != nil {
		return nil, err
	}

	vaultAddr := vault.GetAddress()
	if exists, err := k.Vaults.Has(ctx, vaultAddr); err != nil {
		return nil, fmt.Errorf("failed to check vault existence: %w", err)
	} else if exists {
		return nil, fmt.Errorf("vault for share denom %q: %w", shareDenom, types.ErrVaultExists)
	}

	err = k.atomic(ctx, func(ctx sdk.Context) error {
		if err := k.Vaults.Set(ctx, vaultAddr, vault); err != nil {
			return fmt.Errorf("failed to store vault: %w", err)
		}
		if err := k.VaultStates.Set(ctx, vaultAddr, types.VaultState{}); err != nil {
			return fmt.Errorf("failed to store vault state: %w", err)
		}
		if err := k.FeeConfigs.Set(ctx, vaultAddr, types.FeeConfig{}); err != nil {
			return fmt.Errorf("failed to store fee config: %w", err)
		}
		if err := k.VaultAdmins.Set(ctx, collections.Join(vaultAddr, owner)); err != nil {
			return fmt.Errorf("failed to grant owner admin role: %w", err)
		}
		k.emitEvent(ctx, types.NewEventVaultCreated(vault))
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.getLogger(ctx).Info("vault created", "vault", vault.Address, "share_denom", shareDenom, "underlying", underlyingAsset)
	return &vault, nil
}

// ConvertToShares converts an amount of the vault's underlying asset into shares.
// The conversion depends only on decimals, never on total assets or supply.
func (k Keeper) ConvertToShares(vault types.VaultConfig, assets sdkmath.Int) (sdkmath.Int, error) {
	return utils.ConvertToShares(assets, vault.AssetDecimals)
}

// ConvertToAssets converts shares into the vault's underlying asset, flooring
// any precision the asset cannot represent.
func (k Keeper) ConvertToAssets(vault types.VaultConfig, shares sdkmath.Int) (sdkmath.Int, error) {
	return utils.ConvertToAssets(shares, vault.AssetDecimals)
}

// Deposit moves asset from depositor into the vault, allocates it across the
// active instruments and mints the converted shares to receiver.
//
// Steps:
//  1. Validate the receiver, the asset denom and amount, and that the vault is not paused.
//  2. Transfer the asset from the depositor to the vault account.
//  3. Allocate the deposit into holdings (see allocateDeposit).
//  4. Mint convertToShares(asset) to the receiver.
//  5. Mark the vault bootstrapped, which locks out BootstrapVault.
//
// The whole call is atomic and holds the vault's reentrancy lock.
func (k *Keeper) Deposit(ctx sdk.Context, vaultAddr, depositor, receiver sdk.AccAddress, asset sdk.Coin) (sdkmath.Int, error) {
	vault, err := k.requireVault(ctx, vaultAddr)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if depositor.Empty() {
		return sdkmath.Int{}, fmt.Errorf("depositor: %w", types.ErrZeroAddress)
	}
	if receiver.Empty() {
		return sdkmath.Int{}, fmt.Errorf("receiver: %w", types.ErrZeroAddress)
	}
	if err := vault.ValidateAcceptedCoin(asset); err != nil {
		return sdkmath.Int{}, err
	}
	if asset.Amount.IsNil() || !asset.Amount.IsPositive() {
		return sdkmath.Int{}, fmt.Errorf("deposit amount must be positive: %w", types.ErrInvalidAmount)
	}
	if _, err := k.requireNotPaused(ctx, vaultAddr); err != nil {
		return sdkmath.Int{}, err
	}

	var shares sdkmath.Int
	err = k.atomic(ctx, func(ctx sdk.Context) error {
		return k.nonReentrant(ctx, vaultAddr, func() error {
			var err error
			shares, err = k.deposit(ctx, vault, depositor, receiver, asset)
			if err != nil {
				return err
			}
			k.emitEvent(ctx, types.NewEventDeposit(vaultAddr.String(), depositor.String(), receiver.String(), asset, shares))
			return nil
		})
	})
	if err != nil {
		return sdkmath.Int{}, err
	}

	telemetry.IncrCounter(1, types.ModuleName, "deposit")
	return shares, nil
}

// deposit is the shared deposit path of Deposit and BootstrapVault.
func (k *Keeper) deposit(ctx sdk.Context, vault types.VaultConfig, from, receiver sdk.AccAddress, asset sdk.Coin) (sdkmath.Int, error) {
	vaultAddr := vault.GetAddress()

	shares, err := k.ConvertToShares(vault, asset.Amount)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to convert assets to shares: %w", err)
	}

	if err := k.BankKeeper.SendCoins(types.WithBypass(ctx), from, vaultAddr, sdk.NewCoins(asset)); err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to transfer %s to vault: %w", asset, err)
	}
	if err := k.allocateDeposit(ctx, vault, asset.Amount); err != nil {
		return sdkmath.Int{}, err
	}
	if err := k.mintShares(ctx, vaultAddr, receiver, shares); err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to mint shares: %w", err)
	}

	state, err := k.GetVaultState(ctx, vaultAddr)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to get vault state: %w", err)
	}
	if !state.Bootstrapped {
		state.Bootstrapped = true
		if err := k.VaultStates.Set(ctx, vaultAddr, state); err != nil {
			return sdkmath.Int{}, fmt.Errorf("failed to store vault state: %w", err)
		}
	}
	return shares, nil
}

// Redeem burns shares owned by owner and pays their underlying value to
// receiver, less the exit fee which is paid to the treasury.
//
// Steps:
//  1. Validate the amount, the receiver, and that the vault is not paused.
//  2. Compute gross = convertToAssets(shares) and split off the exit fee.
//  3. Burn the shares, sell instruments if the underlying holding is short of
//     gross (see releaseLiquidity), and debit the underlying holding by gross.
//  4. Transfer net to the receiver and, if nonzero, the fee to the treasury.
//
// State is fully updated before any transfer, and the whole call is atomic
// and holds the vault's reentrancy lock.
func (k *Keeper) Redeem(ctx sdk.Context, vaultAddr, owner, receiver sdk.AccAddress, shares sdkmath.Int) (assets, fee sdk.Coin, err error) {
	if shares.IsNil() || !shares.IsPositive() {
		return sdk.Coin{}, sdk.Coin{}, fmt.Errorf("shares must be positive: %w", types.ErrInvalidAmount)
	}
	if owner.Empty() {
		return sdk.Coin{}, sdk.Coin{}, fmt.Errorf("owner: %w", types.ErrZeroAddress)
	}
	if receiver.Empty() {
		return sdk.Coin{}, sdk.Coin{}, fmt.Errorf("receiver: %w", types.ErrZeroAddress)
	}
	vault, err := k.requireVault(ctx, vaultAddr)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	if _, err := k.requireNotPaused(ctx, vaultAddr); err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}

	bal, err := k.BalanceOf(ctx, vaultAddr, owner)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	if bal.LT(shares) {
		return sdk.Coin{}, sdk.Coin{}, fmt.Errorf("owner %s has %s shares, redeeming %s: %w", owner, bal, shares, types.ErrInsufficientShares)
	}

	gross, err := k.ConvertToAssets(vault, shares)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, fmt.Errorf("failed to convert shares to assets: %w", err)
	}
	if !gross.IsPositive() {
		return sdk.Coin{}, sdk.Coin{}, fmt.Errorf("%s shares redeem for zero %s: %w", shares, vault.UnderlyingAsset, types.ErrInvalidAmount)
	}
	feeCfg, err := k.GetFeeConfig(ctx, vaultAddr)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, fmt.Errorf("failed to get fee config: %w", err)
	}
	feeAmt, netAmt, err := fees.CalculateExitFee(gross, feeCfg.ExitFeeBps)
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}
	assets = sdk.NewCoin(vault.UnderlyingAsset, netAmt)
	fee = sdk.NewCoin(vault.UnderlyingAsset, feeAmt)

	err = k.atomic(ctx, func(ctx sdk.Context) error {
		return k.nonReentrant(ctx, vaultAddr, func() error {
			if err := k.burnShares(ctx, vaultAddr, owner, shares); err != nil {
				return fmt.Errorf("failed to burn shares: %w", err)
			}
			if err := k.releaseLiquidity(ctx, vault, gross); err != nil {
				return err
			}
			if err := k.subHolding(ctx, vaultAddr, vault.UnderlyingAsset, gross); err != nil {
				return err
			}

			bankCtx := types.WithBypass(ctx)
			if assets.IsPositive() {
				if err := k.BankKeeper.SendCoins(bankCtx, vaultAddr, receiver, sdk.NewCoins(assets)); err != nil {
					k.getLogger(ctx).Error("failed to pay redemption", "vault", vaultAddr.String(), "receiver", receiver.String(), "assets", assets.String(), "error", err)
					return fmt.Errorf("failed to send %s to receiver: %w", assets, err)
				}
			}
			if fee.IsPositive() {
				if err := k.BankKeeper.SendCoins(bankCtx, vaultAddr, vault.GetTreasury(), sdk.NewCoins(fee)); err != nil {
					k.getLogger(ctx).Error("failed to pay exit fee", "vault", vaultAddr.String(), "treasury", vault.Treasury, "fee", fee.String(), "error", err)
					return fmt.Errorf("failed to send exit fee %s to treasury: %w", fee, err)
				}
				k.emitEvent(ctx, types.NewEventExitFeeApplied(vaultAddr.String(), vault.Treasury, fee))
			}

			k.emitEvent(ctx, types.NewEventRedeem(vaultAddr.String(), owner.String(), receiver.String(), shares, assets))
			return nil
		})
	})
	if err != nil {
		return sdk.Coin{}, sdk.Coin{}, err
	}

	telemetry.IncrCounter(1, types.ModuleName, "redeem")
	return assets, fee, nil
}

// Withdraw is not supported. Redeem is the only redemption path.
func (k *Keeper) Withdraw(_ sdk.Context, _, _, _ sdk.AccAddress, _ sdk.Coin) error {
	return types.ErrWithdrawNotSupported
}

// PreviewDeposit returns the shares a deposit of assets would mint.
func (k Keeper) PreviewDeposit(ctx sdk.Context, vaultAddr sdk.AccAddress, assets sdkmath.Int) (sdkmath.Int, error) {
	vault, err := k.requireVault(ctx, vaultAddr)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return k.ConvertToShares(vault, assets)
}

// PreviewRedeem returns the net assets a redemption of shares would pay the
// receiver after the exit fee.
func (k Keeper) PreviewRedeem(ctx sdk.Context, vaultAddr sdk.AccAddress, shares sdkmath.Int) (sdkmath.Int, error) {
	vault, err := k.requireVault(ctx, vaultAddr)
	if err != nil {
		return sdkmath.Int{}, err
	}
	gross, err := k.ConvertToAssets(vault, shares)
	if err != nil {
		return sdkmath.Int{}, err
	}
	feeCfg, err := k.GetFeeConfig(ctx, vaultAddr)
	if err != nil {
		return sdkmath.Int{}, err
	}
	_, net, err := fees.CalculateExitFee(gross, feeCfg.ExitFeeBps)
	return net, err
}

// MaxRedeem returns the shares owner can redeem right now: the full balance,
// or zero while the vault is paused.
func (k Keeper) MaxRedeem(ctx sdk.Context, vaultAddr, owner sdk.AccAddress) (sdkmath.Int, error) {
	if _, err := k.requireVault(ctx, vaultAddr); err != nil {
		return sdkmath.Int{}, err
	}
	state, err := k.GetVaultState(ctx, vaultAddr)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if state.Paused {
		return sdkmath.ZeroInt(), nil
	}
	return k.BalanceOf(ctx, vaultAddr, owner)
}
