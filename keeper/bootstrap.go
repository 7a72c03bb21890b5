package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
	"github.com/provlabs/rwavault/utils"
)

// BootstrapSeed returns the seed amount pulled from the treasury on bootstrap:
// BootstrapSeedUnits whole units of the vault's underlying asset.
func (k Keeper) BootstrapSeed(ctx sdk.Context, vault types.VaultConfig) (sdk.Coin, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return sdk.Coin{}, fmt.Errorf("failed to get params: %w", err)
	}
	units := math.NewIntFromUint64(params.BootstrapSeedUnits)
	amount, err := units.SafeMul(utils.Pow10(vault.AssetDecimals))
	if err != nil {
		return sdk.Coin{}, fmt.Errorf("bootstrap seed overflow: %w", err)
	}
	return sdk.NewCoin(vault.UnderlyingAsset, amount), nil
}

// BootstrapVault seeds the vault from its treasury through the regular deposit
// path, crediting the shares to the treasury. Only the owner may bootstrap, and
// only while the vault is not paused and no bootstrap or public deposit has
// happened yet.
func (k *Keeper) BootstrapVault(ctx sdk.Context, vaultAddr, owner sdk.AccAddress) (math.Int, error) {
	if err := k.requireRole(ctx, vaultAddr, owner, types.RoleOwner); err != nil {
		return math.Int{}, err
	}
	vault, err := k.requireVault(ctx, vaultAddr)
	if err != nil {
		return math.Int{}, err
	}
	state, err := k.requireNotPaused(ctx, vaultAddr)
	if err != nil {
		return math.Int{}, err
	}
	if state.Bootstrapped {
		return math.Int{}, fmt.Errorf("vault %s: %w", vaultAddr, types.ErrVaultAlreadyBootstrapped)
	}

	seed, err := k.BootstrapSeed(ctx, vault)
	if err != nil {
		return math.Int{}, err
	}
	treasury := vault.GetTreasury()

	var shares math.Int
	err = k.atomic(ctx, func(ctx sdk.Context) error {
		return k.nonReentrant(ctx, vaultAddr, func() error {
			var err error
			if shares, err = k.deposit(ctx, vault, treasury, treasury, seed); err != nil {
				return fmt.Errorf("failed to bootstrap vault: %w", err)
			}
			k.emitEvent(ctx, types.NewEventVaultBootstrapped(vaultAddr.String(), vault.Treasury, seed, shares))
			return nil
		})
	})
	if err != nil {
		return math.Int{}, err
	}

	k.getLogger(ctx).Info("vault bootstrapped", "vault", vaultAddr.String(), "seed", seed.String(), "shares", shares.String())
	return shares, nil
}
