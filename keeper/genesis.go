package keeper

import (
	"fmt"
	"slices"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
	"github.com/provlabs/rwavault/utils"
)

// InitGenesis initializes the vault module state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	if genState == nil {
		return
	}

	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid vault genesis state: %w", err))
	}

	if err := k.Params.Set(ctx, genState.Params); err != nil {
		panic(err)
	}

	for i := range genState.Vaults {
		if err := k.importVault(ctx, genState.Vaults[i]); err != nil {
			panic(fmt.Errorf("failed to import vault at index %d: %w", i, err))
		}
	}

	if err := k.CheckShareSupplyInvariant(ctx); err != nil {
		panic(err)
	}
}

func (k Keeper) importVault(ctx sdk.Context, gv types.GenesisVault) error {
	vaultAddr := gv.Config.GetAddress()

	if err := k.Vaults.Set(ctx, vaultAddr, gv.Config); err != nil {
		return err
	}
	if err := k.VaultStates.Set(ctx, vaultAddr, gv.State); err != nil {
		return err
	}
	for _, admin := range gv.Admins {
		if err := k.VaultAdmins.Set(ctx, collections.Join(vaultAddr, sdk.MustAccAddressFromBech32(admin))); err != nil {
			return err
		}
	}
	if len(gv.Allocations) > 0 {
		if err := k.Allocations.Set(ctx, vaultAddr, types.AllocationTable{Entries: gv.Allocations}); err != nil {
			return err
		}
	}
	if err := k.FeeConfigs.Set(ctx, vaultAddr, gv.Fees); err != nil {
		return err
	}

	supply := math.ZeroInt()
	for _, bal := range gv.ShareBalances {
		holder := sdk.MustAccAddressFromBech32(bal.Address)
		if err := k.ShareBalances.Set(ctx, collections.Join(vaultAddr, holder), bal.Amount); err != nil {
			return err
		}
		supply = supply.Add(bal.Amount)
	}
	if err := k.ShareSupply.Set(ctx, vaultAddr, supply); err != nil {
		return err
	}

	for _, holding := range gv.Holdings {
		if err := k.Holdings.Set(ctx, collections.Join(vaultAddr, holding.Denom), holding.Amount); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the current state of the vault module.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to get vault module params: %w", err))
	}

	vaults := []types.GenesisVault{}
	err = k.Vaults.Walk(ctx, nil, func(vaultAddr sdk.AccAddress, vault types.VaultConfig) (bool, error) {
		gv, err := k.exportVault(ctx, vaultAddr, vault)
		if err != nil {
			return true, err
		}
		vaults = append(vaults, gv)
		return false, nil
	})
	if err != nil {
		panic(fmt.Errorf("failed to export vaults: %w", err))
	}

	return &types.GenesisState{
		Params: params,
		Vaults: vaults,
	}
}

func (k Keeper) exportVault(ctx sdk.Context, vaultAddr sdk.AccAddress, vault types.VaultConfig) (types.GenesisVault, error) {
	state, err := k.GetVaultState(ctx, vaultAddr)
	if err != nil {
		return types.GenesisVault{}, err
	}
	admins, err := k.GetAdmins(ctx, vaultAddr)
	if err != nil {
		return types.GenesisVault{}, err
	}
	table, err := k.GetAllocationTable(ctx, vaultAddr)
	if err != nil {
		return types.GenesisVault{}, err
	}
	feeCfg, err := k.GetFeeConfig(ctx, vaultAddr)
	if err != nil {
		return types.GenesisVault{}, err
	}

	balances := []types.ShareBalance{}
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, sdk.AccAddress](vaultAddr)
	err = k.ShareBalances.Walk(ctx, rng, func(key collections.Pair[sdk.AccAddress, sdk.AccAddress], bal math.Int) (bool, error) {
		balances = append(balances, types.ShareBalance{Address: key.K2().String(), Amount: bal})
		return false, nil
	})
	if err != nil {
		return types.GenesisVault{}, err
	}

	holdings, err := k.GetHoldings(ctx, vaultAddr)
	if err != nil {
		return types.GenesisVault{}, err
	}

	return types.GenesisVault{
		Config:        vault,
		State:         state,
		Admins:        slices.Collect(utils.Map(admins, sdk.AccAddress.String)),
		Allocations:   table.Entries,
		Fees:          feeCfg,
		ShareBalances: balances,
		Holdings:      holdings,
	}, nil
}
