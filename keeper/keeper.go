package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

type Keeper struct {
	schema       collections.Schema
	addressCodec address.Codec
	authority    []byte

	BankKeeper types.BankKeeper
	Registry   types.TokenRegistry
	Oracle     types.PriceOracle
	Acquirer   types.InstrumentAcquirer

	Params          collections.Item[types.Params]
	Vaults          collections.Map[sdk.AccAddress, types.VaultConfig]
	VaultStates     collections.Map[sdk.AccAddress, types.VaultState]
	VaultAdmins     collections.KeySet[collections.Pair[sdk.AccAddress, sdk.AccAddress]]
	Allocations     collections.Map[sdk.AccAddress, types.AllocationTable]
	FeeConfigs      collections.Map[sdk.AccAddress, types.FeeConfig]
	ShareBalances   collections.Map[collections.Pair[sdk.AccAddress, sdk.AccAddress], math.Int]
	ShareSupply     collections.Map[sdk.AccAddress, math.Int]
	Holdings        collections.Map[collections.Pair[sdk.AccAddress, string], math.Int]
	ReentrancyLocks collections.KeySet[sdk.AccAddress]
}

func NewKeeper(
	storeService store.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
	registry types.TokenRegistry,
	oracle types.PriceOracle,
	acquirer types.InstrumentAcquirer,
) *Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %s: %s", authority, err))
	}

	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		addressCodec: addressCodec,
		authority:    authority,
		BankKeeper:   bankKeeper,
		Registry:     registry,
		Oracle:       oracle,
		Acquirer:     acquirer,

		Params:      collections.NewItem(builder, types.ParamsKeyPrefix, types.ParamsName, types.ParamsValue),
		Vaults:      collections.NewMap(builder, types.VaultsKeyPrefix, types.VaultsName, sdk.AccAddressKey, types.VaultConfigValue),
		VaultStates: collections.NewMap(builder, types.VaultStatesKeyPrefix, types.VaultStatesName, sdk.AccAddressKey, types.VaultStateValue),
		VaultAdmins: collections.NewKeySet(builder, types.VaultAdminsKeyPrefix, types.VaultAdminsName,
			collections.PairKeyCodec(sdk.AccAddressKey, sdk.AccAddressKey)),
		Allocations: collections.NewMap(builder, types.AllocationsKeyPrefix, types.AllocationsName, sdk.AccAddressKey, types.AllocationTableValue),
		FeeConfigs:  collections.NewMap(builder, types.FeeConfigsKeyPrefix, types.FeeConfigsName, sdk.AccAddressKey, types.FeeConfigValue),
		ShareBalances: collections.NewMap(builder, types.ShareBalancesKeyPrefix, types.ShareBalancesName,
			collections.PairKeyCodec(sdk.AccAddressKey, sdk.AccAddressKey), sdk.IntValue),
		ShareSupply: collections.NewMap(builder, types.ShareSupplyKeyPrefix, types.ShareSupplyName, sdk.AccAddressKey, sdk.IntValue),
		Holdings: collections.NewMap(builder, types.HoldingsKeyPrefix, types.HoldingsName,
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
		ReentrancyLocks: collections.NewKeySet(builder, types.ReentrancyLocksKeyPrefix, types.ReentrancyLocksName, sdk.AccAddressKey),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// getLogger returns a logger with vault module context.
func (k Keeper) getLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) emitEvent(ctx sdk.Context, event sdk.Event) {
	ctx.EventManager().EmitEvent(event)
}
