package mocks

import (
	"fmt"
	"testing"
	"time"

	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/provlabs/rwavault/keeper"
	"github.com/provlabs/rwavault/types"
)

// InstrumentDeskName names the module account the mock Acquirer trades against.
const InstrumentDeskName = "instrument_desk"

// DefaultBlockTime is the block time of contexts returned by NewVaultKeeper.
var DefaultBlockTime = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// Collaborators are the mocked external dependencies of a keeper built by NewVaultKeeper.
type Collaborators struct {
	Bank     *Bank
	Registry *Registry
	Oracle   *Oracle
	Acquirer *Acquirer
}

// NewVaultKeeper returns an instance of the Keeper with all dependencies mocked.
// The mock bank shares the keeper's store, so its balances follow the same
// cache context commits and rollbacks as the vault state, and it enforces the
// keeper's send restriction.
func NewVaultKeeper(
	t testing.TB,
) (sdk.Context, *keeper.Keeper, *Collaborators) {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%s", types.ModuleName))
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)
	storeService := runtime.NewKVStoreService(key)

	bank := NewBank(storeService)
	mocks := &Collaborators{
		Bank:     bank,
		Registry: NewRegistry(),
		Oracle:   NewOracle(),
		Acquirer: &Acquirer{Bank: bank, Desk: authtypes.NewModuleAddress(InstrumentDeskName)},
	}

	k := keeper.NewKeeper(
		storeService,
		addresscodec.NewBech32Codec("cosmos"),
		authtypes.NewModuleAddress(types.GovModuleName),
		mocks.Bank,
		mocks.Registry,
		mocks.Oracle,
		mocks.Acquirer,
	)
	mocks.Bank.SetSendRestriction(k.SendRestrictionFn)

	ctx := wrapper.Ctx.WithBlockTime(DefaultBlockTime)
	if err := k.Params.Set(ctx, types.DefaultParams()); err != nil {
		t.Fatalf("failed to set default params: %v", err)
	}
	return ctx, k, mocks
}
