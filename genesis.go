package rwavault

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/keeper"
	"github.com/provlabs/rwavault/types"
)

// ParseGenesis decodes and validates a raw genesis state.
func ParseGenesis(bz json.RawMessage) (*types.GenesisState, error) {
	var genesis types.GenesisState
	if err := json.Unmarshal(bz, &genesis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	if err := genesis.Validate(); err != nil {
		return nil, err
	}
	return &genesis, nil
}

// InitGenesis initializes the module's state from a raw genesis state.
func InitGenesis(ctx sdk.Context, k *keeper.Keeper, bz json.RawMessage) {
	genesis, err := ParseGenesis(bz)
	if err != nil {
		panic(err)
	}
	k.InitGenesis(ctx, genesis)
}

// ExportGenesis returns the module's exported genesis as raw JSON.
func ExportGenesis(ctx sdk.Context, k *keeper.Keeper) json.RawMessage {
	bz, err := json.Marshal(k.ExportGenesis(ctx))
	if err != nil {
		panic(fmt.Errorf("failed to marshal %s genesis state: %w", types.ModuleName, err))
	}
	return bz
}
