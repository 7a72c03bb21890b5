package simulation

import (
	"context"
	"fmt"
	"math/rand"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/rwavault/keeper"
	"github.com/provlabs/rwavault/types"
	"github.com/provlabs/rwavault/utils"
)

const (
	// UnderlyingDenom is the deposit asset of every simulated vault.
	UnderlyingDenom = "usdc"
	// UnderlyingDecimals is the registry precision of UnderlyingDenom.
	UnderlyingDecimals = 6
	// NumInstruments is the number of simulated RWA instruments besides the underlying.
	NumInstruments = 4
	// FundingUnits is the whole-unit underlying balance given to each sim account.
	FundingUnits = 1_000_000
	// ShareDenomSuffix marks simulated share denoms.
	ShareDenomSuffix = "vx"
)

// Registrar registers instruments with the token registry.
type Registrar interface {
	Register(denom string, decimals uint32)
}

// PriceSetter stores oracle prices.
type PriceSetter interface {
	SetPrice(denom string, amount math.Int, decimals uint32)
}

// Minter funds accounts with coins.
type Minter interface {
	Mint(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) error
}

// Instrument is a registered, priced token used by the simulation.
type Instrument struct {
	Denom    string
	Decimals uint32
}

// Setup registers the underlying asset and a random set of instruments, prices
// them, funds every account with the underlying asset and creates one vault
// whose owner is the first account. It returns the registered instruments,
// underlying first.
func Setup(ctx sdk.Context, r *rand.Rand, k *keeper.Keeper, reg Registrar, oracle PriceSetter, bank Minter, accs []simtypes.Account) ([]Instrument, error) {
	if len(accs) < 2 {
		return nil, fmt.Errorf("simulation needs at least 2 accounts, got %d", len(accs))
	}

	instruments := []Instrument{{Denom: UnderlyingDenom, Decimals: UnderlyingDecimals}}
	for i := 0; i < NumInstruments; i++ {
		instruments = append(instruments, Instrument{
			Denom:    genRandomDenom(r, fmt.Sprintf("rwa%d", i)),
			Decimals: uint32(r.Intn(types.ShareDecimals + 1)),
		})
	}
	for _, inst := range instruments {
		reg.Register(inst.Denom, inst.Decimals)
		priceDecimals := uint32(r.Intn(9))
		price := math.NewInt(int64(simtypes.RandIntBetween(r, 1, 1_000))).Mul(utils.Pow10(priceDecimals))
		oracle.SetPrice(inst.Denom, price, priceDecimals)
	}

	funding := sdk.NewCoins(sdk.NewCoin(UnderlyingDenom, math.NewInt(FundingUnits).Mul(utils.Pow10(UnderlyingDecimals))))
	for _, acc := range accs {
		if err := bank.Mint(ctx, acc.Address, funding); err != nil {
			return nil, fmt.Errorf("failed to fund %s: %w", acc.Address, err)
		}
	}

	if err := CreateVault(ctx, k, accs[0], accs[1], UnderlyingDenom, "seed"+ShareDenomSuffix); err != nil {
		return nil, fmt.Errorf("failed to create seed vault: %w", err)
	}
	return instruments, nil
}

// RandomAllocations builds a valid allocation table over a random subset of instruments.
func RandomAllocations(r *rand.Rand, instruments []Instrument) []types.Allocation {
	n := simtypes.RandIntBetween(r, 1, len(instruments)+1)
	picked := make([]Instrument, len(instruments))
	copy(picked, instruments)
	r.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	picked = picked[:n]

	weights := randomWeights(r, n)
	allocations := make([]types.Allocation, n)
	for i, inst := range picked {
		active := !weights[i].IsZero() || r.Intn(2) == 0
		allocations[i] = types.NewAllocation(inst.Denom, weights[i], active)
	}
	return allocations
}
