package simulation

import (
	"math/rand"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/rwavault/fees"
	"github.com/provlabs/rwavault/types"
	"github.com/provlabs/rwavault/utils"
)

const (
	MaxNumVaults        = 5
	ChanceOfPausedVault = 5 // 1 in X
	ChanceOfFeeReceiver = 2 // 1 in X
	MaxShareUnits       = 1_000
	MaxHolders          = 4
)

// RandomizedParams generates valid random module params.
func RandomizedParams(r *rand.Rand) types.Params {
	return types.Params{
		MaxAllocations:               uint32(simtypes.RandIntBetween(r, 1, 33)),
		MaxFeeBps:                    uint32(r.Intn(types.MaxFeeBps + 1)),
		ManagementFeeCooldownSeconds: int64(r.Intn(fees.SecondsPerYear + 1)),
		BootstrapSeedUnits:           uint64(simtypes.RandIntBetween(r, 1, 10_001)),
	}
}

// RandomizedGenState generates a random, valid GenesisState over the given
// accounts and instruments. Every vault is denominated in the first instrument.
func RandomizedGenState(r *rand.Rand, accs []simtypes.Account, instruments []Instrument) *types.GenesisState {
	params := RandomizedParams(r)
	underlying := instruments[0]

	numVaults := r.Intn(MaxNumVaults + 1)
	vaults := make([]types.GenesisVault, 0, numVaults)
	for i := 0; i < numVaults; i++ {
		owner, _ := simtypes.RandomAcc(r, accs)
		treasury, _ := simtypes.RandomAcc(r, accs)
		shareDenom := genRandomDenom(r, ShareDenomSuffix)

		cfg := types.NewVaultConfig(owner.Address.String(), treasury.Address.String(), shareDenom, underlying.Denom, underlying.Decimals, "genesis")
		if containsVault(vaults, cfg.Address) {
			continue
		}

		feeCfg := types.FeeConfig{
			ExitFeeBps:       uint32(r.Intn(int(params.MaxFeeBps) + 1)),
			ManagementFeeBps: uint32(r.Intn(int(params.MaxFeeBps) + 1)),
		}
		if r.Intn(ChanceOfFeeReceiver) == 0 {
			receiver, _ := simtypes.RandomAcc(r, accs)
			feeCfg.FeeReceiver = receiver.Address.String()
		}

		allocations := RandomAllocations(r, instruments)
		if len(allocations) > int(params.MaxAllocations) {
			allocations = []types.Allocation{types.NewAllocation(underlying.Denom, types.WeightScale, true)}
		}

		balances, total := randomShareBalances(r, accs)
		holdings := sdk.NewCoins()
		if total.IsPositive() {
			assets, err := utils.ConvertToAssets(total, underlying.Decimals)
			if err != nil {
				panic(err)
			}
			holdings = holdings.Add(sdk.NewCoin(underlying.Denom, assets))
		}

		vaults = append(vaults, types.GenesisVault{
			Config:        cfg,
			State:         types.VaultState{Paused: r.Intn(ChanceOfPausedVault) == 0, Bootstrapped: total.IsPositive()},
			Admins:        []string{owner.Address.String()},
			Allocations:   allocations,
			Fees:          feeCfg,
			ShareBalances: balances,
			Holdings:      holdings,
		})
	}

	return &types.GenesisState{Params: params, Vaults: vaults}
}

func randomShareBalances(r *rand.Rand, accs []simtypes.Account) ([]types.ShareBalance, math.Int) {
	total := math.ZeroInt()
	seen := map[string]struct{}{}
	balances := []types.ShareBalance{}
	for i := r.Intn(MaxHolders + 1); i > 0; i-- {
		acc, _ := simtypes.RandomAcc(r, accs)
		if _, dup := seen[acc.Address.String()]; dup {
			continue
		}
		seen[acc.Address.String()] = struct{}{}
		amount := math.NewInt(int64(simtypes.RandIntBetween(r, 1, MaxShareUnits+1))).Mul(utils.Pow10(types.ShareDecimals))
		balances = append(balances, types.ShareBalance{Address: acc.Address.String(), Amount: amount})
		total = total.Add(amount)
	}
	return balances, total
}

func containsVault(vaults []types.GenesisVault, addr string) bool {
	for _, v := range vaults {
		if v.Config.Address == addr {
			return true
		}
	}
	return false
}
