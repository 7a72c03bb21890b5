package simulation

import (
	"fmt"
	"math/rand"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/rwavault/keeper"
	"github.com/provlabs/rwavault/types"
)

// genRandomDenom generates a random lowercase denom of 3 to 10 letters with a given suffix.
func genRandomDenom(r *rand.Rand, suffix string) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	n := simtypes.RandIntBetween(r, 3, 11)
	bz := make([]byte, n)
	for i := range bz {
		bz[i] = letters[r.Intn(len(letters))]
	}
	return string(bz) + suffix
}

// randomWeights splits WeightScale into n random non-negative weights that sum exactly to it.
func randomWeights(r *rand.Rand, n int) []math.Int {
	weights := make([]math.Int, n)
	remaining := types.WeightScale
	for i := 0; i < n-1; i++ {
		w := math.ZeroInt()
		if remaining.IsPositive() {
			w = simtypes.RandomAmount(r, remaining)
		}
		weights[i] = w
		remaining = remaining.Sub(w)
	}
	weights[n-1] = remaining
	return weights
}

// getRandomVault selects a random vault from all existing vaults.
func getRandomVault(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context) (*types.VaultConfig, error) {
	vaults, err := k.GetVaults(ctx)
	if err != nil {
		return nil, err
	}
	if len(vaults) == 0 {
		return nil, fmt.Errorf("no vaults found")
	}
	vaultAddr := vaults[r.Intn(len(vaults))]
	vault, err := k.GetVault(ctx, vaultAddr)
	if err != nil {
		return nil, err
	}
	if vault == nil {
		return nil, fmt.Errorf("received nil vault")
	}
	return vault, nil
}

// getOwnerAccount finds the sim account that owns the vault.
func getOwnerAccount(vault *types.VaultConfig, accs []simtypes.Account) (simtypes.Account, error) {
	owner, found := simtypes.FindAccount(accs, sdk.MustAccAddressFromBech32(vault.Owner))
	if !found {
		return simtypes.Account{}, fmt.Errorf("owner of vault %s is not a sim account", vault.Address)
	}
	return owner, nil
}

// getRandomAdminAccount picks a random sim account from the vault's admin set.
func getRandomAdminAccount(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context, vault *types.VaultConfig, accs []simtypes.Account) (simtypes.Account, error) {
	admins, err := k.GetAdmins(ctx, vault.GetAddress())
	if err != nil {
		return simtypes.Account{}, err
	}
	r.Shuffle(len(admins), func(i, j int) {
		admins[i], admins[j] = admins[j], admins[i]
	})
	for _, admin := range admins {
		if acc, found := simtypes.FindAccount(accs, admin); found {
			return acc, nil
		}
	}
	return simtypes.Account{}, fmt.Errorf("vault %s has no admin among sim accounts", vault.Address)
}

// getRandomAccountWithDenom finds a random account from a list that has a positive balance of a given denomination.
func getRandomAccountWithDenom(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context, accs []simtypes.Account, denom string) (simtypes.Account, sdk.Coin, error) {
	shuffled := append([]simtypes.Account(nil), accs...)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	for _, acc := range shuffled {
		bal := k.BankKeeper.GetBalance(ctx, acc.Address, denom)
		if !bal.IsZero() {
			return acc, bal, nil
		}
	}

	return simtypes.Account{}, sdk.Coin{}, fmt.Errorf("no account has positive %s balance", denom)
}

// getRandomShareHolder finds a random sim account holding shares of the vault.
func getRandomShareHolder(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context, vaultAddr sdk.AccAddress, accs []simtypes.Account) (simtypes.Account, math.Int, error) {
	type holder struct {
		acc simtypes.Account
		bal math.Int
	}
	var holders []holder
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, sdk.AccAddress](vaultAddr)
	err := k.ShareBalances.Walk(ctx, rng, func(key collections.Pair[sdk.AccAddress, sdk.AccAddress], bal math.Int) (bool, error) {
		if acc, found := simtypes.FindAccount(accs, key.K2()); found {
			holders = append(holders, holder{acc: acc, bal: bal})
		}
		return false, nil
	})
	if err != nil {
		return simtypes.Account{}, math.Int{}, err
	}
	if len(holders) == 0 {
		return simtypes.Account{}, math.Int{}, fmt.Errorf("no sim account holds shares of %s", vaultAddr)
	}
	h := holders[r.Intn(len(holders))]
	return h.acc, h.bal, nil
}
