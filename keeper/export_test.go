package keeper

import (
	"testing"

	"cosmossdk.io/math"

	"github.com/provlabs/rwavault/types"
)

// TestAccessor_splitDeposit exposes this keeper's splitDeposit function for unit tests
// as parallel denom and amount slices.
func (k Keeper) TestAccessor_splitDeposit(t *testing.T, table types.AllocationTable, assets math.Int) (denoms []string, amounts []math.Int, unallocated math.Int, err error) {
	t.Helper()
	splits, unallocated, err := splitDeposit(table, assets)
	for _, split := range splits {
		denoms = append(denoms, split.Denom)
		amounts = append(amounts, split.Amount)
	}
	return denoms, amounts, unallocated, err
}
