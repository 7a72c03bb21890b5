package types

import (
	fmt "fmt"
	"slices"

	"cosmossdk.io/math"

	"github.com/provlabs/rwavault/utils"
)

// WeightScale is the fixed-point scale of allocation weights: 1e18 is 100%.
var WeightScale = math.NewIntWithDecimal(1, 18)

// Allocation describes how deposited capital is routed to one instrument.
type Allocation struct {
	// Denom is the instrument token. An empty denom is the zero address.
	Denom string `json:"denom"`
	// Weight is the share of each deposit routed to Denom, scaled by WeightScale.
	Weight math.Int `json:"weight"`
	// Active entries take part in allocation and valuation. Inactive entries
	// may carry weight 0 to register a future instrument.
	Active bool `json:"active"`
}

// NewAllocation creates a new allocation entry.
func NewAllocation(denom string, weight math.Int, active bool) Allocation {
	return Allocation{Denom: denom, Weight: weight, Active: active}
}

// AllocationTable is the ordered allocation list of a vault. It is only ever
// replaced as a whole.
type AllocationTable struct {
	Entries []Allocation `json:"entries"`
}

// ActiveEntries returns the active entries in table order.
func (t AllocationTable) ActiveEntries() []Allocation {
	return slices.Collect(utils.Filter(t.Entries, func(entry Allocation) bool { return entry.Active }))
}

// ValidateAllocations checks a candidate allocation list.
//
// Checks run in this order so that the reported error is stable:
//  1. the list is non-empty and at most maxEntries long,
//  2. no entry has an empty (zero address) denom,
//  3. every weight is non-negative and no denom repeats,
//  4. every active entry is registered,
//  5. the weights of all entries, active or not, sum to exactly WeightScale.
func ValidateAllocations(entries []Allocation, maxEntries uint32, isRegistered func(denom string) bool) error {
	if len(entries) == 0 {
		return ErrAllocationsEmpty
	}
	if maxEntries > 0 && len(entries) > int(maxEntries) {
		return fmt.Errorf("%d entries exceed limit of %d: %w", len(entries), maxEntries, ErrTooManyAllocations)
	}

	for i, entry := range entries {
		if entry.Denom == "" {
			return fmt.Errorf("allocation %d: %w", i, ErrZeroAddress)
		}
	}

	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		if entry.Weight.IsNil() || entry.Weight.IsNegative() {
			return fmt.Errorf("allocation %d (%s): %w", i, entry.Denom, ErrInvalidWeight)
		}
		if _, dup := seen[entry.Denom]; dup {
			return fmt.Errorf("allocation %d (%s): %w", i, entry.Denom, ErrDuplicateAllocation)
		}
		seen[entry.Denom] = struct{}{}
	}

	for i, entry := range entries {
		if entry.Active && !isRegistered(entry.Denom) {
			return fmt.Errorf("allocation %d (%s): %w", i, entry.Denom, ErrTokenNotRegistered)
		}
	}

	sum, err := utils.SafeSum(utils.Map(entries, func(entry Allocation) math.Int { return entry.Weight }))
	if err != nil {
		return fmt.Errorf("weight sum overflow: %w", ErrInvalidWeightSum)
	}
	if !sum.Equal(WeightScale) {
		return fmt.Errorf("got %s: %w", sum, ErrInvalidWeightSum)
	}
	return nil
}
