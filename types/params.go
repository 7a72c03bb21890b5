package types

import (
	fmt "fmt"
)

const (
	// DefaultMaxAllocations bounds the allocation table length.
	DefaultMaxAllocations uint32 = 20
	// DefaultManagementFeeCooldownSeconds is one 365-day year.
	DefaultManagementFeeCooldownSeconds int64 = 31_536_000
	// DefaultBootstrapSeedUnits is the bootstrap seed in whole units of the underlying asset.
	DefaultBootstrapSeedUnits uint64 = 1_000
)

// Params defines the module-wide configuration.
type Params struct {
	MaxAllocations               uint32 `json:"max_allocations"`
	MaxFeeBps                    uint32 `json:"max_fee_bps"`
	ManagementFeeCooldownSeconds int64  `json:"management_fee_cooldown_seconds"`
	BootstrapSeedUnits           uint64 `json:"bootstrap_seed_units"`
}

// DefaultParams returns the default module parameters.
func DefaultParams() Params {
	return Params{
		MaxAllocations:               DefaultMaxAllocations,
		MaxFeeBps:                    MaxFeeBps,
		ManagementFeeCooldownSeconds: DefaultManagementFeeCooldownSeconds,
		BootstrapSeedUnits:           DefaultBootstrapSeedUnits,
	}
}

// Validate checks the params for internal consistency.
func (p Params) Validate() error {
	if p.MaxAllocations == 0 {
		return fmt.Errorf("max allocations must be positive: %w", ErrInvalidParams)
	}
	if p.MaxFeeBps > MaxFeeBps {
		return fmt.Errorf("max fee %d bps exceeds hard ceiling %d bps: %w", p.MaxFeeBps, MaxFeeBps, ErrInvalidParams)
	}
	if p.ManagementFeeCooldownSeconds < 0 {
		return fmt.Errorf("management fee cooldown cannot be negative: %w", ErrInvalidParams)
	}
	if p.BootstrapSeedUnits == 0 {
		return fmt.Errorf("bootstrap seed must be positive: %w", ErrInvalidParams)
	}
	return nil
}
