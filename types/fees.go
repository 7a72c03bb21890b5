package types

import (
	fmt "fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// BpsDenominator is 100% expressed in basis points.
	BpsDenominator = 10_000
	// MaxFeeBps is the hard ceiling on any fee (10%). Params may lower it but never raise it.
	MaxFeeBps = 1_000
)

// FeeConfig is the exit and management fee configuration of a vault.
type FeeConfig struct {
	ExitFeeBps       uint32 `json:"exit_fee_bps"`
	ManagementFeeBps uint32 `json:"management_fee_bps"`
	// FeeReceiver receives management fee shares. Empty means unset.
	FeeReceiver string `json:"fee_receiver"`
	// LastManagementAccrual is the unix time of the last successful management fee accrual.
	LastManagementAccrual int64 `json:"last_management_accrual"`
}

// Validate checks the fee bounds against maxFeeBps and the receiver address, if set.
func (f FeeConfig) Validate(maxFeeBps uint32) error {
	if err := ValidateFeeBps(f.ExitFeeBps, f.ManagementFeeBps, maxFeeBps); err != nil {
		return err
	}
	if f.FeeReceiver != "" {
		if _, err := sdk.AccAddressFromBech32(f.FeeReceiver); err != nil {
			return fmt.Errorf("invalid fee receiver: %w", err)
		}
	}
	if f.LastManagementAccrual < 0 {
		return fmt.Errorf("last management accrual cannot be negative: %d", f.LastManagementAccrual)
	}
	return nil
}

// ValidateFeeBps checks both fees against maxFeeBps.
func ValidateFeeBps(exitFeeBps, managementFeeBps, maxFeeBps uint32) error {
	if exitFeeBps > maxFeeBps {
		return fmt.Errorf("exit fee %d bps exceeds %d bps: %w", exitFeeBps, maxFeeBps, ErrFeeTooHigh)
	}
	if managementFeeBps > maxFeeBps {
		return fmt.Errorf("management fee %d bps exceeds %d bps: %w", managementFeeBps, maxFeeBps, ErrFeeTooHigh)
	}
	return nil
}
