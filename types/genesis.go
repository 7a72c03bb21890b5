package types

import (
	fmt "fmt"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the module genesis: params plus the full state of every vault.
type GenesisState struct {
	Params Params         `json:"params"`
	Vaults []GenesisVault `json:"vaults"`
}

// GenesisVault is the exported state of a single vault.
type GenesisVault struct {
	Config        VaultConfig    `json:"config"`
	State         VaultState     `json:"state"`
	Admins        []string       `json:"admins"`
	Allocations   []Allocation   `json:"allocations"`
	Fees          FeeConfig      `json:"fees"`
	ShareBalances []ShareBalance `json:"share_balances"`
	Holdings      sdk.Coins      `json:"holdings"`
}

// ShareBalance is a holder's share balance in a vault.
type ShareBalance struct {
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

// DefaultGenesisState returns the default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Vaults: []GenesisVault{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure. Registry membership of allocations is not checked here because the
// registry is an external collaborator; InitGenesis trusts exported state.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(gs.Vaults))
	for i, v := range gs.Vaults {
		if err := v.Config.Validate(); err != nil {
			return fmt.Errorf("invalid vault at index %d: %w", i, err)
		}
		if _, dup := seen[v.Config.Address]; dup {
			return fmt.Errorf("duplicate vault %s at index %d", v.Config.Address, i)
		}
		seen[v.Config.Address] = struct{}{}

		for _, admin := range v.Admins {
			if _, err := sdk.AccAddressFromBech32(admin); err != nil {
				return fmt.Errorf("vault %s: invalid admin %q: %w", v.Config.Address, admin, err)
			}
		}
		if len(v.Allocations) > 0 {
			if err := ValidateAllocations(v.Allocations, gs.Params.MaxAllocations, func(string) bool { return true }); err != nil {
				return fmt.Errorf("vault %s: %w", v.Config.Address, err)
			}
		}
		if err := v.Fees.Validate(gs.Params.MaxFeeBps); err != nil {
			return fmt.Errorf("vault %s: %w", v.Config.Address, err)
		}
		holders := make(map[string]struct{}, len(v.ShareBalances))
		for _, bal := range v.ShareBalances {
			holder, err := sdk.AccAddressFromBech32(bal.Address)
			if err != nil {
				return fmt.Errorf("vault %s: invalid share holder %q: %w", v.Config.Address, bal.Address, err)
			}
			if _, dup := holders[holder.String()]; dup {
				return fmt.Errorf("vault %s: duplicate share holder %s", v.Config.Address, holder)
			}
			holders[holder.String()] = struct{}{}
			if bal.Amount.IsNil() || !bal.Amount.IsPositive() {
				return fmt.Errorf("vault %s: share balance of %s must be positive", v.Config.Address, bal.Address)
			}
		}
		if err := v.Holdings.Validate(); err != nil {
			return fmt.Errorf("vault %s: invalid holdings: %w", v.Config.Address, err)
		}
	}
	return nil
}
