package types

import (
	fmt "fmt"

	"cosmossdk.io/collections"
	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "rwavault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	// It should be synced with the gov module's name if it is ever changed.
	// See: https://github.com/cosmos/cosmos-sdk/blob/v0.52.0-beta.2/x/gov/types/keys.go#L9
	GovModuleName = "gov"
)

var (
	// ParamsKeyPrefix is the prefix to retrieve all Params
	ParamsKeyPrefix = collections.NewPrefix(0)
	// ParamsName is a human-readable name for the params collection.
	ParamsName = "params"

	// VaultsKeyPrefix is the prefix to retrieve all vault configurations.
	VaultsKeyPrefix = collections.NewPrefix(1)
	// VaultsName is a human-readable name for the vaults collection.
	VaultsName = "vaults"

	// VaultStatesKeyPrefix is the prefix for the mutable pause/bootstrap flags of a vault.
	VaultStatesKeyPrefix = collections.NewPrefix(2)
	// VaultStatesName is a human-readable name for the vault states collection.
	VaultStatesName = "vault_states"

	// VaultAdminsKeyPrefix is the prefix for the (vault, admin) membership set.
	VaultAdminsKeyPrefix = collections.NewPrefix(3)
	// VaultAdminsName is a human-readable name for the vault admins collection.
	VaultAdminsName = "vault_admins"

	// AllocationsKeyPrefix is the prefix for each vault's allocation table.
	AllocationsKeyPrefix = collections.NewPrefix(4)
	// AllocationsName is a human-readable name for the allocations collection.
	AllocationsName = "allocations"

	// FeeConfigsKeyPrefix is the prefix for each vault's fee configuration.
	FeeConfigsKeyPrefix = collections.NewPrefix(5)
	// FeeConfigsName is a human-readable name for the fee configs collection.
	FeeConfigsName = "fee_configs"

	// ShareBalancesKeyPrefix is the prefix for (vault, holder) share balances.
	ShareBalancesKeyPrefix = collections.NewPrefix(6)
	// ShareBalancesName is a human-readable name for the share balances collection.
	ShareBalancesName = "share_balances"

	// ShareSupplyKeyPrefix is the prefix for each vault's total share supply.
	ShareSupplyKeyPrefix = collections.NewPrefix(7)
	// ShareSupplyName is a human-readable name for the share supply collection.
	ShareSupplyName = "share_supply"

	// HoldingsKeyPrefix is the prefix for (vault, instrument denom) holdings.
	HoldingsKeyPrefix = collections.NewPrefix(8)
	// HoldingsName is a human-readable name for the holdings collection.
	HoldingsName = "holdings"

	// ReentrancyLocksKeyPrefix is the prefix for vaults currently inside a guarded call.
	ReentrancyLocksKeyPrefix = collections.NewPrefix(9)
	// ReentrancyLocksName is a human-readable name for the reentrancy locks collection.
	ReentrancyLocksName = "reentrancy_locks"
)

// GetVaultAddress returns the module account address for the given share denom.
func GetVaultAddress(shareDenom string) sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(fmt.Sprintf("%s/%s", ModuleName, shareDenom))))
}
