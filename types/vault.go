package types

import (
	fmt "fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ShareDecimals is the fixed precision of vault shares, independent of the
// underlying asset's native decimals.
const ShareDecimals = 18

// VaultConfig is the immutable configuration of a vault. It is written once at
// vault creation and never mutated afterwards.
type VaultConfig struct {
	// Address is the bech32 address of the vault account holding deposits.
	Address string `json:"address"`
	// Owner is the single default admin of the vault.
	Owner string `json:"owner"`
	// Treasury receives exit fees and funds the bootstrap seed.
	Treasury string `json:"treasury"`
	// ShareDenom names the vault's share unit.
	ShareDenom string `json:"share_denom"`
	// UnderlyingAsset is the only denom accepted for deposits and paid on redemption.
	UnderlyingAsset string `json:"underlying_asset"`
	// AssetDecimals is the registry precision of UnderlyingAsset, at most ShareDecimals.
	AssetDecimals uint32 `json:"asset_decimals"`
	// Strategy is a display-only label.
	Strategy string `json:"strategy"`
}

// NewVaultConfig creates a new vault configuration whose address is derived from the share denom.
func NewVaultConfig(owner, treasury, shareDenom, underlyingAsset string, assetDecimals uint32, strategy string) VaultConfig {
	return VaultConfig{
		Address:         GetVaultAddress(shareDenom).String(),
		Owner:           owner,
		Treasury:        treasury,
		ShareDenom:      shareDenom,
		UnderlyingAsset: underlyingAsset,
		AssetDecimals:   assetDecimals,
		Strategy:        strategy,
	}
}

// GetAddress returns the vault account address. It panics on a malformed
// address, which Validate rules out for every stored config.
func (c VaultConfig) GetAddress() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(c.Address)
}

// GetTreasury returns the treasury address.
func (c VaultConfig) GetTreasury() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(c.Treasury)
}

// Validate performs basic validation on the vault fields.
func (c VaultConfig) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Address); err != nil {
		return fmt.Errorf("invalid vault address: %w", err)
	}
	if c.Owner == "" {
		return fmt.Errorf("owner: %w", ErrZeroAddress)
	}
	if _, err := sdk.AccAddressFromBech32(c.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}
	if c.Treasury == "" {
		return fmt.Errorf("treasury: %w", ErrZeroAddress)
	}
	if _, err := sdk.AccAddressFromBech32(c.Treasury); err != nil {
		return fmt.Errorf("invalid treasury address: %w", err)
	}
	if err := sdk.ValidateDenom(c.ShareDenom); err != nil {
		return fmt.Errorf("invalid share denom: %w", err)
	}
	if err := sdk.ValidateDenom(c.UnderlyingAsset); err != nil {
		return fmt.Errorf("invalid underlying asset denom: %w", err)
	}
	if c.ShareDenom == c.UnderlyingAsset {
		return fmt.Errorf("share denom %q must differ from underlying asset: %w", c.ShareDenom, ErrInvalidDenom)
	}
	if c.AssetDecimals > ShareDecimals {
		return fmt.Errorf("asset decimals %d exceed share decimals %d: %w", c.AssetDecimals, ShareDecimals, ErrUnsupportedDecimals)
	}
	if !GetVaultAddress(c.ShareDenom).Equals(c.GetAddress()) {
		return fmt.Errorf("vault address %s does not match share denom %q", c.Address, c.ShareDenom)
	}
	return nil
}

// ValidateAcceptedCoin checks that the coin is denominated in the vault's underlying asset.
func (c VaultConfig) ValidateAcceptedCoin(asset sdk.Coin) error {
	if asset.Denom != c.UnderlyingAsset {
		return fmt.Errorf("%s asset denom not supported for vault, expected %s: %w", asset.Denom, c.UnderlyingAsset, ErrInvalidDenom)
	}
	return nil
}

// VaultState holds the mutable lifecycle flags of a vault.
type VaultState struct {
	// Paused blocks deposits and redemptions while true.
	Paused bool `json:"paused"`
	// Bootstrapped is set permanently by the first bootstrap or the first public deposit.
	Bootstrapped bool `json:"bootstrapped"`
}
