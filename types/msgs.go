package types

import (
	fmt "fmt"

	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreateVaultRequest creates a new vault.
type MsgCreateVaultRequest struct {
	Owner           string `json:"owner"`
	Treasury        string `json:"treasury"`
	ShareDenom      string `json:"share_denom"`
	UnderlyingAsset string `json:"underlying_asset"`
	Strategy        string `json:"strategy"`
}

// MsgCreateVaultResponse returns the address of the created vault.
type MsgCreateVaultResponse struct {
	VaultAddress string `json:"vault_address"`
}

// MsgDepositRequest deposits underlying assets and mints shares to Receiver.
type MsgDepositRequest struct {
	Depositor    string   `json:"depositor"`
	VaultAddress string   `json:"vault_address"`
	Receiver     string   `json:"receiver"`
	Asset        sdk.Coin `json:"asset"`
}

// MsgDepositResponse returns the minted shares.
type MsgDepositResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgRedeemRequest burns Owner's shares and pays the underlying to Receiver.
// Only the owner of the shares may redeem them.
type MsgRedeemRequest struct {
	Owner        string   `json:"owner"`
	VaultAddress string   `json:"vault_address"`
	Receiver     string   `json:"receiver"`
	Shares       math.Int `json:"shares"`
}

// MsgRedeemResponse returns the net assets paid and the exit fee taken.
type MsgRedeemResponse struct {
	Assets sdk.Coin `json:"assets"`
	Fee    sdk.Coin `json:"fee"`
}

// MsgWithdrawRequest is accepted on the wire for interface compatibility but
// always rejected: redeem is the only redemption path.
type MsgWithdrawRequest struct {
	Owner        string   `json:"owner"`
	VaultAddress string   `json:"vault_address"`
	Receiver     string   `json:"receiver"`
	Assets       sdk.Coin `json:"assets"`
}

// MsgWithdrawResponse is never returned with a nil error.
type MsgWithdrawResponse struct{}

// MsgTransferSharesRequest moves shares between two holders.
type MsgTransferSharesRequest struct {
	Sender       string   `json:"sender"`
	VaultAddress string   `json:"vault_address"`
	Receiver     string   `json:"receiver"`
	Shares       math.Int `json:"shares"`
}

// MsgTransferSharesResponse is the response to MsgTransferSharesRequest.
type MsgTransferSharesResponse struct{}

// MsgSetAllocationsRequest replaces a vault's allocation table.
type MsgSetAllocationsRequest struct {
	Admin        string       `json:"admin"`
	VaultAddress string       `json:"vault_address"`
	Allocations  []Allocation `json:"allocations"`
}

// MsgSetAllocationsResponse is the response to MsgSetAllocationsRequest.
type MsgSetAllocationsResponse struct{}

// MsgSetFeesRequest sets a vault's exit and management fees.
type MsgSetFeesRequest struct {
	Admin            string `json:"admin"`
	VaultAddress     string `json:"vault_address"`
	ExitFeeBps       uint32 `json:"exit_fee_bps"`
	ManagementFeeBps uint32 `json:"management_fee_bps"`
}

// MsgSetFeesResponse is the response to MsgSetFeesRequest.
type MsgSetFeesResponse struct{}

// MsgSetFeeReceiverRequest sets the management fee receiver.
type MsgSetFeeReceiverRequest struct {
	Owner        string `json:"owner"`
	VaultAddress string `json:"vault_address"`
	FeeReceiver  string `json:"fee_receiver"`
}

// MsgSetFeeReceiverResponse is the response to MsgSetFeeReceiverRequest.
type MsgSetFeeReceiverResponse struct{}

// MsgAccrueManagementFeeRequest mints a caller-chosen amount of fee shares.
type MsgAccrueManagementFeeRequest struct {
	Admin        string   `json:"admin"`
	VaultAddress string   `json:"vault_address"`
	Shares       math.Int `json:"shares"`
}

// MsgAccrueManagementFeeResponse is the response to MsgAccrueManagementFeeRequest.
type MsgAccrueManagementFeeResponse struct{}

// MsgScheduleManagementFeeRequest mints the computed management fee.
type MsgScheduleManagementFeeRequest struct {
	Admin        string `json:"admin"`
	VaultAddress string `json:"vault_address"`
}

// MsgScheduleManagementFeeResponse returns the minted fee shares.
type MsgScheduleManagementFeeResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgBootstrapVaultRequest seeds a vault from its treasury.
type MsgBootstrapVaultRequest struct {
	Owner        string `json:"owner"`
	VaultAddress string `json:"vault_address"`
}

// MsgBootstrapVaultResponse returns the shares credited to the treasury.
type MsgBootstrapVaultResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgGrantAdminRequest adds an account to a vault's admin set.
type MsgGrantAdminRequest struct {
	Owner        string `json:"owner"`
	VaultAddress string `json:"vault_address"`
	Account      string `json:"account"`
}

// MsgGrantAdminResponse is the response to MsgGrantAdminRequest.
type MsgGrantAdminResponse struct{}

// MsgRevokeAdminRequest removes an account from a vault's admin set.
type MsgRevokeAdminRequest struct {
	Owner        string `json:"owner"`
	VaultAddress string `json:"vault_address"`
	Account      string `json:"account"`
}

// MsgRevokeAdminResponse is the response to MsgRevokeAdminRequest.
type MsgRevokeAdminResponse struct{}

// MsgPauseVaultRequest pauses deposits and redemptions.
type MsgPauseVaultRequest struct {
	Owner        string `json:"owner"`
	VaultAddress string `json:"vault_address"`
}

// MsgPauseVaultResponse is the response to MsgPauseVaultRequest.
type MsgPauseVaultResponse struct{}

// MsgUnpauseVaultRequest resumes deposits and redemptions.
type MsgUnpauseVaultRequest struct {
	Owner        string `json:"owner"`
	VaultAddress string `json:"vault_address"`
}

// MsgUnpauseVaultResponse is the response to MsgUnpauseVaultRequest.
type MsgUnpauseVaultResponse struct{}

// MsgUpdateParamsRequest updates the module params. Only the module authority may send it.
type MsgUpdateParamsRequest struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// MsgUpdateParamsResponse is the response to MsgUpdateParamsRequest.
type MsgUpdateParamsResponse struct{}

// Msg is implemented by every request message. GetSigners returns the one
// account that must sign the transaction carrying the message. That account
// is also the caller the keeper authorizes for the operation.
type Msg interface {
	ValidateBasic() error
	GetSigners() []sdk.AccAddress
}

var (
	_ Msg = MsgCreateVaultRequest{}
	_ Msg = MsgDepositRequest{}
	_ Msg = MsgRedeemRequest{}
	_ Msg = MsgWithdrawRequest{}
	_ Msg = MsgTransferSharesRequest{}
	_ Msg = MsgSetAllocationsRequest{}
	_ Msg = MsgSetFeesRequest{}
	_ Msg = MsgSetFeeReceiverRequest{}
	_ Msg = MsgAccrueManagementFeeRequest{}
	_ Msg = MsgScheduleManagementFeeRequest{}
	_ Msg = MsgBootstrapVaultRequest{}
	_ Msg = MsgGrantAdminRequest{}
	_ Msg = MsgRevokeAdminRequest{}
	_ Msg = MsgPauseVaultRequest{}
	_ Msg = MsgUnpauseVaultRequest{}
	_ Msg = MsgUpdateParamsRequest{}
)

// signers panics on a malformed address, matching the SDK's legacy GetSigners.
// ValidateBasic rejects such messages first.
func signers(addr string) []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(addr)}
}

// GetSigners returns the vault owner.
func (m MsgCreateVaultRequest) GetSigners() []sdk.AccAddress { return signers(m.Owner) }

// GetSigners returns the depositor.
func (m MsgDepositRequest) GetSigners() []sdk.AccAddress { return signers(m.Depositor) }

// GetSigners returns the share owner.
func (m MsgRedeemRequest) GetSigners() []sdk.AccAddress { return signers(m.Owner) }

// GetSigners returns the share owner.
func (m MsgWithdrawRequest) GetSigners() []sdk.AccAddress { return signers(m.Owner) }

// GetSigners returns the sender of the shares.
func (m MsgTransferSharesRequest) GetSigners() []sdk.AccAddress { return signers(m.Sender) }

// GetSigners returns the admin.
func (m MsgSetAllocationsRequest) GetSigners() []sdk.AccAddress { return signers(m.Admin) }

// GetSigners returns the admin.
func (m MsgSetFeesRequest) GetSigners() []sdk.AccAddress { return signers(m.Admin) }

// GetSigners returns the vault owner.
func (m MsgSetFeeReceiverRequest) GetSigners() []sdk.AccAddress { return signers(m.Owner) }

// GetSigners returns the admin.
func (m MsgAccrueManagementFeeRequest) GetSigners() []sdk.AccAddress { return signers(m.Admin) }

// GetSigners returns the admin.
func (m MsgScheduleManagementFeeRequest) GetSigners() []sdk.AccAddress { return signers(m.Admin) }

// GetSigners returns the vault owner.
func (m MsgBootstrapVaultRequest) GetSigners() []sdk.AccAddress { return signers(m.Owner) }

// GetSigners returns the vault owner.
func (m MsgGrantAdminRequest) GetSigners() []sdk.AccAddress { return signers(m.Owner) }

// GetSigners returns the vault owner.
func (m MsgRevokeAdminRequest) GetSigners() []sdk.AccAddress { return signers(m.Owner) }

// GetSigners returns the vault owner.
func (m MsgPauseVaultRequest) GetSigners() []sdk.AccAddress { return signers(m.Owner) }

// GetSigners returns the vault owner.
func (m MsgUnpauseVaultRequest) GetSigners() []sdk.AccAddress { return signers(m.Owner) }

// GetSigners returns the module authority.
func (m MsgUpdateParamsRequest) GetSigners() []sdk.AccAddress { return signers(m.Authority) }

func validateAddress(field, addr string) error {
	if addr == "" {
		return fmt.Errorf("%s: %w", field, ErrZeroAddress)
	}
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return fmt.Errorf("invalid %s address: %q: %w", field, addr, err)
	}
	return nil
}

func validatePositive(field string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return fmt.Errorf("%s must be positive: %w", field, ErrInvalidAmount)
	}
	return nil
}

// ValidateBasic validates the MsgCreateVaultRequest.
func (m MsgCreateVaultRequest) ValidateBasic() error {
	if err := validateAddress("owner", m.Owner); err != nil {
		return err
	}
	if err := validateAddress("treasury", m.Treasury); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(m.ShareDenom); err != nil {
		return fmt.Errorf("invalid share denom: %q: %w", m.ShareDenom, err)
	}
	if err := sdk.ValidateDenom(m.UnderlyingAsset); err != nil {
		return fmt.Errorf("invalid underlying asset: %q: %w", m.UnderlyingAsset, err)
	}
	return nil
}

// ValidateBasic validates the MsgDepositRequest.
func (m MsgDepositRequest) ValidateBasic() error {
	if err := validateAddress("depositor", m.Depositor); err != nil {
		return err
	}
	if err := validateAddress("vault", m.VaultAddress); err != nil {
		return err
	}
	if err := validateAddress("receiver", m.Receiver); err != nil {
		return err
	}
	if err := m.Asset.Validate(); err != nil {
		return fmt.Errorf("invalid asset: %w", err)
	}
	return validatePositive("asset amount", m.Asset.Amount)
}

// ValidateBasic validates the MsgRedeemRequest.
func (m MsgRedeemRequest) ValidateBasic() error {
	if err := validateAddress("owner", m.Owner); err != nil {
		return err
	}
	if err := validateAddress("vault", m.VaultAddress); err != nil {
		return err
	}
	if err := validateAddress("receiver", m.Receiver); err != nil {
		return err
	}
	return validatePositive("shares", m.Shares)
}

// ValidateBasic always fails: withdraw is not supported.
func (m MsgWithdrawRequest) ValidateBasic() error {
	return ErrWithdrawNotSupported
}

// ValidateBasic validates the MsgTransferSharesRequest.
func (m MsgTransferSharesRequest) ValidateBasic() error {
	if err := validateAddress("sender", m.Sender); err != nil {
		return err
	}
	if err := validateAddress("vault", m.VaultAddress); err != nil {
		return err
	}
	if err := validateAddress("receiver", m.Receiver); err != nil {
		return err
	}
	return validatePositive("shares", m.Shares)
}

// ValidateBasic validates the MsgSetAllocationsRequest. Registry membership
// and the table length limit are checked by the keeper.
func (m MsgSetAllocationsRequest) ValidateBasic() error {
	if err := validateAddress("admin", m.Admin); err != nil {
		return err
	}
	if err := validateAddress("vault", m.VaultAddress); err != nil {
		return err
	}
	if len(m.Allocations) == 0 {
		return ErrAllocationsEmpty
	}
	return nil
}

// ValidateBasic validates the MsgSetFeesRequest against the hard fee ceiling.
func (m MsgSetFeesRequest) ValidateBasic() error {
	if err := validateAddress("admin", m.Admin); err != nil {
		return err
	}
	if err := validateAddress("vault", m.VaultAddress); err != nil {
		return err
	}
	return ValidateFeeBps(m.ExitFeeBps, m.ManagementFeeBps, MaxFeeBps)
}

// ValidateBasic validates the MsgSetFeeReceiverRequest.
func (m MsgSetFeeReceiverRequest) ValidateBasic() error {
	if err := validateAddress("owner", m.Owner); err != nil {
		return err
	}
	if err := validateAddress("vault", m.VaultAddress); err != nil {
		return err
	}
	return validateAddress("fee receiver", m.FeeReceiver)
}

// ValidateBasic validates the MsgAccrueManagementFeeRequest.
func (m MsgAccrueManagementFeeRequest) ValidateBasic() error {
	if err := validateAddress("admin", m.Admin); err != nil {
		return err
	}
	if err := validateAddress("vault", m.VaultAddress); err != nil {
		return err
	}
	return validatePositive("shares", m.Shares)
}

// ValidateBasic validates the MsgScheduleManagementFeeRequest.
func (m MsgScheduleManagementFeeRequest) ValidateBasic() error {
	if err := validateAddress("admin", m.Admin); err != nil {
		return err
	}
	return validateAddress("vault", m.VaultAddress)
}

// ValidateBasic validates the MsgBootstrapVaultRequest.
func (m MsgBootstrapVaultRequest) ValidateBasic() error {
	if err := validateAddress("owner", m.Owner); err != nil {
		return err
	}
	return validateAddress("vault", m.VaultAddress)
}

// ValidateBasic validates the MsgGrantAdminRequest.
func (m MsgGrantAdminRequest) ValidateBasic() error {
	if err := validateAddress("owner", m.Owner); err != nil {
		return err
	}
	if err := validateAddress("vault", m.VaultAddress); err != nil {
		return err
	}
	return validateAddress("account", m.Account)
}

// ValidateBasic validates the MsgRevokeAdminRequest.
func (m MsgRevokeAdminRequest) ValidateBasic() error {
	if err := validateAddress("owner", m.Owner); err != nil {
		return err
	}
	if err := validateAddress("vault", m.VaultAddress); err != nil {
		return err
	}
	return validateAddress("account", m.Account)
}

// ValidateBasic validates the MsgPauseVaultRequest.
func (m MsgPauseVaultRequest) ValidateBasic() error {
	if err := validateAddress("owner", m.Owner); err != nil {
		return err
	}
	return validateAddress("vault", m.VaultAddress)
}

// ValidateBasic validates the MsgUnpauseVaultRequest.
func (m MsgUnpauseVaultRequest) ValidateBasic() error {
	if err := validateAddress("owner", m.Owner); err != nil {
		return err
	}
	return validateAddress("vault", m.VaultAddress)
}

// ValidateBasic validates the MsgUpdateParamsRequest.
func (m MsgUpdateParamsRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	return m.Params.Validate()
}
