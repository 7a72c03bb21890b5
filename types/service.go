package types

import (
	context "context"
)

// MsgServer is the transaction surface of the module.
type MsgServer interface {
	CreateVault(context.Context, *MsgCreateVaultRequest) (*MsgCreateVaultResponse, error)
	Deposit(context.Context, *MsgDepositRequest) (*MsgDepositResponse, error)
	Redeem(context.Context, *MsgRedeemRequest) (*MsgRedeemResponse, error)
	Withdraw(context.Context, *MsgWithdrawRequest) (*MsgWithdrawResponse, error)
	TransferShares(context.Context, *MsgTransferSharesRequest) (*MsgTransferSharesResponse, error)
	SetAllocations(context.Context, *MsgSetAllocationsRequest) (*MsgSetAllocationsResponse, error)
	SetFees(context.Context, *MsgSetFeesRequest) (*MsgSetFeesResponse, error)
	SetFeeReceiver(context.Context, *MsgSetFeeReceiverRequest) (*MsgSetFeeReceiverResponse, error)
	AccrueManagementFee(context.Context, *MsgAccrueManagementFeeRequest) (*MsgAccrueManagementFeeResponse, error)
	ScheduleManagementFee(context.Context, *MsgScheduleManagementFeeRequest) (*MsgScheduleManagementFeeResponse, error)
	BootstrapVault(context.Context, *MsgBootstrapVaultRequest) (*MsgBootstrapVaultResponse, error)
	GrantAdmin(context.Context, *MsgGrantAdminRequest) (*MsgGrantAdminResponse, error)
	RevokeAdmin(context.Context, *MsgRevokeAdminRequest) (*MsgRevokeAdminResponse, error)
	PauseVault(context.Context, *MsgPauseVaultRequest) (*MsgPauseVaultResponse, error)
	UnpauseVault(context.Context, *MsgUnpauseVaultRequest) (*MsgUnpauseVaultResponse, error)
	UpdateParams(context.Context, *MsgUpdateParamsRequest) (*MsgUpdateParamsResponse, error)
}

// QueryVaultRequest selects a vault by bech32 address.
type QueryVaultRequest struct {
	VaultAddress string `json:"vault_address"`
}

// QueryVaultResponse is the configuration, flags and headline totals of a vault.
type QueryVaultResponse struct {
	Config      VaultConfig `json:"config"`
	State       VaultState  `json:"state"`
	TotalShares string      `json:"total_shares"`
	TotalAssets string      `json:"total_assets"`
}

// QueryVaultsRequest lists every vault.
type QueryVaultsRequest struct{}

// QueryVaultsResponse lists every vault configuration.
type QueryVaultsResponse struct {
	Vaults []VaultConfig `json:"vaults"`
}

// QueryAllocationsResponse is a vault's allocation table.
type QueryAllocationsResponse struct {
	Allocations []Allocation `json:"allocations"`
}

// QueryFeeConfigResponse is a vault's fee configuration plus the currently computed management fee.
type QueryFeeConfigResponse struct {
	Fees                 FeeConfig `json:"fees"`
	PendingManagementFee string    `json:"pending_management_fee"`
}

// QueryShareBalanceRequest selects a holder in a vault.
type QueryShareBalanceRequest struct {
	VaultAddress string `json:"vault_address"`
	Address      string `json:"address"`
}

// QueryShareBalanceResponse is a holder's share balance.
type QueryShareBalanceResponse struct {
	Shares string `json:"shares"`
}

// QueryPreviewRequest previews a deposit (Amount in assets) or a redemption (Amount in shares).
type QueryPreviewRequest struct {
	VaultAddress string `json:"vault_address"`
	Amount       string `json:"amount"`
}

// QueryPreviewResponse is the previewed amount.
type QueryPreviewResponse struct {
	Amount string `json:"amount"`
}

// QueryHasRoleRequest checks role membership.
type QueryHasRoleRequest struct {
	VaultAddress string `json:"vault_address"`
	Address      string `json:"address"`
	Role         string `json:"role"`
}

// QueryHasRoleResponse reports role membership.
type QueryHasRoleResponse struct {
	HasRole bool `json:"has_role"`
}

// QueryServer is the read surface of the module.
type QueryServer interface {
	Vault(context.Context, *QueryVaultRequest) (*QueryVaultResponse, error)
	Vaults(context.Context, *QueryVaultsRequest) (*QueryVaultsResponse, error)
	Allocations(context.Context, *QueryVaultRequest) (*QueryAllocationsResponse, error)
	FeeConfig(context.Context, *QueryVaultRequest) (*QueryFeeConfigResponse, error)
	ShareBalance(context.Context, *QueryShareBalanceRequest) (*QueryShareBalanceResponse, error)
	PreviewDeposit(context.Context, *QueryPreviewRequest) (*QueryPreviewResponse, error)
	PreviewRedeem(context.Context, *QueryPreviewRequest) (*QueryPreviewResponse, error)
	HasRole(context.Context, *QueryHasRoleRequest) (*QueryHasRoleResponse, error)
}
