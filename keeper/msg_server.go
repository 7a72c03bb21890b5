package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func validate[T types.Msg](msg *T) error {
	if msg == nil {
		return fmt.Errorf("empty request: %w", types.ErrInvalidRequest)
	}
	return (*msg).ValidateBasic()
}

func mustAddr(addr string) sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(addr)
}

// CreateVault creates a new vault.
func (k msgServer) CreateVault(goCtx context.Context, msg *types.MsgCreateVaultRequest) (*types.MsgCreateVaultResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	vault, err := k.Keeper.CreateVault(ctx, mustAddr(msg.Owner), mustAddr(msg.Treasury), msg.ShareDenom, msg.UnderlyingAsset, msg.Strategy)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateVaultResponse{VaultAddress: vault.Address}, nil
}

// Deposit deposits underlying assets into a vault.
func (k msgServer) Deposit(goCtx context.Context, msg *types.MsgDepositRequest) (*types.MsgDepositResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	shares, err := k.Keeper.Deposit(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Depositor), mustAddr(msg.Receiver), msg.Asset)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{Shares: shares}, nil
}

// Redeem redeems shares for underlying assets.
func (k msgServer) Redeem(goCtx context.Context, msg *types.MsgRedeemRequest) (*types.MsgRedeemResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	assets, fee, err := k.Keeper.Redeem(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Owner), mustAddr(msg.Receiver), msg.Shares)
	if err != nil {
		return nil, err
	}
	return &types.MsgRedeemResponse{Assets: assets, Fee: fee}, nil
}

// Withdraw always fails: redeem is the only redemption path.
func (k msgServer) Withdraw(_ context.Context, _ *types.MsgWithdrawRequest) (*types.MsgWithdrawResponse, error) {
	return nil, types.ErrWithdrawNotSupported
}

// TransferShares moves shares between holders.
func (k msgServer) TransferShares(goCtx context.Context, msg *types.MsgTransferSharesRequest) (*types.MsgTransferSharesResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.TransferShares(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Sender), mustAddr(msg.Receiver), msg.Shares); err != nil {
		return nil, err
	}
	return &types.MsgTransferSharesResponse{}, nil
}

// SetAllocations replaces a vault's allocation table.
func (k msgServer) SetAllocations(goCtx context.Context, msg *types.MsgSetAllocationsRequest) (*types.MsgSetAllocationsResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.SetAllocations(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Admin), msg.Allocations); err != nil {
		return nil, err
	}
	return &types.MsgSetAllocationsResponse{}, nil
}

// SetFees sets a vault's exit and management fees.
func (k msgServer) SetFees(goCtx context.Context, msg *types.MsgSetFeesRequest) (*types.MsgSetFeesResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.SetFees(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Admin), msg.ExitFeeBps, msg.ManagementFeeBps); err != nil {
		return nil, err
	}
	return &types.MsgSetFeesResponse{}, nil
}

// SetFeeReceiver sets a vault's management fee receiver.
func (k msgServer) SetFeeReceiver(goCtx context.Context, msg *types.MsgSetFeeReceiverRequest) (*types.MsgSetFeeReceiverResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.SetFeeReceiver(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Owner), mustAddr(msg.FeeReceiver)); err != nil {
		return nil, err
	}
	return &types.MsgSetFeeReceiverResponse{}, nil
}

// AccrueManagementFee mints a chosen amount of management fee shares.
func (k msgServer) AccrueManagementFee(goCtx context.Context, msg *types.MsgAccrueManagementFeeRequest) (*types.MsgAccrueManagementFeeResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.AccrueManagementFee(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Admin), msg.Shares); err != nil {
		return nil, err
	}
	return &types.MsgAccrueManagementFeeResponse{}, nil
}

// ScheduleManagementFee mints the computed management fee.
func (k msgServer) ScheduleManagementFee(goCtx context.Context, msg *types.MsgScheduleManagementFeeRequest) (*types.MsgScheduleManagementFeeResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	shares, err := k.Keeper.ScheduleManagementFee(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Admin))
	if err != nil {
		return nil, err
	}
	return &types.MsgScheduleManagementFeeResponse{Shares: shares}, nil
}

// BootstrapVault seeds a vault from its treasury.
func (k msgServer) BootstrapVault(goCtx context.Context, msg *types.MsgBootstrapVaultRequest) (*types.MsgBootstrapVaultResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	shares, err := k.Keeper.BootstrapVault(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Owner))
	if err != nil {
		return nil, err
	}
	return &types.MsgBootstrapVaultResponse{Shares: shares}, nil
}

// GrantAdmin adds an admin to a vault.
func (k msgServer) GrantAdmin(goCtx context.Context, msg *types.MsgGrantAdminRequest) (*types.MsgGrantAdminResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.GrantAdmin(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Owner), mustAddr(msg.Account)); err != nil {
		return nil, err
	}
	return &types.MsgGrantAdminResponse{}, nil
}

// RevokeAdmin removes an admin from a vault.
func (k msgServer) RevokeAdmin(goCtx context.Context, msg *types.MsgRevokeAdminRequest) (*types.MsgRevokeAdminResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.RevokeAdmin(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Owner), mustAddr(msg.Account)); err != nil {
		return nil, err
	}
	return &types.MsgRevokeAdminResponse{}, nil
}

// PauseVault pauses a vault.
func (k msgServer) PauseVault(goCtx context.Context, msg *types.MsgPauseVaultRequest) (*types.MsgPauseVaultResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.PauseVault(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Owner)); err != nil {
		return nil, err
	}
	return &types.MsgPauseVaultResponse{}, nil
}

// UnpauseVault unpauses a vault.
func (k msgServer) UnpauseVault(goCtx context.Context, msg *types.MsgUnpauseVaultRequest) (*types.MsgUnpauseVaultResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.UnpauseVault(ctx, mustAddr(msg.VaultAddress), mustAddr(msg.Owner)); err != nil {
		return nil, err
	}
	return &types.MsgUnpauseVaultResponse{}, nil
}

// UpdateParams updates the module params.
func (k msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParamsRequest) (*types.MsgUpdateParamsResponse, error) {
	if err := validate(msg); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.UpdateParams(ctx, mustAddr(msg.Authority), msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
