package keeper

import (
	"context"
	"errors"

	sdkmath "cosmossdk.io/math"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

// NewQueryServer creates a new QueryServer for the module.
func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// parseVault resolves a vault address from a request, mapping failures to gRPC status errors.
func (k queryServer) parseVault(ctx sdk.Context, vaultAddress string) (sdk.AccAddress, types.VaultConfig, error) {
	if vaultAddress == "" {
		return nil, types.VaultConfig{}, status.Error(codes.InvalidArgument, "vault_address must be provided")
	}
	vaultAddr, err := sdk.AccAddressFromBech32(vaultAddress)
	if err != nil {
		return nil, types.VaultConfig{}, status.Errorf(codes.InvalidArgument, "invalid vault_address: %v", err)
	}
	vault, err := k.GetVault(ctx, vaultAddr)
	if err != nil {
		return nil, types.VaultConfig{}, status.Error(codes.Internal, err.Error())
	}
	if vault == nil {
		return nil, types.VaultConfig{}, status.Errorf(codes.NotFound, "vault with address %q not found", vaultAddress)
	}
	return vaultAddr, *vault, nil
}

func parseAmount(amount string) (sdkmath.Int, error) {
	amt, ok := sdkmath.NewIntFromString(amount)
	if !ok || amt.IsNegative() {
		return sdkmath.Int{}, status.Errorf(codes.InvalidArgument, "invalid amount %q", amount)
	}
	return amt, nil
}

// Vaults returns the configuration of every vault.
func (k queryServer) Vaults(goCtx context.Context, req *types.QueryVaultsRequest) (*types.QueryVaultsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	vaults := []types.VaultConfig{}
	err := k.Keeper.Vaults.Walk(ctx, nil, func(_ sdk.AccAddress, vault types.VaultConfig) (bool, error) {
		vaults = append(vaults, vault)
		return false, nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryVaultsResponse{Vaults: vaults}, nil
}

// Vault returns the configuration, state, supply and total assets of a vault.
func (k queryServer) Vault(goCtx context.Context, req *types.QueryVaultRequest) (*types.QueryVaultResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	vaultAddr, vault, err := k.parseVault(ctx, req.VaultAddress)
	if err != nil {
		return nil, err
	}
	state, err := k.GetVaultState(ctx, vaultAddr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	supply, err := k.TotalSupply(ctx, vaultAddr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	totalAssets, err := k.TotalAssets(ctx, vaultAddr)
	if errors.Is(err, types.ErrPriceNotSet) {
		return nil, status.Errorf(codes.FailedPrecondition, "failed to value vault: %v", err)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to value vault: %v", err)
	}

	return &types.QueryVaultResponse{
		Config:      vault,
		State:       state,
		TotalShares: supply.String(),
		TotalAssets: totalAssets.String(),
	}, nil
}

// Allocations returns a vault's allocation table.
func (k queryServer) Allocations(goCtx context.Context, req *types.QueryVaultRequest) (*types.QueryAllocationsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	vaultAddr, _, err := k.parseVault(ctx, req.VaultAddress)
	if err != nil {
		return nil, err
	}
	table, err := k.GetAllocationTable(ctx, vaultAddr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	allocations := table.Entries
	if allocations == nil {
		allocations = []types.Allocation{}
	}
	return &types.QueryAllocationsResponse{Allocations: allocations}, nil
}

// FeeConfig returns a vault's fee configuration and the management fee that
// ScheduleManagementFee would mint now.
func (k queryServer) FeeConfig(goCtx context.Context, req *types.QueryVaultRequest) (*types.QueryFeeConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	vaultAddr, _, err := k.parseVault(ctx, req.VaultAddress)
	if err != nil {
		return nil, err
	}
	cfg, err := k.GetFeeConfig(ctx, vaultAddr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	pending, err := k.CalculateManagementFee(ctx, vaultAddr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryFeeConfigResponse{Fees: cfg, PendingManagementFee: pending.String()}, nil
}

// ShareBalance returns the share balance of an address in a vault.
func (k queryServer) ShareBalance(goCtx context.Context, req *types.QueryShareBalanceRequest) (*types.QueryShareBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	vaultAddr, _, err := k.parseVault(ctx, req.VaultAddress)
	if err != nil {
		return nil, err
	}
	holder, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}
	bal, err := k.BalanceOf(ctx, vaultAddr, holder)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryShareBalanceResponse{Shares: bal.String()}, nil
}

// PreviewDeposit returns the shares a deposit of Amount assets would mint.
func (k queryServer) PreviewDeposit(goCtx context.Context, req *types.QueryPreviewRequest) (*types.QueryPreviewResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	vaultAddr, _, err := k.parseVault(ctx, req.VaultAddress)
	if err != nil {
		return nil, err
	}
	assets, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	shares, err := k.Keeper.PreviewDeposit(ctx, vaultAddr, assets)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "failed to preview deposit: %v", err)
	}
	return &types.QueryPreviewResponse{Amount: shares.String()}, nil
}

// PreviewRedeem returns the net assets a redemption of Amount shares would pay.
func (k queryServer) PreviewRedeem(goCtx context.Context, req *types.QueryPreviewRequest) (*types.QueryPreviewResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	vaultAddr, _, err := k.parseVault(ctx, req.VaultAddress)
	if err != nil {
		return nil, err
	}
	shares, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	assets, err := k.Keeper.PreviewRedeem(ctx, vaultAddr, shares)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "failed to preview redeem: %v", err)
	}
	return &types.QueryPreviewResponse{Amount: assets.String()}, nil
}

// HasRole reports whether an address holds the named role ("owner" or "admin") on a vault.
func (k queryServer) HasRole(goCtx context.Context, req *types.QueryHasRoleRequest) (*types.QueryHasRoleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	vaultAddr, _, err := k.parseVault(ctx, req.VaultAddress)
	if err != nil {
		return nil, err
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}

	var role types.Role
	switch req.Role {
	case types.RoleOwner.String():
		role = types.RoleOwner
	case types.RoleAdmin.String():
		role = types.RoleAdmin
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown role %q", req.Role)
	}

	has, err := k.Keeper.HasRole(ctx, vaultAddr, addr, role)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryHasRoleResponse{HasRole: has}, nil
}
