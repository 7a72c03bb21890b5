package simulation

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/rwavault/keeper"
	"github.com/provlabs/rwavault/types"
)

// CreateVault creates a new vault owned by owner with shares named share.
func CreateVault(ctx sdk.Context, vk *keeper.Keeper, owner, treasury simtypes.Account, underlying, share string) error {
	msgServer := keeper.NewMsgServer(vk)
	_, err := msgServer.CreateVault(ctx, &types.MsgCreateVaultRequest{
		Owner:           owner.Address.String(),
		Treasury:        treasury.Address.String(),
		ShareDenom:      share,
		UnderlyingAsset: underlying,
		Strategy:        "simulated",
	})
	return err
}

// Deposit performs a deposit for a user into the vault of shareDenom.
func Deposit(ctx sdk.Context, vk *keeper.Keeper, user simtypes.Account, shareDenom string, amount sdk.Coin) error {
	msgServer := keeper.NewMsgServer(vk)
	_, err := msgServer.Deposit(ctx, &types.MsgDepositRequest{
		Depositor:    user.Address.String(),
		VaultAddress: types.GetVaultAddress(shareDenom).String(),
		Receiver:     user.Address.String(),
		Asset:        amount,
	})
	return err
}

// Redeem redeems shares of the vault of shareDenom for a user.
func Redeem(ctx sdk.Context, vk *keeper.Keeper, user simtypes.Account, shareDenom string, shares sdkmath.Int) error {
	msgServer := keeper.NewMsgServer(vk)
	_, err := msgServer.Redeem(ctx, &types.MsgRedeemRequest{
		Owner:        user.Address.String(),
		VaultAddress: types.GetVaultAddress(shareDenom).String(),
		Receiver:     user.Address.String(),
		Shares:       shares,
	})
	return err
}

// SetAllocations replaces the allocation table of the vault of shareDenom.
func SetAllocations(ctx sdk.Context, vk *keeper.Keeper, admin simtypes.Account, shareDenom string, allocations []types.Allocation) error {
	msgServer := keeper.NewMsgServer(vk)
	_, err := msgServer.SetAllocations(ctx, &types.MsgSetAllocationsRequest{
		Admin:        admin.Address.String(),
		VaultAddress: types.GetVaultAddress(shareDenom).String(),
		Allocations:  allocations,
	})
	return err
}

// PauseVault pauses the vault of shareDenom.
func PauseVault(ctx sdk.Context, vk *keeper.Keeper, owner simtypes.Account, shareDenom string) error {
	msgServer := keeper.NewMsgServer(vk)
	_, err := msgServer.PauseVault(ctx, &types.MsgPauseVaultRequest{
		Owner:        owner.Address.String(),
		VaultAddress: types.GetVaultAddress(shareDenom).String(),
	})
	return err
}
