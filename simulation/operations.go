package simulation

import (
	"fmt"
	"math/rand"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/rwavault/keeper"
	"github.com/provlabs/rwavault/types"
)

const (
	DefaultWeightMsgCreateVault           = 5
	DefaultWeightMsgDeposit               = 35
	DefaultWeightMsgRedeem                = 15
	DefaultWeightMsgTransferShares        = 10
	DefaultWeightMsgSetAllocations        = 10
	DefaultWeightMsgSetFees               = 5
	DefaultWeightMsgSetFeeReceiver        = 3
	DefaultWeightMsgAccrueManagementFee   = 3
	DefaultWeightMsgScheduleManagementFee = 3
	DefaultWeightMsgBootstrapVault        = 3
	DefaultWeightMsgPauseVault            = 1
	DefaultWeightMsgUnpauseVault          = 2
)

// OperationMsg describes the outcome of one simulated operation.
type OperationMsg struct {
	Name    string
	OK      bool
	Comment string
}

func okMsg(name string) OperationMsg {
	return OperationMsg{Name: name, OK: true}
}

func noOpMsg(name, comment string) OperationMsg {
	return OperationMsg{Name: name, Comment: comment}
}

// Operation runs one random message against the keeper. A rejected message is
// reported as a no-op; the returned error is reserved for broken invariants.
type Operation func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error)

// WeightedOperation pairs an operation with its selection weight.
type WeightedOperation struct {
	Weight int
	Op     Operation
}

// WeightedOperations returns every simulated operation with its default weight.
func WeightedOperations(k *keeper.Keeper, instruments []Instrument) []WeightedOperation {
	return []WeightedOperation{
		{DefaultWeightMsgCreateVault, SimulateMsgCreateVault(k)},
		{DefaultWeightMsgDeposit, SimulateMsgDeposit(k)},
		{DefaultWeightMsgRedeem, SimulateMsgRedeem(k)},
		{DefaultWeightMsgTransferShares, SimulateMsgTransferShares(k)},
		{DefaultWeightMsgSetAllocations, SimulateMsgSetAllocations(k, instruments)},
		{DefaultWeightMsgSetFees, SimulateMsgSetFees(k)},
		{DefaultWeightMsgSetFeeReceiver, SimulateMsgSetFeeReceiver(k)},
		{DefaultWeightMsgAccrueManagementFee, SimulateMsgAccrueManagementFee(k)},
		{DefaultWeightMsgScheduleManagementFee, SimulateMsgScheduleManagementFee(k)},
		{DefaultWeightMsgBootstrapVault, SimulateMsgBootstrapVault(k)},
		{DefaultWeightMsgPauseVault, SimulateMsgPauseVault(k)},
		{DefaultWeightMsgUnpauseVault, SimulateMsgUnpauseVault(k)},
	}
}

// RunOperations executes numOps weighted random operations and checks the
// share supply invariant after each one.
func RunOperations(r *rand.Rand, ctx sdk.Context, k *keeper.Keeper, ops []WeightedOperation, accs []simtypes.Account, numOps int) ([]OperationMsg, error) {
	totalWeight := 0
	for _, op := range ops {
		totalWeight += op.Weight
	}
	if totalWeight == 0 {
		return nil, fmt.Errorf("no weighted operations")
	}

	msgs := make([]OperationMsg, 0, numOps)
	for i := 0; i < numOps; i++ {
		pick := r.Intn(totalWeight)
		var selected Operation
		for _, op := range ops {
			if pick < op.Weight {
				selected = op.Op
				break
			}
			pick -= op.Weight
		}

		msg, err := selected(r, ctx, accs)
		if err != nil {
			return msgs, fmt.Errorf("operation %d (%s): %w", i, msg.Name, err)
		}
		msgs = append(msgs, msg)

		if err := k.CheckShareSupplyInvariant(ctx); err != nil {
			return msgs, fmt.Errorf("invariant broken after operation %d (%s): %w", i, msg.Name, err)
		}
	}
	return msgs, nil
}

func SimulateMsgCreateVault(k *keeper.Keeper) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "CreateVault"
		owner, _ := simtypes.RandomAcc(r, accs)
		treasury, _ := simtypes.RandomAcc(r, accs)

		if err := CreateVault(ctx, k, owner, treasury, UnderlyingDenom, genRandomDenom(r, ShareDenomSuffix)); err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		return okMsg(name), nil
	}
}

func SimulateMsgDeposit(k *keeper.Keeper) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "Deposit"
		vault, err := getRandomVault(r, k, ctx)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		acc, balance, err := getRandomAccountWithDenom(r, k, ctx, accs, vault.UnderlyingAsset)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}

		amount := simtypes.RandomAmount(r, balance.Amount)
		if !amount.IsPositive() {
			return noOpMsg(name, "zero deposit amount"), nil
		}
		supplyBefore, err := k.TotalSupply(ctx, vault.GetAddress())
		if err != nil {
			return noOpMsg(name, err.Error()), err
		}

		if err := Deposit(ctx, k, acc, vault.ShareDenom, sdk.NewCoin(vault.UnderlyingAsset, amount)); err != nil {
			return noOpMsg(name, err.Error()), nil
		}

		supplyAfter, err := k.TotalSupply(ctx, vault.GetAddress())
		if err != nil {
			return noOpMsg(name, err.Error()), err
		}
		expected, err := k.ConvertToShares(*vault, amount)
		if err != nil {
			return noOpMsg(name, err.Error()), err
		}
		if !supplyAfter.Sub(supplyBefore).Equal(expected) {
			return noOpMsg(name, "supply delta mismatch"), fmt.Errorf("deposit of %s minted %s shares, expected %s", amount, supplyAfter.Sub(supplyBefore), expected)
		}
		return okMsg(name), nil
	}
}

func SimulateMsgRedeem(k *keeper.Keeper) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "Redeem"
		vault, err := getRandomVault(r, k, ctx)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		acc, bal, err := getRandomShareHolder(r, k, ctx, vault.GetAddress(), accs)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		shares := simtypes.RandomAmount(r, bal)
		if !shares.IsPositive() {
			return noOpMsg(name, "zero redeem amount"), nil
		}

		if err := Redeem(ctx, k, acc, vault.ShareDenom, shares); err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		return okMsg(name), nil
	}
}

func SimulateMsgTransferShares(k *keeper.Keeper) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "TransferShares"
		vault, err := getRandomVault(r, k, ctx)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		from, bal, err := getRandomShareHolder(r, k, ctx, vault.GetAddress(), accs)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		to, _ := simtypes.RandomAcc(r, accs)
		shares := simtypes.RandomAmount(r, bal)
		if !shares.IsPositive() {
			return noOpMsg(name, "zero transfer amount"), nil
		}

		_, err = keeper.NewMsgServer(k).TransferShares(ctx, &types.MsgTransferSharesRequest{
			Sender:       from.Address.String(),
			VaultAddress: vault.Address,
			Receiver:     to.Address.String(),
			Shares:       shares,
		})
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		return okMsg(name), nil
	}
}

func SimulateMsgSetAllocations(k *keeper.Keeper, instruments []Instrument) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "SetAllocations"
		vault, err := getRandomVault(r, k, ctx)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		admin, err := getRandomAdminAccount(r, k, ctx, vault, accs)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}

		allocations := RandomAllocations(r, instruments)
		if err := SetAllocations(ctx, k, admin, vault.ShareDenom, allocations); err != nil {
			return noOpMsg(name, err.Error()), nil
		}

		table, err := k.GetAllocationTable(ctx, vault.GetAddress())
		if err != nil {
			return noOpMsg(name, err.Error()), err
		}
		sum := math.ZeroInt()
		for _, entry := range table.Entries {
			sum = sum.Add(entry.Weight)
		}
		if !sum.Equal(types.WeightScale) {
			return noOpMsg(name, "weight sum mismatch"), fmt.Errorf("stored allocation weights sum to %s", sum)
		}
		return okMsg(name), nil
	}
}

func SimulateMsgSetFees(k *keeper.Keeper) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "SetFees"
		vault, err := getRandomVault(r, k, ctx)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		admin, err := getRandomAdminAccount(r, k, ctx, vault, accs)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}

		_, err = keeper.NewMsgServer(k).SetFees(ctx, &types.MsgSetFeesRequest{
			Admin:            admin.Address.String(),
			VaultAddress:     vault.Address,
			ExitFeeBps:       uint32(r.Intn(types.MaxFeeBps + 1)),
			ManagementFeeBps: uint32(r.Intn(types.MaxFeeBps + 1)),
		})
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		return okMsg(name), nil
	}
}

func SimulateMsgSetFeeReceiver(k *keeper.Keeper) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "SetFeeReceiver"
		vault, err := getRandomVault(r, k, ctx)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		owner, err := getOwnerAccount(vault, accs)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		receiver, _ := simtypes.RandomAcc(r, accs)

		_, err = keeper.NewMsgServer(k).SetFeeReceiver(ctx, &types.MsgSetFeeReceiverRequest{
			Owner:        owner.Address.String(),
			VaultAddress: vault.Address,
			FeeReceiver:  receiver.Address.String(),
		})
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		return okMsg(name), nil
	}
}

func SimulateMsgAccrueManagementFee(k *keeper.Keeper) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "AccrueManagementFee"
		vault, err := getRandomVault(r, k, ctx)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		admin, err := getRandomAdminAccount(r, k, ctx, vault, accs)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		holdingsBefore, err := k.GetHoldings(ctx, vault.GetAddress())
		if err != nil {
			return noOpMsg(name, err.Error()), err
		}

		shares := math.NewInt(int64(simtypes.RandIntBetween(r, 1, 1_000_000)))
		_, err = keeper.NewMsgServer(k).AccrueManagementFee(ctx, &types.MsgAccrueManagementFeeRequest{
			Admin:        admin.Address.String(),
			VaultAddress: vault.Address,
			Shares:       shares,
		})
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}

		holdingsAfter, err := k.GetHoldings(ctx, vault.GetAddress())
		if err != nil {
			return noOpMsg(name, err.Error()), err
		}
		if !holdingsBefore.Equal(holdingsAfter) {
			return noOpMsg(name, "holdings changed"), fmt.Errorf("management fee changed holdings from %s to %s", holdingsBefore, holdingsAfter)
		}
		return okMsg(name), nil
	}
}

func SimulateMsgScheduleManagementFee(k *keeper.Keeper) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "ScheduleManagementFee"
		vault, err := getRandomVault(r, k, ctx)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		admin, err := getRandomAdminAccount(r, k, ctx, vault, accs)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}

		_, err = keeper.NewMsgServer(k).ScheduleManagementFee(ctx, &types.MsgScheduleManagementFeeRequest{
			Admin:        admin.Address.String(),
			VaultAddress: vault.Address,
		})
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		return okMsg(name), nil
	}
}

func SimulateMsgBootstrapVault(k *keeper.Keeper) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "BootstrapVault"
		vault, err := getRandomVault(r, k, ctx)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		owner, err := getOwnerAccount(vault, accs)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}

		_, err = keeper.NewMsgServer(k).BootstrapVault(ctx, &types.MsgBootstrapVaultRequest{
			Owner:        owner.Address.String(),
			VaultAddress: vault.Address,
		})
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		return okMsg(name), nil
	}
}

func SimulateMsgPauseVault(k *keeper.Keeper) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "PauseVault"
		vault, err := getRandomVault(r, k, ctx)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		owner, err := getOwnerAccount(vault, accs)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		if err := PauseVault(ctx, k, owner, vault.ShareDenom); err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		return okMsg(name), nil
	}
}

func SimulateMsgUnpauseVault(k *keeper.Keeper) Operation {
	return func(r *rand.Rand, ctx sdk.Context, accs []simtypes.Account) (OperationMsg, error) {
		const name = "UnpauseVault"
		vault, err := getRandomVault(r, k, ctx)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		owner, err := getOwnerAccount(vault, accs)
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}

		_, err = keeper.NewMsgServer(k).UnpauseVault(ctx, &types.MsgUnpauseVaultRequest{
			Owner:        owner.Address.String(),
			VaultAddress: vault.Address,
		})
		if err != nil {
			return noOpMsg(name, err.Error()), nil
		}
		return okMsg(name), nil
	}
}
