package keeper_test

import (
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
	"github.com/provlabs/rwavault/utils/mocks"
)

func (s *TestSuite) TestExportGenesis_Default() {
	genState := s.k.ExportGenesis(s.ctx)
	s.Require().NotNil(genState, "ExportGenesis")
	s.Assert().Equal(types.DefaultParams(), genState.Params, "params")
	s.Assert().Empty(genState.Vaults, "vaults")
}

func (s *TestSuite) TestGenesisRoundTrip() {
	s.mocks.Oracle.SetPrice(tbillDenom, sdkmath.NewInt(1), 0)
	s.requireCreateVault()
	s.requireSetAllocations(
		types.NewAllocation(underlying, sdkmath.NewIntWithDecimal(6, 17), true),
		types.NewAllocation(tbillDenom, sdkmath.NewIntWithDecimal(4, 17), true),
	)
	s.Require().NoError(s.k.SetFees(s.ctx, s.vaultAddr, s.adminAddr, 25, 200), "SetFees")
	s.fund(s.userAddr, 100)
	s.requireDeposit(100)
	s.Require().NoError(s.k.TransferShares(s.ctx, s.vaultAddr, s.userAddr, s.otherAddr, units(30, 18)), "TransferShares")
	s.Require().NoError(s.k.PauseVault(s.ctx, s.vaultAddr, s.ownerAddr), "PauseVault")

	exported := s.k.ExportGenesis(s.ctx)
	s.Require().NoError(exported.Validate(), "exported genesis validates")
	s.Require().Len(exported.Vaults, 1, "exported vaults")
	gv := exported.Vaults[0]
	s.Assert().True(gv.State.Paused, "paused flag")
	s.Assert().True(gv.State.Bootstrapped, "bootstrapped flag")
	s.Assert().Len(gv.Admins, 2, "admins")
	s.Assert().Len(gv.ShareBalances, 2, "share balances")
	s.Assert().Equal(
		sdk.NewCoins(sdk.NewCoin(tbillDenom, units(40, tbillDec)), usdc(60)).String(),
		gv.Holdings.String(),
		"holdings",
	)

	ctx2, k2, _ := mocks.NewVaultKeeper(s.T())
	k2.InitGenesis(ctx2, exported)

	before, err := json.Marshal(exported)
	s.Require().NoError(err, "marshal first export")
	after, err := json.Marshal(k2.ExportGenesis(ctx2))
	s.Require().NoError(err, "marshal second export")
	s.Assert().JSONEq(string(before), string(after), "re-exported genesis")

	supply, err := k2.TotalSupply(ctx2, s.vaultAddr)
	s.Require().NoError(err, "TotalSupply")
	s.Assert().Equal(units(100, 18).String(), supply.String(), "supply is rebuilt from balances")
	s.Require().NoError(k2.CheckShareSupplyInvariant(ctx2), "CheckShareSupplyInvariant")
}

func (s *TestSuite) TestInitGenesis_Nil() {
	s.Require().NotPanics(func() { s.k.InitGenesis(s.ctx, nil) }, "nil genesis")
}

func (s *TestSuite) TestInitGenesis_Invalid() {
	genState := types.DefaultGenesisState()
	genState.Params.MaxAllocations = 0
	s.Require().PanicsWithError(
		"invalid vault genesis state: max allocations must be positive: invalid params",
		func() { s.k.InitGenesis(s.ctx, genState) },
		"invalid params",
	)

	vault := types.NewVaultConfig(s.ownerAddr.String(), s.treasuryAddr.String(), shareDenom, underlying, assetDec, "")
	genState = types.DefaultGenesisState()
	genState.Vaults = []types.GenesisVault{
		{Config: vault, Fees: types.FeeConfig{FeeReceiver: s.treasuryAddr.String()}},
		{Config: vault, Fees: types.FeeConfig{FeeReceiver: s.treasuryAddr.String()}},
	}
	s.Require().Panics(func() { s.k.InitGenesis(s.ctx, genState) }, "duplicate vault")

	balance := types.ShareBalance{Address: s.userAddr.String(), Amount: sdkmath.NewIntWithDecimal(1, 18)}
	genState = types.DefaultGenesisState()
	genState.Vaults = []types.GenesisVault{{
		Config:        vault,
		Fees:          types.FeeConfig{FeeReceiver: s.treasuryAddr.String()},
		ShareBalances: []types.ShareBalance{balance, balance},
	}}
	s.Require().PanicsWithError(
		fmt.Sprintf("invalid vault genesis state: vault %s: duplicate share holder %s", vault.Address, s.userAddr),
		func() { s.k.InitGenesis(s.ctx, genState) },
		"duplicate share holder",
	)
}
