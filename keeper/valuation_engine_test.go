package keeper_test

import (
	"context"
	"errors"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

type failingOracle struct{}

func (failingOracle) PriceOf(_ context.Context, _ string) (sdkmath.Int, uint32, error) {
	return sdkmath.Int{}, 0, errors.New("feed offline")
}

func (s *TestSuite) TestTotalAssets_PricesActiveHoldings() {
	s.requireCreateVault()
	s.requireSetAllocations(
		types.NewAllocation(underlying, sdkmath.NewIntWithDecimal(5, 17), true),
		types.NewAllocation(tbillDenom, sdkmath.NewIntWithDecimal(5, 17), true),
	)
	// 1 tbill = 1.50 usdc
	s.mocks.Oracle.SetPrice(tbillDenom, sdkmath.NewInt(150), 2)
	s.fund(s.userAddr, 1000)
	s.requireDeposit(1000)

	totalAssets, err := s.k.TotalAssets(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "TotalAssets")
	s.Assert().Equal(units(1250, assetDec).String(), totalAssets.String(), "500 usdc + 500 tbill at 1.50")
}

func (s *TestSuite) TestTotalAssets_MissingPrice() {
	s.requireCreateVault()
	s.requireSetAllocations(types.NewAllocation(tbillDenom, types.WeightScale, true))
	s.fund(s.userAddr, 10)
	s.requireDeposit(10)

	_, err := s.k.TotalAssets(s.ctx, s.vaultAddr)
	s.Require().ErrorIs(err, types.ErrPriceNotSet, "TotalAssets without tbill price")

	s.mocks.Oracle.SetPrice(tbillDenom, sdkmath.ZeroInt(), 0)
	_, err = s.k.TotalAssets(s.ctx, s.vaultAddr)
	s.Require().ErrorIs(err, types.ErrPriceNotSet, "TotalAssets with zero tbill price")
}

func (s *TestSuite) TestTotalAssets_UnderlyingNeedsPrice() {
	s.requireCreateVault()
	s.requireSetAllocations(types.NewAllocation(underlying, types.WeightScale, true))
	s.fund(s.userAddr, 10)
	s.requireDeposit(10)
	s.mocks.Oracle.ClearPrice(underlying)

	_, err := s.k.TotalAssets(s.ctx, s.vaultAddr)
	s.Require().ErrorIs(err, types.ErrPriceNotSet, "TotalAssets")
}

func (s *TestSuite) TestTotalAssets_EmptyActiveHoldingSkipsOracle() {
	s.requireCreateVault()
	s.requireSetAllocations(
		types.NewAllocation(underlying, types.WeightScale, true),
		types.NewAllocation(tbillDenom, sdkmath.ZeroInt(), true),
	)
	s.fund(s.userAddr, 10)
	s.requireDeposit(10)

	totalAssets, err := s.k.TotalAssets(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "TotalAssets with unpriced empty tbill holding")
	s.Assert().Equal(units(10, assetDec).String(), totalAssets.String(), "TotalAssets")
}

func (s *TestSuite) TestTotalAssets_IgnoresInactiveEntries() {
	s.requireCreateVault()
	s.requireSetAllocations(
		types.NewAllocation(underlying, sdkmath.NewIntWithDecimal(5, 17), true),
		types.NewAllocation(tbillDenom, sdkmath.NewIntWithDecimal(5, 17), true),
	)
	s.fund(s.userAddr, 100)
	s.requireDeposit(100)

	s.requireSetAllocations(
		types.NewAllocation(underlying, types.WeightScale, true),
		types.NewAllocation(tbillDenom, sdkmath.ZeroInt(), false),
	)

	totalAssets, err := s.k.TotalAssets(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "TotalAssets")
	s.Assert().Equal(units(50, assetDec).String(), totalAssets.String(), "only the active underlying is valued")
	s.assertHolding(tbillDenom, units(50, tbillDec))
}

func (s *TestSuite) TestTotalAssets_NoActiveEntries() {
	s.requireCreateVault()

	totalAssets, err := s.k.TotalAssets(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "TotalAssets")
	s.Assert().True(totalAssets.IsZero(), "TotalAssets")

	_, err = s.k.TotalAssets(s.ctx, types.GetVaultAddress("nope"))
	s.Require().ErrorIs(err, types.ErrVaultNotFound, "TotalAssets unknown vault")
}

func (s *TestSuite) TestInstrumentValue() {
	vault := s.requireCreateVault()

	tests := []struct {
		name          string
		holding       sdk.Coin
		price         sdkmath.Int
		priceDecimals uint32
		expected      sdkmath.Int
	}{
		{
			name:          "2 decimal bond at 1000 usdc",
			holding:       sdk.NewInt64Coin(bondDenom, 12_345),
			price:         sdkmath.NewInt(1000),
			priceDecimals: 0,
			expected:      units(123_450, assetDec),
		},
		{
			name:          "18 decimal tbill at 0.99 usdc",
			holding:       sdk.NewCoin(tbillDenom, units(200, tbillDec)),
			price:         sdkmath.NewInt(99),
			priceDecimals: 2,
			expected:      units(198, assetDec),
		},
		{
			name:          "sub-unit value floors",
			holding:       sdk.NewInt64Coin(tbillDenom, 1),
			price:         sdkmath.NewInt(1),
			priceDecimals: 0,
			expected:      sdkmath.ZeroInt(),
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.mocks.Oracle.SetPrice(tc.holding.Denom, tc.price, tc.priceDecimals)
			value, err := s.k.InstrumentValue(s.ctx, vault, tc.holding)
			s.Require().NoError(err, "InstrumentValue")
			s.Assert().Equal(tc.expected.String(), value.String(), "InstrumentValue")
		})
	}
}

func (s *TestSuite) TestInstrumentValue_OracleFailureIsPriceNotSet() {
	vault := s.requireCreateVault()
	s.k.Oracle = failingOracle{}

	_, err := s.k.InstrumentValue(s.ctx, vault, sdk.NewInt64Coin(tbillDenom, 1))
	s.Require().ErrorIs(err, types.ErrPriceNotSet, "InstrumentValue")
	s.Require().ErrorContains(err, "feed offline", "InstrumentValue keeps the oracle error")
}
