package keeper_test

import (
	"context"
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

func (s *TestSuite) TestCreateVault() {
	em := sdk.NewEventManager()
	s.ctx = s.ctx.WithEventManager(em)

	vault, err := s.k.CreateVault(s.ctx, s.ownerAddr, s.treasuryAddr, shareDenom, underlying, "treasury bills")
	s.Require().NoError(err, "CreateVault")
	s.Require().NotNil(vault, "vault")

	s.Assert().Equal(s.vaultAddr.String(), vault.Address, "address")
	s.Assert().Equal(s.ownerAddr.String(), vault.Owner, "owner")
	s.Assert().Equal(s.treasuryAddr.String(), vault.Treasury, "treasury")
	s.Assert().Equal(uint32(assetDec), vault.AssetDecimals, "asset decimals")
	s.Assert().Equal("treasury bills", vault.Strategy, "strategy")

	stored, err := s.k.GetVault(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "GetVault")
	s.Require().NotNil(stored, "stored vault")
	s.Assert().Equal(*vault, *stored, "stored vault")

	isAdmin, err := s.k.HasRole(s.ctx, s.vaultAddr, s.ownerAddr, types.RoleAdmin)
	s.Require().NoError(err, "HasRole admin")
	s.Assert().True(isAdmin, "owner is also an admin")

	state, err := s.k.GetVaultState(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "GetVaultState")
	s.Assert().Equal(types.VaultState{}, state, "initial state")

	s.assertSupply(sdkmath.ZeroInt())
	s.Assert().Equal(
		normalizeEvents(sdk.Events{types.NewEventVaultCreated(*vault)}),
		normalizeEvents(em.Events()),
		"CreateVault events",
	)
}

func (s *TestSuite) TestCreateVault_Errors() {
	s.mocks.Registry.Register("wide", 24)

	tests := []struct {
		name       string
		owner      sdk.AccAddress
		treasury   sdk.AccAddress
		shareDenom string
		underlying string
		setup      func()
		expected   error
	}{
		{name: "zero owner", treasury: s.treasuryAddr, shareDenom: shareDenom, underlying: underlying, expected: types.ErrZeroAddress},
		{name: "zero treasury", owner: s.ownerAddr, shareDenom: shareDenom, underlying: underlying, expected: types.ErrZeroAddress},
		{name: "unregistered underlying", owner: s.ownerAddr, treasury: s.treasuryAddr, shareDenom: shareDenom, underlying: "unknown", expected: types.ErrTokenNotRegistered},
		{name: "share denom equals underlying", owner: s.ownerAddr, treasury: s.treasuryAddr, shareDenom: underlying, underlying: underlying, expected: types.ErrInvalidDenom},
		{name: "underlying wider than shares", owner: s.ownerAddr, treasury: s.treasuryAddr, shareDenom: shareDenom, underlying: "wide", expected: types.ErrUnsupportedDecimals},
		{
			name:       "vault already exists",
			owner:      s.ownerAddr,
			treasury:   s.treasuryAddr,
			shareDenom: shareDenom,
			underlying: underlying,
			setup:      func() { s.requireCreateVault() },
			expected:   types.ErrVaultExists,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			origCtx := s.ctx
			defer func() { s.ctx = origCtx }()
			s.ctx, _ = s.ctx.CacheContext()

			if tc.setup != nil {
				tc.setup()
			}
			_, err := s.k.CreateVault(s.ctx, tc.owner, tc.treasury, tc.shareDenom, tc.underlying, "")
			s.Require().ErrorIs(err, tc.expected, "CreateVault")
		})
	}
}

func (s *TestSuite) TestDeposit_SixDecimalAsset() {
	s.requireCreateVault()
	s.requireSetAllocations(types.NewAllocation(underlying, types.WeightScale, true))
	s.fund(s.userAddr, 1000)

	shares := s.requireDeposit(1000)

	s.Assert().Equal(sdkmath.NewIntWithDecimal(1000, 18).String(), shares.String(), "shares minted")
	s.assertShares(s.userAddr, shares)
	s.assertSupply(shares)
	s.assertHolding(underlying, units(1000, assetDec))
	s.assertBalance(s.userAddr, underlying, sdkmath.ZeroInt())
	s.assertBalance(s.vaultAddr, underlying, units(1000, assetDec))

	totalAssets, err := s.k.TotalAssets(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "TotalAssets")
	s.Assert().Equal(units(1000, assetDec).String(), totalAssets.String(), "total assets in deposit units")

	state, err := s.k.GetVaultState(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "GetVaultState")
	s.Assert().True(state.Bootstrapped, "first deposit marks the vault bootstrapped")
}

func (s *TestSuite) TestDeposit_AllocatesAcrossInstruments() {
	s.requireCreateVault()
	s.requireSetAllocations(
		types.NewAllocation(underlying, sdkmath.NewIntWithDecimal(5, 17), true),
		types.NewAllocation(tbillDenom, sdkmath.NewIntWithDecimal(3, 17), true),
		types.NewAllocation(bondDenom, sdkmath.NewIntWithDecimal(2, 17), true),
	)
	s.fund(s.userAddr, 1000)

	em := sdk.NewEventManager()
	s.ctx = s.ctx.WithEventManager(em)
	shares := s.requireDeposit(1000)

	s.assertHolding(underlying, units(500, assetDec))
	s.assertHolding(tbillDenom, units(300, tbillDec))
	s.assertHolding(bondDenom, units(200, bondDec))
	s.assertBalance(s.vaultAddr, underlying, units(500, assetDec))
	s.assertBalance(s.vaultAddr, tbillDenom, units(300, tbillDec))
	s.assertBalance(s.vaultAddr, bondDenom, units(200, bondDec))
	s.assertBalance(s.mocks.Acquirer.Desk, underlying, units(500, assetDec))

	s.Require().Len(s.mocks.Acquirer.Calls, 2, "acquirer calls")
	s.Assert().Equal(usdc(300), s.mocks.Acquirer.Calls[0].Spent, "tbill spent")
	s.Assert().Equal(sdk.NewCoin(tbillDenom, units(300, tbillDec)), s.mocks.Acquirer.Calls[0].Received, "tbill received")
	s.Assert().Equal(usdc(200), s.mocks.Acquirer.Calls[1].Spent, "bond spent")
	s.Assert().Equal(sdk.NewCoin(bondDenom, units(200, bondDec)), s.mocks.Acquirer.Calls[1].Received, "bond received")
	for _, call := range s.mocks.Acquirer.Calls {
		s.Assert().Equal(s.vaultAddr, call.Vault, "acquirer vault")
	}

	vault := s.vaultAddr.String()
	expectedEvents := sdk.Events{
		types.NewEventAllocation(vault, usdc(500), usdc(500)),
		types.NewEventAllocation(vault, usdc(300), sdk.NewCoin(tbillDenom, units(300, tbillDec))),
		types.NewEventAllocation(vault, usdc(200), sdk.NewCoin(bondDenom, units(200, bondDec))),
		types.NewEventDeposit(vault, s.userAddr.String(), s.userAddr.String(), usdc(1000), shares),
	}
	s.Assert().Equal(normalizeEvents(expectedEvents), normalizeEvents(em.Events()), "Deposit events")
}

func (s *TestSuite) TestDeposit_EmptyTableKeepsUnderlying() {
	s.requireCreateVault()
	s.fund(s.userAddr, 250)

	s.requireDeposit(250)

	s.assertHolding(underlying, units(250, assetDec))
	s.Assert().Empty(s.mocks.Acquirer.Calls, "no acquisitions without allocations")

	totalAssets, err := s.k.TotalAssets(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "TotalAssets")
	s.Assert().True(totalAssets.IsZero(), "a vault without active entries is valued at zero")
}

func (s *TestSuite) TestDeposit_InactiveWeightStaysUnderlying() {
	s.requireCreateVault()
	s.requireSetAllocations(
		types.NewAllocation(tbillDenom, sdkmath.NewIntWithDecimal(6, 17), true),
		types.NewAllocation(bondDenom, sdkmath.NewIntWithDecimal(4, 17), false),
	)
	s.fund(s.userAddr, 100)

	s.requireDeposit(100)

	s.assertHolding(tbillDenom, units(60, tbillDec))
	s.assertHolding(bondDenom, sdkmath.ZeroInt())
	s.assertHolding(underlying, units(40, assetDec))
}

func (s *TestSuite) TestDeposit_Errors() {
	s.requireCreateVault()
	s.fund(s.userAddr, 10)

	tests := []struct {
		name      string
		vault     sdk.AccAddress
		depositor sdk.AccAddress
		receiver  sdk.AccAddress
		asset     sdk.Coin
		setup     func()
		expected  error
		errSubstr string
	}{
		{name: "unknown vault", vault: types.GetVaultAddress("nope"), depositor: s.userAddr, receiver: s.userAddr, asset: usdc(1), expected: types.ErrVaultNotFound},
		{name: "zero depositor", vault: s.vaultAddr, receiver: s.userAddr, asset: usdc(1), expected: types.ErrZeroAddress},
		{name: "zero receiver", vault: s.vaultAddr, depositor: s.userAddr, asset: usdc(1), expected: types.ErrZeroAddress},
		{name: "wrong denom", vault: s.vaultAddr, depositor: s.userAddr, receiver: s.userAddr, asset: sdk.NewInt64Coin(tbillDenom, 1), expected: types.ErrInvalidDenom},
		{name: "zero amount", vault: s.vaultAddr, depositor: s.userAddr, receiver: s.userAddr, asset: sdk.NewInt64Coin(underlying, 0), expected: types.ErrInvalidAmount},
		{
			name:      "paused",
			vault:     s.vaultAddr,
			depositor: s.userAddr,
			receiver:  s.userAddr,
			asset:     usdc(1),
			setup:     func() { s.Require().NoError(s.k.PauseVault(s.ctx, s.vaultAddr, s.ownerAddr), "PauseVault") },
			expected:  types.ErrPaused,
		},
		{name: "insufficient funds", vault: s.vaultAddr, depositor: s.userAddr, receiver: s.userAddr, asset: usdc(11), errSubstr: "insufficient funds"},
		{
			name:      "acquisition fails",
			vault:     s.vaultAddr,
			depositor: s.userAddr,
			receiver:  s.userAddr,
			asset:     usdc(5),
			setup: func() {
				s.requireSetAllocations(types.NewAllocation(tbillDenom, types.WeightScale, true))
				s.mocks.Acquirer.Err = errors.New("market closed")
			},
			errSubstr: "market closed",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			origCtx := s.ctx
			defer func() {
				s.ctx = origCtx
				s.mocks.Acquirer.Err = nil
			}()
			s.ctx, _ = s.ctx.CacheContext()
			if tc.setup != nil {
				tc.setup()
			}

			_, err := s.k.Deposit(s.ctx, tc.vault, tc.depositor, tc.receiver, tc.asset)
			if tc.expected != nil {
				s.Require().ErrorIs(err, tc.expected, "Deposit")
			} else {
				s.Require().ErrorContains(err, tc.errSubstr, "Deposit")
			}

			s.assertSupply(sdkmath.ZeroInt())
			s.assertHolding(underlying, sdkmath.ZeroInt())
			s.assertHolding(tbillDenom, sdkmath.ZeroInt())
			s.assertBalance(s.userAddr, underlying, units(10, assetDec))
			state, err := s.k.GetVaultState(s.ctx, s.vaultAddr)
			s.Require().NoError(err, "GetVaultState")
			s.Assert().False(state.Bootstrapped, "failed deposit does not bootstrap")
		})
	}
}

func (s *TestSuite) TestDeposit_ReentrantCallRejected() {
	s.requireCreateVault()
	s.fund(s.userAddr, 10)
	s.fund(s.otherAddr, 10)

	var innerErr error
	s.mocks.Bank.OnSend = func(ctx context.Context, _, _ sdk.AccAddress, _ sdk.Coins) error {
		s.mocks.Bank.OnSend = nil
		_, innerErr = s.k.Deposit(sdk.UnwrapSDKContext(ctx), s.vaultAddr, s.otherAddr, s.otherAddr, usdc(1))
		return innerErr
	}

	_, err := s.k.Deposit(s.ctx, s.vaultAddr, s.userAddr, s.userAddr, usdc(5))
	s.Require().ErrorIs(innerErr, types.ErrReentrantCall, "inner Deposit")
	s.Require().ErrorIs(err, types.ErrReentrantCall, "outer Deposit")
	s.assertSupply(sdkmath.ZeroInt())
	s.assertBalance(s.userAddr, underlying, units(10, assetDec))

	locked, err := s.k.ReentrancyLocks.Has(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "ReentrancyLocks.Has")
	s.Assert().False(locked, "lock does not outlive the failed call")

	s.requireDeposit(5)
	s.assertSupply(sdkmath.NewIntWithDecimal(5, 18))
}

func (s *TestSuite) TestRedeem_NoFee() {
	s.requireCreateVault()
	s.fund(s.userAddr, 1000)
	s.requireDeposit(1000)

	em := sdk.NewEventManager()
	s.ctx = s.ctx.WithEventManager(em)
	redeemed := sdkmath.NewIntWithDecimal(400, 18)
	assets, fee, err := s.k.Redeem(s.ctx, s.vaultAddr, s.userAddr, s.userAddr, redeemed)
	s.Require().NoError(err, "Redeem")

	s.Assert().Equal(usdc(400), assets, "net assets")
	s.Assert().True(fee.IsZero(), "no exit fee")
	s.assertShares(s.userAddr, sdkmath.NewIntWithDecimal(600, 18))
	s.assertSupply(sdkmath.NewIntWithDecimal(600, 18))
	s.assertHolding(underlying, units(600, assetDec))
	s.assertBalance(s.userAddr, underlying, units(400, assetDec))
	s.assertBalance(s.treasuryAddr, underlying, sdkmath.ZeroInt())

	expectedEvents := sdk.Events{
		types.NewEventRedeem(s.vaultAddr.String(), s.userAddr.String(), s.userAddr.String(), redeemed, usdc(400)),
	}
	s.Assert().Equal(normalizeEvents(expectedEvents), normalizeEvents(em.Events()), "Redeem events")
}

func (s *TestSuite) TestRedeem_WithExitFee() {
	s.requireCreateVault()
	s.Require().NoError(s.k.SetFees(s.ctx, s.vaultAddr, s.adminAddr, 100, 0), "SetFees")
	s.fund(s.userAddr, 1000)
	shares := s.requireDeposit(1000)

	em := sdk.NewEventManager()
	s.ctx = s.ctx.WithEventManager(em)
	assets, fee, err := s.k.Redeem(s.ctx, s.vaultAddr, s.userAddr, s.otherAddr, shares)
	s.Require().NoError(err, "Redeem")

	s.Assert().Equal(usdc(990), assets, "net assets")
	s.Assert().Equal(usdc(10), fee, "exit fee")
	s.assertBalance(s.otherAddr, underlying, units(990, assetDec))
	s.assertBalance(s.treasuryAddr, underlying, units(10, assetDec))
	s.assertBalance(s.vaultAddr, underlying, sdkmath.ZeroInt())
	s.assertHolding(underlying, sdkmath.ZeroInt())
	s.assertSupply(sdkmath.ZeroInt())

	vault := s.vaultAddr.String()
	expectedEvents := sdk.Events{
		types.NewEventExitFeeApplied(vault, s.treasuryAddr.String(), usdc(10)),
		types.NewEventRedeem(vault, s.userAddr.String(), s.otherAddr.String(), shares, usdc(990)),
	}
	s.Assert().Equal(normalizeEvents(expectedEvents), normalizeEvents(em.Events()), "Redeem events")
}

func (s *TestSuite) TestRedeem_Errors() {
	s.requireCreateVault()
	s.fund(s.userAddr, 100)
	s.requireDeposit(100)
	all := sdkmath.NewIntWithDecimal(100, 18)

	tests := []struct {
		name     string
		owner    sdk.AccAddress
		receiver sdk.AccAddress
		shares   sdkmath.Int
		setup    func()
		expected error
	}{
		{name: "zero shares", owner: s.userAddr, receiver: s.userAddr, shares: sdkmath.ZeroInt(), expected: types.ErrInvalidAmount},
		{name: "zero receiver", owner: s.userAddr, shares: all, expected: types.ErrZeroAddress},
		{name: "not the share owner", owner: s.otherAddr, receiver: s.otherAddr, shares: all, expected: types.ErrInsufficientShares},
		{name: "more than balance", owner: s.userAddr, receiver: s.userAddr, shares: all.AddRaw(1), expected: types.ErrInsufficientShares},
		{name: "shares worth less than one asset unit", owner: s.userAddr, receiver: s.userAddr, shares: sdkmath.NewInt(999_999_999_999), expected: types.ErrInvalidAmount},
		{
			name:     "paused",
			owner:    s.userAddr,
			receiver: s.userAddr,
			shares:   all,
			setup:    func() { s.Require().NoError(s.k.PauseVault(s.ctx, s.vaultAddr, s.ownerAddr), "PauseVault") },
			expected: types.ErrPaused,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			origCtx := s.ctx
			defer func() { s.ctx = origCtx }()
			s.ctx, _ = s.ctx.CacheContext()
			if tc.setup != nil {
				tc.setup()
			}

			_, _, err := s.k.Redeem(s.ctx, s.vaultAddr, tc.owner, tc.receiver, tc.shares)
			s.Require().ErrorIs(err, tc.expected, "Redeem")
			s.assertShares(s.userAddr, all)
			s.assertHolding(underlying, units(100, assetDec))
		})
	}
}

func (s *TestSuite) TestRedeem_LiquidatesInstrumentsWhenUnderlyingIsShort() {
	s.requireCreateVault()
	s.requireSetAllocations(
		types.NewAllocation(underlying, sdkmath.NewIntWithDecimal(5, 17), true),
		types.NewAllocation(tbillDenom, sdkmath.NewIntWithDecimal(5, 17), true),
	)
	s.mocks.Oracle.SetPrice(tbillDenom, sdkmath.NewInt(1), 0)
	s.fund(s.userAddr, 100)
	s.requireDeposit(100)
	half := sdkmath.NewIntWithDecimal(50, 18)

	assets, _, err := s.k.Redeem(s.ctx, s.vaultAddr, s.userAddr, s.userAddr, half)
	s.Require().NoError(err, "first Redeem")
	s.Assert().Equal(usdc(50), assets, "first redemption paid from the underlying holding")
	s.Assert().Empty(s.mocks.Acquirer.Liquidations, "nothing sold while the underlying covers the redemption")

	em := sdk.NewEventManager()
	s.ctx = s.ctx.WithEventManager(em)
	assets, _, err = s.k.Redeem(s.ctx, s.vaultAddr, s.userAddr, s.userAddr, half)
	s.Require().NoError(err, "second Redeem")
	s.Assert().Equal(usdc(50), assets, "second redemption paid from sold tbill")

	soldTbill := sdk.NewCoin(tbillDenom, units(50, tbillDec))
	s.Require().Len(s.mocks.Acquirer.Liquidations, 1, "liquidations")
	s.Assert().Equal(soldTbill, s.mocks.Acquirer.Liquidations[0].Sold, "sold")
	s.Assert().Equal(usdc(50), s.mocks.Acquirer.Liquidations[0].Proceeds, "proceeds")

	s.assertShares(s.userAddr, sdkmath.ZeroInt())
	s.assertHolding(underlying, sdkmath.ZeroInt())
	s.assertHolding(tbillDenom, sdkmath.ZeroInt())
	s.assertBalance(s.userAddr, underlying, units(100, assetDec))
	s.assertBalance(s.vaultAddr, underlying, sdkmath.ZeroInt())
	s.assertBalance(s.vaultAddr, tbillDenom, sdkmath.ZeroInt())

	vault := s.vaultAddr.String()
	expectedEvents := sdk.Events{
		types.NewEventLiquidation(vault, soldTbill, usdc(50)),
		types.NewEventRedeem(vault, s.userAddr.String(), s.userAddr.String(), half, usdc(50)),
	}
	s.Assert().Equal(normalizeEvents(expectedEvents), normalizeEvents(em.Events()), "Redeem events")
}

func (s *TestSuite) TestRedeem_SellsSmallestCoveringQuantity() {
	s.requireCreateVault()
	s.requireSetAllocations(types.NewAllocation(tbillDenom, types.WeightScale, true))
	s.mocks.Oracle.SetPrice(tbillDenom, sdkmath.NewInt(3), 0)
	s.fund(s.userAddr, 100)
	s.requireDeposit(100)

	assets, _, err := s.k.Redeem(s.ctx, s.vaultAddr, s.userAddr, s.userAddr, sdkmath.NewIntWithDecimal(10, 18))
	s.Require().NoError(err, "Redeem")
	s.Assert().Equal(usdc(10), assets, "net assets")

	// ceil(10e6 * 100e18 / 300e6) tbill is worth exactly 10 usdc at a price of 3.
	sold, ok := sdkmath.NewIntFromString("3333333333333333334")
	s.Require().True(ok, "parse sold amount")
	s.Require().Len(s.mocks.Acquirer.Liquidations, 1, "liquidations")
	s.Assert().Equal(sold.String(), s.mocks.Acquirer.Liquidations[0].Sold.Amount.String(), "sold amount")
	s.Assert().Equal(usdc(10), s.mocks.Acquirer.Liquidations[0].Proceeds, "proceeds")

	s.assertHolding(tbillDenom, units(100, tbillDec).Sub(sold))
	s.assertHolding(underlying, sdkmath.ZeroInt())
	s.assertBalance(s.vaultAddr, tbillDenom, units(100, tbillDec).Sub(sold))
	s.assertBalance(s.userAddr, underlying, units(10, assetDec))
}

func (s *TestSuite) TestRedeem_HoldingsCannotCoverRedemption() {
	tests := []struct {
		name     string
		setPrice func()
		expected error
	}{
		{
			name:     "instrument price fell",
			setPrice: func() { s.mocks.Oracle.SetPrice(tbillDenom, sdkmath.NewInt(1), 1) },
			expected: types.ErrInsufficientHoldings,
		},
		{
			name:     "instrument has no price",
			setPrice: func() { s.mocks.Oracle.ClearPrice(tbillDenom) },
			expected: types.ErrPriceNotSet,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.requireCreateVault()
			s.requireSetAllocations(types.NewAllocation(tbillDenom, types.WeightScale, true))
			s.fund(s.userAddr, 100)
			shares := s.requireDeposit(100)
			tc.setPrice()

			_, _, err := s.k.Redeem(s.ctx, s.vaultAddr, s.userAddr, s.userAddr, shares)
			s.Require().ErrorIs(err, tc.expected, "Redeem")
			s.assertShares(s.userAddr, shares)
			s.assertHolding(tbillDenom, units(100, tbillDec))
			s.assertHolding(underlying, sdkmath.ZeroInt())
			s.assertBalance(s.vaultAddr, tbillDenom, units(100, tbillDec))
			s.assertBalance(s.userAddr, underlying, sdkmath.ZeroInt())
		})
	}
}

func (s *TestSuite) TestRedeem_ReentrantCallRejected() {
	s.requireCreateVault()
	s.fund(s.userAddr, 100)
	s.requireDeposit(100)

	s.mocks.Bank.OnSend = func(ctx context.Context, from, _ sdk.AccAddress, _ sdk.Coins) error {
		if !from.Equals(s.vaultAddr) {
			return nil
		}
		s.mocks.Bank.OnSend = nil
		_, _, err := s.k.Redeem(sdk.UnwrapSDKContext(ctx), s.vaultAddr, s.userAddr, s.userAddr, sdkmath.NewIntWithDecimal(1, 18))
		return fmt.Errorf("receiver hook: %w", err)
	}

	_, _, err := s.k.Redeem(s.ctx, s.vaultAddr, s.userAddr, s.userAddr, sdkmath.NewIntWithDecimal(50, 18))
	s.Require().ErrorIs(err, types.ErrReentrantCall, "Redeem")
	s.assertShares(s.userAddr, sdkmath.NewIntWithDecimal(100, 18))
	s.assertHolding(underlying, units(100, assetDec))
}

func (s *TestSuite) TestWithdraw_NotSupported() {
	s.requireCreateVault()
	err := s.k.Withdraw(s.ctx, s.vaultAddr, s.userAddr, s.userAddr, usdc(1))
	s.Require().ErrorIs(err, types.ErrWithdrawNotSupported, "Withdraw")
}

func (s *TestSuite) TestPreviews() {
	s.requireCreateVault()
	s.Require().NoError(s.k.SetFees(s.ctx, s.vaultAddr, s.adminAddr, 100, 0), "SetFees")

	shares, err := s.k.PreviewDeposit(s.ctx, s.vaultAddr, units(1000, assetDec))
	s.Require().NoError(err, "PreviewDeposit")
	s.Assert().Equal(sdkmath.NewIntWithDecimal(1000, 18).String(), shares.String(), "PreviewDeposit")

	net, err := s.k.PreviewRedeem(s.ctx, s.vaultAddr, sdkmath.NewIntWithDecimal(1000, 18))
	s.Require().NoError(err, "PreviewRedeem")
	s.Assert().Equal(units(990, assetDec).String(), net.String(), "PreviewRedeem is net of the exit fee")

	zero, err := s.k.PreviewDeposit(s.ctx, s.vaultAddr, sdkmath.ZeroInt())
	s.Require().NoError(err, "PreviewDeposit zero")
	s.Assert().True(zero.IsZero(), "PreviewDeposit zero")

	_, err = s.k.PreviewDeposit(s.ctx, types.GetVaultAddress("nope"), sdkmath.OneInt())
	s.Require().ErrorIs(err, types.ErrVaultNotFound, "PreviewDeposit unknown vault")
}

func (s *TestSuite) TestMaxRedeem() {
	s.requireCreateVault()
	s.fund(s.userAddr, 10)
	shares := s.requireDeposit(10)

	maxRedeem, err := s.k.MaxRedeem(s.ctx, s.vaultAddr, s.userAddr)
	s.Require().NoError(err, "MaxRedeem")
	s.Assert().Equal(shares.String(), maxRedeem.String(), "MaxRedeem is the full balance")

	s.Require().NoError(s.k.PauseVault(s.ctx, s.vaultAddr, s.ownerAddr), "PauseVault")
	maxRedeem, err = s.k.MaxRedeem(s.ctx, s.vaultAddr, s.userAddr)
	s.Require().NoError(err, "MaxRedeem paused")
	s.Assert().True(maxRedeem.IsZero(), "MaxRedeem is zero while paused")
}
