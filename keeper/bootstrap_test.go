package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

func (s *TestSuite) TestBootstrapSeed() {
	vault := s.requireCreateVault()

	seed, err := s.k.BootstrapSeed(s.ctx, vault)
	s.Require().NoError(err, "BootstrapSeed")
	s.Assert().Equal(usdc(int64(types.DefaultBootstrapSeedUnits)), seed, "default seed")

	params := types.DefaultParams()
	params.BootstrapSeedUnits = 5
	s.Require().NoError(s.k.Params.Set(s.ctx, params), "Params.Set")
	seed, err = s.k.BootstrapSeed(s.ctx, vault)
	s.Require().NoError(err, "BootstrapSeed")
	s.Assert().Equal(usdc(5), seed, "custom seed")
}

func (s *TestSuite) TestBootstrapVault() {
	s.requireCreateVault()
	s.fund(s.treasuryAddr, 1500)

	em := sdk.NewEventManager()
	s.ctx = s.ctx.WithEventManager(em)
	shares, err := s.k.BootstrapVault(s.ctx, s.vaultAddr, s.ownerAddr)
	s.Require().NoError(err, "BootstrapVault")

	expectedShares := sdkmath.NewIntWithDecimal(1000, 18)
	s.Assert().Equal(expectedShares.String(), shares.String(), "seed shares")
	s.assertShares(s.treasuryAddr, expectedShares)
	s.assertSupply(expectedShares)
	s.assertBalance(s.treasuryAddr, underlying, units(500, assetDec))
	s.assertBalance(s.vaultAddr, underlying, units(1000, assetDec))
	s.assertHolding(underlying, units(1000, assetDec))

	vault := s.vaultAddr.String()
	treasury := s.treasuryAddr.String()
	expectedEvents := sdk.Events{
		types.NewEventVaultBootstrapped(vault, treasury, usdc(1000), expectedShares),
	}
	s.Assert().Equal(normalizeEvents(expectedEvents), normalizeEvents(em.Events()), "BootstrapVault events")

	_, err = s.k.BootstrapVault(s.ctx, s.vaultAddr, s.ownerAddr)
	s.Require().ErrorIs(err, types.ErrVaultAlreadyBootstrapped, "second bootstrap")
}

func (s *TestSuite) TestBootstrapVault_AfterPublicDeposit() {
	s.requireCreateVault()
	s.fund(s.treasuryAddr, 1000)
	s.fund(s.userAddr, 1)
	s.requireDeposit(1)

	_, err := s.k.BootstrapVault(s.ctx, s.vaultAddr, s.ownerAddr)
	s.Require().ErrorIs(err, types.ErrVaultAlreadyBootstrapped, "BootstrapVault")
	s.assertBalance(s.treasuryAddr, underlying, units(1000, assetDec))
}

func (s *TestSuite) TestBootstrapVault_Errors() {
	s.requireCreateVault()

	_, err := s.k.BootstrapVault(s.ctx, s.vaultAddr, s.adminAddr)
	s.Require().ErrorIs(err, types.ErrUnauthorized, "admin cannot bootstrap")

	_, err = s.k.BootstrapVault(s.ctx, types.GetVaultAddress("nope"), s.ownerAddr)
	s.Require().ErrorIs(err, types.ErrVaultNotFound, "unknown vault")

	_, err = s.k.BootstrapVault(s.ctx, s.vaultAddr, s.ownerAddr)
	s.Require().ErrorContains(err, "insufficient funds", "unfunded treasury")

	state, err := s.k.GetVaultState(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "GetVaultState")
	s.Assert().False(state.Bootstrapped, "failed bootstrap leaves the vault open")
	s.assertSupply(sdkmath.ZeroInt())
}

func (s *TestSuite) TestBootstrapVault_Paused() {
	s.requireCreateVault()
	s.fund(s.treasuryAddr, 1000)
	s.Require().NoError(s.k.PauseVault(s.ctx, s.vaultAddr, s.ownerAddr), "PauseVault")

	_, err := s.k.BootstrapVault(s.ctx, s.vaultAddr, s.ownerAddr)
	s.Require().ErrorIs(err, types.ErrPaused, "BootstrapVault while paused")
	s.assertSupply(sdkmath.ZeroInt())
	s.assertBalance(s.treasuryAddr, underlying, units(1000, assetDec))

	s.Require().NoError(s.k.UnpauseVault(s.ctx, s.vaultAddr, s.ownerAddr), "UnpauseVault")
	shares, err := s.k.BootstrapVault(s.ctx, s.vaultAddr, s.ownerAddr)
	s.Require().NoError(err, "BootstrapVault after unpause")
	s.assertShares(s.treasuryAddr, shares)
}
