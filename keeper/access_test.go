package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

func (s *TestSuite) TestHasRole() {
	s.requireCreateVault()

	tests := []struct {
		name     string
		addr     sdk.AccAddress
		role     types.Role
		expected bool
	}{
		{name: "owner holds owner", addr: s.ownerAddr, role: types.RoleOwner, expected: true},
		{name: "owner holds admin", addr: s.ownerAddr, role: types.RoleAdmin, expected: true},
		{name: "admin holds admin", addr: s.adminAddr, role: types.RoleAdmin, expected: true},
		{name: "admin does not hold owner", addr: s.adminAddr, role: types.RoleOwner, expected: false},
		{name: "stranger holds nothing", addr: s.userAddr, role: types.RoleAdmin, expected: false},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			has, err := s.k.HasRole(s.ctx, s.vaultAddr, tc.addr, tc.role)
			s.Require().NoError(err, "HasRole")
			s.Assert().Equal(tc.expected, has, "HasRole")
		})
	}

	_, err := s.k.HasRole(s.ctx, s.vaultAddr, s.ownerAddr, types.Role(99))
	s.Require().ErrorIs(err, types.ErrInvalidRequest, "unknown role")
}

func (s *TestSuite) TestGrantAndRevokeAdmin() {
	s.requireCreateVault()

	admins, err := s.k.GetAdmins(s.ctx, s.vaultAddr)
	s.Require().NoError(err, "GetAdmins")
	s.Assert().ElementsMatch([]sdk.AccAddress{s.ownerAddr, s.adminAddr}, admins, "initial admins")

	err = s.k.GrantAdmin(s.ctx, s.vaultAddr, s.adminAddr, s.userAddr)
	s.Require().ErrorIs(err, types.ErrUnauthorized, "admin cannot grant")
	err = s.k.GrantAdmin(s.ctx, s.vaultAddr, s.ownerAddr, s.adminAddr)
	s.Require().ErrorIs(err, types.ErrInvalidRequest, "grant to an existing admin")
	err = s.k.GrantAdmin(s.ctx, s.vaultAddr, s.ownerAddr, nil)
	s.Require().ErrorIs(err, types.ErrZeroAddress, "grant to zero address")

	em := sdk.NewEventManager()
	s.ctx = s.ctx.WithEventManager(em)
	s.Require().NoError(s.k.RevokeAdmin(s.ctx, s.vaultAddr, s.ownerAddr, s.adminAddr), "RevokeAdmin")
	s.Assert().Equal(
		normalizeEvents(sdk.Events{types.NewEventAdminRevoked(s.vaultAddr.String(), s.ownerAddr.String(), s.adminAddr.String())}),
		normalizeEvents(em.Events()),
		"RevokeAdmin events",
	)

	err = s.k.SetAllocations(s.ctx, s.vaultAddr, s.adminAddr, []types.Allocation{types.NewAllocation(underlying, types.WeightScale, true)})
	s.Require().ErrorIs(err, types.ErrUnauthorized, "revoked admin cannot set allocations")

	err = s.k.RevokeAdmin(s.ctx, s.vaultAddr, s.ownerAddr, s.adminAddr)
	s.Require().ErrorIs(err, types.ErrInvalidRequest, "revoke a non-admin")
	err = s.k.RevokeAdmin(s.ctx, s.vaultAddr, s.userAddr, s.ownerAddr)
	s.Require().ErrorIs(err, types.ErrUnauthorized, "stranger cannot revoke")
}

func (s *TestSuite) TestPauseAndUnpause() {
	s.requireCreateVault()
	s.fund(s.userAddr, 10)
	s.requireDeposit(5)

	err := s.k.PauseVault(s.ctx, s.vaultAddr, s.adminAddr)
	s.Require().ErrorIs(err, types.ErrUnauthorized, "admin cannot pause")
	err = s.k.UnpauseVault(s.ctx, s.vaultAddr, s.ownerAddr)
	s.Require().ErrorIs(err, types.ErrNotPaused, "unpause an active vault")

	em := sdk.NewEventManager()
	s.ctx = s.ctx.WithEventManager(em)
	s.Require().NoError(s.k.PauseVault(s.ctx, s.vaultAddr, s.ownerAddr), "PauseVault")
	s.Assert().Equal(
		normalizeEvents(sdk.Events{types.NewEventVaultPaused(s.vaultAddr.String(), s.ownerAddr.String())}),
		normalizeEvents(em.Events()),
		"PauseVault events",
	)
	err = s.k.PauseVault(s.ctx, s.vaultAddr, s.ownerAddr)
	s.Require().ErrorIs(err, types.ErrPaused, "pause twice")

	_, err = s.k.Deposit(s.ctx, s.vaultAddr, s.userAddr, s.userAddr, usdc(1))
	s.Require().ErrorIs(err, types.ErrPaused, "Deposit while paused")
	_, _, err = s.k.Redeem(s.ctx, s.vaultAddr, s.userAddr, s.userAddr, units(1, 18))
	s.Require().ErrorIs(err, types.ErrPaused, "Redeem while paused")

	s.Require().NoError(s.k.TransferShares(s.ctx, s.vaultAddr, s.userAddr, s.otherAddr, units(1, 18)), "transfers are not paused")
	s.Require().NoError(s.k.SetAllocations(s.ctx, s.vaultAddr, s.adminAddr, []types.Allocation{types.NewAllocation(underlying, types.WeightScale, true)}), "admin setters are not paused")

	s.Require().NoError(s.k.UnpauseVault(s.ctx, s.vaultAddr, s.ownerAddr), "UnpauseVault")
	s.requireDeposit(1)
	_, _, err = s.k.Redeem(s.ctx, s.vaultAddr, s.userAddr, s.userAddr, units(1, 18))
	s.Require().NoError(err, "Redeem after unpause")
}
