package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/provlabs/rwavault/types"
)

var _ banktypes.SendRestrictionFn = Keeper{}.SendRestrictionFn

// SendRestrictionFn rejects any transfer into a vault account that was not
// initiated by this keeper. Vault accounts only receive funds through Deposit
// and BootstrapVault, which account for them as holdings.
func (k Keeper) SendRestrictionFn(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) (sdk.AccAddress, error) {
	if types.HasBypass(ctx) {
		return toAddr, nil
	}
	isVault, err := k.Vaults.Has(ctx, toAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vault %s: %w", toAddr, err)
	}
	if isVault {
		return nil, fmt.Errorf("cannot send %s from %s to vault %s: %w", amt, fromAddr, toAddr, types.ErrNativeNotAccepted)
	}
	return toAddr, nil
}
