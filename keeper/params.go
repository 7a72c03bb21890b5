package keeper

import (
	"bytes"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/rwavault/types"
)

// UpdateParams replaces the module params. Only the module authority may
// update them.
func (k *Keeper) UpdateParams(ctx sdk.Context, authority sdk.AccAddress, params types.Params) error {
	if !bytes.Equal(authority, k.authority) {
		expected, _ := k.addressCodec.BytesToString(k.authority)
		return fmt.Errorf("expected authority %s, got %s: %w", expected, authority, types.ErrUnauthorized)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	return k.atomic(ctx, func(ctx sdk.Context) error {
		if err := k.Params.Set(ctx, params); err != nil {
			return fmt.Errorf("failed to store params: %w", err)
		}
		k.emitEvent(ctx, types.NewEventParamsUpdated(authority.String(), params))
		return nil
	})
}
