package keeper

import (
	"context"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

// GetParams returns the module parameters, falling back to defaults when
// none have been stored yet.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshalJSON(bz, &params)
	return params
}

// SetParams stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	store := k.getStore(ctx)
	store.Set(types.ParamsKey, k.cdc.MustMarshalJSON(&params))
	return nil
}
