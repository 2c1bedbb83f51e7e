package keeper

import (
	"context"
	"fmt"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

// InitGenesis initializes the module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: invalid genesis state: %w", err)
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	for _, pool := range genState.Pools {
		pool := pool
		if err := k.SetPool(ctx, &pool); err != nil {
			return err
		}
		k.setPoolByPair(ctx, pool.TokenA, pool.TokenB, pool.Curve.CurveType, pool.Id)
	}
	k.SetPoolCount(ctx, genState.PoolCount)
	k.metrics.PoolsTotal.Set(float64(len(genState.Pools)))

	return nil
}

// ExportGenesis exports the module state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}
	return &types.GenesisState{
		Params:    k.GetParams(ctx),
		Pools:     pools,
		PoolCount: k.GetPoolCount(ctx),
	}, nil
}
