package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

func TestGenesisState_Validate(t *testing.T) {
	secondPool := validPool()
	secondPool.Id = 2
	secondPool.TokenA = "btoken"
	secondPool.TokenB = "ctoken"

	tests := []struct {
		name    string
		genesis types.GenesisState
		wantErr bool
	}{
		{
			name:    "default genesis",
			genesis: *types.DefaultGenesis(),
		},
		{
			name: "genesis with pools",
			genesis: types.GenesisState{
				Params:    types.DefaultParams(),
				Pools:     []types.Pool{validPool(), secondPool},
				PoolCount: 3,
			},
		},
		{
			name: "duplicate pool id",
			genesis: types.GenesisState{
				Params:    types.DefaultParams(),
				Pools:     []types.Pool{validPool(), validPool()},
				PoolCount: 3,
			},
			wantErr: true,
		},
		{
			name: "duplicate pair and curve",
			genesis: func() types.GenesisState {
				twin := validPool()
				twin.Id = 2
				twin.TokenA, twin.TokenB = twin.TokenB, twin.TokenA
				return types.GenesisState{
					Params:    types.DefaultParams(),
					Pools:     []types.Pool{validPool(), twin},
					PoolCount: 3,
				}
			}(),
			wantErr: true,
		},
		{
			name: "pool id beyond pool count",
			genesis: types.GenesisState{
				Params:    types.DefaultParams(),
				Pools:     []types.Pool{validPool()},
				PoolCount: 1,
			},
			wantErr: true,
		},
		{
			name: "invalid params",
			genesis: types.GenesisState{
				Params: types.Params{MaxPools: 0, MinInitialLiquidity: math.NewInt(1)},
			},
			wantErr: true,
		},
		{
			name: "invalid pool",
			genesis: func() types.GenesisState {
				broken := validPool()
				broken.TokenB = broken.TokenA
				return types.GenesisState{
					Params:    types.DefaultParams(),
					Pools:     []types.Pool{broken},
					PoolCount: 2,
				}
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.genesis.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	bad := types.DefaultParams()
	bad.MaxPools = 0
	require.Error(t, bad.Validate())

	bad = types.DefaultParams()
	bad.MinInitialLiquidity = math.ZeroInt()
	require.Error(t, bad.Validate())
}
