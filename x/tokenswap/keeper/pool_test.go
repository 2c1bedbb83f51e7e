package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

func TestCreatePool_Valid(t *testing.T) {
	k, ctx, bank := setup(t)

	pool := createPool(t, k, ctx, "atoken", "btoken")

	require.Equal(t, uint64(0), pool.Id)
	require.Equal(t, "atoken", pool.TokenA)
	require.Equal(t, "btoken", pool.TokenB)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveB)
	require.Equal(t, math.NewInt(types.InitialPoolTokenSupply), pool.PoolTokenSupply)

	// creator holds the bootstrap supply, the module holds the reserves
	lpDenom := pool.PoolTokenDenomFor()
	require.Equal(t, math.NewInt(types.InitialPoolTokenSupply),
		bank.GetBalance(ctx, creatorAddr, lpDenom).Amount)
	moduleAddr := k.GetModuleAddress()
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, moduleAddr, "atoken").Amount)
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, moduleAddr, "btoken").Amount)

	stored, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, pool, stored)
	require.Equal(t, uint64(1), k.GetPoolCount(ctx))
}

func TestCreatePool_OrdersTokens(t *testing.T) {
	k, ctx, _ := setup(t)

	msg := types.NewMsgCreatePool(
		creatorAddr.String(), "btoken", "atoken",
		math.NewInt(2_000_000), math.NewInt(1_000_000),
		types.SwapCurve{CurveType: types.CurveConstantProduct},
		standardFees(), feeAccountAddr.String(),
	)
	pool, err := k.CreatePool(ctx, msg)
	require.NoError(t, err)

	// lexicographic order with amounts following their tokens
	require.Equal(t, "atoken", pool.TokenA)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(2_000_000), pool.ReserveB)
}

func TestCreatePool_Duplicate(t *testing.T) {
	k, ctx, _ := setup(t)
	createPool(t, k, ctx, "atoken", "btoken")

	// same pair, either order
	msg := types.NewMsgCreatePool(
		creatorAddr.String(), "btoken", "atoken",
		math.NewInt(1_000_000), math.NewInt(1_000_000),
		types.SwapCurve{CurveType: types.CurveConstantProduct},
		standardFees(), feeAccountAddr.String(),
	)
	_, err := k.CreatePool(ctx, msg)
	require.ErrorIs(t, err, types.ErrDuplicatePool)

	// a second attempt keeps failing, the registry is append-only
	_, err = k.CreatePool(ctx, msg)
	require.ErrorIs(t, err, types.ErrDuplicatePool)
}

func TestCreatePool_SlashDenomPairsAreDistinct(t *testing.T) {
	k, ctx, bank := setup(t)

	// both pairs join to "abc/cc/ddd"; they must register as separate pools
	for _, denom := range []string{"abc", "cc/ddd", "abc/cc", "ddd"} {
		bank.FundAccount(creatorAddr, sdk.NewCoins(sdk.NewCoin(denom, math.NewInt(10_000_000))))
	}

	first := createPool(t, k, ctx, "abc", "cc/ddd")
	second := createPool(t, k, ctx, "abc/cc", "ddd")
	require.NotEqual(t, first.Id, second.Id)

	pool, found := k.GetPoolByPair(ctx, "abc/cc", "ddd", types.CurveConstantProduct)
	require.True(t, found)
	require.Equal(t, second.Id, pool.Id)
}

func TestCreatePool_SamePairDifferentCurve(t *testing.T) {
	k, ctx, _ := setup(t)
	createPool(t, k, ctx, "atoken", "btoken")

	msg := types.NewMsgCreatePool(
		creatorAddr.String(), "atoken", "btoken",
		math.NewInt(1_000_000), math.NewInt(1_000_000),
		types.SwapCurve{
			CurveType:  types.CurveConstantPrice,
			Parameters: types.CurveParameters{TokenBPrice: 1},
		},
		standardFees(), feeAccountAddr.String(),
	)
	pool, err := k.CreatePool(ctx, msg)
	require.NoError(t, err)
	require.Equal(t, uint64(1), pool.Id)
}

func TestCreatePool_BelowMinimumLiquidity(t *testing.T) {
	k, ctx, _ := setup(t)

	msg := types.NewMsgCreatePool(
		creatorAddr.String(), "atoken", "btoken",
		math.NewInt(100), math.NewInt(1_000_000),
		types.SwapCurve{CurveType: types.CurveConstantProduct},
		standardFees(), feeAccountAddr.String(),
	)
	_, err := k.CreatePool(ctx, msg)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestCreatePool_MaxPoolsReached(t *testing.T) {
	k, ctx, _ := setup(t)

	params := types.DefaultParams()
	params.MaxPools = 1
	require.NoError(t, k.SetParams(ctx, params))

	createPool(t, k, ctx, "atoken", "btoken")

	msg := types.NewMsgCreatePool(
		creatorAddr.String(), "btoken", "ctoken",
		math.NewInt(1_000_000), math.NewInt(1_000_000),
		types.SwapCurve{CurveType: types.CurveConstantProduct},
		standardFees(), feeAccountAddr.String(),
	)
	_, err := k.CreatePool(ctx, msg)
	require.ErrorIs(t, err, types.ErrMaxPoolsReached)
}

func TestCreatePool_InsufficientFunds(t *testing.T) {
	k, ctx, _ := setup(t)

	poor := sdk.AccAddress([]byte("poor________________"))
	msg := types.NewMsgCreatePool(
		poor.String(), "atoken", "btoken",
		math.NewInt(1_000_000), math.NewInt(1_000_000),
		types.SwapCurve{CurveType: types.CurveConstantProduct},
		standardFees(), feeAccountAddr.String(),
	)
	_, err := k.CreatePool(ctx, msg)
	require.Error(t, err)
}

func TestGetPoolByPair(t *testing.T) {
	k, ctx, _ := setup(t)
	created := createPool(t, k, ctx, "atoken", "btoken")

	pool, found := k.GetPoolByPair(ctx, "btoken", "atoken", types.CurveConstantProduct)
	require.True(t, found)
	require.Equal(t, created.Id, pool.Id)

	_, found = k.GetPoolByPair(ctx, "atoken", "ctoken", types.CurveConstantProduct)
	require.False(t, found)

	_, found = k.GetPoolByPair(ctx, "atoken", "btoken", types.CurveOffset)
	require.False(t, found)
}

func TestGetPool_NotFound(t *testing.T) {
	k, ctx, _ := setup(t)

	_, err := k.GetPool(ctx, 42)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestGetAllPools(t *testing.T) {
	k, ctx, _ := setup(t)
	createPool(t, k, ctx, "atoken", "btoken")
	createPool(t, k, ctx, "btoken", "ctoken")

	pools, err := k.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	require.Equal(t, uint64(0), pools[0].Id)
	require.Equal(t, uint64(1), pools[1].Id)
}
