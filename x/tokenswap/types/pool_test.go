package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

func validPool() types.Pool {
	return types.Pool{
		Id:              1,
		TokenA:          "atoken",
		TokenB:          "btoken",
		ReserveA:        math.NewInt(1_000_000),
		ReserveB:        math.NewInt(1_000_000),
		PoolTokenSupply: math.NewInt(types.InitialPoolTokenSupply),
		Curve:           types.SwapCurve{CurveType: types.CurveConstantProduct},
		Fees:            standardFees(),
		FeeAccount:      "cosmos1feeaccount",
		Creator:         "cosmos1creator",
	}
}

func TestOrderedPair(t *testing.T) {
	first, second := types.OrderedPair("btoken", "atoken")
	require.Equal(t, "atoken", first)
	require.Equal(t, "btoken", second)

	first, second = types.OrderedPair("atoken", "btoken")
	require.Equal(t, "atoken", first)
	require.Equal(t, "btoken", second)
}

func TestPool_DirectionFor(t *testing.T) {
	pool := validPool()

	dir, err := pool.DirectionFor("atoken")
	require.NoError(t, err)
	require.Equal(t, types.TradeAToB, dir)

	dir, err = pool.DirectionFor("btoken")
	require.NoError(t, err)
	require.Equal(t, types.TradeBToA, dir)

	_, err = pool.DirectionFor("ctoken")
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)
}

func TestPool_ReserveRoundTrip(t *testing.T) {
	pool := validPool()
	pool.ReserveA = math.NewInt(10)
	pool.ReserveB = math.NewInt(20)

	src, dst := pool.ReservesFor(types.TradeBToA)
	require.Equal(t, math.NewInt(20), src)
	require.Equal(t, math.NewInt(10), dst)

	pool.SetReserves(types.TradeBToA, math.NewInt(25), math.NewInt(7))
	require.Equal(t, math.NewInt(7), pool.ReserveA)
	require.Equal(t, math.NewInt(25), pool.ReserveB)
}

func TestPool_TokenOut(t *testing.T) {
	pool := validPool()
	require.Equal(t, "btoken", pool.TokenOut("atoken"))
	require.Equal(t, "atoken", pool.TokenOut("btoken"))
}

func TestPool_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *types.Pool)
	}{
		{"same token twice", func(p *types.Pool) { p.TokenB = p.TokenA }},
		{"empty token", func(p *types.Pool) { p.TokenA = "" }},
		{"negative reserve", func(p *types.Pool) { p.ReserveA = math.NewInt(-1) }},
		{"nil supply", func(p *types.Pool) { p.PoolTokenSupply = math.Int{} }},
		{"empty fee account", func(p *types.Pool) { p.FeeAccount = "" }},
		{"bad curve", func(p *types.Pool) { p.Curve.CurveType = types.CurveType(9) }},
		{"bad fees", func(p *types.Pool) { p.Fees.TradeFeeNumerator = 2; p.Fees.TradeFeeDenominator = 1 }},
	}

	require.NoError(t, validPool().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := validPool()
			tt.mutate(&pool)
			require.Error(t, pool.Validate())
		})
	}
}

func TestPoolTokenDenom(t *testing.T) {
	require.Equal(t, "tokenswap/pool/7", types.PoolTokenDenom(7))

	pool := validPool()
	require.Equal(t, "tokenswap/pool/1", pool.PoolTokenDenomFor())
}

func TestGetPoolByPairKey_OrderInsensitive(t *testing.T) {
	ab := types.GetPoolByPairKey("atoken", "btoken", types.CurveConstantProduct)
	ba := types.GetPoolByPairKey("btoken", "atoken", types.CurveConstantProduct)
	require.Equal(t, ab, ba)

	other := types.GetPoolByPairKey("atoken", "btoken", types.CurveOffset)
	require.NotEqual(t, ab, other)
}

func TestGetPoolByPairKey_SlashDenoms(t *testing.T) {
	// denoms may contain '/', so pairs that concatenate to the same string
	// must still index separately
	a := types.GetPoolByPairKey("abc", "cc/ddd", types.CurveConstantProduct)
	b := types.GetPoolByPairKey("abc/cc", "ddd", types.CurveConstantProduct)
	require.NotEqual(t, a, b)
}
