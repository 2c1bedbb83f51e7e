package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

func TestSwapCurve_Validate(t *testing.T) {
	tests := []struct {
		name    string
		curve   types.SwapCurve
		wantErr bool
	}{
		{
			name:  "constant product needs no parameters",
			curve: types.SwapCurve{CurveType: types.CurveConstantProduct},
		},
		{
			name: "constant price with positive price",
			curve: types.SwapCurve{
				CurveType:  types.CurveConstantPrice,
				Parameters: types.CurveParameters{TokenBPrice: 2},
			},
		},
		{
			name:    "constant price with zero price",
			curve:   types.SwapCurve{CurveType: types.CurveConstantPrice},
			wantErr: true,
		},
		{
			name: "offset with positive offset",
			curve: types.SwapCurve{
				CurveType:  types.CurveOffset,
				Parameters: types.CurveParameters{TokenBOffset: 1_000_000},
			},
		},
		{
			name:    "offset with zero offset",
			curve:   types.SwapCurve{CurveType: types.CurveOffset},
			wantErr: true,
		},
		{
			name:    "unknown curve type",
			curve:   types.SwapCurve{CurveType: types.CurveType(9)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.curve.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCurveTypeFromByte(t *testing.T) {
	for _, b := range []uint8{0, 1, 2} {
		ct, err := types.CurveTypeFromByte(b)
		require.NoError(t, err)
		require.Equal(t, types.CurveType(b), ct)
	}

	_, err := types.CurveTypeFromByte(3)
	require.ErrorIs(t, err, types.ErrInvalidCurveState)
}

func TestConstantProduct_SwapWithoutFees(t *testing.T) {
	curve := types.SwapCurve{CurveType: types.CurveConstantProduct}

	// floor(99700 * 1000000 / 1099700) = 90661
	out, err := curve.SwapWithoutFees(
		math.NewInt(99_700), math.NewInt(1_000_000), math.NewInt(1_000_000), types.TradeAToB)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90_661), out)

	// symmetric pool, symmetric directions
	outBA, err := curve.SwapWithoutFees(
		math.NewInt(99_700), math.NewInt(1_000_000), math.NewInt(1_000_000), types.TradeBToA)
	require.NoError(t, err)
	require.Equal(t, out, outBA)
}

func TestConstantProduct_InvariantNeverDecreases(t *testing.T) {
	curve := types.SwapCurve{CurveType: types.CurveConstantProduct}

	reserveA := math.NewInt(1_000_000)
	reserveB := math.NewInt(3_333_337)
	oldK := reserveA.Mul(reserveB)

	for _, amountIn := range []int64{1, 7, 999, 100_000, 2_500_001} {
		out, err := curve.SwapWithoutFees(math.NewInt(amountIn), reserveA, reserveB, types.TradeAToB)
		require.NoError(t, err)

		newK := reserveA.Add(math.NewInt(amountIn)).Mul(reserveB.Sub(out))
		require.True(t, newK.GTE(oldK), "k decreased for amountIn=%d", amountIn)
	}
}

func TestSwapWithoutFees_Boundaries(t *testing.T) {
	curve := types.SwapCurve{CurveType: types.CurveConstantProduct}
	reserve := math.NewInt(1_000_000)

	_, err := curve.SwapWithoutFees(math.ZeroInt(), reserve, reserve, types.TradeAToB)
	require.ErrorIs(t, err, types.ErrZeroTradeAmount)

	// tiny trade against a deep pool rounds to zero output
	_, err = curve.SwapWithoutFees(math.NewInt(1), math.NewInt(1_000_000), math.NewInt(10), types.TradeAToB)
	require.ErrorIs(t, err, types.ErrCalculationFailure)

	_, err = curve.SwapWithoutFees(math.NewInt(5), math.ZeroInt(), reserve, types.TradeAToB)
	require.ErrorIs(t, err, types.ErrInvalidCurveState)
}

func TestConstantPrice_SwapWithoutFees(t *testing.T) {
	curve := types.SwapCurve{
		CurveType:  types.CurveConstantPrice,
		Parameters: types.CurveParameters{TokenBPrice: 2},
	}
	reserveA := math.NewInt(1_000_000)
	reserveB := math.NewInt(1_000_000)

	// one token B costs two token A
	out, err := curve.SwapWithoutFees(math.NewInt(100), reserveA, reserveB, types.TradeAToB)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50), out)

	out, err = curve.SwapWithoutFees(math.NewInt(100), reserveB, reserveA, types.TradeBToA)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(200), out)

	// output capped by what the pool can pay
	_, err = curve.SwapWithoutFees(math.NewInt(600_000), reserveB, reserveA, types.TradeBToA)
	require.ErrorIs(t, err, types.ErrCalculationFailure)
}

func TestOffset_SwapWithoutFees(t *testing.T) {
	curve := types.SwapCurve{
		CurveType:  types.CurveOffset,
		Parameters: types.CurveParameters{TokenBOffset: 1_000_000},
	}

	// bootstrap pool: token B side starts empty, the offset stands in for it
	out, err := curve.SwapWithoutFees(
		math.NewInt(100_000), math.ZeroInt(), math.NewInt(1_000_000), types.TradeBToA)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90_909), out)

	// the empty side cannot pay out
	_, err = curve.SwapWithoutFees(
		math.NewInt(100_000), math.NewInt(1_000_000), math.ZeroInt(), types.TradeAToB)
	require.ErrorIs(t, err, types.ErrCalculationFailure)

	// with both sides funded it behaves like constant product on (x, y+offset)
	out, err = curve.SwapWithoutFees(
		math.NewInt(100_000), math.NewInt(1_000_000), math.NewInt(500_000), types.TradeAToB)
	require.NoError(t, err)
	// floor(100000 * 1500000 / 1100000) = 136363
	require.Equal(t, math.NewInt(136_363), out)
}

func TestTradingTokensToPoolTokens(t *testing.T) {
	cp := types.SwapCurve{CurveType: types.CurveConstantProduct}

	// supply * (sqrt(1.1) - 1) = 1e9 * 0.048808848... = 48808848
	poolTokens, err := cp.TradingTokensToPoolTokens(
		math.NewInt(100_000), math.NewInt(1_000_000), math.NewInt(1_000_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(48_808_848), poolTokens)

	// only constant product supports single-sided operations
	flat := types.SwapCurve{
		CurveType:  types.CurveConstantPrice,
		Parameters: types.CurveParameters{TokenBPrice: 1},
	}
	_, err = flat.TradingTokensToPoolTokens(
		math.NewInt(100_000), math.NewInt(1_000_000), math.NewInt(1_000_000_000))
	require.ErrorIs(t, err, types.ErrUnsupportedCurveOperation)
}

func TestPoolTokensForWithdrawnTokens(t *testing.T) {
	cp := types.SwapCurve{CurveType: types.CurveConstantProduct}

	// ceil(1e9 * (1 - sqrt(0.99))) = 5012563, rounded against the withdrawer
	poolTokens, err := cp.PoolTokensForWithdrawnTokens(
		math.NewInt(10_000), math.NewInt(1_000_000), math.NewInt(1_000_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(5_012_563), poolTokens)

	_, err = cp.PoolTokensForWithdrawnTokens(
		math.NewInt(1_000_000), math.NewInt(1_000_000), math.NewInt(1_000_000_000))
	require.ErrorIs(t, err, types.ErrCalculationFailure)

	offset := types.SwapCurve{
		CurveType:  types.CurveOffset,
		Parameters: types.CurveParameters{TokenBOffset: 1},
	}
	_, err = offset.PoolTokensForWithdrawnTokens(
		math.NewInt(10_000), math.NewInt(1_000_000), math.NewInt(1_000_000_000))
	require.ErrorIs(t, err, types.ErrUnsupportedCurveOperation)
}

func TestPoolTokensToTradingTokens(t *testing.T) {
	// floor(10000000 * 1000000 / 1000000000) = 10000
	amount, err := types.PoolTokensToTradingTokens(
		math.NewInt(10_000_000), math.NewInt(1_000_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10_000), amount)

	_, err = types.PoolTokensToTradingTokens(
		math.NewInt(10), math.ZeroInt(), math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrInvalidPoolState)
}
