package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

func standardFees() types.FeeSchedule {
	return types.FeeSchedule{
		TradeFeeNumerator:        25,
		TradeFeeDenominator:      10_000,
		OwnerTradeFeeNumerator:   5,
		OwnerTradeFeeDenominator: 10_000,
	}
}

func TestComputeSwap_StandardPool(t *testing.T) {
	curve := types.SwapCurve{CurveType: types.CurveConstantProduct}
	reserve := math.NewInt(1_000_000)

	result, err := types.ComputeSwap(
		curve, standardFees(), math.NewInt(100_000), reserve, reserve, types.TradeAToB)
	require.NoError(t, err)

	require.Equal(t, math.NewInt(100_000), result.SourceAmountSwapped)
	require.Equal(t, math.NewInt(250), result.TradeFee)
	require.Equal(t, math.NewInt(50), result.OwnerFee)
	// floor((100000 - 250 - 50) * 1000000 / 1099700)
	require.Equal(t, math.NewInt(90_661), result.DestinationAmountSwapped)
	require.Equal(t, math.NewInt(1_100_000), result.NewSourceReserve)
	require.Equal(t, math.NewInt(909_339), result.NewDestinationReserve)
}

func TestComputeSwap_OwnerFeeAsPoolTokens(t *testing.T) {
	curve := types.SwapCurve{CurveType: types.CurveConstantProduct}
	reserve := math.NewInt(1_000_000)

	result, err := types.ComputeSwap(
		curve, standardFees(), math.NewInt(100_000), reserve, reserve, types.TradeAToB)
	require.NoError(t, err)

	// floor(1e9 * (sqrt(1 + 50/1100000) - 1))
	minted := curve.OwnerFeePoolTokens(
		result.OwnerFee, result.NewSourceReserve, math.NewInt(1_000_000_000))
	require.Equal(t, math.NewInt(22_727), minted)
}

func TestComputeSwap_NoFees(t *testing.T) {
	curve := types.SwapCurve{CurveType: types.CurveConstantProduct}
	reserve := math.NewInt(1_000_000)

	result, err := types.ComputeSwap(
		curve, types.FeeSchedule{}, math.NewInt(100_000), reserve, reserve, types.TradeAToB)
	require.NoError(t, err)
	require.True(t, result.TradeFee.IsZero())
	require.True(t, result.OwnerFee.IsZero())
	require.Equal(t, math.NewInt(90_909), result.DestinationAmountSwapped)
}

func TestComputeSwap_Rejections(t *testing.T) {
	curve := types.SwapCurve{CurveType: types.CurveConstantProduct}
	reserve := math.NewInt(1_000_000)

	_, err := types.ComputeSwap(
		curve, standardFees(), math.ZeroInt(), reserve, reserve, types.TradeAToB)
	require.ErrorIs(t, err, types.ErrZeroTradeAmount)

	// fees consume the entire input
	confiscatory := types.FeeSchedule{TradeFeeNumerator: 1, TradeFeeDenominator: 1}
	_, err = types.ComputeSwap(
		curve, confiscatory, math.NewInt(100_000), reserve, reserve, types.TradeAToB)
	require.ErrorIs(t, err, types.ErrZeroTradeAmount)
}

func TestComputeSwap_FailureLeavesNoResult(t *testing.T) {
	curve := types.SwapCurve{CurveType: types.CurveConstantProduct}

	result, err := types.ComputeSwap(
		curve, standardFees(), math.NewInt(1), math.NewInt(1_000_000), math.NewInt(10), types.TradeAToB)
	require.Error(t, err)
	require.True(t, result.SourceAmountSwapped.IsNil())
}
