package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

func TestExecuteSwap_StandardPool(t *testing.T) {
	k, ctx, bank := setup(t)
	pool := createPool(t, k, ctx, "atoken", "btoken")
	bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin("atoken", math.NewInt(100_000))))

	out, err := k.ExecuteSwap(ctx, traderAddr, pool.Id, "atoken", math.NewInt(100_000), math.ZeroInt(), "")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90_661), out)

	// trader paid the full input and received the output
	require.True(t, bank.GetBalance(ctx, traderAddr, "atoken").Amount.IsZero())
	require.Equal(t, math.NewInt(90_661), bank.GetBalance(ctx, traderAddr, "btoken").Amount)

	// the input, fees included, landed in the source reserve
	updated, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_100_000), updated.ReserveA)
	require.Equal(t, math.NewInt(909_339), updated.ReserveB)

	// owner trade fee settled as freshly minted pool tokens to the fee account
	minted := math.NewInt(22_727)
	require.Equal(t, math.NewInt(types.InitialPoolTokenSupply).Add(minted), updated.PoolTokenSupply)
	require.Equal(t, minted, bank.GetBalance(ctx, feeAccountAddr, pool.PoolTokenDenomFor()).Amount)
}

func TestExecuteSwap_HostFeeSplit(t *testing.T) {
	k, ctx, bank := setup(t)

	msg := types.NewMsgCreatePool(
		creatorAddr.String(), "atoken", "btoken",
		math.NewInt(1_000_000), math.NewInt(1_000_000),
		types.SwapCurve{CurveType: types.CurveConstantProduct},
		types.FeeSchedule{
			TradeFeeNumerator:        25,
			TradeFeeDenominator:      10_000,
			OwnerTradeFeeNumerator:   5,
			OwnerTradeFeeDenominator: 10_000,
			HostFeeNumerator:         20,
			HostFeeDenominator:       100,
		},
		feeAccountAddr.String(),
	)
	pool, err := k.CreatePool(ctx, msg)
	require.NoError(t, err)

	bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin("atoken", math.NewInt(100_000))))
	_, err = k.ExecuteSwap(ctx, traderAddr, pool.Id, "atoken", math.NewInt(100_000), math.ZeroInt(), hostAddr.String())
	require.NoError(t, err)

	// the referral account named in the call gets 20% of the 22727 minted
	// pool tokens, the owner the rest
	lpDenom := pool.PoolTokenDenomFor()
	require.Equal(t, math.NewInt(4_545), bank.GetBalance(ctx, hostAddr, lpDenom).Amount)
	require.Equal(t, math.NewInt(18_182), bank.GetBalance(ctx, feeAccountAddr, lpDenom).Amount)
}

func TestExecuteSwap_NoHostAccountNoSplit(t *testing.T) {
	k, ctx, bank := setup(t)

	msg := types.NewMsgCreatePool(
		creatorAddr.String(), "atoken", "btoken",
		math.NewInt(1_000_000), math.NewInt(1_000_000),
		types.SwapCurve{CurveType: types.CurveConstantProduct},
		types.FeeSchedule{
			TradeFeeNumerator:        25,
			TradeFeeDenominator:      10_000,
			OwnerTradeFeeNumerator:   5,
			OwnerTradeFeeDenominator: 10_000,
			HostFeeNumerator:         20,
			HostFeeDenominator:       100,
		},
		feeAccountAddr.String(),
	)
	pool, err := k.CreatePool(ctx, msg)
	require.NoError(t, err)

	// without a referral account in the call the owner keeps the full mint
	bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin("atoken", math.NewInt(100_000))))
	_, err = k.ExecuteSwap(ctx, traderAddr, pool.Id, "atoken", math.NewInt(100_000), math.ZeroInt(), "")
	require.NoError(t, err)

	lpDenom := pool.PoolTokenDenomFor()
	require.True(t, bank.GetBalance(ctx, hostAddr, lpDenom).Amount.IsZero())
	require.Equal(t, math.NewInt(22_727), bank.GetBalance(ctx, feeAccountAddr, lpDenom).Amount)
}

func TestExecuteSwap_ReverseDirection(t *testing.T) {
	k, ctx, bank := setup(t)
	pool := createPool(t, k, ctx, "atoken", "btoken")
	bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin("btoken", math.NewInt(100_000))))

	out, err := k.ExecuteSwap(ctx, traderAddr, pool.Id, "btoken", math.NewInt(100_000), math.ZeroInt(), "")
	require.NoError(t, err)
	// symmetric reserves, symmetric price
	require.Equal(t, math.NewInt(90_661), out)

	updated, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(909_339), updated.ReserveA)
	require.Equal(t, math.NewInt(1_100_000), updated.ReserveB)
}

func TestExecuteSwap_SlippageLeavesStateUntouched(t *testing.T) {
	k, ctx, bank := setup(t)
	pool := createPool(t, k, ctx, "atoken", "btoken")
	bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin("atoken", math.NewInt(100_000))))

	_, err := k.ExecuteSwap(ctx, traderAddr, pool.Id, "atoken", math.NewInt(100_000), math.NewInt(90_662), "")
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// nothing moved
	untouched, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, pool, untouched)
	require.Equal(t, math.NewInt(100_000), bank.GetBalance(ctx, traderAddr, "atoken").Amount)
}

func TestExecuteSwap_Rejections(t *testing.T) {
	k, ctx, bank := setup(t)
	pool := createPool(t, k, ctx, "atoken", "btoken")
	bank.FundAccount(traderAddr, sdk.NewCoins(sdk.NewCoin("atoken", math.NewInt(100_000))))

	_, err := k.ExecuteSwap(ctx, traderAddr, pool.Id, "atoken", math.ZeroInt(), math.ZeroInt(), "")
	require.ErrorIs(t, err, types.ErrZeroTradeAmount)

	_, err = k.ExecuteSwap(ctx, traderAddr, pool.Id, "ctoken", math.NewInt(1_000), math.ZeroInt(), "")
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)

	_, err = k.ExecuteSwap(ctx, traderAddr, 42, "atoken", math.NewInt(1_000), math.ZeroInt(), "")
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestExecuteSwap_ConstantProductNeverDecreases(t *testing.T) {
	k, ctx, bank := setup(t)
	pool := createPool(t, k, ctx, "atoken", "btoken")
	bank.FundAccount(traderAddr, sdk.NewCoins(
		sdk.NewCoin("atoken", math.NewInt(10_000_000)),
		sdk.NewCoin("btoken", math.NewInt(10_000_000)),
	))

	oldK := pool.ReserveA.Mul(pool.ReserveB)
	for _, amountIn := range []int64{1_000, 50_000, 500_000} {
		_, err := k.ExecuteSwap(ctx, traderAddr, pool.Id, "atoken", math.NewInt(amountIn), math.ZeroInt(), "")
		require.NoError(t, err)

		updated, err := k.GetPool(ctx, pool.Id)
		require.NoError(t, err)
		newK := updated.ReserveA.Mul(updated.ReserveB)
		require.True(t, newK.GTE(oldK))
		oldK = newK
	}
}

func TestSimulateSwap_DoesNotMutate(t *testing.T) {
	k, ctx, _ := setup(t)
	pool := createPool(t, k, ctx, "atoken", "btoken")

	out, err := k.SimulateSwap(ctx, pool.Id, "atoken", math.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90_661), out)

	untouched, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, pool, untouched)
}

func TestGetSpotPrice(t *testing.T) {
	k, ctx, _ := setup(t)

	msg := types.NewMsgCreatePool(
		creatorAddr.String(), "atoken", "btoken",
		math.NewInt(1_000_000), math.NewInt(2_000_000),
		types.SwapCurve{CurveType: types.CurveConstantProduct},
		standardFees(), feeAccountAddr.String(),
	)
	pool, err := k.CreatePool(ctx, msg)
	require.NoError(t, err)

	price, err := k.GetSpotPrice(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(2), price)
}

func TestGetSpotPrice_ConstantPrice(t *testing.T) {
	k, ctx, _ := setup(t)

	msg := types.NewMsgCreatePool(
		creatorAddr.String(), "atoken", "btoken",
		math.NewInt(1_000_000), math.NewInt(1_000_000),
		types.SwapCurve{
			CurveType:  types.CurveConstantPrice,
			Parameters: types.CurveParameters{TokenBPrice: 4},
		},
		standardFees(), feeAccountAddr.String(),
	)
	pool, err := k.CreatePool(ctx, msg)
	require.NoError(t, err)

	price, err := k.GetSpotPrice(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDecWithPrec(25, 2), price)

	// a price beyond the int64 range must not flip sign
	big := types.NewMsgCreatePool(
		creatorAddr.String(), "atoken", "ctoken",
		math.NewInt(1_000_000), math.NewInt(1_000_000),
		types.SwapCurve{
			CurveType:  types.CurveConstantPrice,
			Parameters: types.CurveParameters{TokenBPrice: 1 << 63},
		},
		standardFees(), feeAccountAddr.String(),
	)
	bigPool, err := k.CreatePool(ctx, big)
	require.NoError(t, err)

	price, err = k.GetSpotPrice(ctx, bigPool.Id)
	require.NoError(t, err)
	require.False(t, price.IsNegative())
}
