package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/solana-labs/solana-program-library-sub004/testutil/keeper"
	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/keeper"
	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

var (
	creatorAddr    = sdk.AccAddress([]byte("creator_____________"))
	traderAddr     = sdk.AccAddress([]byte("trader______________"))
	providerAddr   = sdk.AccAddress([]byte("provider____________"))
	feeAccountAddr = sdk.AccAddress([]byte("fee_account_________"))
	hostAddr       = sdk.AccAddress([]byte("host________________"))
)

func standardFees() types.FeeSchedule {
	return types.FeeSchedule{
		TradeFeeNumerator:        25,
		TradeFeeDenominator:      10_000,
		OwnerTradeFeeNumerator:   5,
		OwnerTradeFeeDenominator: 10_000,
	}
}

// setup creates a keeper with a funded creator
func setup(t *testing.T) (*keeper.Keeper, sdk.Context, *testkeeper.BankMock) {
	k, ctx, bank := testkeeper.TokenswapKeeper(t)
	bank.FundAccount(creatorAddr, sdk.NewCoins(
		sdk.NewCoin("atoken", math.NewInt(100_000_000)),
		sdk.NewCoin("btoken", math.NewInt(100_000_000)),
		sdk.NewCoin("ctoken", math.NewInt(100_000_000)),
	))
	return k, ctx, bank
}

// createPool registers a constant product pool with the standard fee
// schedule and one million reserves on each side
func createPool(t *testing.T, k *keeper.Keeper, ctx sdk.Context, tokenA, tokenB string) *types.Pool {
	t.Helper()
	msg := types.NewMsgCreatePool(
		creatorAddr.String(), tokenA, tokenB,
		math.NewInt(1_000_000), math.NewInt(1_000_000),
		types.SwapCurve{CurveType: types.CurveConstantProduct},
		standardFees(),
		feeAccountAddr.String(),
	)
	pool, err := k.CreatePool(ctx, msg)
	require.NoError(t, err)
	return pool
}
