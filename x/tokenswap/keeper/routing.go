package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

// routeLeg is one fully priced hop of a routed swap, held in memory until
// both legs are known to succeed.
type routeLeg struct {
	pool      *types.Pool
	direction types.TradeDirection
	result    types.SwapResult
	tokenIn   string
	tokenOut  string
}

// ExecuteRoutedSwap trades through two pools that share exactly one token.
// Both legs are priced before either is committed, so a failure on the
// second leg leaves the first pool untouched. The committed pool states are
// identical to those of two sequential independent swaps with the same
// inputs; only the bank movement differs, with the bridging token staying
// inside the module account.
func (k Keeper) ExecuteRoutedSwap(ctx context.Context, trader sdk.AccAddress, poolIDs []uint64, tokenIn string, amountIn, minAmountOut math.Int, hostFeeAccount string) (math.Int, error) {
	if len(poolIDs) != types.RouteLength {
		return math.Int{}, types.ErrInvalidInput.Wrapf("route must name exactly %d pools", types.RouteLength)
	}
	if poolIDs[0] == poolIDs[1] {
		return math.Int{}, types.ErrInvalidInput.Wrap("route cannot use the same pool twice")
	}

	// phase 1: price both legs with nothing written
	legs := make([]routeLeg, 0, types.RouteLength)
	legTokenIn := tokenIn
	legAmountIn := amountIn
	for _, poolID := range poolIDs {
		pool, err := k.GetPool(ctx, poolID)
		if err != nil {
			return math.Int{}, err
		}
		result, direction, err := k.computeSwap(pool, legTokenIn, legAmountIn, math.ZeroInt())
		if err != nil {
			return math.Int{}, err
		}
		tokenOut := pool.TokenOut(legTokenIn)
		legs = append(legs, routeLeg{
			pool:      pool,
			direction: direction,
			result:    result,
			tokenIn:   legTokenIn,
			tokenOut:  tokenOut,
		})
		legTokenIn = tokenOut
		legAmountIn = result.DestinationAmountSwapped
	}

	finalOut := legs[len(legs)-1].result.DestinationAmountSwapped
	if finalOut.LT(minAmountOut) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"final output %s below minimum %s", finalOut, minAmountOut)
	}

	// phase 2: commit both legs; bank moves only at the route edges
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName,
		sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))); err != nil {
		return math.Int{}, types.ErrInvalidInput.Wrapf("failed to collect swap input: %v", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader,
		sdk.NewCoins(sdk.NewCoin(legs[1].tokenOut, finalOut))); err != nil {
		return math.Int{}, fmt.Errorf("ExecuteRoutedSwap: pay out: %w", err)
	}

	for _, leg := range legs {
		if err := k.applySwap(ctx, leg.pool, leg.result, leg.direction, hostFeeAccount); err != nil {
			return math.Int{}, err
		}
		if err := k.SetPool(ctx, leg.pool); err != nil {
			return math.Int{}, err
		}
	}

	k.metrics.RoutedSwapsTotal.Inc()

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRoutedSwap,
		sdk.NewAttribute(types.AttributeKeyRoutePoolIDs, fmt.Sprintf("%d,%d", poolIDs[0], poolIDs[1])),
		sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
		sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
		sdk.NewAttribute(types.AttributeKeyTokenOut, legs[1].tokenOut),
		sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
		sdk.NewAttribute(types.AttributeKeyAmountOut, finalOut.String()),
	))

	return finalOut, nil
}

// SimulateRoutedSwap prices a two-pool route without executing it.
func (k Keeper) SimulateRoutedSwap(ctx context.Context, poolIDs []uint64, tokenIn string, amountIn math.Int) (math.Int, error) {
	if len(poolIDs) != types.RouteLength {
		return math.Int{}, types.ErrInvalidInput.Wrapf("route must name exactly %d pools", types.RouteLength)
	}

	legTokenIn := tokenIn
	legAmountIn := amountIn
	for _, poolID := range poolIDs {
		pool, err := k.GetPool(ctx, poolID)
		if err != nil {
			return math.Int{}, err
		}
		result, _, err := k.computeSwap(pool, legTokenIn, legAmountIn, math.ZeroInt())
		if err != nil {
			return math.Int{}, err
		}
		legTokenIn = pool.TokenOut(legTokenIn)
		legAmountIn = result.DestinationAmountSwapped
	}
	return legAmountIn, nil
}
