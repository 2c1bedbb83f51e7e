package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

// ExecuteSwap trades an exact amount of tokenIn against a pool. The whole
// operation is computed before any state is written, so a failure at any
// step leaves the pool untouched. hostFeeAccount optionally names a referral
// account that takes a slice of the owner fee; empty means no host split.
func (k Keeper) ExecuteSwap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn string, amountIn, minAmountOut math.Int, hostFeeAccount string) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}

	result, direction, err := k.computeSwap(pool, tokenIn, amountIn, minAmountOut)
	if err != nil {
		k.metrics.SwapsTotal.WithLabelValues(pool.Curve.CurveType.String(), "rejected").Inc()
		return math.Int{}, err
	}

	tokenOut := pool.TokenOut(tokenIn)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName,
		sdk.NewCoins(sdk.NewCoin(tokenIn, result.SourceAmountSwapped))); err != nil {
		return math.Int{}, types.ErrInvalidInput.Wrapf("failed to collect swap input: %v", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader,
		sdk.NewCoins(sdk.NewCoin(tokenOut, result.DestinationAmountSwapped))); err != nil {
		return math.Int{}, fmt.Errorf("ExecuteSwap: pay out: %w", err)
	}

	if err := k.applySwap(ctx, pool, result, direction, hostFeeAccount); err != nil {
		return math.Int{}, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	k.metrics.SwapsTotal.WithLabelValues(pool.Curve.CurveType.String(), "ok").Inc()
	if result.SourceAmountSwapped.IsInt64() {
		k.metrics.SwapVolume.WithLabelValues(tokenIn).Add(float64(result.SourceAmountSwapped.Int64()))
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, result.SourceAmountSwapped.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, result.DestinationAmountSwapped.String()),
			sdk.NewAttribute(types.AttributeKeyTradeFee, result.TradeFee.String()),
			sdk.NewAttribute(types.AttributeKeyOwnerFee, result.OwnerFee.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, trader.String()),
		),
	})

	return result.DestinationAmountSwapped, nil
}

// computeSwap is the pure pricing phase shared by execution, simulation and
// routing. It never touches the store.
func (k Keeper) computeSwap(pool *types.Pool, tokenIn string, amountIn, minAmountOut math.Int) (types.SwapResult, types.TradeDirection, error) {
	direction, err := pool.DirectionFor(tokenIn)
	if err != nil {
		return types.SwapResult{}, 0, err
	}

	reserveSource, reserveDestination := pool.ReservesFor(direction)
	result, err := types.ComputeSwap(pool.Curve, pool.Fees, amountIn, reserveSource, reserveDestination, direction)
	if err != nil {
		return types.SwapResult{}, 0, err
	}

	if result.DestinationAmountSwapped.LT(minAmountOut) {
		return types.SwapResult{}, 0, types.ErrSlippageExceeded.Wrapf(
			"output %s below minimum %s", result.DestinationAmountSwapped, minAmountOut)
	}
	return result, direction, nil
}

// applySwap writes a priced trade into the pool: new reserves, owner fee
// mint, constant product check. The pool object is mutated, the caller
// persists it.
func (k Keeper) applySwap(ctx context.Context, pool *types.Pool, result types.SwapResult, direction types.TradeDirection, hostFeeAccount string) error {
	oldA, oldB := pool.ReserveA, pool.ReserveB

	pool.SetReserves(direction, result.NewSourceReserve, result.NewDestinationReserve)

	if pool.Curve.CurveType == types.CurveConstantProduct {
		if pool.ReserveA.Mul(pool.ReserveB).LT(oldA.Mul(oldB)) {
			return types.ErrInvariantViolation.Wrapf(
				"constant product decreased on pool %d", pool.Id)
		}
	}

	if result.OwnerFee.IsPositive() {
		if _, err := k.settleOwnerFee(ctx, pool, result.OwnerFee, result.NewSourceReserve, hostFeeAccount); err != nil {
			return err
		}
	}
	return nil
}

// SimulateSwap prices a swap without executing it.
func (k Keeper) SimulateSwap(ctx context.Context, poolID uint64, tokenIn string, amountIn math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	result, _, err := k.computeSwap(pool, tokenIn, amountIn, math.ZeroInt())
	if err != nil {
		return math.Int{}, err
	}
	return result.DestinationAmountSwapped, nil
}

// GetSpotPrice returns the instantaneous tokenB-per-tokenA price of a pool.
func (k Keeper) GetSpotPrice(ctx context.Context, poolID uint64) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyDec{}, err
	}

	switch pool.Curve.CurveType {
	case types.CurveConstantPrice:
		return math.LegacyOneDec().QuoInt(math.NewIntFromUint64(pool.Curve.Parameters.TokenBPrice)), nil
	case types.CurveOffset:
		virtualB := pool.ReserveB.Add(math.NewIntFromUint64(pool.Curve.Parameters.TokenBOffset))
		if !pool.ReserveA.IsPositive() {
			return math.LegacyDec{}, types.ErrInvalidCurveState.Wrap("empty token A reserve")
		}
		return math.LegacyNewDecFromInt(virtualB).QuoInt(pool.ReserveA), nil
	default:
		if !pool.ReserveA.IsPositive() {
			return math.LegacyDec{}, types.ErrInvalidCurveState.Wrap("empty token A reserve")
		}
		return math.LegacyNewDecFromInt(pool.ReserveB).QuoInt(pool.ReserveA), nil
	}
}
