package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

// DepositAllTokenTypes deposits both trading tokens pro rata for an exact
// number of freshly minted pool tokens. The required amounts are floored
// from the current reserve ratio and bounded by the caller's maximums.
func (k Keeper) DepositAllTokenTypes(ctx context.Context, provider sdk.AccAddress, poolID uint64, poolTokenAmount, maxAmountA, maxAmountB math.Int) (amountA, amountB math.Int, err error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !poolTokenAmount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroTradeAmount.Wrap("pool token amount must be positive")
	}

	amountA, err = types.PoolTokensToTradingTokens(poolTokenAmount, pool.PoolTokenSupply, pool.ReserveA)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountB, err = types.PoolTokensToTradingTokens(poolTokenAmount, pool.PoolTokenSupply, pool.ReserveB)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amountA.IsZero() || amountB.IsZero() {
		return math.Int{}, math.Int{}, types.ErrZeroTradeAmount.Wrap("deposit too small for current share price")
	}
	if amountA.GT(maxAmountA) || amountB.GT(maxAmountB) {
		return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"required %s/%s exceeds maximums %s/%s", amountA, amountB, maxAmountA, maxAmountB)
	}

	deposit := sdk.NewCoins(sdk.NewCoin(pool.TokenA, amountA), sdk.NewCoin(pool.TokenB, amountB))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, deposit); err != nil {
		return math.Int{}, math.Int{}, types.ErrInvalidInput.Wrapf("failed to collect deposit: %v", err)
	}
	if err := k.mintPoolTokensTo(ctx, pool, provider, poolTokenAmount); err != nil {
		return math.Int{}, math.Int{}, err
	}

	pool.ReserveA = pool.ReserveA.Add(amountA)
	pool.ReserveB = pool.ReserveB.Add(amountB)
	pool.PoolTokenSupply = pool.PoolTokenSupply.Add(poolTokenAmount)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.metrics.LiquidityOps.WithLabelValues("deposit_all").Inc()
	k.emitLiquidityEvent(ctx, types.EventTypeDeposit, pool, provider, amountA, amountB, poolTokenAmount)

	return amountA, amountB, nil
}

// WithdrawAllTokenTypes burns an exact number of pool tokens for both
// trading tokens pro rata. The owner withdraw fee shrinks the redeemed
// share while the full amount is burned, so the fee accrues to the
// remaining holders as dilution.
func (k Keeper) WithdrawAllTokenTypes(ctx context.Context, provider sdk.AccAddress, poolID uint64, poolTokenAmount, minAmountA, minAmountB math.Int) (amountA, amountB math.Int, err error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !poolTokenAmount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroTradeAmount.Wrap("pool token amount must be positive")
	}
	if poolTokenAmount.GTE(pool.PoolTokenSupply) {
		return math.Int{}, math.Int{}, types.ErrInvalidInput.Wrap("cannot withdraw the entire pool token supply")
	}

	fee := withdrawFeePoolTokens(pool, provider.String(), poolTokenAmount)
	effective := poolTokenAmount.Sub(fee)
	if !effective.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroTradeAmount.Wrap("withdrawal does not cover the withdraw fee")
	}

	amountA, err = types.PoolTokensToTradingTokens(effective, pool.PoolTokenSupply, pool.ReserveA)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountB, err = types.PoolTokensToTradingTokens(effective, pool.PoolTokenSupply, pool.ReserveB)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amountA.IsZero() && amountB.IsZero() {
		return math.Int{}, math.Int{}, types.ErrZeroTradeAmount.Wrap("withdrawal too small for current share price")
	}
	if amountA.LT(minAmountA) || amountB.LT(minAmountB) {
		return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"redeemed %s/%s below minimums %s/%s", amountA, amountB, minAmountA, minAmountB)
	}

	if err := k.burnPoolTokensFrom(ctx, pool, provider, poolTokenAmount); err != nil {
		return math.Int{}, math.Int{}, err
	}

	payout := sdk.NewCoins()
	if amountA.IsPositive() {
		payout = payout.Add(sdk.NewCoin(pool.TokenA, amountA))
	}
	if amountB.IsPositive() {
		payout = payout.Add(sdk.NewCoin(pool.TokenB, amountB))
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, payout); err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("WithdrawAllTokenTypes: pay out: %w", err)
	}

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.PoolTokenSupply = pool.PoolTokenSupply.Sub(poolTokenAmount)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.metrics.LiquidityOps.WithLabelValues("withdraw_all").Inc()
	k.emitLiquidityEvent(ctx, types.EventTypeWithdraw, pool, provider, amountA, amountB, poolTokenAmount)

	return amountA, amountB, nil
}

// DepositSingleTokenType deposits one trading token for pool tokens. The
// trading and owner fees are charged on half the deposit, the half that is
// implicitly swapped into the other side.
func (k Keeper) DepositSingleTokenType(ctx context.Context, provider sdk.AccAddress, poolID uint64, tokenIn string, amountIn, minPoolTokens math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	if !amountIn.IsPositive() {
		return math.Int{}, types.ErrZeroTradeAmount.Wrap("deposit amount must be positive")
	}
	direction, err := pool.DirectionFor(tokenIn)
	if err != nil {
		return math.Int{}, err
	}

	half := math.MaxInt(math.OneInt(), amountIn.QuoRaw(2))
	fee := pool.Fees.TradingFee(half).Add(pool.Fees.OwnerTradingFee(half))
	effective := amountIn.Sub(fee)

	reserveIn, _ := pool.ReservesFor(direction)
	poolTokens, err := pool.Curve.TradingTokensToPoolTokens(effective, reserveIn, pool.PoolTokenSupply)
	if err != nil {
		return math.Int{}, err
	}
	if poolTokens.LT(minPoolTokens) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"minted %s below minimum %s", poolTokens, minPoolTokens)
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName,
		sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))); err != nil {
		return math.Int{}, types.ErrInvalidInput.Wrapf("failed to collect deposit: %v", err)
	}
	if err := k.mintPoolTokensTo(ctx, pool, provider, poolTokens); err != nil {
		return math.Int{}, err
	}

	// fees stay inside the reserve, so the full deposit lands there
	if direction == types.TradeAToB {
		pool.ReserveA = pool.ReserveA.Add(amountIn)
	} else {
		pool.ReserveB = pool.ReserveB.Add(amountIn)
	}
	pool.PoolTokenSupply = pool.PoolTokenSupply.Add(poolTokens)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	k.metrics.LiquidityOps.WithLabelValues("deposit_single").Inc()
	k.emitLiquidityEvent(ctx, types.EventTypeDeposit, pool, provider, amountIn, math.ZeroInt(), poolTokens)

	return poolTokens, nil
}

// WithdrawSingleTokenType withdraws an exact amount of one trading token.
// Half the withdrawal is implicitly swapped from the other side, so that
// half is grossed up by the inverse trading fees before it is priced in
// pool tokens; the owner withdraw fee comes on top of the burn.
func (k Keeper) WithdrawSingleTokenType(ctx context.Context, provider sdk.AccAddress, poolID uint64, tokenOut string, amountOut, maxPoolTokens math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}
	if !amountOut.IsPositive() {
		return math.Int{}, types.ErrZeroTradeAmount.Wrap("withdrawal amount must be positive")
	}
	if !pool.HasToken(tokenOut) {
		return math.Int{}, types.ErrInvalidTokenPair.Wrapf("token %s is not part of pool %d", tokenOut, poolID)
	}

	reserveOut := pool.ReserveA
	if tokenOut == pool.TokenB {
		reserveOut = pool.ReserveB
	}

	half := amountOut.AddRaw(1).QuoRaw(2)
	grossed := amountOut.Sub(half).Add(pool.Fees.PreTradingFeeAmount(half))

	burn, err := pool.Curve.PoolTokensForWithdrawnTokens(grossed, reserveOut, pool.PoolTokenSupply)
	if err != nil {
		return math.Int{}, err
	}
	fee := withdrawFeePoolTokens(pool, provider.String(), burn)
	total := burn.Add(fee)
	if total.GT(maxPoolTokens) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"cost %s exceeds maximum %s pool tokens", total, maxPoolTokens)
	}
	if total.GTE(pool.PoolTokenSupply) {
		return math.Int{}, types.ErrInvalidInput.Wrap("cannot withdraw the entire pool token supply")
	}

	if err := k.burnPoolTokensFrom(ctx, pool, provider, total); err != nil {
		return math.Int{}, err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider,
		sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))); err != nil {
		return math.Int{}, fmt.Errorf("WithdrawSingleTokenType: pay out: %w", err)
	}

	if tokenOut == pool.TokenA {
		pool.ReserveA = pool.ReserveA.Sub(amountOut)
	} else {
		pool.ReserveB = pool.ReserveB.Sub(amountOut)
	}
	pool.PoolTokenSupply = pool.PoolTokenSupply.Sub(total)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	k.metrics.LiquidityOps.WithLabelValues("withdraw_single").Inc()
	k.emitLiquidityEvent(ctx, types.EventTypeWithdraw, pool, provider, amountOut, math.ZeroInt(), total)

	return total, nil
}

// mintPoolTokensTo mints pool tokens through the module account and hands
// them to the recipient.
func (k Keeper) mintPoolTokensTo(ctx context.Context, pool *types.Pool, recipient sdk.AccAddress, amount math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(pool.PoolTokenDenomFor(), amount))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return fmt.Errorf("mint pool tokens: %w", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
		return fmt.Errorf("send pool tokens: %w", err)
	}
	return nil
}

// burnPoolTokensFrom pulls pool tokens from the holder and burns them.
func (k Keeper) burnPoolTokensFrom(ctx context.Context, pool *types.Pool, holder sdk.AccAddress, amount math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(pool.PoolTokenDenomFor(), amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, holder, types.ModuleName, coins); err != nil {
		return types.ErrInvalidInput.Wrapf("failed to collect pool tokens: %v", err)
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return fmt.Errorf("burn pool tokens: %w", err)
	}
	return nil
}

func (k Keeper) emitLiquidityEvent(ctx context.Context, eventType string, pool *types.Pool, provider sdk.AccAddress, amountA, amountB, poolTokens math.Int) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		eventType,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
		sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
		sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
		sdk.NewAttribute(types.AttributeKeyPoolTokens, poolTokens.String()),
	))
}
