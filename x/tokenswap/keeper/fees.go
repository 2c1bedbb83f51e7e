package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

// settleOwnerFee realizes an owner trade fee taken in source trading tokens
// by minting the equivalent pool tokens against the post-swap reserve. The
// host slice, when the trade names a host fee account, comes out of the
// minted amount; the remainder goes to the pool's fee account. The pool's
// supply is updated in place, the caller persists it.
func (k Keeper) settleOwnerFee(ctx context.Context, pool *types.Pool, ownerFee, postSwapSourceReserve math.Int, hostFeeAccount string) (math.Int, error) {
	minted := pool.Curve.OwnerFeePoolTokens(ownerFee, postSwapSourceReserve, pool.PoolTokenSupply)
	if minted.IsZero() {
		return math.ZeroInt(), nil
	}

	denom := pool.PoolTokenDenomFor()
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, sdk.NewCoins(sdk.NewCoin(denom, minted))); err != nil {
		return math.Int{}, fmt.Errorf("settleOwnerFee: mint pool tokens: %w", err)
	}

	hostTokens := math.ZeroInt()
	if hostFeeAccount != "" {
		hostTokens = pool.Fees.HostFee(minted)
	}

	if hostTokens.IsPositive() {
		hostAddr, err := sdk.AccAddressFromBech32(hostFeeAccount)
		if err != nil {
			return math.Int{}, types.ErrInvalidAddress.Wrapf("invalid host fee account: %s", err)
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(
			ctx, types.ModuleName, hostAddr, sdk.NewCoins(sdk.NewCoin(denom, hostTokens))); err != nil {
			return math.Int{}, fmt.Errorf("settleOwnerFee: send host share: %w", err)
		}
	}

	ownerTokens := minted.Sub(hostTokens)
	if ownerTokens.IsPositive() {
		feeAddr, err := sdk.AccAddressFromBech32(pool.FeeAccount)
		if err != nil {
			return math.Int{}, types.ErrInvalidAddress.Wrapf("invalid fee account: %s", err)
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(
			ctx, types.ModuleName, feeAddr, sdk.NewCoins(sdk.NewCoin(denom, ownerTokens))); err != nil {
			return math.Int{}, fmt.Errorf("settleOwnerFee: send owner share: %w", err)
		}
	}

	pool.PoolTokenSupply = pool.PoolTokenSupply.Add(minted)
	k.metrics.OwnerFeeMints.Inc()

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeOwnerFeeMinted,
		sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
		sdk.NewAttribute(types.AttributeKeyPoolTokens, minted.String()),
		sdk.NewAttribute(types.AttributeKeyHostFeeTokens, hostTokens.String()),
		sdk.NewAttribute(types.AttributeKeyFeeAccount, pool.FeeAccount),
	))

	return minted, nil
}

// withdrawFeePoolTokens computes the owner withdraw fee on a pool token
// burn. The fee is waived when the withdrawer is the pool's fee account.
func withdrawFeePoolTokens(pool *types.Pool, withdrawer string, poolTokenAmount math.Int) math.Int {
	if withdrawer == pool.FeeAccount {
		return math.ZeroInt()
	}
	return pool.Fees.OwnerWithdrawFee(poolTokenAmount)
}
