package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

// GetPoolCount returns the number of pools created so far. Pool IDs are
// sequential, so this is also the next pool ID.
func (k Keeper) GetPoolCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetPoolCount sets the pool counter
func (k Keeper) SetPoolCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(types.PoolCountKey, bz)
}

// nextPoolID returns the next pool ID and advances the counter
func (k Keeper) nextPoolID(ctx context.Context) uint64 {
	count := k.GetPoolCount(ctx)
	k.SetPoolCount(ctx, count+1)
	return count
}

// CreatePool registers a new pool for an unordered token pair and curve type,
// pulls the initial reserves from the creator and mints the bootstrap pool
// token supply to them. The registry is append-only: a second pool for the
// same pair and curve fails with ErrDuplicatePool.
func (k Keeper) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.Pool, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	curve, err := msg.Curve()
	if err != nil {
		return nil, err
	}
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}

	params := k.GetParams(ctx)

	tokenA, tokenB := msg.TokenA, msg.TokenB
	amountA, amountB := msg.AmountA, msg.AmountB
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
		amountA, amountB = amountB, amountA
	}

	if amountA.LT(params.MinInitialLiquidity) || amountB.LT(params.MinInitialLiquidity) {
		return nil, types.ErrInsufficientLiquidity.Wrapf(
			"initial reserves %s/%s below minimum %s", amountA, amountB, params.MinInitialLiquidity)
	}

	if _, found := k.GetPoolByPair(ctx, tokenA, tokenB, curve.CurveType); found {
		return nil, types.ErrDuplicatePool.Wrapf(
			"pool already exists for pair %s/%s with %s curve", tokenA, tokenB, curve.CurveType)
	}

	poolCount := k.GetPoolCount(ctx)
	if poolCount >= params.MaxPools {
		return nil, types.ErrMaxPoolsReached.Wrapf("maximum number of pools (%d) reached", params.MaxPools)
	}

	poolID := k.nextPoolID(ctx)
	pool := &types.Pool{
		Id:              poolID,
		TokenA:          tokenA,
		TokenB:          tokenB,
		ReserveA:        amountA,
		ReserveB:        amountB,
		PoolTokenSupply: math.NewInt(types.InitialPoolTokenSupply),
		Curve:           curve,
		Fees:            msg.Fees,
		FeeAccount:      msg.FeeAccount,
		Creator:         creator.String(),
	}
	if err := pool.Validate(); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	reserves := sdk.NewCoins(sdk.NewCoin(tokenA, amountA), sdk.NewCoin(tokenB, amountB))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, types.ModuleName, reserves); err != nil {
		return nil, types.ErrInsufficientLiquidity.Wrapf("failed to collect initial reserves: %v", err)
	}

	poolTokens := sdk.NewCoins(sdk.NewCoin(pool.PoolTokenDenomFor(), pool.PoolTokenSupply))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, poolTokens); err != nil {
		return nil, fmt.Errorf("CreatePool: mint pool tokens: %w", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, creator, poolTokens); err != nil {
		return nil, fmt.Errorf("CreatePool: send pool tokens to creator: %w", err)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return nil, err
	}
	k.setPoolByPair(ctx, tokenA, tokenB, curve.CurveType, poolID)

	k.metrics.PoolsTotal.Inc()

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeCreatePool,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyCurveType, curve.CurveType.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyPoolTokens, pool.PoolTokenSupply.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, creator.String()),
		),
	})

	return pool, nil
}

// GetPool retrieves a pool by its numeric ID.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetPoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := k.cdc.UnmarshalJSON(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.MarshalJSON(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(types.GetPoolKey(pool.Id), bz)
	return nil
}

// GetPoolByPair resolves a pool by unordered token pair and curve type.
func (k Keeper) GetPoolByPair(ctx context.Context, tokenA, tokenB string, curveType types.CurveType) (*types.Pool, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetPoolByPairKey(tokenA, tokenB, curveType))
	if bz == nil {
		return nil, false
	}

	pool, err := k.GetPool(ctx, binary.BigEndian.Uint64(bz))
	if err != nil {
		return nil, false
	}
	return pool, true
}

// setPoolByPair indexes a pool under its registry key
func (k Keeper) setPoolByPair(ctx context.Context, tokenA, tokenB string, curveType types.CurveType, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(types.GetPoolByPairKey(tokenA, tokenB, curveType), bz)
}

// IteratePools iterates over all pools in ID order
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKey)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns every pool in the store
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}
