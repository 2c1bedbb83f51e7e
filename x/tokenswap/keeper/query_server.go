package keeper

import (
	"context"
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the tokenswap QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	return &types.QueryParamsResponse{Params: qs.Keeper.GetParams(goCtx)}, nil
}

// Pool returns a specific pool by ID
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	pool, err := qs.Keeper.GetPool(goCtx, req.PoolId)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Pool: *pool}, nil
}

// Pools returns all registered pools
func (qs queryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	pools, err := qs.Keeper.GetAllPools(goCtx)
	if err != nil {
		return nil, fmt.Errorf("Pools: %w", err)
	}
	return &types.QueryPoolsResponse{Pools: pools}, nil
}

// PoolByPair resolves a pool by unordered token pair and curve type
func (qs queryServer) PoolByPair(goCtx context.Context, req *types.QueryPoolByPairRequest) (*types.QueryPoolByPairResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	curveType, err := types.CurveTypeFromByte(req.CurveType)
	if err != nil {
		return nil, err
	}
	pool, found := qs.Keeper.GetPoolByPair(goCtx, req.TokenA, req.TokenB, curveType)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf(
			"no pool for pair %s/%s with %s curve", req.TokenA, req.TokenB, curveType)
	}
	return &types.QueryPoolByPairResponse{Pool: *pool}, nil
}

// SpotPrice returns a pool's instantaneous tokenB-per-tokenA price
func (qs queryServer) SpotPrice(goCtx context.Context, req *types.QuerySpotPriceRequest) (*types.QuerySpotPriceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	price, err := qs.Keeper.GetSpotPrice(goCtx, req.PoolId)
	if err != nil {
		return nil, err
	}
	return &types.QuerySpotPriceResponse{Price: price}, nil
}

// SimulateSwap prices a swap without executing it
func (qs queryServer) SimulateSwap(goCtx context.Context, req *types.QuerySimulateSwapRequest) (*types.QuerySimulateSwapResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	amountOut, err := qs.Keeper.SimulateSwap(goCtx, req.PoolId, req.TokenIn, req.AmountIn)
	if err != nil {
		return nil, err
	}
	return &types.QuerySimulateSwapResponse{AmountOut: amountOut}, nil
}
