package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the tokenswap MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool handles the creation of a new liquidity pool
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	pool, err := ms.Keeper.CreatePool(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: %w", err)
	}
	return &types.MsgCreatePoolResponse{
		PoolId:     pool.Id,
		PoolTokens: pool.PoolTokenSupply,
	}, nil
}

// Swap handles a single-pool exact-input trade
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid trader address: %w", err)
	}

	amountOut, err := ms.Keeper.ExecuteSwap(goCtx, trader, msg.PoolId, msg.TokenIn, msg.AmountIn, msg.MinAmountOut, msg.HostFeeAccount)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}
	return &types.MsgSwapResponse{AmountOut: amountOut}, nil
}

// RoutedSwap handles a two-pool exact-input trade
func (ms msgServer) RoutedSwap(goCtx context.Context, msg *types.MsgRoutedSwap) (*types.MsgRoutedSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RoutedSwap: validate: %w", err)
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("RoutedSwap: invalid trader address: %w", err)
	}

	amountOut, err := ms.Keeper.ExecuteRoutedSwap(goCtx, trader, msg.PoolIds, msg.TokenIn, msg.AmountIn, msg.MinAmountOut, msg.HostFeeAccount)
	if err != nil {
		return nil, fmt.Errorf("RoutedSwap: %w", err)
	}
	return &types.MsgRoutedSwapResponse{AmountOut: amountOut}, nil
}

// DepositAllTokenTypes handles a pro rata two-sided deposit
func (ms msgServer) DepositAllTokenTypes(goCtx context.Context, msg *types.MsgDepositAllTokenTypes) (*types.MsgDepositAllTokenTypesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DepositAllTokenTypes: validate: %w", err)
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("DepositAllTokenTypes: invalid provider address: %w", err)
	}

	amountA, amountB, err := ms.Keeper.DepositAllTokenTypes(
		goCtx, provider, msg.PoolId, msg.PoolTokenAmount, msg.MaxAmountA, msg.MaxAmountB)
	if err != nil {
		return nil, fmt.Errorf("DepositAllTokenTypes: %w", err)
	}
	return &types.MsgDepositAllTokenTypesResponse{
		AmountA:    amountA,
		AmountB:    amountB,
		PoolTokens: msg.PoolTokenAmount,
	}, nil
}

// WithdrawAllTokenTypes handles a pro rata two-sided withdrawal
func (ms msgServer) WithdrawAllTokenTypes(goCtx context.Context, msg *types.MsgWithdrawAllTokenTypes) (*types.MsgWithdrawAllTokenTypesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawAllTokenTypes: validate: %w", err)
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("WithdrawAllTokenTypes: invalid provider address: %w", err)
	}

	amountA, amountB, err := ms.Keeper.WithdrawAllTokenTypes(
		goCtx, provider, msg.PoolId, msg.PoolTokenAmount, msg.MinAmountA, msg.MinAmountB)
	if err != nil {
		return nil, fmt.Errorf("WithdrawAllTokenTypes: %w", err)
	}
	return &types.MsgWithdrawAllTokenTypesResponse{
		AmountA: amountA,
		AmountB: amountB,
	}, nil
}

// DepositSingleTokenType handles a one-sided exact-input deposit
func (ms msgServer) DepositSingleTokenType(goCtx context.Context, msg *types.MsgDepositSingleTokenType) (*types.MsgDepositSingleTokenTypeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DepositSingleTokenType: validate: %w", err)
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("DepositSingleTokenType: invalid provider address: %w", err)
	}

	poolTokens, err := ms.Keeper.DepositSingleTokenType(
		goCtx, provider, msg.PoolId, msg.TokenIn, msg.AmountIn, msg.MinPoolTokens)
	if err != nil {
		return nil, fmt.Errorf("DepositSingleTokenType: %w", err)
	}
	return &types.MsgDepositSingleTokenTypeResponse{PoolTokens: poolTokens}, nil
}

// WithdrawSingleTokenType handles a one-sided exact-output withdrawal
func (ms msgServer) WithdrawSingleTokenType(goCtx context.Context, msg *types.MsgWithdrawSingleTokenType) (*types.MsgWithdrawSingleTokenTypeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawSingleTokenType: validate: %w", err)
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("WithdrawSingleTokenType: invalid provider address: %w", err)
	}

	burned, err := ms.Keeper.WithdrawSingleTokenType(
		goCtx, provider, msg.PoolId, msg.TokenOut, msg.AmountOut, msg.MaxPoolTokens)
	if err != nil {
		return nil, fmt.Errorf("WithdrawSingleTokenType: %w", err)
	}
	return &types.MsgWithdrawSingleTokenTypeResponse{PoolTokensBurned: burned}, nil
}
