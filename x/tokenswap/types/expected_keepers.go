package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the external token ledger the module settles against.
// Trading tokens move between user accounts and the module account; pool
// tokens are minted and burned through the module's mint permission.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetSupply(ctx context.Context, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
}

// TokenswapKeeperV1 is the read-side interface exported to other modules.
type TokenswapKeeperV1 interface {
	// GetPool returns pool state by ID.
	GetPool(ctx context.Context, poolID uint64) (*Pool, error)

	// GetPoolByPair finds a pool for a token pair and curve type.
	GetPoolByPair(ctx context.Context, denomA, denomB string, curveType CurveType) (*Pool, bool)

	// SimulateSwap prices a swap without executing it.
	SimulateSwap(ctx context.Context, poolID uint64, tokenIn string, amountIn sdkmath.Int) (amountOut sdkmath.Int, err error)
}
