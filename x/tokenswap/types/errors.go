package types

import (
	"cosmossdk.io/errors"
)

// Token-swap module sentinel errors
var (
	ErrPoolNotFound              = errors.Register(ModuleName, 1, "pool not found")
	ErrDuplicatePool             = errors.Register(ModuleName, 2, "pool already exists for token pair and curve type")
	ErrInvalidTokenPair          = errors.Register(ModuleName, 3, "invalid token pair")
	ErrInvalidInput              = errors.Register(ModuleName, 4, "invalid input")
	ErrZeroTradeAmount           = errors.Register(ModuleName, 5, "trade amount cannot be zero")
	ErrSlippageExceeded          = errors.Register(ModuleName, 6, "output amount below caller minimum")
	ErrCalculationFailure        = errors.Register(ModuleName, 7, "swap calculation failure")
	ErrInvalidCurveState         = errors.Register(ModuleName, 8, "invalid curve state")
	ErrUnsupportedCurveOperation = errors.Register(ModuleName, 9, "operation not supported by curve type")
	ErrInvalidFee                = errors.Register(ModuleName, 10, "invalid fee schedule")
	ErrInvalidPoolState          = errors.Register(ModuleName, 11, "invalid pool state")
	ErrInvalidInstruction        = errors.Register(ModuleName, 12, "invalid instruction data")
	ErrUnauthorized              = errors.Register(ModuleName, 13, "unauthorized")
	ErrInvalidAddress            = errors.Register(ModuleName, 14, "invalid address")
	ErrMaxPoolsReached           = errors.Register(ModuleName, 15, "maximum number of pools reached")
	ErrInsufficientLiquidity     = errors.Register(ModuleName, 16, "insufficient liquidity")
	ErrInvariantViolation        = errors.Register(ModuleName, 17, "pool invariant violation")
)
