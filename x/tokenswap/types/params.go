package types

import (
	"cosmossdk.io/math"
)

// Default module parameter values.
var (
	DefaultMaxPools            = uint64(10_000)
	DefaultMinInitialLiquidity = math.NewInt(1_000)
)

// Params holds the governable module parameters.
type Params struct {
	// MaxPools caps how many pools the registry will accept.
	MaxPools uint64 `json:"max_pools"`
	// MinInitialLiquidity is the smallest reserve either side of a new pool
	// may start with, keeping share math away from degenerate rounding.
	MinInitialLiquidity math.Int `json:"min_initial_liquidity"`
}

// DefaultParams returns the parameter defaults.
func DefaultParams() Params {
	return Params{
		MaxPools:            DefaultMaxPools,
		MinInitialLiquidity: DefaultMinInitialLiquidity,
	}
}

// Validate performs basic sanity checks on the parameter set.
func (p Params) Validate() error {
	if p.MaxPools == 0 {
		return ErrInvalidInput.Wrap("max_pools must be positive")
	}
	if p.MinInitialLiquidity.IsNil() || !p.MinInitialLiquidity.IsPositive() {
		return ErrInvalidInput.Wrap("min_initial_liquidity must be positive")
	}
	return nil
}
