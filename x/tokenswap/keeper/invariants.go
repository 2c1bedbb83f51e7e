package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/solana-labs/solana-program-library-sub004/x/tokenswap/types"
)

// RegisterInvariants registers all tokenswap invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "registry-index", RegistryIndexInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-token-supply", PoolTokenSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-account-balance", ModuleAccountBalanceInvariant(k))
}

// AllInvariants runs all invariants of the tokenswap module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolStateInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = RegistryIndexInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = PoolTokenSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ModuleAccountBalanceInvariant(k)(ctx)
	}
}

// PoolStateInvariant checks every pool's structural validity
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string

		_ = k.IteratePools(ctx, func(pool types.Pool) bool {
			if err := pool.Validate(); err != nil {
				broken = true
				msg = fmt.Sprintf("pool %d invalid: %v", pool.Id, err)
				return true
			}
			if !pool.PoolTokenSupply.IsPositive() {
				broken = true
				msg = fmt.Sprintf("pool %d has non-positive supply %s", pool.Id, pool.PoolTokenSupply)
				return true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "pool-state", msg), broken
	}
}

// RegistryIndexInvariant checks that every pool is reachable through its
// pair index and that the index points back at the same pool
func RegistryIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string

		_ = k.IteratePools(ctx, func(pool types.Pool) bool {
			indexed, found := k.GetPoolByPair(ctx, pool.TokenA, pool.TokenB, pool.Curve.CurveType)
			if !found || indexed.Id != pool.Id {
				broken = true
				msg = fmt.Sprintf("pool %d missing or mismatched in pair index", pool.Id)
				return true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "registry-index", msg), broken
	}
}

// PoolTokenSupplyInvariant checks that each pool's recorded supply matches
// the bank supply of its share denom
func PoolTokenSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string

		_ = k.IteratePools(ctx, func(pool types.Pool) bool {
			bankSupply := k.bankKeeper.GetSupply(ctx, pool.PoolTokenDenomFor())
			if !bankSupply.Amount.Equal(pool.PoolTokenSupply) {
				broken = true
				msg = fmt.Sprintf(
					"pool %d supply %s does not match bank supply %s",
					pool.Id, pool.PoolTokenSupply, bankSupply.Amount)
				return true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "pool-token-supply", msg), broken
	}
}

// ModuleAccountBalanceInvariant checks that the module account holds at
// least every pool's recorded reserves
func ModuleAccountBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var broken bool
		var msg string
		moduleAddr := k.GetModuleAddress()

		totals := sdk.NewCoins()
		_ = k.IteratePools(ctx, func(pool types.Pool) bool {
			totals = totals.Add(sdk.NewCoin(pool.TokenA, pool.ReserveA))
			totals = totals.Add(sdk.NewCoin(pool.TokenB, pool.ReserveB))
			return false
		})

		for _, coin := range totals {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, coin.Denom)
			if balance.Amount.LT(coin.Amount) {
				broken = true
				msg = fmt.Sprintf(
					"module holds %s %s, pools record %s",
					balance.Amount, coin.Denom, coin.Amount)
				break
			}
		}

		return sdk.FormatInvariant(types.ModuleName, "module-account-balance", msg), broken
	}
}
