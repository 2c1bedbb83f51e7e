package types

import (
	"cosmossdk.io/math"
)

// Pool is the persisted state of one liquidity pool. Reserves mirror the
// module account's trading token balances; PoolTokenSupply mirrors the bank
// supply of the pool's share denom. Both are updated in the same commit as
// the transfers that move them.
type Pool struct {
	Id              uint64      `json:"id"`
	TokenA          string      `json:"token_a"`
	TokenB          string      `json:"token_b"`
	ReserveA        math.Int    `json:"reserve_a"`
	ReserveB        math.Int    `json:"reserve_b"`
	PoolTokenSupply math.Int    `json:"pool_token_supply"`
	Curve           SwapCurve   `json:"curve"`
	Fees            FeeSchedule `json:"fees"`
	FeeAccount      string      `json:"fee_account"`
	Creator         string      `json:"creator"`
}

// OrderedPair returns the pool's token pair in lexicographic order, the
// canonical form used by the registry index.
func OrderedPair(tokenA, tokenB string) (string, string) {
	if tokenA < tokenB {
		return tokenA, tokenB
	}
	return tokenB, tokenA
}

// PoolTokenDenomFor returns the share denom of this pool.
func (p Pool) PoolTokenDenomFor() string {
	return PoolTokenDenom(p.Id)
}

// HasToken reports whether denom is one of the pool's trading tokens.
func (p Pool) HasToken(denom string) bool {
	return denom == p.TokenA || denom == p.TokenB
}

// DirectionFor maps an input denom to a trade direction.
func (p Pool) DirectionFor(tokenIn string) (TradeDirection, error) {
	switch tokenIn {
	case p.TokenA:
		return TradeAToB, nil
	case p.TokenB:
		return TradeBToA, nil
	default:
		return 0, ErrInvalidTokenPair.Wrapf("token %s is not part of pool %d", tokenIn, p.Id)
	}
}

// ReservesFor returns the (source, destination) reserves for a direction.
func (p Pool) ReservesFor(direction TradeDirection) (math.Int, math.Int) {
	if direction == TradeAToB {
		return p.ReserveA, p.ReserveB
	}
	return p.ReserveB, p.ReserveA
}

// SetReserves writes back post-trade reserves for a direction.
func (p *Pool) SetReserves(direction TradeDirection, source, destination math.Int) {
	if direction == TradeAToB {
		p.ReserveA, p.ReserveB = source, destination
	} else {
		p.ReserveB, p.ReserveA = source, destination
	}
}

// TokenOut returns the denom on the opposite side of tokenIn.
func (p Pool) TokenOut(tokenIn string) string {
	if tokenIn == p.TokenA {
		return p.TokenB
	}
	return p.TokenA
}

// Validate checks structural pool invariants.
func (p Pool) Validate() error {
	if p.TokenA == "" || p.TokenB == "" {
		return ErrInvalidTokenPair.Wrap("pool tokens cannot be empty")
	}
	if p.TokenA == p.TokenB {
		return ErrInvalidTokenPair.Wrapf("pool tokens must differ, got %s twice", p.TokenA)
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.ReserveA.IsNegative() || p.ReserveB.IsNegative() {
		return ErrInvalidPoolState.Wrap("reserves must be non-negative")
	}
	if p.PoolTokenSupply.IsNil() || p.PoolTokenSupply.IsNegative() {
		return ErrInvalidPoolState.Wrap("pool token supply must be non-negative")
	}
	if p.FeeAccount == "" {
		return ErrInvalidAddress.Wrap("fee account cannot be empty")
	}
	if err := p.Curve.Validate(); err != nil {
		return err
	}
	return p.Fees.Validate()
}
