package types

import (
	"cosmossdk.io/math"
)

// CurveType selects the pricing function of a pool.
type CurveType uint8

const (
	// CurveConstantProduct is the Uniswap-style x*y=k curve.
	CurveConstantProduct CurveType = iota
	// CurveConstantPrice trades at a fixed price, no curvature and no
	// slippage beyond fees. Intended for pegged pairs.
	CurveConstantPrice
	// CurveOffset behaves like constant product with a virtual offset added
	// to the token B reserve, letting a pool bootstrap one-sided liquidity.
	CurveOffset
)

// String implements fmt.Stringer.
func (t CurveType) String() string {
	switch t {
	case CurveConstantProduct:
		return "constant_product"
	case CurveConstantPrice:
		return "constant_price"
	case CurveOffset:
		return "offset"
	default:
		return "unknown"
	}
}

// CurveTypeFromByte converts a wire tag to a CurveType.
func CurveTypeFromByte(b uint8) (CurveType, error) {
	switch t := CurveType(b); t {
	case CurveConstantProduct, CurveConstantPrice, CurveOffset:
		return t, nil
	default:
		return 0, ErrInvalidCurveState.Wrapf("unknown curve type tag %d", b)
	}
}

// TradeDirection says which pool side the source token is on.
type TradeDirection uint8

const (
	// TradeAToB swaps token A into token B.
	TradeAToB TradeDirection = iota
	// TradeBToA swaps token B into token A.
	TradeBToA
)

// CurveParameters carries the variant-specific constants. Only the field
// relevant to the pool's curve type is consulted.
type CurveParameters struct {
	// TokenBPrice is the amount of token A equal to one token B
	// (constant price curve only).
	TokenBPrice uint64 `json:"token_b_price,omitempty"`
	// TokenBOffset is the virtual amount added to the token B reserve
	// (offset curve only).
	TokenBOffset uint64 `json:"token_b_offset,omitempty"`
}

// SwapCurve is the exhaustive tagged union over all curve variants. Every
// method dispatches on the tag in one switch, which keeps the variants
// statically enumerable and the math free of dynamic dispatch.
type SwapCurve struct {
	CurveType  CurveType       `json:"curve_type"`
	Parameters CurveParameters `json:"parameters"`
}

// Validate rejects parameter combinations that can never price a trade.
func (c SwapCurve) Validate() error {
	switch c.CurveType {
	case CurveConstantProduct:
		return nil
	case CurveConstantPrice:
		if c.Parameters.TokenBPrice == 0 {
			return ErrInvalidCurveState.Wrap("constant price curve requires token_b_price > 0")
		}
		return nil
	case CurveOffset:
		if c.Parameters.TokenBOffset == 0 {
			return ErrInvalidCurveState.Wrap("offset curve requires token_b_offset > 0")
		}
		return nil
	default:
		return ErrInvalidCurveState.Wrapf("unknown curve type %d", c.CurveType)
	}
}

// SwapWithoutFees prices a trade whose fees have already been debited.
// The result is floored and is rejected when it would empty the destination
// side of the pool, so no trade can ever fully drain a reserve.
func (c SwapCurve) SwapWithoutFees(sourceAmount, reserveSource, reserveDestination math.Int, direction TradeDirection) (math.Int, error) {
	if sourceAmount.IsZero() || sourceAmount.IsNegative() {
		return math.Int{}, ErrZeroTradeAmount.Wrap("post-fee source amount must be positive")
	}
	if reserveSource.IsNegative() || reserveDestination.IsNegative() {
		return math.Int{}, ErrInvalidCurveState.Wrap("pool reserves cannot be negative")
	}

	var amountOut math.Int
	switch c.CurveType {
	case CurveConstantProduct:
		if !reserveSource.IsPositive() || !reserveDestination.IsPositive() {
			return math.Int{}, ErrInvalidCurveState.Wrap("pool reserves must be positive")
		}
		amountOut = constantProductOut(sourceAmount, reserveSource, reserveDestination)

	case CurveConstantPrice:
		price := math.NewIntFromUint64(c.Parameters.TokenBPrice)
		switch direction {
		case TradeAToB:
			amountOut = sourceAmount.Quo(price)
		case TradeBToA:
			amountOut = sourceAmount.Mul(price)
		}

	case CurveOffset:
		// The offset is a virtual addition to the token B side, so a pool may
		// trade with a zero actual reserve on that side.
		offset := math.NewIntFromUint64(c.Parameters.TokenBOffset)
		switch direction {
		case TradeAToB:
			if !reserveSource.IsPositive() {
				return math.Int{}, ErrInvalidCurveState.Wrap("source reserve must be positive")
			}
			amountOut = constantProductOut(sourceAmount, reserveSource, reserveDestination.Add(offset))
		case TradeBToA:
			if !reserveDestination.IsPositive() {
				return math.Int{}, ErrInvalidCurveState.Wrap("destination reserve must be positive")
			}
			amountOut = constantProductOut(sourceAmount, reserveSource.Add(offset), reserveDestination)
		}

	default:
		return math.Int{}, ErrInvalidCurveState.Wrapf("unknown curve type %d", c.CurveType)
	}

	if amountOut.IsZero() {
		return math.Int{}, ErrCalculationFailure.Wrap("swap output rounds to zero")
	}
	if amountOut.GTE(reserveDestination) {
		return math.Int{}, ErrCalculationFailure.Wrapf(
			"output %s would drain destination reserve %s", amountOut, reserveDestination)
	}
	return amountOut, nil
}

// constantProductOut computes floor(dx*y / (x+dx)), which is identically
// floor(y - x*y/(x+dx)): the floor keeps the invariant from ever decreasing.
func constantProductOut(dx, x, y math.Int) math.Int {
	return dx.Mul(y).Quo(x.Add(dx))
}

// PoolTokensToTradingTokens converts pool tokens to the trading token amount
// they currently represent on one side of the pool, floored.
func PoolTokensToTradingTokens(poolTokens, poolTokenSupply, reserve math.Int) (math.Int, error) {
	if !poolTokenSupply.IsPositive() {
		return math.Int{}, ErrInvalidPoolState.Wrap("pool token supply must be positive")
	}
	return poolTokens.Mul(reserve).Quo(poolTokenSupply), nil
}

// TradingTokensToPoolTokens converts a single-sided trading token deposit to
// freshly minted pool tokens:
//
//	poolTokens = floor(supply * (sqrt(1 + amount/reserve) - 1))
//
// Only the constant product curve supports single-sided operations; the other
// variants have no meaningful share-price response to a one-sided deposit.
func (c SwapCurve) TradingTokensToPoolTokens(sourceAmount, reserveSource, poolTokenSupply math.Int) (math.Int, error) {
	if c.CurveType != CurveConstantProduct {
		return math.Int{}, ErrUnsupportedCurveOperation.Wrapf(
			"single-sided deposit not supported by %s curve", c.CurveType)
	}
	if !reserveSource.IsPositive() || !poolTokenSupply.IsPositive() {
		return math.Int{}, ErrInvalidCurveState.Wrap("reserve and supply must be positive")
	}

	ratio := math.LegacyNewDecFromInt(sourceAmount).QuoInt(reserveSource)
	root, err := math.LegacyOneDec().Add(ratio).ApproxSqrt()
	if err != nil {
		return math.Int{}, ErrCalculationFailure.Wrapf("sqrt: %v", err)
	}
	poolTokens := math.LegacyNewDecFromInt(poolTokenSupply).Mul(root.Sub(math.LegacyOneDec())).TruncateInt()
	if poolTokens.IsZero() {
		return math.Int{}, ErrCalculationFailure.Wrap("deposit too small to mint pool tokens")
	}
	return poolTokens, nil
}

// PoolTokensForWithdrawnTokens is the inverse of TradingTokensToPoolTokens:
// the pool tokens that must be burned to take destinationAmount out of one
// side of the pool, rounded up against the withdrawer:
//
//	poolTokens = ceil(supply * (1 - sqrt(1 - amount/reserve)))
func (c SwapCurve) PoolTokensForWithdrawnTokens(destinationAmount, reserveDestination, poolTokenSupply math.Int) (math.Int, error) {
	if c.CurveType != CurveConstantProduct {
		return math.Int{}, ErrUnsupportedCurveOperation.Wrapf(
			"single-sided withdrawal not supported by %s curve", c.CurveType)
	}
	if !reserveDestination.IsPositive() || !poolTokenSupply.IsPositive() {
		return math.Int{}, ErrInvalidCurveState.Wrap("reserve and supply must be positive")
	}
	if destinationAmount.GTE(reserveDestination) {
		return math.Int{}, ErrCalculationFailure.Wrapf(
			"withdrawal %s would drain reserve %s", destinationAmount, reserveDestination)
	}

	ratio := math.LegacyNewDecFromInt(destinationAmount).QuoInt(reserveDestination)
	root, err := math.LegacyOneDec().Sub(ratio).ApproxSqrt()
	if err != nil {
		return math.Int{}, ErrCalculationFailure.Wrapf("sqrt: %v", err)
	}
	poolTokens := math.LegacyNewDecFromInt(poolTokenSupply).Mul(math.LegacyOneDec().Sub(root)).Ceil().TruncateInt()
	if poolTokens.IsZero() {
		return math.Int{}, ErrCalculationFailure.Wrap("withdrawal too small to burn pool tokens")
	}
	return poolTokens, nil
}

// feeToPoolTokens values a fee taken in trading tokens as pool tokens, using
// the same square root conversion as a single-sided deposit against the
// post-trade reserve. Applies to every curve type.
func feeToPoolTokens(feeAmount, reserveSource, poolTokenSupply math.Int) math.Int {
	if feeAmount.IsZero() || !reserveSource.IsPositive() || !poolTokenSupply.IsPositive() {
		return math.ZeroInt()
	}
	ratio := math.LegacyNewDecFromInt(feeAmount).QuoInt(reserveSource)
	root, err := math.LegacyOneDec().Add(ratio).ApproxSqrt()
	if err != nil {
		return math.ZeroInt()
	}
	return math.LegacyNewDecFromInt(poolTokenSupply).Mul(root.Sub(math.LegacyOneDec())).TruncateInt()
}

// OwnerFeePoolTokens values an owner trade fee (in source trading tokens) as
// pool tokens against the post-swap source reserve.
func (c SwapCurve) OwnerFeePoolTokens(ownerFee, reserveSource, poolTokenSupply math.Int) math.Int {
	return feeToPoolTokens(ownerFee, reserveSource, poolTokenSupply)
}
