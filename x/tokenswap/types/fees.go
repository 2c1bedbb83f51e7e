package types

import (
	"cosmossdk.io/math"
)

// FeeSchedule holds the four numerator/denominator fee pairs charged by a
// pool. All fee math runs on math.Int so intermediate products cannot
// overflow, and every division truncates toward zero: rounding never favors
// the trader over the pool.
type FeeSchedule struct {
	// TradeFeeNumerator/Denominator is the fee retained inside the reserves,
	// growing the invariant for all pool token holders.
	TradeFeeNumerator   uint64 `json:"trade_fee_numerator"`
	TradeFeeDenominator uint64 `json:"trade_fee_denominator"`

	// OwnerTradeFeeNumerator/Denominator is the portion of each trade carved
	// out for the pool's fee account, settled as a pool token mint.
	OwnerTradeFeeNumerator   uint64 `json:"owner_trade_fee_numerator"`
	OwnerTradeFeeDenominator uint64 `json:"owner_trade_fee_denominator"`

	// OwnerWithdrawFeeNumerator/Denominator is charged on pool tokens burned
	// by withdrawAllTokenTypes; waived for the fee account itself.
	OwnerWithdrawFeeNumerator   uint64 `json:"owner_withdraw_fee_numerator"`
	OwnerWithdrawFeeDenominator uint64 `json:"owner_withdraw_fee_denominator"`

	// HostFeeNumerator/Denominator is diverted out of the owner trade fee to
	// an optional referral account supplied with the swap.
	HostFeeNumerator   uint64 `json:"host_fee_numerator"`
	HostFeeDenominator uint64 `json:"host_fee_denominator"`
}

// calculateFee computes floor(amount * numerator / denominator). A zero
// numerator short-circuits to zero so a zero denominator is legal there.
func calculateFee(amount math.Int, numerator, denominator uint64) math.Int {
	if numerator == 0 || denominator == 0 {
		return math.ZeroInt()
	}
	return amount.Mul(math.NewIntFromUint64(numerator)).Quo(math.NewIntFromUint64(denominator))
}

// TradingFee returns the trade fee on a source amount.
func (f FeeSchedule) TradingFee(amount math.Int) math.Int {
	return calculateFee(amount, f.TradeFeeNumerator, f.TradeFeeDenominator)
}

// OwnerTradingFee returns the owner trade fee on a source amount.
func (f FeeSchedule) OwnerTradingFee(amount math.Int) math.Int {
	return calculateFee(amount, f.OwnerTradeFeeNumerator, f.OwnerTradeFeeDenominator)
}

// OwnerWithdrawFee returns the withdraw fee on an amount of pool tokens.
func (f FeeSchedule) OwnerWithdrawFee(poolTokens math.Int) math.Int {
	return calculateFee(poolTokens, f.OwnerWithdrawFeeNumerator, f.OwnerWithdrawFeeDenominator)
}

// HostFee returns the host portion of an already-computed owner fee. It is a
// carve-out, never additive to what the trader pays.
func (f FeeSchedule) HostFee(ownerFee math.Int) math.Int {
	return calculateFee(ownerFee, f.HostFeeNumerator, f.HostFeeDenominator)
}

// preFeeAmount inverts a fee: the smallest gross amount that still leaves
// postFeeAmount once the fee is taken, so the division rounds up.
func preFeeAmount(postFeeAmount math.Int, numerator, denominator math.Int) math.Int {
	if numerator.IsZero() || denominator.IsZero() || numerator.Equal(denominator) || postFeeAmount.IsZero() {
		return postFeeAmount
	}
	keep := denominator.Sub(numerator)
	return postFeeAmount.Mul(denominator).Add(keep).SubRaw(1).Quo(keep)
}

// PreTradingFeeAmount returns the gross amount that yields postFeeAmount
// after both the trade fee and the owner trade fee are taken.
func (f FeeSchedule) PreTradingFeeAmount(postFeeAmount math.Int) math.Int {
	switch {
	case f.TradeFeeNumerator == 0 || f.TradeFeeDenominator == 0:
		return preFeeAmount(postFeeAmount,
			math.NewIntFromUint64(f.OwnerTradeFeeNumerator), math.NewIntFromUint64(f.OwnerTradeFeeDenominator))
	case f.OwnerTradeFeeNumerator == 0 || f.OwnerTradeFeeDenominator == 0:
		return preFeeAmount(postFeeAmount,
			math.NewIntFromUint64(f.TradeFeeNumerator), math.NewIntFromUint64(f.TradeFeeDenominator))
	default:
		numerator := math.NewIntFromUint64(f.TradeFeeNumerator).Mul(math.NewIntFromUint64(f.OwnerTradeFeeDenominator)).
			Add(math.NewIntFromUint64(f.OwnerTradeFeeNumerator).Mul(math.NewIntFromUint64(f.TradeFeeDenominator)))
		denominator := math.NewIntFromUint64(f.TradeFeeDenominator).Mul(math.NewIntFromUint64(f.OwnerTradeFeeDenominator))
		return preFeeAmount(postFeeAmount, numerator, denominator)
	}
}

func validateFeePair(name string, numerator, denominator uint64) error {
	if numerator == 0 {
		return nil
	}
	if denominator == 0 {
		return ErrInvalidFee.Wrapf("%s: nonzero numerator %d with zero denominator", name, numerator)
	}
	if numerator > denominator {
		return ErrInvalidFee.Wrapf("%s: numerator %d exceeds denominator %d", name, numerator, denominator)
	}
	return nil
}

// Validate checks that every fee pair is a fraction in [0, 1].
func (f FeeSchedule) Validate() error {
	if err := validateFeePair("trade fee", f.TradeFeeNumerator, f.TradeFeeDenominator); err != nil {
		return err
	}
	if err := validateFeePair("owner trade fee", f.OwnerTradeFeeNumerator, f.OwnerTradeFeeDenominator); err != nil {
		return err
	}
	if err := validateFeePair("owner withdraw fee", f.OwnerWithdrawFeeNumerator, f.OwnerWithdrawFeeDenominator); err != nil {
		return err
	}
	return validateFeePair("host fee", f.HostFeeNumerator, f.HostFeeDenominator)
}
