package types

import (
	"cosmossdk.io/math"
)

// SwapResult is the full accounting of one priced trade. All amounts are in
// trading tokens except OwnerFeePoolTokens.
type SwapResult struct {
	// SourceAmountSwapped is the total debited from the trader, fees included.
	SourceAmountSwapped math.Int
	// DestinationAmountSwapped is the amount credited to the trader.
	DestinationAmountSwapped math.Int
	// TradeFee stays in the source reserve and accrues to all LPs.
	TradeFee math.Int
	// OwnerFee is the slice of the input owed to the pool owner.
	OwnerFee math.Int
	// NewSourceReserve and NewDestinationReserve are the post-trade reserves.
	NewSourceReserve      math.Int
	NewDestinationReserve math.Int
}

// ComputeSwap prices a trade against one pool side: it debits the trade and
// owner fees from the input, routes the remainder through the curve, and
// returns the post-trade reserves. The full input, fees included, lands in
// the source reserve; the owner fee is settled separately in pool tokens.
func ComputeSwap(curve SwapCurve, fees FeeSchedule, amountIn, reserveSource, reserveDestination math.Int, direction TradeDirection) (SwapResult, error) {
	if !amountIn.IsPositive() {
		return SwapResult{}, ErrZeroTradeAmount.Wrap("swap input must be positive")
	}

	tradeFee := fees.TradingFee(amountIn)
	ownerFee := fees.OwnerTradingFee(amountIn)
	sourceLessFees := amountIn.Sub(tradeFee).Sub(ownerFee)
	if !sourceLessFees.IsPositive() {
		return SwapResult{}, ErrZeroTradeAmount.Wrap("swap input does not cover fees")
	}

	amountOut, err := curve.SwapWithoutFees(sourceLessFees, reserveSource, reserveDestination, direction)
	if err != nil {
		return SwapResult{}, err
	}

	return SwapResult{
		SourceAmountSwapped:      amountIn,
		DestinationAmountSwapped: amountOut,
		TradeFee:                 tradeFee,
		OwnerFee:                 ownerFee,
		NewSourceReserve:         reserveSource.Add(amountIn),
		NewDestinationReserve:    reserveDestination.Sub(amountOut),
	}, nil
}
