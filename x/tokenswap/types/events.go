package types

// Event types emitted by the tokenswap module.
const (
	EventTypeCreatePool     = "create_pool"
	EventTypeSwap           = "swap"
	EventTypeRoutedSwap     = "routed_swap"
	EventTypeDeposit        = "deposit"
	EventTypeWithdraw       = "withdraw"
	EventTypeOwnerFeeMinted = "owner_fee_minted"
)

// Event attribute keys.
const (
	AttributeKeyPoolID        = "pool_id"
	AttributeKeyCreator       = "creator"
	AttributeKeyTrader        = "trader"
	AttributeKeyProvider      = "provider"
	AttributeKeyTokenIn       = "token_in"
	AttributeKeyTokenOut      = "token_out"
	AttributeKeyAmountIn      = "amount_in"
	AttributeKeyAmountOut     = "amount_out"
	AttributeKeyTradeFee      = "trade_fee"
	AttributeKeyOwnerFee      = "owner_fee"
	AttributeKeyPoolTokens    = "pool_tokens"
	AttributeKeyAmountA       = "amount_a"
	AttributeKeyAmountB       = "amount_b"
	AttributeKeyCurveType     = "curve_type"
	AttributeKeyRoutePoolIDs  = "route_pool_ids"
	AttributeKeyFeeAccount    = "fee_account"
	AttributeKeyHostFeeTokens = "host_fee_tokens"
)
