package cli

// Flag constants for tokenswap CLI commands
const (
	FlagCurve        = "curve"
	FlagTokenBPrice  = "token-b-price"
	FlagTokenBOffset = "token-b-offset"
	FlagFeeAccount   = "fee-account"

	FlagTradeFeeNum           = "trade-fee-num"
	FlagTradeFeeDenom         = "trade-fee-denom"
	FlagOwnerTradeFeeNum      = "owner-trade-fee-num"
	FlagOwnerTradeFeeDenom    = "owner-trade-fee-denom"
	FlagOwnerWithdrawFeeNum   = "owner-withdraw-fee-num"
	FlagOwnerWithdrawFeeDenom = "owner-withdraw-fee-denom"
	FlagHostFeeNum            = "host-fee-num"
	FlagHostFeeDenom          = "host-fee-denom"

	FlagMinAmountOut   = "min-amount-out"
	FlagHostFeeAccount = "host-fee-account"
	FlagMaxAmountA     = "max-amount-a"
	FlagMaxAmountB     = "max-amount-b"
	FlagMinAmountA     = "min-amount-a"
	FlagMinAmountB     = "min-amount-b"
	FlagMinPoolTokens  = "min-pool-tokens"
	FlagMaxPoolTokens  = "max-pool-tokens"
)
