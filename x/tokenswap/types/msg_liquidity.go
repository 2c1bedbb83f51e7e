package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgDepositAllTokenTypes deposits both trading tokens pro rata for an exact
// number of pool tokens, bounded by per-token maximums.
type MsgDepositAllTokenTypes struct {
	Provider        string   `json:"provider"`
	PoolId          uint64   `json:"pool_id"`
	PoolTokenAmount math.Int `json:"pool_token_amount"`
	MaxAmountA      math.Int `json:"max_amount_a"`
	MaxAmountB      math.Int `json:"max_amount_b"`
}

// MsgWithdrawAllTokenTypes burns an exact number of pool tokens for both
// trading tokens pro rata, bounded by per-token minimums.
type MsgWithdrawAllTokenTypes struct {
	Provider        string   `json:"provider"`
	PoolId          uint64   `json:"pool_id"`
	PoolTokenAmount math.Int `json:"pool_token_amount"`
	MinAmountA      math.Int `json:"min_amount_a"`
	MinAmountB      math.Int `json:"min_amount_b"`
}

// MsgDepositSingleTokenType deposits an exact amount of one trading token for
// at least MinPoolTokens freshly minted pool tokens.
type MsgDepositSingleTokenType struct {
	Provider      string   `json:"provider"`
	PoolId        uint64   `json:"pool_id"`
	TokenIn       string   `json:"token_in"`
	AmountIn      math.Int `json:"amount_in"`
	MinPoolTokens math.Int `json:"min_pool_tokens"`
}

// MsgWithdrawSingleTokenType withdraws an exact amount of one trading token,
// burning at most MaxPoolTokens pool tokens.
type MsgWithdrawSingleTokenType struct {
	Provider      string   `json:"provider"`
	PoolId        uint64   `json:"pool_id"`
	TokenOut      string   `json:"token_out"`
	AmountOut     math.Int `json:"amount_out"`
	MaxPoolTokens math.Int `json:"max_pool_tokens"`
}

// NewMsgDepositAllTokenTypes creates a new MsgDepositAllTokenTypes instance.
func NewMsgDepositAllTokenTypes(provider string, poolID uint64, poolTokens, maxA, maxB math.Int) *MsgDepositAllTokenTypes {
	return &MsgDepositAllTokenTypes{
		Provider:        provider,
		PoolId:          poolID,
		PoolTokenAmount: poolTokens,
		MaxAmountA:      maxA,
		MaxAmountB:      maxB,
	}
}

// NewMsgWithdrawAllTokenTypes creates a new MsgWithdrawAllTokenTypes instance.
func NewMsgWithdrawAllTokenTypes(provider string, poolID uint64, poolTokens, minA, minB math.Int) *MsgWithdrawAllTokenTypes {
	return &MsgWithdrawAllTokenTypes{
		Provider:        provider,
		PoolId:          poolID,
		PoolTokenAmount: poolTokens,
		MinAmountA:      minA,
		MinAmountB:      minB,
	}
}

// NewMsgDepositSingleTokenType creates a new MsgDepositSingleTokenType instance.
func NewMsgDepositSingleTokenType(provider string, poolID uint64, tokenIn string, amountIn, minPoolTokens math.Int) *MsgDepositSingleTokenType {
	return &MsgDepositSingleTokenType{
		Provider:      provider,
		PoolId:        poolID,
		TokenIn:       tokenIn,
		AmountIn:      amountIn,
		MinPoolTokens: minPoolTokens,
	}
}

// NewMsgWithdrawSingleTokenType creates a new MsgWithdrawSingleTokenType instance.
func NewMsgWithdrawSingleTokenType(provider string, poolID uint64, tokenOut string, amountOut, maxPoolTokens math.Int) *MsgWithdrawSingleTokenType {
	return &MsgWithdrawSingleTokenType{
		Provider:      provider,
		PoolId:        poolID,
		TokenOut:      tokenOut,
		AmountOut:     amountOut,
		MaxPoolTokens: maxPoolTokens,
	}
}

// Route implements the sdk.Msg interface.
func (msg MsgDepositAllTokenTypes) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgDepositAllTokenTypes) Type() string { return "deposit_all_token_types" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgDepositAllTokenTypes) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgDepositAllTokenTypes) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgDepositAllTokenTypes) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.PoolTokenAmount.IsNil() || !msg.PoolTokenAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "pool token amount must be positive")
	}
	if msg.MaxAmountA.IsNil() || !msg.MaxAmountA.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "max amount A must be positive")
	}
	if msg.MaxAmountB.IsNil() || !msg.MaxAmountB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "max amount B must be positive")
	}
	return nil
}

// Route implements the sdk.Msg interface.
func (msg MsgWithdrawAllTokenTypes) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgWithdrawAllTokenTypes) Type() string { return "withdraw_all_token_types" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgWithdrawAllTokenTypes) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgWithdrawAllTokenTypes) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgWithdrawAllTokenTypes) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.PoolTokenAmount.IsNil() || !msg.PoolTokenAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "pool token amount must be positive")
	}
	if msg.MinAmountA.IsNil() || msg.MinAmountA.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "min amount A cannot be negative")
	}
	if msg.MinAmountB.IsNil() || msg.MinAmountB.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "min amount B cannot be negative")
	}
	return nil
}

// Route implements the sdk.Msg interface.
func (msg MsgDepositSingleTokenType) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgDepositSingleTokenType) Type() string { return "deposit_single_token_type" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgDepositSingleTokenType) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgDepositSingleTokenType) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgDepositSingleTokenType) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if err := validateTokenDenom(msg.TokenIn); err != nil {
		return err
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "deposit amount must be positive")
	}
	if msg.MinPoolTokens.IsNil() || msg.MinPoolTokens.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "minimum pool tokens cannot be negative")
	}
	return nil
}

// Route implements the sdk.Msg interface.
func (msg MsgWithdrawSingleTokenType) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgWithdrawSingleTokenType) Type() string { return "withdraw_single_token_type" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgWithdrawSingleTokenType) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgWithdrawSingleTokenType) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgWithdrawSingleTokenType) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if err := validateTokenDenom(msg.TokenOut); err != nil {
		return err
	}
	if msg.AmountOut.IsNil() || !msg.AmountOut.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "withdrawal amount must be positive")
	}
	if msg.MaxPoolTokens.IsNil() || !msg.MaxPoolTokens.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "maximum pool tokens must be positive")
	}
	return nil
}
