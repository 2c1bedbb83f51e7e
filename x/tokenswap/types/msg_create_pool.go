package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreatePool creates a new liquidity pool with an initial deposit on both
// sides, a curve and a fee schedule.
type MsgCreatePool struct {
	Creator    string          `json:"creator"`
	TokenA     string          `json:"token_a"`
	TokenB     string          `json:"token_b"`
	AmountA    math.Int        `json:"amount_a"`
	AmountB    math.Int        `json:"amount_b"`
	CurveType  uint8           `json:"curve_type"`
	Parameters CurveParameters `json:"parameters"`
	Fees       FeeSchedule     `json:"fees"`
	FeeAccount string          `json:"fee_account"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance.
func NewMsgCreatePool(creator, tokenA, tokenB string, amountA, amountB math.Int, curve SwapCurve, fees FeeSchedule, feeAccount string) *MsgCreatePool {
	return &MsgCreatePool{
		Creator:    creator,
		TokenA:     tokenA,
		TokenB:     tokenB,
		AmountA:    amountA,
		AmountB:    amountB,
		CurveType:  uint8(curve.CurveType),
		Parameters: curve.Parameters,
		Fees:       fees,
		FeeAccount: feeAccount,
	}
}

// Curve returns the swap curve described by the message.
func (msg MsgCreatePool) Curve() (SwapCurve, error) {
	curveType, err := CurveTypeFromByte(msg.CurveType)
	if err != nil {
		return SwapCurve{}, err
	}
	curve := SwapCurve{CurveType: curveType, Parameters: msg.Parameters}
	if err := curve.Validate(); err != nil {
		return SwapCurve{}, err
	}
	return curve, nil
}

// Route implements the sdk.Msg interface.
func (msg MsgCreatePool) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgCreatePool) Type() string { return "create_pool" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.FeeAccount); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid fee account address: %s", err)
	}
	if err := validateTokenDenom(msg.TokenA); err != nil {
		return err
	}
	if err := validateTokenDenom(msg.TokenB); err != nil {
		return err
	}
	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denominations must be different")
	}
	if msg.AmountA.IsNil() || !msg.AmountA.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount A must be positive")
	}
	if msg.AmountB.IsNil() || !msg.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "amount B must be positive")
	}
	if _, err := msg.Curve(); err != nil {
		return err
	}
	return msg.Fees.Validate()
}
