package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RouteLength is the number of pools a routed swap traverses.
const RouteLength = 2

// MsgRoutedSwap trades through two pools that share an intermediate token,
// settling both legs atomically.
type MsgRoutedSwap struct {
	Trader         string   `json:"trader"`
	PoolIds        []uint64 `json:"pool_ids"`
	TokenIn        string   `json:"token_in"`
	AmountIn       math.Int `json:"amount_in"`
	MinAmountOut   math.Int `json:"min_amount_out"`
	HostFeeAccount string   `json:"host_fee_account,omitempty"`
}

// NewMsgRoutedSwap creates a new MsgRoutedSwap instance.
func NewMsgRoutedSwap(trader string, poolIDs []uint64, tokenIn string, amountIn, minAmountOut math.Int, hostFeeAccount string) *MsgRoutedSwap {
	return &MsgRoutedSwap{
		Trader:         trader,
		PoolIds:        poolIDs,
		TokenIn:        tokenIn,
		AmountIn:       amountIn,
		MinAmountOut:   minAmountOut,
		HostFeeAccount: hostFeeAccount,
	}
}

// Route implements the sdk.Msg interface.
func (msg MsgRoutedSwap) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgRoutedSwap) Type() string { return "routed_swap" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgRoutedSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgRoutedSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgRoutedSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}
	if len(msg.PoolIds) != RouteLength {
		return sdkerrors.Wrapf(ErrInvalidInput, "route must name exactly %d pools", RouteLength)
	}
	if msg.PoolIds[0] == msg.PoolIds[1] {
		return sdkerrors.Wrap(ErrInvalidInput, "route cannot use the same pool twice")
	}
	if err := validateTokenDenom(msg.TokenIn); err != nil {
		return err
	}
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrZeroTradeAmount, "swap amount must be positive")
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "minimum output cannot be negative")
	}
	if msg.HostFeeAccount != "" {
		if _, err := sdk.AccAddressFromBech32(msg.HostFeeAccount); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid host fee account: %s", err)
		}
	}
	return nil
}
