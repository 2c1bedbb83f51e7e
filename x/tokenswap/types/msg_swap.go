package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSwap trades an exact input amount against one pool for at least
// MinAmountOut of the opposite token. HostFeeAccount is an optional referral
// account that receives a slice of the owner fee for this trade.
type MsgSwap struct {
	Trader         string   `json:"trader"`
	PoolId         uint64   `json:"pool_id"`
	TokenIn        string   `json:"token_in"`
	AmountIn       math.Int `json:"amount_in"`
	MinAmountOut   math.Int `json:"min_amount_out"`
	HostFeeAccount string   `json:"host_fee_account,omitempty"`
}

// NewMsgSwap creates a new MsgSwap instance.
func NewMsgSwap(trader string, poolID uint64, tokenIn string, amountIn, minAmountOut math.Int, hostFeeAccount string) *MsgSwap {
	return &MsgSwap{
		Trader:         trader,
		PoolId:         poolID,
		TokenIn:        tokenIn,
		AmountIn:       amountIn,
		MinAmountOut:   minAmountOut,
		HostFeeAccount: hostFeeAccount,
	}
}

// Route implements the sdk.Msg interface.
func (msg MsgSwap) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgSwap) Type() string { return "swap" }

// GetSigners implements the sdk.Msg interface.
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface.
func (msg MsgSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
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
