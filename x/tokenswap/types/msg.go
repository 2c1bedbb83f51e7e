package types

import (
	"fmt"
	"regexp"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const maxTokenDenomLength = 128

var validDenomPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/_\-.]*$`)

// validateTokenDenom checks that a denom is well formed before it reaches
// state machine code.
func validateTokenDenom(denom string) error {
	if denom == "" {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denomination cannot be empty")
	}
	if len(denom) > maxTokenDenomLength {
		return sdkerrors.Wrap(ErrInvalidTokenPair, "token denomination too long")
	}
	if !validDenomPattern.MatchString(denom) {
		return sdkerrors.Wrapf(ErrInvalidTokenPair, "malformed token denomination %q", denom)
	}
	return nil
}

// Ensure all message types implement the sdk.Msg interface.
var (
	_ sdk.Msg = &MsgCreatePool{}
	_ sdk.Msg = &MsgSwap{}
	_ sdk.Msg = &MsgDepositAllTokenTypes{}
	_ sdk.Msg = &MsgWithdrawAllTokenTypes{}
	_ sdk.Msg = &MsgDepositSingleTokenType{}
	_ sdk.Msg = &MsgWithdrawSingleTokenType{}
	_ sdk.Msg = &MsgRoutedSwap{}
)

// Hand-written proto.Message plumbing. Message bodies are amino JSON encoded,
// so only the interface surface is needed here.

func (msg *MsgCreatePool) Reset()         { *msg = MsgCreatePool{} }
func (msg *MsgCreatePool) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCreatePool) ProtoMessage()  {}

func (msg *MsgSwap) Reset()         { *msg = MsgSwap{} }
func (msg *MsgSwap) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSwap) ProtoMessage()  {}

func (msg *MsgDepositAllTokenTypes) Reset()         { *msg = MsgDepositAllTokenTypes{} }
func (msg *MsgDepositAllTokenTypes) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgDepositAllTokenTypes) ProtoMessage()  {}

func (msg *MsgWithdrawAllTokenTypes) Reset()         { *msg = MsgWithdrawAllTokenTypes{} }
func (msg *MsgWithdrawAllTokenTypes) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdrawAllTokenTypes) ProtoMessage()  {}

func (msg *MsgDepositSingleTokenType) Reset()         { *msg = MsgDepositSingleTokenType{} }
func (msg *MsgDepositSingleTokenType) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgDepositSingleTokenType) ProtoMessage()  {}

func (msg *MsgWithdrawSingleTokenType) Reset()         { *msg = MsgWithdrawSingleTokenType{} }
func (msg *MsgWithdrawSingleTokenType) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdrawSingleTokenType) ProtoMessage()  {}

func (msg *MsgRoutedSwap) Reset()         { *msg = MsgRoutedSwap{} }
func (msg *MsgRoutedSwap) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRoutedSwap) ProtoMessage()  {}

func (gs *GenesisState) Reset()         { *gs = GenesisState{} }
func (gs *GenesisState) String() string { return fmt.Sprintf("%+v", *gs) }
func (gs *GenesisState) ProtoMessage()  {}
