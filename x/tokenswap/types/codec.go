package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the module's concrete message types with amino.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "tokenswap/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "tokenswap/MsgSwap", nil)
	cdc.RegisterConcrete(&MsgDepositAllTokenTypes{}, "tokenswap/MsgDepositAllTokenTypes", nil)
	cdc.RegisterConcrete(&MsgWithdrawAllTokenTypes{}, "tokenswap/MsgWithdrawAllTokenTypes", nil)
	cdc.RegisterConcrete(&MsgDepositSingleTokenType{}, "tokenswap/MsgDepositSingleTokenType", nil)
	cdc.RegisterConcrete(&MsgWithdrawSingleTokenType{}, "tokenswap/MsgWithdrawSingleTokenType", nil)
	cdc.RegisterConcrete(&MsgRoutedSwap{}, "tokenswap/MsgRoutedSwap", nil)
}

// RegisterInterfaces registers the module's messages with the interface registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgSwap{},
		&MsgDepositAllTokenTypes{},
		&MsgWithdrawAllTokenTypes{},
		&MsgDepositSingleTokenType{},
		&MsgWithdrawSingleTokenType{},
		&MsgRoutedSwap{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
