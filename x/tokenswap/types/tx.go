package types

import (
	"context"

	"cosmossdk.io/math"
	gogogrpc "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// MsgServer is the module's transaction handler surface.
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	RoutedSwap(context.Context, *MsgRoutedSwap) (*MsgRoutedSwapResponse, error)
	DepositAllTokenTypes(context.Context, *MsgDepositAllTokenTypes) (*MsgDepositAllTokenTypesResponse, error)
	WithdrawAllTokenTypes(context.Context, *MsgWithdrawAllTokenTypes) (*MsgWithdrawAllTokenTypesResponse, error)
	DepositSingleTokenType(context.Context, *MsgDepositSingleTokenType) (*MsgDepositSingleTokenTypeResponse, error)
	WithdrawSingleTokenType(context.Context, *MsgWithdrawSingleTokenType) (*MsgWithdrawSingleTokenTypeResponse, error)
}

// MsgCreatePoolResponse is the response for CreatePool.
type MsgCreatePoolResponse struct {
	PoolId     uint64   `json:"pool_id"`
	PoolTokens math.Int `json:"pool_tokens"`
}

// MsgSwapResponse is the response for Swap.
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgRoutedSwapResponse is the response for RoutedSwap.
type MsgRoutedSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgDepositAllTokenTypesResponse is the response for DepositAllTokenTypes.
type MsgDepositAllTokenTypesResponse struct {
	AmountA    math.Int `json:"amount_a"`
	AmountB    math.Int `json:"amount_b"`
	PoolTokens math.Int `json:"pool_tokens"`
}

// MsgWithdrawAllTokenTypesResponse is the response for WithdrawAllTokenTypes.
type MsgWithdrawAllTokenTypesResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgDepositSingleTokenTypeResponse is the response for DepositSingleTokenType.
type MsgDepositSingleTokenTypeResponse struct {
	PoolTokens math.Int `json:"pool_tokens"`
}

// MsgWithdrawSingleTokenTypeResponse is the response for WithdrawSingleTokenType.
type MsgWithdrawSingleTokenTypeResponse struct {
	PoolTokensBurned math.Int `json:"pool_tokens_burned"`
}

// RegisterMsgServer registers the MsgServer implementation with a grpc service
// registrar, typically the module configurator's message router.
func RegisterMsgServer(s gogogrpc.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_CreatePool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgCreatePool)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).CreatePool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Msg/CreatePool"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).CreatePool(ctx, req.(*MsgCreatePool))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Swap_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSwap)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Swap(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Msg/Swap"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Swap(ctx, req.(*MsgSwap))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_RoutedSwap_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgRoutedSwap)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).RoutedSwap(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Msg/RoutedSwap"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).RoutedSwap(ctx, req.(*MsgRoutedSwap))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_DepositAllTokenTypes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgDepositAllTokenTypes)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).DepositAllTokenTypes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Msg/DepositAllTokenTypes"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).DepositAllTokenTypes(ctx, req.(*MsgDepositAllTokenTypes))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_WithdrawAllTokenTypes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgWithdrawAllTokenTypes)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).WithdrawAllTokenTypes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Msg/WithdrawAllTokenTypes"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).WithdrawAllTokenTypes(ctx, req.(*MsgWithdrawAllTokenTypes))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_DepositSingleTokenType_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgDepositSingleTokenType)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).DepositSingleTokenType(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Msg/DepositSingleTokenType"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).DepositSingleTokenType(ctx, req.(*MsgDepositSingleTokenType))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_WithdrawSingleTokenType_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgWithdrawSingleTokenType)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).WithdrawSingleTokenType(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Msg/WithdrawSingleTokenType"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).WithdrawSingleTokenType(ctx, req.(*MsgWithdrawSingleTokenType))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "tokenswap.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreatePool", Handler: _Msg_CreatePool_Handler},
		{MethodName: "Swap", Handler: _Msg_Swap_Handler},
		{MethodName: "RoutedSwap", Handler: _Msg_RoutedSwap_Handler},
		{MethodName: "DepositAllTokenTypes", Handler: _Msg_DepositAllTokenTypes_Handler},
		{MethodName: "WithdrawAllTokenTypes", Handler: _Msg_WithdrawAllTokenTypes_Handler},
		{MethodName: "DepositSingleTokenType", Handler: _Msg_DepositSingleTokenType_Handler},
		{MethodName: "WithdrawSingleTokenType", Handler: _Msg_WithdrawSingleTokenType_Handler},
	},
	Streams: []grpc.StreamDesc{},
}
