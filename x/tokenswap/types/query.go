package types

import (
	"context"

	"cosmossdk.io/math"
	gogogrpc "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// QueryServer is the module's read-only query surface.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	PoolByPair(context.Context, *QueryPoolByPairRequest) (*QueryPoolByPairResponse, error)
	SpotPrice(context.Context, *QuerySpotPriceRequest) (*QuerySpotPriceResponse, error)
	SimulateSwap(context.Context, *QuerySimulateSwapRequest) (*QuerySimulateSwapResponse, error)
}

// QueryParamsRequest requests the module parameters.
type QueryParamsRequest struct{}

// QueryParamsResponse carries the module parameters.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest requests one pool by ID.
type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryPoolResponse carries one pool.
type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

// QueryPoolsRequest requests all pools.
type QueryPoolsRequest struct{}

// QueryPoolsResponse carries all pools.
type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

// QueryPoolByPairRequest requests a pool by unordered token pair and curve.
type QueryPoolByPairRequest struct {
	TokenA    string `json:"token_a"`
	TokenB    string `json:"token_b"`
	CurveType uint8  `json:"curve_type"`
}

// QueryPoolByPairResponse carries the resolved pool.
type QueryPoolByPairResponse struct {
	Pool Pool `json:"pool"`
}

// QuerySpotPriceRequest requests a pool's instantaneous price.
type QuerySpotPriceRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QuerySpotPriceResponse carries the tokenB-per-tokenA price.
type QuerySpotPriceResponse struct {
	Price math.LegacyDec `json:"price"`
}

// QuerySimulateSwapRequest prices a swap without executing it.
type QuerySimulateSwapRequest struct {
	PoolId   uint64   `json:"pool_id"`
	TokenIn  string   `json:"token_in"`
	AmountIn math.Int `json:"amount_in"`
}

// QuerySimulateSwapResponse carries the quoted output.
type QuerySimulateSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// QueryClient is the client side of the query surface, routed over any grpc
// connection, including the client context of a CLI command.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error)
	PoolByPair(ctx context.Context, in *QueryPoolByPairRequest, opts ...grpc.CallOption) (*QueryPoolByPairResponse, error)
	SpotPrice(ctx context.Context, in *QuerySpotPriceRequest, opts ...grpc.CallOption) (*QuerySpotPriceResponse, error)
	SimulateSwap(ctx context.Context, in *QuerySimulateSwapRequest, opts ...grpc.CallOption) (*QuerySimulateSwapResponse, error)
}

type queryClient struct {
	cc gogogrpc.ClientConn
}

// NewQueryClient builds a QueryClient on top of a grpc connection.
func NewQueryClient(cc gogogrpc.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	if err := c.cc.Invoke(ctx, "/tokenswap.v1.Query/Params", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	if err := c.cc.Invoke(ctx, "/tokenswap.v1.Query/Pool", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error) {
	out := new(QueryPoolsResponse)
	if err := c.cc.Invoke(ctx, "/tokenswap.v1.Query/Pools", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) PoolByPair(ctx context.Context, in *QueryPoolByPairRequest, opts ...grpc.CallOption) (*QueryPoolByPairResponse, error) {
	out := new(QueryPoolByPairResponse)
	if err := c.cc.Invoke(ctx, "/tokenswap.v1.Query/PoolByPair", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SpotPrice(ctx context.Context, in *QuerySpotPriceRequest, opts ...grpc.CallOption) (*QuerySpotPriceResponse, error) {
	out := new(QuerySpotPriceResponse)
	if err := c.cc.Invoke(ctx, "/tokenswap.v1.Query/SpotPrice", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) SimulateSwap(ctx context.Context, in *QuerySimulateSwapRequest, opts ...grpc.CallOption) (*QuerySimulateSwapResponse, error) {
	out := new(QuerySimulateSwapResponse)
	if err := c.cc.Invoke(ctx, "/tokenswap.v1.Query/SimulateSwap", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterQueryServer registers the QueryServer implementation with a grpc
// service registrar, typically the module configurator's query router.
func RegisterQueryServer(s gogogrpc.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

func _Query_Params_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Params(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Query/Params"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Params(ctx, req.(*QueryParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Pool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryPoolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Pool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Query/Pool"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Pool(ctx, req.(*QueryPoolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Pools_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryPoolsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Pools(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Query/Pools"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Pools(ctx, req.(*QueryPoolsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_PoolByPair_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryPoolByPairRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).PoolByPair(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Query/PoolByPair"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).PoolByPair(ctx, req.(*QueryPoolByPairRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_SpotPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySpotPriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).SpotPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Query/SpotPrice"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).SpotPrice(ctx, req.(*QuerySpotPriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_SimulateSwap_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySimulateSwapRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).SimulateSwap(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/tokenswap.v1.Query/SimulateSwap"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).SimulateSwap(ctx, req.(*QuerySimulateSwapRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "tokenswap.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Params", Handler: _Query_Params_Handler},
		{MethodName: "Pool", Handler: _Query_Pool_Handler},
		{MethodName: "Pools", Handler: _Query_Pools_Handler},
		{MethodName: "PoolByPair", Handler: _Query_PoolByPair_Handler},
		{MethodName: "SpotPrice", Handler: _Query_SpotPrice_Handler},
		{MethodName: "SimulateSwap", Handler: _Query_SimulateSwap_Handler},
	},
	Streams: []grpc.StreamDesc{},
}
