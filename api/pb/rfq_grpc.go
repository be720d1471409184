package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service stubs for otomic.pb.Exchange, maintained by hand alongside
// rfq.pb.go.

const ExchangeServiceName = "otomic.pb.Exchange"

// ExchangeClient is the client API for the Exchange service.
type ExchangeClient interface {
	SubmitRequest(ctx context.Context, in *SubmitRequestRequest, opts ...grpc.CallOption) (*SubmitRequestResponse, error)
	SubmitResponse(ctx context.Context, in *SubmitResponseRequest, opts ...grpc.CallOption) (*SubmitResponseResponse, error)
	AcceptBid(ctx context.Context, in *AcceptBidRequest, opts ...grpc.CallOption) (*AcceptBidResponse, error)
	SettleCreator(ctx context.Context, in *SettleCreatorRequest, opts ...grpc.CallOption) (*SettleCreatorResponse, error)
	SettleBidder(ctx context.Context, in *SettleBidderRequest, opts ...grpc.CallOption) (*SettleBidderResponse, error)
	Reclaim(ctx context.Context, in *ReclaimRequest, opts ...grpc.CallOption) (*ReclaimResponse, error)
	GetRequest(ctx context.Context, in *GetRequestRequest, opts ...grpc.CallOption) (*GetRequestResponse, error)
	ListRequests(ctx context.Context, in *ListRequestsRequest, opts ...grpc.CallOption) (*ListRequestsResponse, error)
}

type exchangeClient struct {
	cc grpc.ClientConnInterface
}

func NewExchangeClient(cc grpc.ClientConnInterface) ExchangeClient {
	return &exchangeClient{cc}
}

func (c *exchangeClient) SubmitRequest(ctx context.Context, in *SubmitRequestRequest, opts ...grpc.CallOption) (*SubmitRequestResponse, error) {
	out := new(SubmitRequestResponse)
	if err := c.cc.Invoke(ctx, "/otomic.pb.Exchange/SubmitRequest", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exchangeClient) SubmitResponse(ctx context.Context, in *SubmitResponseRequest, opts ...grpc.CallOption) (*SubmitResponseResponse, error) {
	out := new(SubmitResponseResponse)
	if err := c.cc.Invoke(ctx, "/otomic.pb.Exchange/SubmitResponse", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exchangeClient) AcceptBid(ctx context.Context, in *AcceptBidRequest, opts ...grpc.CallOption) (*AcceptBidResponse, error) {
	out := new(AcceptBidResponse)
	if err := c.cc.Invoke(ctx, "/otomic.pb.Exchange/AcceptBid", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exchangeClient) SettleCreator(ctx context.Context, in *SettleCreatorRequest, opts ...grpc.CallOption) (*SettleCreatorResponse, error) {
	out := new(SettleCreatorResponse)
	if err := c.cc.Invoke(ctx, "/otomic.pb.Exchange/SettleCreator", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exchangeClient) SettleBidder(ctx context.Context, in *SettleBidderRequest, opts ...grpc.CallOption) (*SettleBidderResponse, error) {
	out := new(SettleBidderResponse)
	if err := c.cc.Invoke(ctx, "/otomic.pb.Exchange/SettleBidder", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exchangeClient) Reclaim(ctx context.Context, in *ReclaimRequest, opts ...grpc.CallOption) (*ReclaimResponse, error) {
	out := new(ReclaimResponse)
	if err := c.cc.Invoke(ctx, "/otomic.pb.Exchange/Reclaim", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exchangeClient) GetRequest(ctx context.Context, in *GetRequestRequest, opts ...grpc.CallOption) (*GetRequestResponse, error) {
	out := new(GetRequestResponse)
	if err := c.cc.Invoke(ctx, "/otomic.pb.Exchange/GetRequest", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exchangeClient) ListRequests(ctx context.Context, in *ListRequestsRequest, opts ...grpc.CallOption) (*ListRequestsResponse, error) {
	out := new(ListRequestsResponse)
	if err := c.cc.Invoke(ctx, "/otomic.pb.Exchange/ListRequests", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ExchangeServer is the server API for the Exchange service.
type ExchangeServer interface {
	SubmitRequest(context.Context, *SubmitRequestRequest) (*SubmitRequestResponse, error)
	SubmitResponse(context.Context, *SubmitResponseRequest) (*SubmitResponseResponse, error)
	AcceptBid(context.Context, *AcceptBidRequest) (*AcceptBidResponse, error)
	SettleCreator(context.Context, *SettleCreatorRequest) (*SettleCreatorResponse, error)
	SettleBidder(context.Context, *SettleBidderRequest) (*SettleBidderResponse, error)
	Reclaim(context.Context, *ReclaimRequest) (*ReclaimResponse, error)
	GetRequest(context.Context, *GetRequestRequest) (*GetRequestResponse, error)
	ListRequests(context.Context, *ListRequestsRequest) (*ListRequestsResponse, error)
}

// UnimplementedExchangeServer can be embedded for forward compatibility.
type UnimplementedExchangeServer struct{}

func (UnimplementedExchangeServer) SubmitRequest(context.Context, *SubmitRequestRequest) (*SubmitRequestResponse, error) {
	return nil, errUnimplemented("SubmitRequest")
}
func (UnimplementedExchangeServer) SubmitResponse(context.Context, *SubmitResponseRequest) (*SubmitResponseResponse, error) {
	return nil, errUnimplemented("SubmitResponse")
}
func (UnimplementedExchangeServer) AcceptBid(context.Context, *AcceptBidRequest) (*AcceptBidResponse, error) {
	return nil, errUnimplemented("AcceptBid")
}
func (UnimplementedExchangeServer) SettleCreator(context.Context, *SettleCreatorRequest) (*SettleCreatorResponse, error) {
	return nil, errUnimplemented("SettleCreator")
}
func (UnimplementedExchangeServer) SettleBidder(context.Context, *SettleBidderRequest) (*SettleBidderResponse, error) {
	return nil, errUnimplemented("SettleBidder")
}
func (UnimplementedExchangeServer) Reclaim(context.Context, *ReclaimRequest) (*ReclaimResponse, error) {
	return nil, errUnimplemented("Reclaim")
}
func (UnimplementedExchangeServer) GetRequest(context.Context, *GetRequestRequest) (*GetRequestResponse, error) {
	return nil, errUnimplemented("GetRequest")
}
func (UnimplementedExchangeServer) ListRequests(context.Context, *ListRequestsRequest) (*ListRequestsResponse, error) {
	return nil, errUnimplemented("ListRequests")
}

func RegisterExchangeServer(s grpc.ServiceRegistrar, srv ExchangeServer) {
	s.RegisterService(&Exchange_ServiceDesc, srv)
}

func _Exchange_SubmitRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExchangeServer).SubmitRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/otomic.pb.Exchange/SubmitRequest"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExchangeServer).SubmitRequest(ctx, req.(*SubmitRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Exchange_SubmitResponse_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitResponseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExchangeServer).SubmitResponse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/otomic.pb.Exchange/SubmitResponse"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExchangeServer).SubmitResponse(ctx, req.(*SubmitResponseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Exchange_AcceptBid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AcceptBidRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExchangeServer).AcceptBid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/otomic.pb.Exchange/AcceptBid"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExchangeServer).AcceptBid(ctx, req.(*AcceptBidRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Exchange_SettleCreator_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SettleCreatorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExchangeServer).SettleCreator(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/otomic.pb.Exchange/SettleCreator"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExchangeServer).SettleCreator(ctx, req.(*SettleCreatorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Exchange_SettleBidder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SettleBidderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExchangeServer).SettleBidder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/otomic.pb.Exchange/SettleBidder"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExchangeServer).SettleBidder(ctx, req.(*SettleBidderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Exchange_Reclaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReclaimRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExchangeServer).Reclaim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/otomic.pb.Exchange/Reclaim"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExchangeServer).Reclaim(ctx, req.(*ReclaimRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Exchange_GetRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExchangeServer).GetRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/otomic.pb.Exchange/GetRequest"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExchangeServer).GetRequest(ctx, req.(*GetRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Exchange_ListRequests_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRequestsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExchangeServer).ListRequests(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/otomic.pb.Exchange/ListRequests"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExchangeServer).ListRequests(ctx, req.(*ListRequestsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Exchange_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ExchangeServiceName,
	HandlerType: (*ExchangeServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SubmitRequest", Handler: _Exchange_SubmitRequest_Handler},
		{MethodName: "SubmitResponse", Handler: _Exchange_SubmitResponse_Handler},
		{MethodName: "AcceptBid", Handler: _Exchange_AcceptBid_Handler},
		{MethodName: "SettleCreator", Handler: _Exchange_SettleCreator_Handler},
		{MethodName: "SettleBidder", Handler: _Exchange_SettleBidder_Handler},
		{MethodName: "Reclaim", Handler: _Exchange_Reclaim_Handler},
		{MethodName: "GetRequest", Handler: _Exchange_GetRequest_Handler},
		{MethodName: "ListRequests", Handler: _Exchange_ListRequests_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/pb/rfq.proto",
}

func errUnimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}
