package grpcserver

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"otomic/api/pb"
	"otomic/domain/rfq"
	"otomic/service"
)

// Server adapts ExchangeService to gRPC.
type Server struct {
	pb.UnimplementedExchangeServer
	svc *service.ExchangeService
}

func NewServer(svc *service.ExchangeService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) SubmitRequest(ctx context.Context, req *pb.SubmitRequestRequest) (*pb.SubmitRequestResponse, error) {
	id, err := s.svc.SubmitRequest(req.Creator, req.AssetOffered, req.AssetWanted, req.Amount)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] SubmitRequest creator=%s offered=%s wanted=%s amount=%d id=%d",
		req.Creator, req.AssetOffered, req.AssetWanted, req.Amount, id,
	)

	return &pb.SubmitRequestResponse{Status: "ok", RequestId: id}, nil
}

func (s *Server) SubmitResponse(ctx context.Context, req *pb.SubmitResponseRequest) (*pb.SubmitResponseResponse, error) {
	id, err := s.svc.SubmitResponse(req.RequestId, req.Bidder, req.Amount, req.TimeoutSeconds)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] SubmitResponse request=%d bidder=%s amount=%d bid=%d",
		req.RequestId, req.Bidder, req.Amount, id,
	)

	return &pb.SubmitResponseResponse{Status: "ok", BidId: id}, nil
}

func (s *Server) AcceptBid(ctx context.Context, req *pb.AcceptBidRequest) (*pb.AcceptBidResponse, error) {
	if err := s.svc.AcceptBid(req.RequestId, req.BidId, req.Caller); err != nil {
		return nil, toStatus(err)
	}

	log.Printf("[gRPC] AcceptBid request=%d bid=%d", req.RequestId, req.BidId)

	return &pb.AcceptBidResponse{Status: "ok"}, nil
}

func (s *Server) SettleCreator(ctx context.Context, req *pb.SettleCreatorRequest) (*pb.SettleCreatorResponse, error) {
	if err := s.svc.SettleCreator(req.RequestId, req.Caller); err != nil {
		return nil, toStatus(err)
	}

	log.Printf("[gRPC] SettleCreator request=%d", req.RequestId)

	return &pb.SettleCreatorResponse{Status: "ok"}, nil
}

func (s *Server) SettleBidder(ctx context.Context, req *pb.SettleBidderRequest) (*pb.SettleBidderResponse, error) {
	if err := s.svc.SettleBidder(req.RequestId, req.BidId, req.Caller); err != nil {
		return nil, toStatus(err)
	}

	log.Printf("[gRPC] SettleBidder request=%d bid=%d", req.RequestId, req.BidId)

	return &pb.SettleBidderResponse{Status: "ok"}, nil
}

func (s *Server) Reclaim(ctx context.Context, req *pb.ReclaimRequest) (*pb.ReclaimResponse, error) {
	if err := s.svc.Reclaim(req.RequestId, req.Caller); err != nil {
		return nil, toStatus(err)
	}

	log.Printf("[gRPC] Reclaim request=%d", req.RequestId)

	return &pb.ReclaimResponse{Status: "ok"}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetRequest(ctx context.Context, req *pb.GetRequestRequest) (*pb.GetRequestResponse, error) {
	r, ok := s.svc.GetRequest(req.RequestId)
	if !ok {
		return nil, toStatus(rfq.ErrNotFound)
	}

	resp := &pb.GetRequestResponse{
		Request: toEntry(&r),
		Bids:    make([]*pb.BidEntry, 0, len(r.Bids)),
	}
	for _, b := range r.Bids {
		resp.Bids = append(resp.Bids, toBidEntry(b))
	}
	return resp, nil
}

func (s *Server) ListRequests(ctx context.Context, req *pb.ListRequestsRequest) (*pb.ListRequestsResponse, error) {
	reqs := s.svc.ListRequests(req.OpenOnly)

	resp := &pb.ListRequestsResponse{
		Requests: make([]*pb.RequestEntry, 0, len(reqs)),
	}
	for i := range reqs {
		resp.Requests = append(resp.Requests, toEntry(&reqs[i]))
	}
	return resp, nil
}

// -------------------- Converters --------------------

func toEntry(r *rfq.ExchangeRequest) *pb.RequestEntry {
	return &pb.RequestEntry{
		Id:            r.ID,
		Creator:       r.Creator,
		AssetOffered:  r.AssetOffered,
		AssetWanted:   r.AssetWanted,
		AmountOffered: r.AmountOffered,
		CreatedAt:     r.CreatedAt,
		ExpiresAt:     r.ExpiresAt,
		Status:        int32(r.Status),
		AcceptedBidId: r.AcceptedBidID,
	}
}

func toBidEntry(b *rfq.Bid) *pb.BidEntry {
	return &pb.BidEntry{
		Id:           b.ID,
		RequestId:    b.RequestID,
		Bidder:       b.Bidder,
		Amount:       b.Amount,
		SubmittedAt:  b.SubmittedAt,
		BidExpiresAt: b.BidExpiresAt,
		Status:       int32(b.Status),
	}
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, rfq.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, rfq.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, rfq.ErrInvalidAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, rfq.ErrExpired):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, rfq.ErrInvalidState), errors.Is(err, rfq.ErrAlreadySettled):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, rfq.ErrTransferFailed):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
