// Package pb carries the wire types for the Exchange gRPC API and the
// notification events, as defined in rfq.proto.
//
// The message code is maintained by hand in lieu of a protoc step in
// the build: plain structs with protobuf field tags, served through the
// legacy message adapter. Keep field numbers in sync with rfq.proto.
package pb

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

// Event type values, matched by the indexer.
const (
	EventRequestCreated = "request_created"
	EventBidSubmitted   = "bid_submitted"
	EventBidAccepted    = "bid_accepted"
	EventCreatorSettled = "creator_settled"
	EventBidderSettled  = "bidder_settled"
	EventReclaimed      = "reclaimed"
)

// Marshal encodes a message in the protobuf wire format.
func Marshal(m protoadapt.MessageV1) ([]byte, error) {
	return proto.Marshal(protoadapt.MessageV2Of(m))
}

// Unmarshal decodes protobuf wire bytes into a message.
func Unmarshal(b []byte, m protoadapt.MessageV1) error {
	return proto.Unmarshal(b, protoadapt.MessageV2Of(m))
}

type SubmitRequestRequest struct {
	Creator      string `protobuf:"bytes,1,opt,name=creator,proto3" json:"creator,omitempty"`
	AssetOffered string `protobuf:"bytes,2,opt,name=asset_offered,json=assetOffered,proto3" json:"asset_offered,omitempty"`
	AssetWanted  string `protobuf:"bytes,3,opt,name=asset_wanted,json=assetWanted,proto3" json:"asset_wanted,omitempty"`
	Amount       int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *SubmitRequestRequest) Reset()         { *m = SubmitRequestRequest{} }
func (m *SubmitRequestRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SubmitRequestRequest) ProtoMessage()    {}

type SubmitRequestResponse struct {
	Status    string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	RequestId uint64 `protobuf:"varint,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
}

func (m *SubmitRequestResponse) Reset()         { *m = SubmitRequestResponse{} }
func (m *SubmitRequestResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*SubmitRequestResponse) ProtoMessage()    {}

type SubmitResponseRequest struct {
	RequestId      uint64 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Bidder         string `protobuf:"bytes,2,opt,name=bidder,proto3" json:"bidder,omitempty"`
	Amount         int64  `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	TimeoutSeconds int64  `protobuf:"varint,4,opt,name=timeout_seconds,json=timeoutSeconds,proto3" json:"timeout_seconds,omitempty"`
}

func (m *SubmitResponseRequest) Reset()         { *m = SubmitResponseRequest{} }
func (m *SubmitResponseRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SubmitResponseRequest) ProtoMessage()    {}

type SubmitResponseResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	BidId  uint64 `protobuf:"varint,2,opt,name=bid_id,json=bidId,proto3" json:"bid_id,omitempty"`
}

func (m *SubmitResponseResponse) Reset()         { *m = SubmitResponseResponse{} }
func (m *SubmitResponseResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*SubmitResponseResponse) ProtoMessage()    {}

type AcceptBidRequest struct {
	RequestId uint64 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	BidId     uint64 `protobuf:"varint,2,opt,name=bid_id,json=bidId,proto3" json:"bid_id,omitempty"`
	Caller    string `protobuf:"bytes,3,opt,name=caller,proto3" json:"caller,omitempty"`
}

func (m *AcceptBidRequest) Reset()         { *m = AcceptBidRequest{} }
func (m *AcceptBidRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AcceptBidRequest) ProtoMessage()    {}

type AcceptBidResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *AcceptBidResponse) Reset()         { *m = AcceptBidResponse{} }
func (m *AcceptBidResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AcceptBidResponse) ProtoMessage()    {}

type SettleCreatorRequest struct {
	RequestId uint64 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Caller    string `protobuf:"bytes,2,opt,name=caller,proto3" json:"caller,omitempty"`
}

func (m *SettleCreatorRequest) Reset()         { *m = SettleCreatorRequest{} }
func (m *SettleCreatorRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SettleCreatorRequest) ProtoMessage()    {}

type SettleCreatorResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *SettleCreatorResponse) Reset()         { *m = SettleCreatorResponse{} }
func (m *SettleCreatorResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*SettleCreatorResponse) ProtoMessage()    {}

type SettleBidderRequest struct {
	RequestId uint64 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	BidId     uint64 `protobuf:"varint,2,opt,name=bid_id,json=bidId,proto3" json:"bid_id,omitempty"`
	Caller    string `protobuf:"bytes,3,opt,name=caller,proto3" json:"caller,omitempty"`
}

func (m *SettleBidderRequest) Reset()         { *m = SettleBidderRequest{} }
func (m *SettleBidderRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SettleBidderRequest) ProtoMessage()    {}

type SettleBidderResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *SettleBidderResponse) Reset()         { *m = SettleBidderResponse{} }
func (m *SettleBidderResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*SettleBidderResponse) ProtoMessage()    {}

type ReclaimRequest struct {
	RequestId uint64 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Caller    string `protobuf:"bytes,2,opt,name=caller,proto3" json:"caller,omitempty"`
}

func (m *ReclaimRequest) Reset()         { *m = ReclaimRequest{} }
func (m *ReclaimRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReclaimRequest) ProtoMessage()    {}

type ReclaimResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *ReclaimResponse) Reset()         { *m = ReclaimResponse{} }
func (m *ReclaimResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ReclaimResponse) ProtoMessage()    {}

type GetRequestRequest struct {
	RequestId uint64 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
}

func (m *GetRequestRequest) Reset()         { *m = GetRequestRequest{} }
func (m *GetRequestRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetRequestRequest) ProtoMessage()    {}

type RequestEntry struct {
	Id            uint64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Creator       string `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	AssetOffered  string `protobuf:"bytes,3,opt,name=asset_offered,json=assetOffered,proto3" json:"asset_offered,omitempty"`
	AssetWanted   string `protobuf:"bytes,4,opt,name=asset_wanted,json=assetWanted,proto3" json:"asset_wanted,omitempty"`
	AmountOffered int64  `protobuf:"varint,5,opt,name=amount_offered,json=amountOffered,proto3" json:"amount_offered,omitempty"`
	CreatedAt     int64  `protobuf:"varint,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ExpiresAt     int64  `protobuf:"varint,7,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	Status        int32  `protobuf:"varint,8,opt,name=status,proto3" json:"status,omitempty"`
	AcceptedBidId uint64 `protobuf:"varint,9,opt,name=accepted_bid_id,json=acceptedBidId,proto3" json:"accepted_bid_id,omitempty"`
}

func (m *RequestEntry) Reset()         { *m = RequestEntry{} }
func (m *RequestEntry) String() string { return fmt.Sprintf("%+v", *m) }
func (*RequestEntry) ProtoMessage()    {}

type BidEntry struct {
	Id           uint64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	RequestId    uint64 `protobuf:"varint,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Bidder       string `protobuf:"bytes,3,opt,name=bidder,proto3" json:"bidder,omitempty"`
	Amount       int64  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	SubmittedAt  int64  `protobuf:"varint,5,opt,name=submitted_at,json=submittedAt,proto3" json:"submitted_at,omitempty"`
	BidExpiresAt int64  `protobuf:"varint,6,opt,name=bid_expires_at,json=bidExpiresAt,proto3" json:"bid_expires_at,omitempty"`
	Status       int32  `protobuf:"varint,7,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *BidEntry) Reset()         { *m = BidEntry{} }
func (m *BidEntry) String() string { return fmt.Sprintf("%+v", *m) }
func (*BidEntry) ProtoMessage()    {}

type GetRequestResponse struct {
	Request *RequestEntry `protobuf:"bytes,1,opt,name=request,proto3" json:"request,omitempty"`
	Bids    []*BidEntry   `protobuf:"bytes,2,rep,name=bids,proto3" json:"bids,omitempty"`
}

func (m *GetRequestResponse) Reset()         { *m = GetRequestResponse{} }
func (m *GetRequestResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetRequestResponse) ProtoMessage()    {}

type ListRequestsRequest struct {
	OpenOnly bool `protobuf:"varint,1,opt,name=open_only,json=openOnly,proto3" json:"open_only,omitempty"`
}

func (m *ListRequestsRequest) Reset()         { *m = ListRequestsRequest{} }
func (m *ListRequestsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListRequestsRequest) ProtoMessage()    {}

type ListRequestsResponse struct {
	Requests []*RequestEntry `protobuf:"bytes,1,rep,name=requests,proto3" json:"requests,omitempty"`
}

func (m *ListRequestsResponse) Reset()         { *m = ListRequestsResponse{} }
func (m *ListRequestsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListRequestsResponse) ProtoMessage()    {}

type Event struct {
	V            uint32 `protobuf:"varint,1,opt,name=v,proto3" json:"v,omitempty"`
	Type         string `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Seq          uint64 `protobuf:"varint,3,opt,name=seq,proto3" json:"seq,omitempty"`
	RequestId    uint64 `protobuf:"varint,4,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	BidId        uint64 `protobuf:"varint,5,opt,name=bid_id,json=bidId,proto3" json:"bid_id,omitempty"`
	Account      string `protobuf:"bytes,6,opt,name=account,proto3" json:"account,omitempty"`
	AssetOffered string `protobuf:"bytes,7,opt,name=asset_offered,json=assetOffered,proto3" json:"asset_offered,omitempty"`
	AssetWanted  string `protobuf:"bytes,8,opt,name=asset_wanted,json=assetWanted,proto3" json:"asset_wanted,omitempty"`
	Amount       int64  `protobuf:"varint,9,opt,name=amount,proto3" json:"amount,omitempty"`
	Time         int64  `protobuf:"varint,10,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *Event) Reset()         { *m = Event{} }
func (m *Event) String() string { return fmt.Sprintf("%+v", *m) }
func (*Event) ProtoMessage()    {}
