// Package indexer consumes the exchange event topic and maintains the
// off-ledger index client tooling queries: which requests exist, their
// bids, and how each one resolved. It never talks to the ledger; the
// event stream is its only input.
package indexer

import (
	"context"
	"log"
	"sync"

	"github.com/segmentio/kafka-go"

	"otomic/api/pb"
)

type Indexer struct {
	reader *kafka.Reader

	mu       sync.RWMutex
	requests map[uint64]*Request
}

// Request is the indexed view of one exchange request.
type Request struct {
	ID           uint64
	Creator      string
	AssetOffered string
	AssetWanted  string
	Amount       int64
	CreatedAt    int64

	AcceptedBidID uint64
	Accepted      bool
	Closed        bool // settled or reclaimed

	Bids []Bid
}

type Bid struct {
	ID          uint64
	Bidder      string
	Amount      int64
	SubmittedAt int64
}

func New(brokers []string, topic, group string) *Indexer {
	return &Indexer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  group,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
		requests: make(map[uint64]*Request),
	}
}

// Run consumes until the context is cancelled or the reader fails.
func (ix *Indexer) Run(ctx context.Context) error {
	for {
		m, err := ix.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var ev pb.Event
		if err := pb.Unmarshal(m.Value, &ev); err != nil {
			log.Printf("[indexer] bad event at offset %d: %v", m.Offset, err)
			continue
		}
		ix.Apply(&ev)
	}
}

func (ix *Indexer) Close() error {
	return ix.reader.Close()
}

// Apply folds one event into the index. Split out from Run so the fold
// logic is testable without a broker.
func (ix *Indexer) Apply(ev *pb.Event) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	switch ev.Type {
	case pb.EventRequestCreated:
		ix.requests[ev.RequestId] = &Request{
			ID:           ev.RequestId,
			Creator:      ev.Account,
			AssetOffered: ev.AssetOffered,
			AssetWanted:  ev.AssetWanted,
			Amount:       ev.Amount,
			CreatedAt:    ev.Time,
		}

	case pb.EventBidSubmitted:
		req := ix.requests[ev.RequestId]
		if req == nil {
			return // bid for a request we never saw; topic truncated
		}
		req.Bids = append(req.Bids, Bid{
			ID:          ev.BidId,
			Bidder:      ev.Account,
			Amount:      ev.Amount,
			SubmittedAt: ev.Time,
		})

	case pb.EventBidAccepted:
		if req := ix.requests[ev.RequestId]; req != nil {
			req.Accepted = true
			req.AcceptedBidID = ev.BidId
		}

	case pb.EventCreatorSettled, pb.EventReclaimed:
		if req := ix.requests[ev.RequestId]; req != nil {
			req.Closed = true
		}
	}
}

// Request returns the indexed view of one request.
func (ix *Indexer) Request(id uint64) (Request, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	req, ok := ix.requests[id]
	if !ok {
		return Request{}, false
	}
	out := *req
	out.Bids = append([]Bid(nil), req.Bids...)
	return out, true
}

// Requests returns every indexed request.
func (ix *Indexer) Requests() []Request {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	out := make([]Request, 0, len(ix.requests))
	for _, req := range ix.requests {
		r := *req
		r.Bids = append([]Bid(nil), req.Bids...)
		out = append(out, r)
	}
	return out
}
