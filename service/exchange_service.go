package service

import (
	"fmt"
	"log"
	"sync"

	"otomic/api/pb"
	"otomic/domain/rfq"
	"otomic/infra/sequence"
	"otomic/infra/wal/journal"
	"otomic/infra/wal/outbox"
)

// ExchangeService serializes all ledger mutations behind one mutex and
// owns the commit pipeline: ledger transition, journal append, outbox
// enqueue. No other component mutates the ledger.
type ExchangeService struct {
	mu sync.Mutex

	ledger  *rfq.Ledger
	clk     *tickClock
	ids     *sequence.Sequencer
	commits *sequence.Sequencer

	journal *journal.Journal
	outbox  *outbox.Outbox
}

// tickClock latches the wall clock once per operation so the ledger,
// the journal record, and the emitted event all observe the same
// timestamp — and so replay can pin it to a recorded one. Always used
// under the service mutex.
type tickClock struct {
	inner rfq.Clock
	t     int64
}

func (c *tickClock) Tick() int64 {
	if c.inner != nil {
		c.t = c.inner.Now()
	}
	return c.t
}

func (c *tickClock) Set(t int64) { c.t = t }
func (c *tickClock) Now() int64  { return c.t }

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// SubmitRequest escrows the offered asset and opens a new request.
// Returns the assigned request id.
func (s *ExchangeService) SubmitRequest(creator, assetOffered, assetWanted string, amount int64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.clk.Tick()
	id, err := s.ledger.SubmitRequest(creator, assetOffered, assetWanted, amount)
	if err != nil {
		return 0, err
	}

	s.commit(
		journal.RecordRequest,
		fmt.Sprintf("%d|%s|%s|%s|%d", id, creator, assetOffered, assetWanted, amount),
		&pb.Event{
			Type:         pb.EventRequestCreated,
			RequestId:    id,
			Account:      creator,
			AssetOffered: assetOffered,
			AssetWanted:  assetWanted,
			Amount:       amount,
			Time:         ts,
		},
	)
	return id, nil
}

// SubmitResponse escrows the wanted asset and records a pending bid.
// A timeout of zero inherits the request's expiry.
func (s *ExchangeService) SubmitResponse(requestID uint64, bidder string, amount, timeoutSeconds int64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.clk.Tick()
	id, err := s.ledger.SubmitResponse(requestID, bidder, amount, timeoutSeconds)
	if err != nil {
		return 0, err
	}

	s.commit(
		journal.RecordBid,
		fmt.Sprintf("%d|%d|%s|%d|%d", id, requestID, bidder, amount, timeoutSeconds),
		&pb.Event{
			Type:      pb.EventBidSubmitted,
			RequestId: requestID,
			BidId:     id,
			Account:   bidder,
			Amount:    amount,
			Time:      ts,
		},
	)
	return id, nil
}

// AcceptBid commits the match; settlement stays a separate step.
func (s *ExchangeService) AcceptBid(requestID, bidID uint64, caller string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.clk.Tick()
	if err := s.ledger.AcceptBid(requestID, bidID, caller); err != nil {
		return err
	}

	s.commit(
		journal.RecordAccept,
		fmt.Sprintf("%d|%d|%s", requestID, bidID, caller),
		&pb.Event{
			Type:      pb.EventBidAccepted,
			RequestId: requestID,
			BidId:     bidID,
			Account:   caller,
			Time:      ts,
		},
	)
	return nil
}

// SettleCreator pays the accepted bid's escrow out to the creator.
func (s *ExchangeService) SettleCreator(requestID uint64, caller string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.clk.Tick()
	if err := s.ledger.SettleCreator(requestID, caller); err != nil {
		return err
	}

	s.commit(
		journal.RecordSettleCreator,
		fmt.Sprintf("%d|%s", requestID, caller),
		&pb.Event{
			Type:      pb.EventCreatorSettled,
			RequestId: requestID,
			Account:   caller,
			Time:      ts,
		},
	)
	return nil
}

// SettleBidder settles the bidder side: payout for the winner, refund
// for everyone else.
func (s *ExchangeService) SettleBidder(requestID, bidID uint64, caller string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.clk.Tick()
	if err := s.ledger.SettleBidder(requestID, bidID, caller); err != nil {
		return err
	}

	s.commit(
		journal.RecordSettleBidder,
		fmt.Sprintf("%d|%d|%s", requestID, bidID, caller),
		&pb.Event{
			Type:      pb.EventBidderSettled,
			RequestId: requestID,
			BidId:     bidID,
			Account:   caller,
			Time:      ts,
		},
	)
	return nil
}

// Reclaim returns an expired request's escrow to its creator.
func (s *ExchangeService) Reclaim(requestID uint64, caller string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.clk.Tick()
	if err := s.ledger.Reclaim(requestID, caller); err != nil {
		return err
	}

	s.commit(
		journal.RecordReclaim,
		fmt.Sprintf("%d|%s", requestID, caller),
		&pb.Event{
			Type:      pb.EventReclaimed,
			RequestId: requestID,
			Account:   caller,
			Time:      ts,
		},
	)
	return nil
}

// commit journals the committed operation and enqueues its event.
// Both are best-effort relative to the already-applied ledger change;
// failures are logged, never unwound.
func (s *ExchangeService) commit(t journal.RecordType, payload string, ev *pb.Event) {
	seq := s.commits.Next()

	if err := s.journal.Append(journal.NewRecord(t, seq, s.clk.Now(), []byte(payload))); err != nil {
		log.Printf("[service] journal append failed: seq=%d err=%v", seq, err)
	}

	ev.V = 1
	ev.Seq = seq
	b, err := pb.Marshal(ev)
	if err != nil {
		log.Printf("[service] event marshal failed: seq=%d err=%v", seq, err)
		return
	}
	if err := s.outbox.PutNew(seq, b); err != nil {
		log.Printf("[service] outbox enqueue failed: seq=%d err=%v", seq, err)
	}
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// GetRequest returns a copy of one request and its bids.
func (s *ExchangeService) GetRequest(id uint64) (rfq.ExchangeRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Request(id)
}

// ListRequests returns copies of all requests. With openOnly set, only
// requests still effectively Open at the current time are returned.
func (s *ExchangeService) ListRequests(openOnly bool) []rfq.ExchangeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.ledger.Requests()
	if !openOnly {
		return all
	}

	now := s.clk.Tick()
	out := all[:0]
	for _, r := range all {
		if r.EffectiveStatus(now) == rfq.RequestOpen {
			out = append(out, r)
		}
	}
	return out
}
