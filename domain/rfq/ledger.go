package rfq

import "fmt"

// Ledger owns every request and bid record and all escrowed custody.
// All mutation goes through the six entry points below; each one either
// completes fully (transfer and status flip together) or returns an
// error having changed nothing.
type Ledger struct {
	lifetime int64 // request lifetime in seconds, fixed at construction

	custody Custody
	clock   Clock
	ids     IDSource

	requests map[uint64]*ExchangeRequest
}

func NewLedger(lifetime int64, custody Custody, clock Clock, ids IDSource) *Ledger {
	return &Ledger{
		lifetime: lifetime,
		custody:  custody,
		clock:    clock,
		ids:      ids,
		requests: make(map[uint64]*ExchangeRequest),
	}
}

// Rebind swaps the ledger's collaborators. Called once after journal
// replay to exchange the replay custody/clock for the live ones, before
// any traffic is accepted.
func (l *Ledger) Rebind(custody Custody, clock Clock) {
	l.custody = custody
	l.clock = clock
}

// SubmitRequest escrows amount of assetOffered from the creator and
// opens a request for assetWanted. Returns the assigned request id.
func (l *Ledger) SubmitRequest(creator, assetOffered, assetWanted string, amount int64) (uint64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if err := l.custody.Transfer(assetOffered, creator, CustodyAccount, amount); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	now := l.clock.Now()
	id := l.ids.Next()
	l.requests[id] = &ExchangeRequest{
		ID:            id,
		Creator:       creator,
		AssetOffered:  assetOffered,
		AssetWanted:   assetWanted,
		AmountOffered: amount,
		CreatedAt:     now,
		ExpiresAt:     now + l.lifetime,
		Status:        RequestOpen,
		Bids:          make(map[uint64]*Bid),
	}
	return id, nil
}

// SubmitResponse escrows amount of the request's wanted asset from the
// bidder and records a pending bid. timeoutSeconds of zero means the
// bid inherits the request's expiry.
func (l *Ledger) SubmitResponse(requestID uint64, bidder string, amount, timeoutSeconds int64) (uint64, error) {
	req, ok := l.requests[requestID]
	if !ok {
		return 0, ErrNotFound
	}
	now := l.clock.Now()
	switch req.EffectiveStatus(now) {
	case RequestOpen:
	case RequestExpired:
		req.Status = RequestExpired
		return 0, ErrExpired
	default:
		return 0, ErrInvalidState
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if err := l.custody.Transfer(req.AssetWanted, bidder, CustodyAccount, amount); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	id := l.ids.Next()
	b := &Bid{
		ID:          id,
		RequestID:   requestID,
		Bidder:      bidder,
		Amount:      amount,
		SubmittedAt: now,
		Status:      BidPending,
	}
	if timeoutSeconds > 0 {
		b.BidExpiresAt = now + timeoutSeconds
	}
	req.Bids[id] = b
	return id, nil
}

// AcceptBid commits the match: the request closes on the chosen bid and
// every other pending bid becomes refundable. No funds move here;
// settlement is pulled by each side independently.
func (l *Ledger) AcceptBid(requestID, bidID uint64, caller string) error {
	req, ok := l.requests[requestID]
	if !ok {
		return ErrNotFound
	}
	if req.Creator != caller {
		return ErrUnauthorized
	}
	now := l.clock.Now()
	switch req.EffectiveStatus(now) {
	case RequestOpen:
	case RequestExpired:
		req.Status = RequestExpired
		return ErrExpired
	default:
		return ErrInvalidState
	}
	win, ok := req.Bids[bidID]
	if !ok {
		return ErrNotFound
	}
	if win.Status != BidPending {
		return ErrInvalidState
	}
	if win.expired(now) {
		return ErrExpired
	}

	req.Status = RequestAccepted
	req.AcceptedBidID = bidID
	win.Status = BidAccepted
	for _, b := range req.Bids {
		if b.ID != bidID && b.Status == BidPending {
			b.Status = BidRejected
		}
	}
	return nil
}

// SettleCreator pays the accepted bid's escrow out to the creator.
func (l *Ledger) SettleCreator(requestID uint64, caller string) error {
	req, ok := l.requests[requestID]
	if !ok {
		return ErrNotFound
	}
	if req.Creator != caller {
		return ErrUnauthorized
	}
	if req.Status != RequestAccepted {
		return ErrInvalidState
	}
	if req.CreatorPaid {
		return ErrAlreadySettled
	}
	win := req.Bids[req.AcceptedBidID]
	if err := l.custody.Transfer(req.AssetWanted, CustodyAccount, req.Creator, win.Amount); err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	req.CreatorPaid = true
	return nil
}

// SettleBidder settles the bidder side. The winning bidder receives the
// request's escrowed asset; any other terminal bid is refunded its own
// escrow. Both paths are idempotent.
func (l *Ledger) SettleBidder(requestID, bidID uint64, caller string) error {
	req, ok := l.requests[requestID]
	if !ok {
		return ErrNotFound
	}
	b, ok := req.Bids[bidID]
	if !ok {
		return ErrNotFound
	}
	if b.Bidder != caller {
		return ErrUnauthorized
	}
	now := l.clock.Now()

	// Winner payout.
	if req.Status == RequestAccepted && req.AcceptedBidID == bidID {
		if b.Paid {
			return ErrAlreadySettled
		}
		if err := l.custody.Transfer(req.AssetOffered, CustodyAccount, b.Bidder, req.AmountOffered); err != nil {
			return fmt.Errorf("%w: %v", ErrTransferFailed, err)
		}
		b.Paid = true
		return nil
	}

	// Refund paths: lost to another bid, bid timed out, or the parent
	// request died before acceptance.
	switch b.Status {
	case BidWithdrawn:
		return ErrAlreadySettled
	case BidRejected:
	case BidPending:
		reqDead := req.EffectiveStatus(now) != RequestOpen
		if !reqDead && !b.expired(now) {
			return ErrInvalidState
		}
		if req.Status == RequestOpen && req.EffectiveStatus(now) == RequestExpired {
			req.Status = RequestExpired
		}
	default:
		return ErrInvalidState
	}
	if err := l.custody.Transfer(req.AssetWanted, CustodyAccount, b.Bidder, b.Amount); err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	b.Status = BidWithdrawn
	return nil
}

// Reclaim returns the original escrow of a request that expired without
// acceptance to its creator. The request ends Withdrawn.
func (l *Ledger) Reclaim(requestID uint64, caller string) error {
	req, ok := l.requests[requestID]
	if !ok {
		return ErrNotFound
	}
	if req.Creator != caller {
		return ErrUnauthorized
	}
	now := l.clock.Now()
	switch req.EffectiveStatus(now) {
	case RequestExpired:
	case RequestWithdrawn:
		return ErrAlreadySettled
	case RequestOpen:
		return ErrInvalidState // not yet expired
	default:
		return ErrInvalidState
	}
	if err := l.custody.Transfer(req.AssetOffered, CustodyAccount, req.Creator, req.AmountOffered); err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	req.Status = RequestWithdrawn
	req.CreatorPaid = true
	return nil
}
