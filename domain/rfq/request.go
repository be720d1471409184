package rfq

type RequestStatus int
type BidStatus int

const (
	RequestOpen RequestStatus = iota
	RequestAccepted
	RequestWithdrawn
	RequestExpired
)

const (
	BidPending BidStatus = iota
	BidAccepted
	BidRejected
	BidWithdrawn
)

// ExchangeRequest is an open offer to exchange a fixed, escrowed
// quantity of AssetOffered for AssetWanted. Records are retained after
// reaching a terminal status so withdrawals stay idempotent and the
// ledger stays auditable.
type ExchangeRequest struct {
	ID            uint64
	Creator       string
	AssetOffered  string
	AssetWanted   string
	AmountOffered int64

	CreatedAt int64
	ExpiresAt int64

	Status        RequestStatus
	AcceptedBidID uint64

	// CreatorPaid flips atomically with the creator-side transfer so a
	// second settlement or reclaim cannot move funds twice.
	CreatorPaid bool

	Bids map[uint64]*Bid
}

// Bid escrows Amount of the request's wanted asset against an open
// request. BidExpiresAt is zero when the bid inherits the request's
// expiry.
type Bid struct {
	ID        uint64
	RequestID uint64
	Bidder    string
	Amount    int64

	SubmittedAt  int64
	BidExpiresAt int64

	Status BidStatus

	// Paid marks the winning bidder's payout; refunds flip Status to
	// BidWithdrawn instead.
	Paid bool
}

// EffectiveStatus reports the status a request has at the observed
// time, regardless of whether the stored enum has caught up. A stored
// Open past its deadline is Expired.
func (r *ExchangeRequest) EffectiveStatus(now int64) RequestStatus {
	if r.Status == RequestOpen && now >= r.ExpiresAt {
		return RequestExpired
	}
	return r.Status
}

// expired reports whether the bid's own timeout has elapsed. Bids
// without a timeout never expire on their own.
func (b *Bid) expired(now int64) bool {
	return b.BidExpiresAt != 0 && now >= b.BidExpiresAt
}
