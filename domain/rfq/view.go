package rfq

// Read-side helpers. All of them hand out copies; callers never see the
// ledger's own records.

// Request returns a copy of one request and its bids.
func (l *Ledger) Request(id uint64) (ExchangeRequest, bool) {
	req, ok := l.requests[id]
	if !ok {
		return ExchangeRequest{}, false
	}
	return copyRequest(req), true
}

// Requests returns a copy of every request in the ledger.
func (l *Ledger) Requests() []ExchangeRequest {
	out := make([]ExchangeRequest, 0, len(l.requests))
	for _, req := range l.requests {
		out = append(out, copyRequest(req))
	}
	return out
}

// Export is Requests under its snapshot-facing name.
func (l *Ledger) Export() []ExchangeRequest {
	return l.Requests()
}

// Restore replaces the ledger's state with a snapshot export. Only used
// on boot, before replaying the journal tail.
func (l *Ledger) Restore(reqs []ExchangeRequest) {
	l.requests = make(map[uint64]*ExchangeRequest, len(reqs))
	for i := range reqs {
		r := copyRequest(&reqs[i])
		rr := r
		l.requests[rr.ID] = &rr
	}
}

func copyRequest(req *ExchangeRequest) ExchangeRequest {
	out := *req
	out.Bids = make(map[uint64]*Bid, len(req.Bids))
	for id, b := range req.Bids {
		bb := *b
		out.Bids[id] = &bb
	}
	return out
}
