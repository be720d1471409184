package sequence

import "sync/atomic"

// Sequencer hands out strictly monotonic identifiers. The ledger uses
// one stream for request/bid ids and a second one for journal commit
// sequence numbers; both must survive replay, so the counter can be
// reset to the last value a journal scan observed.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer starting from a given value.
// Fresh start: 0. After replay: the last replayed value.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next identifier.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued identifier.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset sets the counter. Only legal during boot, before any caller
// holds a reference.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
