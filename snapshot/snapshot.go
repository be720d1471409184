// Package snapshot persists point-in-time copies of the ledger so the
// command journal can be truncated. A snapshot captures every request
// and bid record plus the sequencer positions; boot restores the
// snapshot and replays only the journal tail past Seq.
package snapshot

import (
	"time"

	"otomic/domain/rfq"
)

type Snapshot struct {
	Seq     uint64 // last commit sequence covered
	LastID  uint64 // last request/bid id issued
	Created time.Time

	Requests []rfq.ExchangeRequest
}
