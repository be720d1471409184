package rfq

import (
	"sync/atomic"
	"time"
)

// Clock supplies the timestamps used for expiry checks. Implementations
// must be non-decreasing as observed by the ledger.
type Clock interface {
	Now() int64
}

// WallClock reads the system clock in unix seconds and clamps it so a
// backward step (NTP adjustment) can never be observed by the ledger.
type WallClock struct {
	last atomic.Int64
}

func (c *WallClock) Now() int64 {
	now := time.Now().Unix()
	for {
		prev := c.last.Load()
		if now <= prev {
			return prev
		}
		if c.last.CompareAndSwap(prev, now) {
			return now
		}
	}
}

// Custody moves escrowed funds between holders. Both operations fail
// closed: a rejected transfer moves nothing.
type Custody interface {
	Transfer(asset, from, to string, amount int64) error
	BalanceOf(asset, holder string) int64
}

// IDSource issues the monotonically assigned request and bid ids.
type IDSource interface {
	Next() uint64
}

// CustodyAccount is the holder name the ledger escrows under.
const CustodyAccount = "$ledger"
