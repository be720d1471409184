package service

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"otomic/domain/rfq"
	"otomic/infra/custody"
	"otomic/infra/sequence"
	"otomic/infra/wal/journal"
	"otomic/infra/wal/outbox"
	"otomic/snapshot"
)

/*
Boot rebuilds ledger state from the latest snapshot plus the journal
tail, then binds the live collaborators and returns a ready service.

IMPORTANT:
- This MUST run before accepting traffic
- The outbox is NOT replayed into the ledger; pending events are the
  broadcaster's problem
- Replay uses a no-op custody: every journaled operation already moved
  its funds before the record was written
*/

type BootConfig struct {
	RequestLifetime int64 // seconds

	JournalDir  string
	SnapshotDir string

	Journal *journal.Journal
	Outbox  *outbox.Outbox
	Bank    rfq.Custody
	Clock   rfq.Clock
}

func Boot(cfg BootConfig) (*ExchangeService, error) {
	ids := sequence.New(0)
	commits := sequence.New(0)
	clk := &tickClock{}

	led := rfq.NewLedger(cfg.RequestLifetime, custody.Noop{}, clk, ids)

	var snapSeq uint64
	snap, err := snapshot.Load(cfg.SnapshotDir)
	if err != nil {
		return nil, fmt.Errorf("snapshot load: %w", err)
	}
	if snap != nil {
		led.Restore(snap.Requests)
		ids.Reset(snap.LastID)
		snapSeq = snap.Seq
	}

	lastSeq, err := journal.Replay(cfg.JournalDir, func(rec *journal.Record) error {
		if rec.Seq <= snapSeq {
			return nil // covered by the snapshot
		}
		clk.Set(rec.Time)
		return apply(led, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("journal replay: %w", err)
	}
	if lastSeq < snapSeq {
		lastSeq = snapSeq
	}
	commits.Reset(lastSeq)

	// Swap the replay collaborators for the live ones.
	clk.inner = cfg.Clock
	clk.Tick()
	led.Rebind(cfg.Bank, clk)

	log.Printf("[service] boot complete: commits=%d ids=%d", lastSeq, ids.Current())

	return &ExchangeService{
		ledger:  led,
		clk:     clk,
		ids:     ids,
		commits: commits,
		journal: cfg.Journal,
		outbox:  cfg.Outbox,
	}, nil
}

// apply re-runs one journaled operation against the ledger. Assigned
// ids must come out identical to the recorded ones; a mismatch means
// the journal and the sequencer disagree and replay must stop.
func apply(led *rfq.Ledger, rec *journal.Record) error {
	parts := strings.Split(string(rec.Data), "|")

	switch rec.Type {
	case journal.RecordRequest:
		if len(parts) != 5 {
			return fmt.Errorf("invalid request payload: %q", rec.Data)
		}
		want, err := parseU64(parts[0])
		if err != nil {
			return err
		}
		amount, err := parseI64(parts[4])
		if err != nil {
			return err
		}
		got, err := led.SubmitRequest(parts[1], parts[2], parts[3], amount)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("replay id mismatch: got %d want %d", got, want)
		}

	case journal.RecordBid:
		if len(parts) != 5 {
			return fmt.Errorf("invalid bid payload: %q", rec.Data)
		}
		want, err := parseU64(parts[0])
		if err != nil {
			return err
		}
		reqID, err := parseU64(parts[1])
		if err != nil {
			return err
		}
		amount, err := parseI64(parts[3])
		if err != nil {
			return err
		}
		timeout, err := parseI64(parts[4])
		if err != nil {
			return err
		}
		got, err := led.SubmitResponse(reqID, parts[2], amount, timeout)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("replay id mismatch: got %d want %d", got, want)
		}

	case journal.RecordAccept:
		reqID, bidID, caller, err := parseIDPair(parts)
		if err != nil {
			return err
		}
		return led.AcceptBid(reqID, bidID, caller)

	case journal.RecordSettleCreator:
		reqID, caller, err := parseIDCaller(parts)
		if err != nil {
			return err
		}
		return led.SettleCreator(reqID, caller)

	case journal.RecordSettleBidder:
		reqID, bidID, caller, err := parseIDPair(parts)
		if err != nil {
			return err
		}
		return led.SettleBidder(reqID, bidID, caller)

	case journal.RecordReclaim:
		reqID, caller, err := parseIDCaller(parts)
		if err != nil {
			return err
		}
		return led.Reclaim(reqID, caller)

	default:
		return fmt.Errorf("unknown record type %d", rec.Type)
	}
	return nil
}

func parseIDPair(parts []string) (uint64, uint64, string, error) {
	if len(parts) != 3 {
		return 0, 0, "", fmt.Errorf("invalid payload: %v", parts)
	}
	reqID, err := parseU64(parts[0])
	if err != nil {
		return 0, 0, "", err
	}
	bidID, err := parseU64(parts[1])
	if err != nil {
		return 0, 0, "", err
	}
	return reqID, bidID, parts[2], nil
}

func parseIDCaller(parts []string) (uint64, string, error) {
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("invalid payload: %v", parts)
	}
	reqID, err := parseU64(parts[0])
	if err != nil {
		return 0, "", err
	}
	return reqID, parts[1], nil
}

func parseU64(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }
func parseI64(s string) (int64, error)  { return strconv.ParseInt(s, 10, 64) }
