package service

import (
	"errors"
	"testing"
	"time"

	"otomic/domain/rfq"
	"otomic/infra/custody"
	"otomic/infra/wal/journal"
	"otomic/infra/wal/outbox"
	"otomic/snapshot"
)

type fakeClock struct{ t int64 }

func (c *fakeClock) Now() int64 { return c.t }

type env struct {
	t *testing.T

	journalDir  string
	outboxDir   string
	snapshotDir string

	clock *fakeClock
	bank  *custody.MemBank

	jr *journal.Journal
	ob *outbox.Outbox

	svc *ExchangeService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	base := t.TempDir()
	e := &env{
		t:           t,
		journalDir:  base + "/journal",
		outboxDir:   base + "/outbox",
		snapshotDir: base + "/snapshots",
		clock:       &fakeClock{t: 1_000},
		bank:        custody.NewMemBank(),
	}
	e.boot()
	t.Cleanup(e.close)
	return e
}

func (e *env) boot() {
	e.t.Helper()

	jr, err := journal.Open(journal.Config{Dir: e.journalDir, SegmentSize: 1 << 20})
	if err != nil {
		e.t.Fatalf("open journal: %v", err)
	}
	ob, err := outbox.Open(e.outboxDir)
	if err != nil {
		e.t.Fatalf("open outbox: %v", err)
	}

	svc, err := Boot(BootConfig{
		RequestLifetime: 500,
		JournalDir:      e.journalDir,
		SnapshotDir:     e.snapshotDir,
		Journal:         jr,
		Outbox:          ob,
		Bank:            e.bank,
		Clock:           e.clock,
	})
	if err != nil {
		e.t.Fatalf("boot: %v", err)
	}
	e.jr, e.ob, e.svc = jr, ob, svc
}

func (e *env) close() {
	if e.jr != nil {
		_ = e.jr.Close()
		e.jr = nil
	}
	if e.ob != nil {
		_ = e.ob.Close()
		e.ob = nil
	}
}

// reboot simulates a process restart: everything durable is reopened,
// everything in memory is rebuilt from snapshot + journal.
func (e *env) reboot() {
	e.t.Helper()
	e.close()
	e.boot()
}

func TestFullExchangeThroughService(t *testing.T) {
	e := newEnv(t)
	e.bank.Mint("GOLD", "alice", 100)
	e.bank.Mint("SILVER", "bob", 80)

	reqID, err := e.svc.SubmitRequest("alice", "GOLD", "SILVER", 100)
	if err != nil {
		t.Fatalf("submit request: %v", err)
	}
	bidID, err := e.svc.SubmitResponse(reqID, "bob", 80, 0)
	if err != nil {
		t.Fatalf("submit response: %v", err)
	}
	if err := e.svc.AcceptBid(reqID, bidID, "alice"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if err := e.svc.SettleCreator(reqID, "alice"); err != nil {
		t.Fatalf("settle creator: %v", err)
	}
	if err := e.svc.SettleBidder(reqID, bidID, "bob"); err != nil {
		t.Fatalf("settle bidder: %v", err)
	}

	if got := e.bank.BalanceOf("SILVER", "alice"); got != 80 {
		t.Errorf("alice SILVER = %d, want 80", got)
	}
	if got := e.bank.BalanceOf("GOLD", "bob"); got != 100 {
		t.Errorf("bob GOLD = %d, want 100", got)
	}
	if got := e.bank.BalanceOf("GOLD", rfq.CustodyAccount); got != 0 {
		t.Errorf("custody retains %d GOLD", got)
	}
	if got := e.bank.BalanceOf("SILVER", rfq.CustodyAccount); got != 0 {
		t.Errorf("custody retains %d SILVER", got)
	}

	// Five committed operations, five journal records, five events.
	var seqs []uint64
	last, err := journal.Replay(e.journalDir, func(rec *journal.Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(seqs) != 5 || last != 5 {
		t.Fatalf("journal records: %v (last=%d)", seqs, last)
	}

	pending := 0
	err = e.ob.ScanPending(func(*outbox.Record) error {
		pending++
		return nil
	})
	if err != nil {
		t.Fatalf("scan outbox: %v", err)
	}
	if pending != 5 {
		t.Fatalf("pending events = %d, want 5", pending)
	}
}

func TestCommandFailureLeavesNoTrace(t *testing.T) {
	e := newEnv(t)

	// alice holds nothing; escrow must fail and commit nothing.
	_, err := e.svc.SubmitRequest("alice", "GOLD", "SILVER", 100)
	if !errors.Is(err, rfq.ErrTransferFailed) {
		t.Fatalf("err = %v, want ErrTransferFailed", err)
	}

	n := 0
	if _, err := journal.Replay(e.journalDir, func(*journal.Record) error { n++; return nil }); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if n != 0 {
		t.Fatalf("failed operation reached the journal: %d records", n)
	}
}

func TestBootRebuildsFromJournal(t *testing.T) {
	e := newEnv(t)
	e.bank.Mint("GOLD", "alice", 100)
	e.bank.Mint("SILVER", "bob", 80)
	e.bank.Mint("SILVER", "carol", 70)

	reqID, _ := e.svc.SubmitRequest("alice", "GOLD", "SILVER", 100)
	winID, _ := e.svc.SubmitResponse(reqID, "bob", 80, 0)
	loseID, _ := e.svc.SubmitResponse(reqID, "carol", 70, 0)
	if err := e.svc.AcceptBid(reqID, winID, "alice"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if err := e.svc.SettleCreator(reqID, "alice"); err != nil {
		t.Fatalf("settle creator: %v", err)
	}

	before, ok := e.svc.GetRequest(reqID)
	if !ok {
		t.Fatal("request missing before reboot")
	}

	e.reboot()

	after, ok := e.svc.GetRequest(reqID)
	if !ok {
		t.Fatal("request missing after reboot")
	}

	if after.Status != rfq.RequestAccepted || after.AcceptedBidID != winID || !after.CreatorPaid {
		t.Fatalf("request state diverged: %+v", after)
	}
	if after.CreatedAt != before.CreatedAt || after.ExpiresAt != before.ExpiresAt {
		t.Fatalf("timestamps diverged: before=%+v after=%+v", before, after)
	}
	if after.Bids[winID].Status != rfq.BidAccepted || after.Bids[loseID].Status != rfq.BidRejected {
		t.Fatalf("bid statuses diverged: %+v %+v", after.Bids[winID], after.Bids[loseID])
	}

	// Replay moved no money: the bank is durable on its own.
	if got := e.bank.BalanceOf("SILVER", "alice"); got != 80 {
		t.Errorf("alice SILVER = %d after reboot, want 80", got)
	}

	// Pending sides still settle against the rebuilt state.
	if err := e.svc.SettleBidder(reqID, winID, "bob"); err != nil {
		t.Fatalf("settle winner after reboot: %v", err)
	}
	if err := e.svc.SettleBidder(reqID, loseID, "carol"); err != nil {
		t.Fatalf("refund loser after reboot: %v", err)
	}
	if got := e.bank.BalanceOf("SILVER", "carol"); got != 70 {
		t.Errorf("carol SILVER = %d, want 70", got)
	}

	// Id and commit sequencing resume exactly where they left off.
	nextID, err := e.svc.SubmitRequest("bob", "GOLD", "SILVER", 50)
	if err != nil {
		t.Fatalf("submit after reboot: %v", err)
	}
	if nextID != loseID+1 {
		t.Fatalf("id stream restarted: got %d, want %d", nextID, loseID+1)
	}
}

func TestBootFromSnapshotPlusTail(t *testing.T) {
	e := newEnv(t)
	e.bank.Mint("GOLD", "alice", 100)
	e.bank.Mint("SILVER", "bob", 80)

	reqID, _ := e.svc.SubmitRequest("alice", "GOLD", "SILVER", 100)
	bidID, _ := e.svc.SubmitResponse(reqID, "bob", 80, 0)

	// Snapshot covers the first two commits; accept lands in the tail.
	e.svc.snapshotOnce(&snapshot.Writer{Dir: e.snapshotDir})

	if err := e.svc.AcceptBid(reqID, bidID, "alice"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	e.reboot()

	got, ok := e.svc.GetRequest(reqID)
	if !ok {
		t.Fatal("request missing after snapshot boot")
	}
	if got.Status != rfq.RequestAccepted || got.AcceptedBidID != bidID {
		t.Fatalf("tail replay lost the accept: %+v", got)
	}
	if got.Bids[bidID].Status != rfq.BidAccepted {
		t.Fatalf("bid state: %+v", got.Bids[bidID])
	}

	if err := e.svc.SettleCreator(reqID, "alice"); err != nil {
		t.Fatalf("settle after snapshot boot: %v", err)
	}
	if gotBal := e.bank.BalanceOf("SILVER", "alice"); gotBal != 80 {
		t.Errorf("alice SILVER = %d, want 80", gotBal)
	}
}

func TestListRequestsOpenOnly(t *testing.T) {
	e := newEnv(t)
	e.bank.Mint("GOLD", "alice", 30)

	oldID, _ := e.svc.SubmitRequest("alice", "GOLD", "SILVER", 10)
	e.clock.t += 600 // past the 500s lifetime
	freshID, _ := e.svc.SubmitRequest("alice", "GOLD", "SILVER", 20)

	open := e.svc.ListRequests(true)
	if len(open) != 1 || open[0].ID != freshID {
		t.Fatalf("open set: %+v", open)
	}

	all := e.svc.ListRequests(false)
	if len(all) != 2 {
		t.Fatalf("full set: %+v", all)
	}
	if got, ok := e.svc.GetRequest(oldID); !ok || got.Status != rfq.RequestOpen {
		t.Fatalf("expiry must stay lazy on reads: %+v", got)
	}
}

func TestSnapshotJobTicks(t *testing.T) {
	e := newEnv(t)
	e.bank.Mint("GOLD", "alice", 10)
	if _, err := e.svc.SubmitRequest("alice", "GOLD", "SILVER", 10); err != nil {
		t.Fatalf("submit: %v", err)
	}

	e.svc.StartSnapshotJob(e.snapshotDir, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for {
		s, err := snapshot.Load(e.snapshotDir)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if s != nil && s.Seq == 1 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("snapshot job never wrote a snapshot")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
