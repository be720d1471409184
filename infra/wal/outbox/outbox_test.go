package outbox

import (
	"testing"
)

func openTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	ob, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() { _ = ob.Close() })
	return ob
}

func TestOutboxLifecycle(t *testing.T) {
	ob := openTestOutbox(t)

	if err := ob.PutNew(1, []byte("ev-1")); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := ob.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateNew || string(rec.Payload) != "ev-1" {
		t.Fatalf("unexpected record: %+v", rec)
	}

	if err := ob.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	rec, _ = ob.Get(1)
	if rec.State != StateSent || rec.Retries != 1 {
		t.Fatalf("after MarkSent: %+v", rec)
	}

	if err := ob.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	rec, _ = ob.Get(1)
	if rec.State != StateAcked {
		t.Fatalf("after MarkAcked: %+v", rec)
	}
	if string(rec.Payload) != "ev-1" {
		t.Fatalf("payload lost across updates: %q", rec.Payload)
	}
}

func TestOutboxScanPendingSkipsResolved(t *testing.T) {
	ob := openTestOutbox(t)

	for seq := uint64(1); seq <= 4; seq++ {
		if err := ob.PutNew(seq, []byte{byte(seq)}); err != nil {
			t.Fatalf("put %d: %v", seq, err)
		}
	}
	_ = ob.MarkAcked(2)
	_ = ob.MarkSent(3)
	_ = ob.MarkFailed(4)

	var seen []uint64
	err := ob.ScanPending(func(rec *Record) error {
		seen = append(seen, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	// NEW (1) and SENT (3) are pending; ACKED (2) and FAILED (4) are not.
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("unexpected pending set: %v", seen)
	}
}

func TestOutboxTruncateAckedUpTo(t *testing.T) {
	ob := openTestOutbox(t)

	for seq := uint64(1); seq <= 3; seq++ {
		_ = ob.PutNew(seq, []byte("x"))
	}
	_ = ob.MarkAcked(1)
	_ = ob.MarkAcked(3)

	if err := ob.TruncateAckedUpTo(2); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if _, err := ob.Get(1); err == nil {
		t.Error("acked record below watermark should be gone")
	}
	if _, err := ob.Get(2); err != nil {
		t.Error("unacked record must survive truncation")
	}
	if _, err := ob.Get(3); err != nil {
		t.Error("acked record above watermark must survive")
	}
}

func TestOutboxSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	ob, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = ob.PutNew(7, []byte("durable"))
	_ = ob.Close()

	ob2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer ob2.Close()

	rec, err := ob2.Get(7)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if rec.State != StateNew || string(rec.Payload) != "durable" {
		t.Fatalf("record mangled across reopen: %+v", rec)
	}
}
