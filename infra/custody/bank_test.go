package custody

import "testing"

func TestMemBankTransfer(t *testing.T) {
	b := NewMemBank()
	b.Mint("gold", "alice", 100)

	if err := b.Transfer("gold", "alice", "bob", 40); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := b.BalanceOf("gold", "alice"); got != 60 {
		t.Errorf("alice: expected 60, got %d", got)
	}
	if got := b.BalanceOf("gold", "bob"); got != 40 {
		t.Errorf("bob: expected 40, got %d", got)
	}
}

func TestMemBankFailsClosed(t *testing.T) {
	b := NewMemBank()
	b.Mint("gold", "alice", 10)

	if err := b.Transfer("gold", "alice", "bob", 11); err == nil {
		t.Fatal("expected overdraw to fail")
	}
	if err := b.Transfer("gold", "alice", "bob", 0); err == nil {
		t.Fatal("expected zero transfer to fail")
	}
	if err := b.Transfer("gold", "carol", "bob", 1); err == nil {
		t.Fatal("expected transfer from empty holder to fail")
	}

	// Nothing moved on any failure.
	if got := b.BalanceOf("gold", "alice"); got != 10 {
		t.Errorf("alice: expected 10, got %d", got)
	}
	if got := b.BalanceOf("gold", "bob"); got != 0 {
		t.Errorf("bob: expected 0, got %d", got)
	}
}

func TestMemBankSeparatesAssets(t *testing.T) {
	b := NewMemBank()
	b.Mint("gold", "alice", 5)
	b.Mint("silver", "alice", 9)

	if err := b.Transfer("gold", "alice", "bob", 5); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := b.BalanceOf("silver", "alice"); got != 9 {
		t.Errorf("silver balance disturbed: %d", got)
	}
}

func TestPebbleBankTransferAndReopen(t *testing.T) {
	dir := t.TempDir()

	b, err := OpenPebbleBank(dir)
	if err != nil {
		t.Fatalf("open bank: %v", err)
	}
	if err := b.Mint("gold", "alice", 100); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := b.Transfer("gold", "alice", "bob", 30); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Balances survive a restart.
	b2, err := OpenPebbleBank(dir)
	if err != nil {
		t.Fatalf("reopen bank: %v", err)
	}
	defer b2.Close()

	if got := b2.BalanceOf("gold", "alice"); got != 70 {
		t.Errorf("alice: expected 70, got %d", got)
	}
	if got := b2.BalanceOf("gold", "bob"); got != 30 {
		t.Errorf("bob: expected 30, got %d", got)
	}
}

func TestPebbleBankFailsClosed(t *testing.T) {
	b, err := OpenPebbleBank(t.TempDir())
	if err != nil {
		t.Fatalf("open bank: %v", err)
	}
	defer b.Close()

	if err := b.Mint("gold", "alice", 10); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := b.Transfer("gold", "alice", "bob", 11); err == nil {
		t.Fatal("expected overdraw to fail")
	}
	if got := b.BalanceOf("gold", "alice"); got != 10 {
		t.Errorf("alice: expected 10, got %d", got)
	}
	if got := b.BalanceOf("gold", "bob"); got != 0 {
		t.Errorf("bob: expected 0, got %d", got)
	}
}
