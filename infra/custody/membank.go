package custody

import (
	"fmt"
	"sync"
)

// MemBank is an in-memory custody bank keyed by asset, then holder.
type MemBank struct {
	mu       sync.Mutex
	balances map[string]map[string]int64
}

func NewMemBank() *MemBank {
	return &MemBank{balances: make(map[string]map[string]int64)}
}

// Mint credits a holder out of thin air. Provisioning only.
func (b *MemBank) Mint(asset, holder string, amount int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.credit(asset, holder, amount)
}

func (b *MemBank) Transfer(asset, from, to string, amount int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if amount <= 0 {
		return fmt.Errorf("custody: non-positive transfer of %s", asset)
	}
	if b.balances[asset][from] < amount {
		return fmt.Errorf("custody: insufficient %s balance for %s", asset, from)
	}
	b.balances[asset][from] -= amount
	b.credit(asset, to, amount)
	return nil
}

func (b *MemBank) BalanceOf(asset, holder string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[asset][holder]
}

func (b *MemBank) credit(asset, holder string, amount int64) {
	m := b.balances[asset]
	if m == nil {
		m = make(map[string]int64)
		b.balances[asset] = m
	}
	m[holder] += amount
}
