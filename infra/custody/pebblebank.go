package custody

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"
)

// PebbleBank is a durable custody bank. One key per (asset, holder)
// pair, value is the balance as 8 bytes big-endian. A transfer's debit
// and credit go through a single synced batch so a crash can never
// observe half a movement.
type PebbleBank struct {
	mu sync.Mutex
	db *pebble.DB
}

func OpenPebbleBank(dir string) (*PebbleBank, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &PebbleBank{db: db}, nil
}

func (b *PebbleBank) Close() error {
	return b.db.Close()
}

// Mint credits a holder out of thin air. Provisioning only.
func (b *PebbleBank) Mint(asset, holder string, amount int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	bal, err := b.read(asset, holder)
	if err != nil {
		return err
	}
	return b.db.Set(balKey(asset, holder), encodeBalance(bal+amount), pebble.Sync)
}

func (b *PebbleBank) Transfer(asset, from, to string, amount int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if amount <= 0 {
		return fmt.Errorf("custody: non-positive transfer of %s", asset)
	}
	fromBal, err := b.read(asset, from)
	if err != nil {
		return err
	}
	if fromBal < amount {
		return fmt.Errorf("custody: insufficient %s balance for %s", asset, from)
	}
	toBal, err := b.read(asset, to)
	if err != nil {
		return err
	}

	batch := b.db.NewBatch()
	defer batch.Close()
	if err := batch.Set(balKey(asset, from), encodeBalance(fromBal-amount), nil); err != nil {
		return err
	}
	if err := batch.Set(balKey(asset, to), encodeBalance(toBal+amount), nil); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

func (b *PebbleBank) BalanceOf(asset, holder string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	bal, err := b.read(asset, holder)
	if err != nil {
		return 0
	}
	return bal
}

func (b *PebbleBank) read(asset, holder string) (int64, error) {
	val, closer, err := b.db.Get(balKey(asset, holder))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	defer closer.Close()
	return decodeBalance(val)
}

func balKey(asset, holder string) []byte {
	return []byte(fmt.Sprintf("bal/%s/%s", asset, holder))
}

func encodeBalance(v int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(v))
	return buf
}

func decodeBalance(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, errors.New("invalid balance record length")
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}
