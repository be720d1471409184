package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"otomic/domain/rfq"
)

type Writer struct {
	Dir string
}

// Write replaces the snapshot on disk. The temp-file rename keeps a
// crash mid-write from destroying the previous snapshot.
func (w *Writer) Write(seq, lastID uint64, reqs []rfq.ExchangeRequest) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	tmp := filepath.Join(w.Dir, "snapshot.bin.tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	s := Snapshot{
		Seq:      seq,
		LastID:   lastID,
		Created:  time.Now(),
		Requests: reqs,
	}

	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, filepath.Join(w.Dir, "snapshot.bin"))
}
