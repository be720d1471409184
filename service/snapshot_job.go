package service

import (
	"log"
	"time"

	"otomic/snapshot"
)

// StartSnapshotJob periodically persists the ledger and truncates the
// journal segments and acked outbox records the snapshot now covers.
func (s *ExchangeService) StartSnapshotJob(dir string, interval time.Duration) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for range t.C {
			s.snapshotOnce(w)
		}
	}()
}

func (s *ExchangeService) snapshotOnce(w *snapshot.Writer) {
	s.mu.Lock()
	seq := s.commits.Current()
	lastID := s.ids.Current()
	reqs := s.ledger.Export()

	if err := w.Write(seq, lastID, reqs); err != nil {
		s.mu.Unlock()
		log.Printf("[service] snapshot write failed: %v", err)
		return
	}
	_ = s.journal.TruncateBefore(seq)
	s.mu.Unlock()

	_ = s.outbox.TruncateAckedUpTo(seq)
}
