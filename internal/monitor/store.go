package monitor

import (
	"sync"

	"fxmonitor/internal/domain"
)

// SnapshotStore holds the most recent snapshot per currency published by the
// refresh scheduler. Writes are fenced by cycle sequence: a snapshot built
// by an abandoned or superseded cycle can never overwrite a newer cycle's
// result.
type SnapshotStore struct {
	mu      sync.RWMutex
	latest  map[domain.CurrencyCode]domain.RateSnapshot
	lastSeq map[domain.CurrencyCode]uint64
}

// Put publishes a snapshot built by cycle seq. It reports false, leaving the
// store untouched, when a later cycle already published for that currency.
func (s *SnapshotStore) Put(seq uint64, snap domain.RateSnapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastSeq[snap.Currency]; ok && seq < last {
		return false
	}
	s.lastSeq[snap.Currency] = seq
	s.latest[snap.Currency] = snap
	return true
}

func (s *SnapshotStore) Latest(currency domain.CurrencyCode) (domain.RateSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.latest[currency]
	return snap, ok
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		latest:  make(map[domain.CurrencyCode]domain.RateSnapshot),
		lastSeq: make(map[domain.CurrencyCode]uint64),
	}
}
