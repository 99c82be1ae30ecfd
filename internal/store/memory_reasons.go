package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-photo-gate/models"
)

type reasonEntry struct {
	reason    models.RejectionReason
	expiresAt time.Time
}

// memoryReasonStore is a process-local [ReasonStore] for single-instance
// deployments and tests.
type memoryReasonStore struct {
	mu      sync.Mutex
	entries map[string]reasonEntry
}

func NewMemoryReasonStore() ReasonStore {
	return &memoryReasonStore{
		entries: make(map[string]reasonEntry),
	}
}

func (s *memoryReasonStore) PutReason(_ context.Context, key string, reason models.RejectionReason, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = reasonEntry{reason: reason, expiresAt: expiresAt}
	return nil
}

func (s *memoryReasonStore) TakeReason(_ context.Context, key string, now time.Time) (models.RejectionReason, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return models.ReasonNone, ErrReasonNotFound
	}
	delete(s.entries, key)

	if !entry.expiresAt.After(now) {
		return models.ReasonNone, ErrReasonNotFound
	}

	return entry.reason, nil
}

func (s *memoryReasonStore) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for key, entry := range s.entries {
		if !entry.expiresAt.After(now) {
			delete(s.entries, key)
			purged++
		}
	}
	return purged, nil
}
