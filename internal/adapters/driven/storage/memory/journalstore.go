package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
)

// Ensure JournalStore implements the interface.
var _ driven.JournalStore = (*JournalStore)(nil)

// JournalStore is an in-memory implementation of driven.JournalStore.
type JournalStore struct {
	mu      sync.RWMutex
	entries map[string]domain.JournalEntry
}

// NewJournalStore creates a new in-memory journal store.
func NewJournalStore() *JournalStore {
	return &JournalStore{
		entries: make(map[string]domain.JournalEntry),
	}
}

// Save stores or replaces an entry.
func (s *JournalStore) Save(_ context.Context, entry *domain.JournalEntry) error {
	if entry == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = *entry
	return nil
}

// Get retrieves an entry by id.
func (s *JournalStore) Get(_ context.Context, id string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

// ListSince returns entries written on or after since, most recent
// first.
func (s *JournalStore) ListSince(_ context.Context, since time.Time) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.JournalEntry, 0)
	for _, entry := range s.entries {
		if !entry.WrittenAt.Before(since) {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WrittenAt.After(result[j].WrittenAt)
	})
	return result, nil
}

// Delete removes an entry by id.
func (s *JournalStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
