package memory

import (
	"context"
	"sync"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
)

// Ensure ShownStore implements the interface.
var _ driven.ShownStore = (*ShownStore)(nil)

// ShownStore is an in-memory implementation of driven.ShownStore.
// Useful for tests and for running without a data directory.
type ShownStore struct {
	mu    sync.RWMutex
	shown map[string]time.Time
}

// NewShownStore creates a new in-memory shown store.
func NewShownStore() *ShownStore {
	return &ShownStore{
		shown: make(map[string]time.Time),
	}
}

// day truncates a time to its calendar date.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RecentIDs returns ids shown within the window, excluding today's
// own showings.
func (s *ShownStore) RecentIDs(_ context.Context, today time.Time, windowDays int) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := day(today).AddDate(0, 0, -windowDays)
	todayDay := day(today)

	ids := make(map[string]struct{})
	for id, shownAt := range s.shown {
		d := day(shownAt)
		if !d.Before(cutoff) && d.Before(todayDay) {
			ids[id] = struct{}{}
		}
	}
	return ids, nil
}

// MarkShown records a showing, replacing any earlier record for the
// same item.
func (s *ShownStore) MarkShown(_ context.Context, itemID string, shownAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown[itemID] = day(shownAt)
	return nil
}

// Prune removes records older than the retention horizon.
func (s *ShownStore) Prune(_ context.Context, today time.Time, retentionDays int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := day(today).AddDate(0, 0, -retentionDays)
	pruned := 0
	for id, shownAt := range s.shown {
		if day(shownAt).Before(cutoff) {
			delete(s.shown, id)
			pruned++
		}
	}
	return pruned, nil
}

// Len returns the number of records held. Test helper.
func (s *ShownStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shown)
}
