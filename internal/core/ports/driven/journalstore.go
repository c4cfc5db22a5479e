package driven

import (
	"context"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

// JournalStore persists journal entries.
type JournalStore interface {
	// Save stores a journal entry. Entries are immutable once
	// written; saving an existing id replaces it.
	Save(ctx context.Context, entry *domain.JournalEntry) error

	// Get retrieves an entry by id. Returns domain.ErrNotFound when
	// the entry does not exist.
	Get(ctx context.Context, id string) (*domain.JournalEntry, error)

	// ListSince returns entries written on or after the given time,
	// most recent first.
	ListSince(ctx context.Context, since time.Time) ([]domain.JournalEntry, error)

	// Delete removes an entry by id.
	Delete(ctx context.Context, id string) error
}
