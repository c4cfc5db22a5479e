package driving

import (
	"context"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

// JournalService manages journal entries and their prompts.
type JournalService interface {
	// Write records a new journal entry against an optional prompt id.
	Write(ctx context.Context, promptID, body string) (*domain.JournalEntry, error)

	// List returns entries written in the last windowDays, most
	// recent first.
	List(ctx context.Context, windowDays int) ([]domain.JournalEntry, error)

	// Remove deletes an entry by id.
	Remove(ctx context.Context, id string) error

	// Pattern analyses recent journal activity.
	Pattern(ctx context.Context, today time.Time) (*domain.JournalPattern, error)
}
