package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driving"
)

// Ensure JournalService implements the interface.
var _ driving.JournalService = (*JournalService)(nil)

// Journal pattern analysis parameters.
const (
	// journalPatternWindowDays is how far back the analyser looks.
	journalPatternWindowDays = 14

	// reflectiveActiveDays is the distinct-day threshold for the
	// reflective flag.
	reflectiveActiveDays = 4
)

// JournalService manages journal entries and the pattern analysis
// that feeds the reflective prompt boost.
type JournalService struct {
	store driven.JournalStore
}

// NewJournalService creates a journal service.
func NewJournalService(store driven.JournalStore) *JournalService {
	return &JournalService{store: store}
}

// Write records a new journal entry.
func (s *JournalService) Write(ctx context.Context, promptID, body string) (*domain.JournalEntry, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("journal entry body: %w", domain.ErrInvalidInput)
	}
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	entry := &domain.JournalEntry{
		ID:        uuid.NewString(),
		PromptID:  promptID,
		Body:      body,
		WrittenAt: time.Now().UTC(),
	}

	if err := s.store.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("saving journal entry: %w", err)
	}
	return entry, nil
}

// List returns entries from the last windowDays, most recent first.
func (s *JournalService) List(ctx context.Context, windowDays int) ([]domain.JournalEntry, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if windowDays <= 0 {
		windowDays = journalPatternWindowDays
	}
	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	return s.store.ListSince(ctx, since)
}

// Remove deletes an entry by id.
func (s *JournalService) Remove(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrStoreUnavailable
	}
	return s.store.Delete(ctx, id)
}

// Pattern analyses the last two weeks of journal activity. A missing
// or failing store reads as no activity, never as an error to the
// caller's selection path.
func (s *JournalService) Pattern(ctx context.Context, today time.Time) (*domain.JournalPattern, error) {
	pattern := &domain.JournalPattern{}
	if s.store == nil {
		return pattern, nil
	}

	since := today.AddDate(0, 0, -journalPatternWindowDays)
	entries, err := s.store.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}

	days := make(map[string]struct{})
	for _, e := range entries {
		days[e.WrittenAt.Format("2006-01-02")] = struct{}{}
	}

	pattern.EntryCount = len(entries)
	pattern.ActiveDays = len(days)
	pattern.Reflective = pattern.ActiveDays >= reflectiveActiveDays
	return pattern, nil
}
