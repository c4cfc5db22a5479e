package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
)

// journalStore implements driven.JournalStore.
type journalStore struct {
	store *Store
}

var _ driven.JournalStore = (*journalStore)(nil)

// Save stores or replaces a journal entry.
func (s *journalStore) Save(ctx context.Context, entry *domain.JournalEntry) error {
	if entry == nil {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO journal_entries (id, prompt_id, body, written_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			prompt_id = excluded.prompt_id,
			body = excluded.body,
			written_at = excluded.written_at
	`, entry.ID, nullString(entry.PromptID), entry.Body,
		entry.WrittenAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving journal entry: %w", err)
	}
	return nil
}

// Get retrieves an entry by id.
func (s *journalStore) Get(ctx context.Context, id string) (*domain.JournalEntry, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, prompt_id, body, written_at
		FROM journal_entries WHERE id = ?
	`, id)

	entry, err := scanJournalEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting journal entry: %w", err)
	}
	return entry, nil
}

// ListSince returns entries written on or after the given time, most
// recent first.
func (s *journalStore) ListSince(ctx context.Context, since time.Time) ([]domain.JournalEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, prompt_id, body, written_at
		FROM journal_entries
		WHERE written_at >= ?
		ORDER BY written_at DESC
	`, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("querying journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		entry, err := scanJournalEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}

	return entries, nil
}

// Delete removes an entry by id.
func (s *journalStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM journal_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	return nil
}

// scanJournalEntry scans an entry from a row or rows scan function.
func scanJournalEntry(scan func(dest ...any) error) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	var promptID sql.NullString
	var writtenAt string

	if err := scan(&entry.ID, &promptID, &entry.Body, &writtenAt); err != nil {
		return nil, err
	}

	if promptID.Valid {
		entry.PromptID = promptID.String
	}
	if t, err := time.Parse(time.RFC3339, writtenAt); err == nil {
		entry.WrittenAt = t
	}

	return &entry, nil
}
