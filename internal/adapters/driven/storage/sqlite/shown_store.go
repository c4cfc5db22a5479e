package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
)

// dateLayout is the calendar-date storage format. Shown records carry
// dates, not instants: the anti-repetition window is day-granular.
const dateLayout = "2006-01-02"

// shownStore implements driven.ShownStore.
type shownStore struct {
	store *Store
}

var _ driven.ShownStore = (*shownStore)(nil)

// RecentIDs returns ids shown within the window, excluding today's
// own showings so a recomputed selection stays stable.
func (s *shownStore) RecentIDs(ctx context.Context, today time.Time, windowDays int) (map[string]struct{}, error) {
	cutoff := today.AddDate(0, 0, -windowDays).Format(dateLayout)
	todayStr := today.Format(dateLayout)

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT item_id FROM shown_items
		WHERE shown_at >= ? AND shown_at < ?
	`, cutoff, todayStr)
	if err != nil {
		return nil, fmt.Errorf("querying shown items: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning shown item: %w", err)
		}
		ids[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shown items: %w", err)
	}

	return ids, nil
}

// MarkShown upserts the shown record for an item. Re-showing an item
// moves its date forward rather than adding a row.
func (s *shownStore) MarkShown(ctx context.Context, itemID string, shownAt time.Time) error {
	if itemID == "" {
		return fmt.Errorf("marking shown item: empty item id")
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO shown_items (item_id, shown_at)
		VALUES (?, ?)
		ON CONFLICT(item_id) DO UPDATE SET
			shown_at = excluded.shown_at
	`, itemID, shownAt.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("marking shown item: %w", err)
	}
	return nil
}

// Prune deletes records older than the retention horizon and returns
// the number removed.
func (s *shownStore) Prune(ctx context.Context, today time.Time, retentionDays int) (int, error) {
	cutoff := today.AddDate(0, 0, -retentionDays).Format(dateLayout)

	res, err := s.store.db.ExecContext(ctx, `
		DELETE FROM shown_items WHERE shown_at < ?
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning shown items: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil // Driver can't report the count; the delete still ran
	}
	return int(n), nil
}
