package driven

import (
	"context"
	"time"
)

// ShownStore persists which content items were shown on which dates,
// backing the anti-repetition window. Implementations must give
// upsert semantics per item id: re-showing an item updates its date
// rather than adding a row, so the recently-shown set is a set, not a
// multiset.
//
// Callers treat every method as fallible and degrade gracefully: a
// failing RecentIDs means selection proceeds without exclusions.
type ShownStore interface {
	// RecentIDs returns the ids of every item shown within the last
	// windowDays, excluding showings dated today itself: today's own
	// selection must stay stable when recomputed, so it never
	// excludes itself.
	RecentIDs(ctx context.Context, today time.Time, windowDays int) (map[string]struct{}, error)

	// MarkShown records that an item was shown on a date, replacing
	// any earlier record for the same item.
	MarkShown(ctx context.Context, itemID string, shownAt time.Time) error

	// Prune deletes records older than today - retentionDays and
	// returns the number removed. Retention must be at least the
	// eligibility window.
	Prune(ctx context.Context, today time.Time, retentionDays int) (int, error)
}
