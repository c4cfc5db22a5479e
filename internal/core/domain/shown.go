package domain

import "time"

// Rolling windows for the anti-repetition store. Retention must always
// be at least the eligibility window.
const (
	// ShownWindowDays is the eligibility window: items shown within it
	// are excluded from selection.
	ShownWindowDays = 14

	// ShownRetentionDays is how long shown records are retained before
	// opportunistic pruning removes them.
	ShownRetentionDays = 30
)

// ShownItemRecord is the persisted fact that a content item was shown
// on a date. At most one record per item id (upsert semantics): a
// later showing overwrites the earlier date.
type ShownItemRecord struct {
	// ItemID is the shown content item's id.
	ItemID string

	// ShownAt is the calendar date the item was shown.
	ShownAt time.Time
}
