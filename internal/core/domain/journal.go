package domain

import "time"

// JournalEntry is one dated journal entry written against a prompt.
type JournalEntry struct {
	// ID is the entry's unique identifier.
	ID string

	// PromptID is the id of the journaling prompt the entry answers,
	// empty for free-form entries.
	PromptID string

	// Body is the entry text.
	Body string

	// WrittenAt is when the entry was written.
	WrittenAt time.Time
}

// JournalPattern summarises recent journal activity. The selection
// engine uses it to boost reflective prompts when the subject has been
// writing regularly.
type JournalPattern struct {
	// EntryCount is the number of entries in the analysed window.
	EntryCount int

	// ActiveDays is the number of distinct days with at least one
	// entry.
	ActiveDays int

	// Reflective is true when the recent cadence suggests an engaged
	// journaling habit.
	Reflective bool
}
