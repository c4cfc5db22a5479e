package domain

import "time"

// PatternDescriptor is one chart pattern reported by the
// pattern-detection collaborator. The core consumes only stellium
// descriptors, and only via best-effort parsing of the label.
type PatternDescriptor struct {
	// Type tags the pattern kind, e.g. "stellium".
	Type string

	// Label is the detector's free-text description, e.g.
	// "Stellium in the 7th House".
	Label string
}

// PatternTypeStellium is the pattern type the context builder consumes.
const PatternTypeStellium = "stellium"

// Selection is one engine pick: the chosen item plus the pool it came
// from and whether a fallback tier was used.
type Selection struct {
	// Item is the selected content item.
	Item ContentItem

	// Pool names the pool the item came from.
	Pool PoolKind

	// UsedExclusionFallback is true when the exclusion list emptied
	// the pool and selection re-ran against the full pool.
	UsedExclusionFallback bool

	// UsedScoreFallback is true when every candidate scored zero and
	// selection fell back to the unscored pool.
	UsedScoreFallback bool
}

// DailyReading is one day's assembled content for one chart.
type DailyReading struct {
	// Date is the calendar date the reading is for.
	Date time.Time

	// Context is the activation context the selections were scored
	// against.
	Context ActivationContext

	// Guidance is the day's emotional guidance line.
	Guidance Selection

	// Quote is the day's shadow quote.
	Quote Selection

	// Closing is the paired release-tone closing line for the quote.
	Closing Selection

	// Prompt is the day's journaling prompt.
	Prompt Selection
}
