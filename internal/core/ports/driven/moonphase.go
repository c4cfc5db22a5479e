package driven

import (
	"context"
	"time"
)

// MoonPhaseProvider names the moon phase for a date. Implementations
// return one of the eight canonical phase names ("New Moon", "Waxing
// Crescent", "First Quarter", "Waxing Gibbous", "Full Moon", "Waning
// Gibbous", "Last Quarter", "Waning Crescent"); the core buckets the
// name into four coarse categories by substring match.
type MoonPhaseProvider interface {
	// PhaseNameAt returns the canonical phase name for a date.
	PhaseNameAt(ctx context.Context, at time.Time) (string, error)
}
