package driving

import (
	"context"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

// ReadingService assembles a full day's content for a chart.
type ReadingService interface {
	// DailyReading builds the reading for a calendar date: guidance
	// line, shadow quote with paired closing, and journaling prompt.
	// Deterministic per date; repeated calls on the same date return
	// the same selections.
	DailyReading(ctx context.Context, chart *domain.NatalChart, date time.Time) (*domain.DailyReading, error)

	// Aspects returns the transiting-Moon aspects against the chart
	// for a date, tightest first.
	Aspects(ctx context.Context, chart *domain.NatalChart, date time.Time) ([]domain.SimpleAspect, error)

	// Context returns the activation context for a date without
	// running any selection.
	Context(ctx context.Context, chart *domain.NatalChart, date time.Time) (*domain.ActivationContext, error)
}
