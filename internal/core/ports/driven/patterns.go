package driven

import (
	"context"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

// PatternDetector reports chart-level patterns (stelliums, grand
// trines, ...). Optional: a nil detector or a detector error degrades
// to "no patterns"; selection must never block on it.
type PatternDetector interface {
	// DetectPatterns returns pattern descriptors for a chart. The
	// core consumes only stellium descriptors, via best-effort label
	// parsing.
	DetectPatterns(ctx context.Context, chart *domain.NatalChart) ([]domain.PatternDescriptor, error)
}
