package driven

import (
	"context"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

// Ephemeris supplies transiting planetary positions. The core treats
// it as a pure function of its inputs and never looks behind it: house
// systems, tropical vs sidereal and retrograde detection are the
// implementation's business. Returned longitudes must be in [0, 360).
type Ephemeris interface {
	// LongitudesAt returns the absolute ecliptic longitude of each
	// available transiting body at the given instant and location.
	// Bodies the implementation cannot supply are simply absent.
	LongitudesAt(ctx context.Context, at time.Time, latitude, longitude float64, system domain.HouseSystem) (domain.TransitLongitudes, error)

	// RetrogradesAt returns the set of bodies retrograde at the given
	// instant.
	RetrogradesAt(ctx context.Context, at time.Time) (map[domain.Body]bool, error)
}
