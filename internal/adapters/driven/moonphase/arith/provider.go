// Package arith provides an arithmetic moon phase provider. It walks
// the mean synodic cycle forward from a known new moon and slices it
// into the eight canonical phases. Accurate to within a day or so,
// which is plenty for coarse phase bucketing.
package arith

import (
	"context"
	"math"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
)

// synodicDays is the mean length of a lunation.
const synodicDays = 29.530588853

// referenceNewMoon is a known new moon instant (2000-01-06 18:14 UTC)
// used as the cycle origin.
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// phaseNames in cycle order, each covering one eighth of the lunation.
var phaseNames = [8]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

// Ensure Provider implements the interface.
var _ driven.MoonPhaseProvider = (*Provider)(nil)

// Provider computes phase names from the mean synodic cycle.
type Provider struct{}

// New creates a Provider.
func New() *Provider {
	return &Provider{}
}

// PhaseNameAt returns the canonical phase name for the given instant.
// The instant is offset half a slice so each named phase is centred on
// its exact moment rather than starting at it.
func (p *Provider) PhaseNameAt(_ context.Context, at time.Time) (string, error) {
	days := at.Sub(referenceNewMoon).Hours() / 24
	cycle := days / synodicDays
	frac := cycle - math.Floor(cycle)

	slice := int(math.Floor(frac*8 + 0.5))
	if slice >= 8 {
		slice = 0
	}
	return phaseNames[slice], nil
}
