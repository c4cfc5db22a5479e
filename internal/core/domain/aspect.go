package domain

import "math"

// AspectType names a geometric relationship between two longitudes.
type AspectType string

// The five major aspects.
const (
	AspectConjunction AspectType = "conjunction"
	AspectSextile     AspectType = "sextile"
	AspectSquare      AspectType = "square"
	AspectTrine       AspectType = "trine"
	AspectOpposition  AspectType = "opposition"
)

// String returns the aspect name.
func (a AspectType) String() string {
	return string(a)
}

// Weight returns the scoring weight of the aspect type.
// Exact major aspects contribute more to day intensity.
func (a AspectType) Weight() float64 {
	switch a {
	case AspectConjunction:
		return 6
	case AspectOpposition, AspectSquare:
		return 5
	case AspectTrine:
		return 4
	case AspectSextile:
		return 3
	default:
		return 3
	}
}

// DefaultOrb is the tolerance, in degrees, within which a separation
// still counts as an aspect.
const DefaultOrb = 3.0

// aspectCandidate pairs an aspect type with its exact angle.
// Candidates are checked in this fixed priority order. With 3° orbs
// around angles that sit at least 30° apart the windows never overlap,
// so at most one candidate can match; the order is kept anyway for
// reproducibility.
type aspectCandidate struct {
	Type  AspectType
	Angle float64
}

var aspectCandidates = []aspectCandidate{
	{AspectConjunction, 0},
	{AspectSextile, 60},
	{AspectSquare, 90},
	{AspectTrine, 120},
	{AspectOpposition, 180},
}

// ClassifyAspect matches an angular separation against the major
// aspects using the default orb. It returns the first candidate in
// priority order whose window contains the separation, with the orb
// set to the deviation from exact. The second return is false when no
// aspect matches.
func ClassifyAspect(separation float64) (AspectType, float64, bool) {
	return ClassifyAspectWithin(separation, DefaultOrb)
}

// ClassifyAspectWithin is ClassifyAspect with an explicit orb limit.
func ClassifyAspectWithin(separation, orbLimit float64) (AspectType, float64, bool) {
	for _, c := range aspectCandidates {
		orb := math.Abs(separation - c.Angle)
		if orb <= orbLimit {
			return c.Type, orb, true
		}
	}
	return "", 0, false
}

// SimpleAspect is one transiting point matched against one natal point.
// Computed fresh on every query, never persisted.
type SimpleAspect struct {
	// Type is the matched aspect.
	Type AspectType

	// Transiting names the moving point (the transiting Moon in this
	// engine).
	Transiting Body

	// Natal names the natal reference point.
	Natal Body

	// Orb is the absolute deviation from the exact angle, in degrees.
	// Always within the orb limit used at classification time.
	Orb float64

	// ExactAngle is the aspect's exact angle (0, 60, 90, 120 or 180).
	ExactAngle float64
}
