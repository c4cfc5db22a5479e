package domain

import "time"

// HouseSystem tags which house system a chart was cast with.
// The core never computes houses; the tag travels with the chart for
// the ephemeris collaborator and for display.
type HouseSystem string

// Supported house system tags.
const (
	HousePlacidus   HouseSystem = "placidus"
	HouseWholeSign  HouseSystem = "whole_sign"
	HouseEqual      HouseSystem = "equal"
	HouseKochSystem HouseSystem = "koch"
)

// PointSourceKind discriminates the representations a placement's
// longitude can arrive in. Charts imported from older exports carry a
// raw longitude only; newer ones carry sign + degree, or an explicit
// absolute degree.
type PointSourceKind int

// Placement source representations, in resolution preference order.
const (
	// SourceAbsoluteDegree is an explicit absolute ecliptic longitude.
	SourceAbsoluteDegree PointSourceKind = iota
	// SourceSignDegree is a sign plus a degree within that sign.
	SourceSignDegree
	// SourceLegacyLongitude is a raw longitude from a legacy export.
	SourceLegacyLongitude
)

// PointSource is the tagged source representation of a placement's
// position. It is resolved into a canonical longitude exactly once, at
// chart construction, never re-resolved per query.
type PointSource struct {
	Kind PointSourceKind

	// AbsoluteDegree is set for SourceAbsoluteDegree.
	AbsoluteDegree float64

	// Sign and DegreeInSign are set for SourceSignDegree.
	Sign         Sign
	DegreeInSign float64

	// LegacyLongitude is set for SourceLegacyLongitude.
	LegacyLongitude float64
}

// Resolve collapses the source representation into a normalized
// absolute longitude.
func (p PointSource) Resolve() float64 {
	switch p.Kind {
	case SourceAbsoluteDegree:
		return NormalizeDegrees(p.AbsoluteDegree)
	case SourceSignDegree:
		return NormalizeDegrees(p.Sign.CuspDegree() + p.DegreeInSign)
	case SourceLegacyLongitude:
		return NormalizeDegrees(p.LegacyLongitude)
	default:
		return 0
	}
}

// Placement is one body's canonical position in a natal chart.
type Placement struct {
	// Body is the placed point.
	Body Body

	// Longitude is the absolute ecliptic longitude in [0, 360),
	// resolved once from the placement's source representation.
	Longitude float64

	// Sign is the zodiac sign containing the longitude.
	Sign Sign

	// DegreeInSign is the degree within the sign, in [0, 30).
	DegreeInSign float64

	// House is the house number, 1..12. Zero when the birth time is
	// unknown and houses cannot be cast.
	House int

	// Retrograde is true if the body was retrograde at birth.
	Retrograde bool
}

// BirthData records when and where a chart subject was born.
type BirthData struct {
	// Date is the birth date (and time, when known).
	Date time.Time

	// TimeKnown is false when only the date is known; house-dependent
	// placements are unreliable in that case.
	TimeKnown bool

	// Latitude and Longitude locate the birth place.
	Latitude  float64
	Longitude float64

	// Place is a free-text place name for display.
	Place string
}

// NatalChart is the fixed reference frame a subject's transits are
// measured against. Read-only to the core; built once at load time
// with every placement's longitude already resolved.
type NatalChart struct {
	// Birth is the subject's birth data.
	Birth BirthData

	// HouseSystem tags how houses were cast.
	HouseSystem HouseSystem

	// Placements maps each placed body to its canonical position.
	// At most one placement per body.
	Placements map[Body]Placement
}

// NewNatalChart builds a chart from source-representation placements,
// resolving each into canonical form. Duplicate bodies keep the last
// placement seen.
func NewNatalChart(birth BirthData, system HouseSystem, points map[Body]PointSource, houses map[Body]int, retrogrades map[Body]bool) *NatalChart {
	chart := &NatalChart{
		Birth:       birth,
		HouseSystem: system,
		Placements:  make(map[Body]Placement, len(points)),
	}
	for body, src := range points {
		lon := src.Resolve()
		house := houses[body]
		if house < 1 || house > 12 {
			house = 0
		}
		chart.Placements[body] = Placement{
			Body:         body,
			Longitude:    lon,
			Sign:         SignAt(lon),
			DegreeInSign: NormalizeDegrees(lon) - SignAt(lon).CuspDegree(),
			House:        house,
			Retrograde:   retrogrades[body],
		}
	}
	return chart
}

// PointLongitude returns the canonical longitude of a natal point.
// The second return is false when the chart does not place the body.
func (c *NatalChart) PointLongitude(body Body) (float64, bool) {
	p, ok := c.Placements[body]
	if !ok {
		return 0, false
	}
	return p.Longitude, true
}

// HasInnerRetrograde returns true if any of Mercury, Venus or Mars is
// retrograde in the natal chart.
func (c *NatalChart) HasInnerRetrograde() bool {
	for body, p := range c.Placements {
		if body.IsInnerPlanet() && p.Retrograde {
			return true
		}
	}
	return false
}

// TransitLongitudes maps transiting planet names to absolute ecliptic
// longitudes in [0, 360) for one instant. Produced by the ephemeris
// collaborator; the core never mutates it.
type TransitLongitudes map[Body]float64
