package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

// testChart builds a natal chart from absolute longitudes.
func testChart(points map[domain.Body]float64) *domain.NatalChart {
	sources := make(map[domain.Body]domain.PointSource, len(points))
	for body, lon := range points {
		sources[body] = domain.PointSource{Kind: domain.SourceAbsoluteDegree, AbsoluteDegree: lon}
	}
	return domain.NewNatalChart(domain.BirthData{}, domain.HousePlacidus, sources, nil, nil)
}

// TestTransitService_ComputeAspects_ExactSquare tests the exact square
// case: Moon at 95°, natal Moon at 5°
func TestTransitService_ComputeAspects_ExactSquare(t *testing.T) {
	svc := NewTransitService()
	chart := testChart(map[domain.Body]float64{domain.BodyMoon: 5})
	transits := domain.TransitLongitudes{domain.BodyMoon: 95}

	aspects := svc.ComputeAspects(chart, transits)

	require.Len(t, aspects, 1)
	assert.Equal(t, domain.AspectSquare, aspects[0].Type)
	assert.Equal(t, domain.BodyMoon, aspects[0].Natal)
	assert.Equal(t, 0.0, aspects[0].Orb)
	assert.Equal(t, 90.0, aspects[0].ExactAngle)
}

// TestTransitService_ComputeAspects_ExactTrine tests Moon at 10°
// trining natal Sun at 130°
func TestTransitService_ComputeAspects_ExactTrine(t *testing.T) {
	svc := NewTransitService()
	chart := testChart(map[domain.Body]float64{domain.BodySun: 130})
	transits := domain.TransitLongitudes{domain.BodyMoon: 10}

	aspects := svc.ComputeAspects(chart, transits)

	require.Len(t, aspects, 1)
	assert.Equal(t, domain.AspectTrine, aspects[0].Type)
	assert.Equal(t, domain.BodySun, aspects[0].Natal)
	assert.Equal(t, 0.0, aspects[0].Orb)
}

// TestTransitService_ComputeAspects_NoMoonTransit tests that a missing
// transiting Moon yields no aspects at all
func TestTransitService_ComputeAspects_NoMoonTransit(t *testing.T) {
	svc := NewTransitService()
	chart := testChart(map[domain.Body]float64{domain.BodySun: 100, domain.BodyMoon: 100})
	transits := domain.TransitLongitudes{domain.BodySun: 100}

	aspects := svc.ComputeAspects(chart, transits)

	assert.Empty(t, aspects)
}

// TestTransitService_ComputeAspects_SortedByOrb tests ascending orb
// order
func TestTransitService_ComputeAspects_SortedByOrb(t *testing.T) {
	svc := NewTransitService()
	// Moon at 0: square Saturn (orb 1.5), conjunct Sun (orb 2),
	// trine Venus (orb 0.5).
	chart := testChart(map[domain.Body]float64{
		domain.BodySun:    2,
		domain.BodySaturn: 91.5,
		domain.BodyVenus:  120.5,
	})
	transits := domain.TransitLongitudes{domain.BodyMoon: 0}

	aspects := svc.ComputeAspects(chart, transits)

	require.Len(t, aspects, 3)
	for i := 1; i < len(aspects); i++ {
		assert.LessOrEqual(t, aspects[i-1].Orb, aspects[i].Orb)
	}
	assert.Equal(t, domain.BodyVenus, aspects[0].Natal)
	assert.Equal(t, domain.BodySaturn, aspects[1].Natal)
	assert.Equal(t, domain.BodySun, aspects[2].Natal)
}

// TestTransitService_ComputeAspects_OrbLimit tests that every returned
// aspect sits within the orb limit
func TestTransitService_ComputeAspects_OrbLimit(t *testing.T) {
	svc := NewTransitService()
	chart := testChart(map[domain.Body]float64{
		domain.BodyMoon:      0,
		domain.BodySun:       45, // no aspect window
		domain.BodySaturn:    94, // 4° past square, outside orb
		domain.BodyVenus:     62, // sextile, orb 2
		domain.BodyAscendant: 183, // opposition, orb 3
	})
	transits := domain.TransitLongitudes{domain.BodyMoon: 0}

	aspects := svc.ComputeAspects(chart, transits)

	require.Len(t, aspects, 3)
	for _, a := range aspects {
		assert.LessOrEqual(t, a.Orb, domain.DefaultOrb)
	}
}

// TestTransitService_ComputeAspects_SkipsUnplacedPoints tests that
// missing natal points are skipped quietly
func TestTransitService_ComputeAspects_SkipsUnplacedPoints(t *testing.T) {
	svc := NewTransitService()
	chart := testChart(map[domain.Body]float64{domain.BodySaturn: 90})
	transits := domain.TransitLongitudes{domain.BodyMoon: 0}

	aspects := svc.ComputeAspects(chart, transits)

	require.Len(t, aspects, 1)
	assert.Equal(t, domain.BodySaturn, aspects[0].Natal)
}

// TestTransitService_Signals tests aspect-to-signal conversion
func TestTransitService_Signals(t *testing.T) {
	svc := NewTransitService()
	aspects := []domain.SimpleAspect{
		{Type: domain.AspectConjunction, Transiting: domain.BodyMoon, Natal: domain.BodyMoon, Orb: 0},
		{Type: domain.AspectSextile, Transiting: domain.BodyMoon, Natal: domain.BodyVenus, Orb: 2},
	}

	signals := svc.Signals(aspects)

	require.Len(t, signals, 2)
	assert.Equal(t, 6.0, signals[0].Score)
	assert.Equal(t, domain.DomainEmotion, signals[0].Domain)
	assert.InDelta(t, 1.5, signals[1].Score, 1e-9)
	assert.Equal(t, domain.DomainRelationship, signals[1].Domain)
}
