package services

import (
	"sort"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/logger"
)

// natalPriority is the fixed order in which natal reference points are
// matched. The order matters for reproducibility: ties in orb keep
// insertion order, so Moon aspects sort ahead of equally tight Sun
// aspects.
var natalPriority = []domain.Body{
	domain.BodyMoon,
	domain.BodySun,
	domain.BodySaturn,
	domain.BodyVenus,
	domain.BodyAscendant,
}

// TransitService computes transiting-Moon aspects against a natal
// chart. Pure arithmetic; no collaborator ports.
type TransitService struct {
	orbLimit float64
}

// NewTransitService creates a transit service with the default 3° orb.
func NewTransitService() *TransitService {
	return &TransitService{orbLimit: domain.DefaultOrb}
}

// ComputeAspects matches the transiting Moon against each resolvable
// natal reference point, in fixed priority order, and returns the
// matched aspects sorted ascending by orb (tightest first). The sort
// is stable; downstream consumers take result[0] as the strongest
// aspect.
//
// If the transiting Moon's longitude is absent the result is empty;
// no partial matching against other transiting bodies is attempted.
func (s *TransitService) ComputeAspects(chart *domain.NatalChart, transits domain.TransitLongitudes) []domain.SimpleAspect {
	moonLon, ok := transits[domain.BodyMoon]
	if !ok {
		logger.Debug("Transit computation skipped: no transiting Moon longitude")
		return nil
	}
	moonLon = domain.NormalizeDegrees(moonLon)

	var aspects []domain.SimpleAspect
	for _, natal := range natalPriority {
		natalLon, ok := chart.PointLongitude(natal)
		if !ok {
			logger.Debug("Natal point %s not placed, skipping", natal)
			continue
		}

		sep := domain.AngularSeparation(moonLon, natalLon)
		aspectType, orb, matched := domain.ClassifyAspectWithin(sep, s.orbLimit)
		if !matched {
			continue
		}

		aspects = append(aspects, domain.SimpleAspect{
			Type:       aspectType,
			Transiting: domain.BodyMoon,
			Natal:      natal,
			Orb:        orb,
			ExactAngle: exactAngle(aspectType),
		})
		logger.Debug("Aspect: Moon %s natal %s (orb %.2f)", aspectType, natal, orb)
	}

	sort.SliceStable(aspects, func(i, j int) bool {
		return aspects[i].Orb < aspects[j].Orb
	})

	return aspects
}

// Signals converts matched aspects into scored transit signals,
// preserving order.
func (s *TransitService) Signals(aspects []domain.SimpleAspect) []domain.TransitSignal {
	signals := make([]domain.TransitSignal, len(aspects))
	for i, a := range aspects {
		signals[i] = domain.SignalFromAspect(a)
	}
	return signals
}

// exactAngle returns the exact angle for an aspect type.
func exactAngle(t domain.AspectType) float64 {
	switch t {
	case domain.AspectConjunction:
		return 0
	case domain.AspectSextile:
		return 60
	case domain.AspectSquare:
		return 90
	case domain.AspectTrine:
		return 120
	case domain.AspectOpposition:
		return 180
	default:
		return 0
	}
}
