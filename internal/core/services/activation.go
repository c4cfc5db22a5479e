package services

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
	"github.com/brittanydani/mysky-sub002/internal/logger"
)

// houseLabelPattern extracts a house number from a pattern detector
// label: a number token optionally followed by an ordinal suffix and
// the word "House" ("7th House", "house 4", "Stellium in the 12th
// House"). Labels that don't match are skipped.
var houseLabelPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s*(?:house)?\b`)

// ActivationService derives the day's activation context from
// aspects, chart patterns and the moon phase. Both collaborators are
// optional: failures degrade to "no additional signal" and selection
// never blocks on them.
type ActivationService struct {
	patterns  driven.PatternDetector
	moonPhase driven.MoonPhaseProvider
}

// NewActivationService creates an activation service. Either
// collaborator may be nil.
func NewActivationService(patterns driven.PatternDetector, moonPhase driven.MoonPhaseProvider) *ActivationService {
	return &ActivationService{
		patterns:  patterns,
		moonPhase: moonPhase,
	}
}

// BuildContext assembles the activation context for one chart on one
// date from the day's transit signals.
func (s *ActivationService) BuildContext(ctx context.Context, chart *domain.NatalChart, signals []domain.TransitSignal, date time.Time) *domain.ActivationContext {
	logger.Section("Activation Context")

	ac := &domain.ActivationContext{
		Signals: signals,
	}

	var sum float64
	for _, sig := range signals {
		sum += sig.Score
		if sig.Aspect == domain.AspectOpposition {
			ac.HasOpposition = true
		}
		if sig.Transiting == domain.BodySaturn || sig.Natal == domain.BodySaturn {
			ac.HasSaturnAspect = true
		}
		if sig.Domain == domain.DomainRelationship {
			ac.HasRelationshipTransit = true
		}
		if sig.Transiting == domain.BodyMars {
			ac.HasMarsTransit = true
		}
		if sig.Transiting == domain.BodyVenus {
			ac.HasVenusTransit = true
		}
	}

	ac.Intensity = domain.IntensityForScore(sum)
	logger.Debug("Signal sum %.2f, intensity %s", sum, ac.Intensity)

	ac.HasInnerRetrograde = chart.HasInnerRetrograde()

	// Chiron and the lunar nodes are not supplied by the ephemeris;
	// these flags are stand-ins derived from Saturn and opposition
	// signals. Replacing them with real computations only touches
	// ProxySignals, never the scoring logic.
	ac.Proxies = domain.ProxySignals{
		HasChiron:   ac.HasSaturnAspect || ac.Intensity == domain.IntensityDeep,
		HasNodeAxis: ac.HasOpposition,
	}

	ac.StelliumHouses = s.stelliumHouses(ctx, chart)
	ac.MoonPhase = s.moonPhaseBucket(ctx, date)

	return ac
}

// stelliumHouses asks the pattern detector for stelliums and parses a
// house number out of each label. Detector failure degrades to an
// empty list; unparseable labels are logged and skipped.
func (s *ActivationService) stelliumHouses(ctx context.Context, chart *domain.NatalChart) []int {
	if s.patterns == nil {
		return nil
	}

	descriptors, err := s.patterns.DetectPatterns(ctx, chart)
	if err != nil {
		logger.Warn("Pattern detection failed: %v (continuing without stelliums)", err)
		return nil
	}

	var houses []int
	for _, d := range descriptors {
		if d.Type != domain.PatternTypeStellium {
			continue
		}
		house, ok := parseHouseLabel(d.Label)
		if !ok {
			logger.Warn("Stellium label %q has no house number, skipping", d.Label)
			continue
		}
		houses = append(houses, house)
	}
	return houses
}

// parseHouseLabel extracts a house number (1..12) from a free-text
// stellium label.
func parseHouseLabel(label string) (int, bool) {
	m := houseLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	house, err := strconv.Atoi(m[1])
	if err != nil || house < 1 || house > 12 {
		return 0, false
	}
	return house, true
}

// moonPhaseBucket fetches and buckets the day's moon phase name.
// Provider failure degrades to the unknown bucket.
func (s *ActivationService) moonPhaseBucket(ctx context.Context, date time.Time) domain.MoonPhaseBucket {
	if s.moonPhase == nil {
		return domain.PhaseBucketUnknown
	}

	name, err := s.moonPhase.PhaseNameAt(ctx, date)
	if err != nil {
		logger.Warn("Moon phase lookup failed: %v (continuing without phase)", err)
		return domain.PhaseBucketUnknown
	}

	bucket := domain.BucketMoonPhase(name)
	logger.Debug("Moon phase %q bucketed as %s", name, bucket)
	return bucket
}
