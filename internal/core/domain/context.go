package domain

import "strings"

// DayIntensity is the three-level bucket summarising how active a day
// is for a chart.
type DayIntensity string

// Day intensity tiers.
const (
	IntensitySoft   DayIntensity = "soft"
	IntensityMedium DayIntensity = "medium"
	IntensityDeep   DayIntensity = "deep"
)

// Intensity tier thresholds over the summed signal scores.
const (
	intensityDeepThreshold   = 30.0
	intensityMediumThreshold = 15.0
)

// IntensityForScore buckets a summed signal score into a tier.
func IntensityForScore(sum float64) DayIntensity {
	switch {
	case sum > intensityDeepThreshold:
		return IntensityDeep
	case sum > intensityMediumThreshold:
		return IntensityMedium
	default:
		return IntensitySoft
	}
}

// MoonPhaseBucket is the coarse four-way grouping of the eight
// canonical moon phase names.
type MoonPhaseBucket string

// Moon phase buckets.
const (
	PhaseBucketNew     MoonPhaseBucket = "new"
	PhaseBucketWaxing  MoonPhaseBucket = "waxing"
	PhaseBucketFull    MoonPhaseBucket = "full"
	PhaseBucketWaning  MoonPhaseBucket = "waning"
	PhaseBucketUnknown MoonPhaseBucket = "unknown"
)

// BucketMoonPhase groups a canonical phase name into a coarse bucket
// by substring match. Unrecognised names bucket to unknown.
func BucketMoonPhase(phaseName string) MoonPhaseBucket {
	name := strings.ToLower(phaseName)
	switch {
	case strings.Contains(name, "new"):
		return PhaseBucketNew
	case strings.Contains(name, "full"):
		return PhaseBucketFull
	case strings.Contains(name, "waxing") || strings.Contains(name, "first quarter"):
		return PhaseBucketWaxing
	case strings.Contains(name, "waning") || strings.Contains(name, "last quarter") || strings.Contains(name, "third quarter"):
		return PhaseBucketWaning
	default:
		return PhaseBucketUnknown
	}
}

// ProxySignals are flags approximated from other signals because the
// ephemeris supplies neither Chiron nor the lunar nodes. The
// approximation is deliberate and must track the historical behaviour:
// replacing a proxy with a real computation only touches this struct,
// never the scoring logic.
type ProxySignals struct {
	// HasChiron is approximated as has-Saturn-aspect OR deep day.
	HasChiron bool

	// HasNodeAxis is approximated as has-opposition.
	HasNodeAxis bool
}

// ActivationContext is the ephemeral snapshot of what is
// astrologically active today for one chart. Built fresh per request;
// never persisted.
type ActivationContext struct {
	// HasOpposition is true if any signal is an opposition.
	HasOpposition bool

	// HasSaturnAspect is true if any signal targets or is carried by
	// Saturn.
	HasSaturnAspect bool

	// HasRelationshipTransit is true if any signal lands in the
	// relationship domain.
	HasRelationshipTransit bool

	// HasMarsTransit is true if any signal's transiting planet is Mars.
	HasMarsTransit bool

	// HasVenusTransit is true if any signal's transiting planet is
	// Venus.
	HasVenusTransit bool

	// HasInnerRetrograde is true if Mercury, Venus or Mars is
	// retrograde in the natal chart.
	HasInnerRetrograde bool

	// Proxies are the approximated flags for unmodelled bodies.
	Proxies ProxySignals

	// StelliumHouses lists the house numbers of active stelliums, in
	// detection order.
	StelliumHouses []int

	// Intensity is the day's intensity tier.
	Intensity DayIntensity

	// MoonPhase is the coarse moon phase bucket.
	MoonPhase MoonPhaseBucket

	// Reflective is true when the journal pattern analysis reports an
	// engaged writing habit; reflective prompts score higher.
	Reflective bool

	// Signals are the contributing transit signals, tightest aspect
	// first.
	Signals []TransitSignal
}

// InStelliumHouse returns true if the given house is an active
// stellium house.
func (c *ActivationContext) InStelliumHouse(house int) bool {
	for _, h := range c.StelliumHouses {
		if h == house {
			return true
		}
	}
	return false
}
