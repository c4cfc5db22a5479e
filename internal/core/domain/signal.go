package domain

// LifeDomain is the coarse life-area tag a transit signal speaks to,
// derived from the natal point being aspected.
type LifeDomain string

// Life domain tags.
const (
	DomainEmotion      LifeDomain = "emotion"
	DomainIdentity     LifeDomain = "identity"
	DomainStructure    LifeDomain = "structure"
	DomainRelationship LifeDomain = "relationship"
	DomainSelf         LifeDomain = "self"
	DomainGeneral      LifeDomain = "general"
)

// domainForNatal maps a natal target to its life domain.
func domainForNatal(body Body) LifeDomain {
	switch body {
	case BodyMoon:
		return DomainEmotion
	case BodySun:
		return DomainIdentity
	case BodySaturn:
		return DomainStructure
	case BodyVenus:
		return DomainRelationship
	case BodyAscendant:
		return DomainSelf
	default:
		return DomainGeneral
	}
}

// orbDecayCeiling is the orb at which a signal's score would decay to
// zero. Classification caps orbs at 3°, so the decay factor never
// actually reaches zero; the extra degree is deliberate headroom.
const orbDecayCeiling = 4.0

// TransitSignal is one aspect expressed as a scored activation signal.
// The activation context's boolean flags are OR-reductions over a
// signal list.
type TransitSignal struct {
	// Transiting names the moving planet.
	Transiting Body

	// Natal names the aspected natal point.
	Natal Body

	// Aspect is the matched aspect type.
	Aspect AspectType

	// Domain is the life-area tag derived from the natal target.
	Domain LifeDomain

	// Score is aspectWeight * (1 - orb/4): exact major aspects score
	// highest, wide minor ones lowest.
	Score float64
}

// SignalFromAspect converts a matched aspect into a scored signal.
func SignalFromAspect(a SimpleAspect) TransitSignal {
	return TransitSignal{
		Transiting: a.Transiting,
		Natal:      a.Natal,
		Aspect:     a.Type,
		Domain:     domainForNatal(a.Natal),
		Score:      a.Type.Weight() * (1 - a.Orb/orbDecayCeiling),
	}
}
