package domain

import "strings"

// Sign is one of the twelve zodiac signs, in ecliptic order.
// The sign index is load-bearing: sign index * 30 + degree-within-sign
// reconstructs an absolute ecliptic longitude.
type Sign int

// Zodiac signs in ecliptic order starting at 0° Aries.
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the sign's English name.
func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return "Unknown"
	}
	return signNames[s]
}

// IsValid returns true if the sign is one of the twelve.
func (s Sign) IsValid() bool {
	return s >= Aries && s <= Pisces
}

// CuspDegree returns the absolute longitude of the sign's 0° cusp.
func (s Sign) CuspDegree() float64 {
	return float64(s) * 30
}

// SignFromName resolves a sign by name, case-insensitively. Returns
// false for unknown names.
func SignFromName(name string) (Sign, bool) {
	for i, n := range signNames {
		if strings.EqualFold(n, name) {
			return Sign(i), true
		}
	}
	return Aries, false
}

// SignAt returns the sign containing an absolute ecliptic longitude.
func SignAt(longitude float64) Sign {
	return Sign(int(NormalizeDegrees(longitude)/30) % 12)
}

// Body names the celestial points a chart can place.
type Body string

// The ten classical bodies plus the Ascendant.
const (
	BodySun       Body = "Sun"
	BodyMoon      Body = "Moon"
	BodyMercury   Body = "Mercury"
	BodyVenus     Body = "Venus"
	BodyMars      Body = "Mars"
	BodyJupiter   Body = "Jupiter"
	BodySaturn    Body = "Saturn"
	BodyUranus    Body = "Uranus"
	BodyNeptune   Body = "Neptune"
	BodyPluto     Body = "Pluto"
	BodyAscendant Body = "Ascendant"
)

// Bodies lists every placeable point in canonical order.
var Bodies = []Body{
	BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars,
	BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
	BodyAscendant,
}

// BodyFromName resolves a body by name, case-insensitively. Returns
// false for names outside the canonical set.
func BodyFromName(name string) (Body, bool) {
	for _, b := range Bodies {
		if strings.EqualFold(string(b), name) {
			return b, true
		}
	}
	return "", false
}

// IsInnerPlanet returns true for Mercury, Venus and Mars.
// Used by the inner-retrograde activation flag.
func (b Body) IsInnerPlanet() bool {
	return b == BodyMercury || b == BodyVenus || b == BodyMars
}

// String returns the body name.
func (b Body) String() string {
	return string(b)
}
