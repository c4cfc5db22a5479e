// Package fixed provides an Ephemeris adapter backed by supplied
// positions rather than computed ones. The real ephemeris lives
// outside this system; this adapter lets positions arrive from a TOML
// file (exported by the companion app or written by hand) while the
// core keeps treating the port as a black box.
package fixed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
)

// Ensure Ephemeris implements the interface.
var _ driven.Ephemeris = (*Ephemeris)(nil)

// Ephemeris serves one fixed set of transiting positions for every
// queried instant.
type Ephemeris struct {
	longitudes  domain.TransitLongitudes
	retrogrades map[domain.Body]bool
}

// tomlEphemeris is the on-disk shape: a positions table of body name
// to absolute longitude, and an optional retrogrades list.
type tomlEphemeris struct {
	Positions   map[string]float64 `toml:"positions"`
	Retrogrades []string           `toml:"retrogrades"`
}

// New creates an ephemeris over explicit positions.
func New(longitudes domain.TransitLongitudes, retrogrades map[domain.Body]bool) *Ephemeris {
	normalized := make(domain.TransitLongitudes, len(longitudes))
	for body, lon := range longitudes {
		normalized[body] = domain.NormalizeDegrees(lon)
	}
	if retrogrades == nil {
		retrogrades = make(map[domain.Body]bool)
	}
	return &Ephemeris{longitudes: normalized, retrogrades: retrogrades}
}

// Load reads positions from a TOML file.
func Load(path string) (*Ephemeris, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ephemeris file: %w", err)
	}

	var doc tomlEphemeris
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing ephemeris file: %w", err)
	}

	longitudes := make(domain.TransitLongitudes, len(doc.Positions))
	for name, lon := range doc.Positions {
		body, ok := domain.BodyFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown body %q: %w", name, domain.ErrInvalidInput)
		}
		longitudes[body] = lon
	}
	retrogrades := make(map[domain.Body]bool, len(doc.Retrogrades))
	for _, name := range doc.Retrogrades {
		body, ok := domain.BodyFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown body %q: %w", name, domain.ErrInvalidInput)
		}
		retrogrades[body] = true
	}

	return New(longitudes, retrogrades), nil
}

// LongitudesAt returns the fixed positions regardless of instant or
// location.
func (e *Ephemeris) LongitudesAt(_ context.Context, _ time.Time, _, _ float64, _ domain.HouseSystem) (domain.TransitLongitudes, error) {
	out := make(domain.TransitLongitudes, len(e.longitudes))
	for body, lon := range e.longitudes {
		out[body] = lon
	}
	return out, nil
}

// RetrogradesAt returns the fixed retrograde set.
func (e *Ephemeris) RetrogradesAt(_ context.Context, _ time.Time) (map[domain.Body]bool, error) {
	out := make(map[domain.Body]bool, len(e.retrogrades))
	for body, r := range e.retrogrades {
		out[body] = r
	}
	return out, nil
}
