// Package file loads natal charts from TOML files. A chart file holds
// birth data plus one placement per body, in whichever of the three
// supported position representations the exporting tool produced.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

// DefaultChartFile is the chart location inside the config directory.
const DefaultChartFile = "chart.toml"

// tomlChart is the on-disk chart shape.
type tomlChart struct {
	HouseSystem string          `toml:"house_system"`
	Birth       tomlBirth       `toml:"birth"`
	Placements  []tomlPlacement `toml:"placements"`
}

type tomlBirth struct {
	Date      time.Time `toml:"date"`
	TimeKnown bool      `toml:"time_known"`
	Latitude  float64   `toml:"latitude"`
	Longitude float64   `toml:"longitude"`
	Place     string    `toml:"place"`
}

// tomlPlacement carries one body position in any of the three source
// representations. Preference order when several are present:
// absolute_degree, then sign + degree, then legacy longitude.
type tomlPlacement struct {
	Body           string   `toml:"body"`
	AbsoluteDegree *float64 `toml:"absolute_degree"`
	Sign           string   `toml:"sign"`
	Degree         *float64 `toml:"degree"`
	Longitude      *float64 `toml:"longitude"`
	House          int      `toml:"house"`
	Retrograde     bool     `toml:"retrograde"`
}

// DefaultPath returns the chart file path under the user's config
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".mysky", DefaultChartFile), nil
}

// Load reads and resolves a natal chart from a TOML file.
func Load(path string) (*domain.NatalChart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("chart file %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading chart file: %w", err)
	}
	return Parse(data)
}

// Parse resolves a natal chart from TOML bytes.
func Parse(data []byte) (*domain.NatalChart, error) {
	var doc tomlChart
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing chart file: %w", err)
	}
	if len(doc.Placements) == 0 {
		return nil, fmt.Errorf("chart file has no placements: %w", domain.ErrChartIncomplete)
	}

	points := make(map[domain.Body]domain.PointSource, len(doc.Placements))
	houses := make(map[domain.Body]int, len(doc.Placements))
	retrogrades := make(map[domain.Body]bool)

	for _, p := range doc.Placements {
		body, ok := domain.BodyFromName(p.Body)
		if !ok {
			return nil, fmt.Errorf("unknown body %q: %w", p.Body, domain.ErrInvalidInput)
		}
		src, err := pointSource(p)
		if err != nil {
			return nil, fmt.Errorf("placement %q: %w", p.Body, err)
		}
		points[body] = src
		houses[body] = p.House
		if p.Retrograde {
			retrogrades[body] = true
		}
	}

	birth := domain.BirthData{
		Date:      doc.Birth.Date,
		TimeKnown: doc.Birth.TimeKnown,
		Latitude:  doc.Birth.Latitude,
		Longitude: doc.Birth.Longitude,
		Place:     doc.Birth.Place,
	}
	system := domain.HouseSystem(doc.HouseSystem)
	if system == "" {
		system = domain.HousePlacidus
	}

	return domain.NewNatalChart(birth, system, points, houses, retrogrades), nil
}

// pointSource maps a TOML placement onto the tagged source
// representation.
func pointSource(p tomlPlacement) (domain.PointSource, error) {
	switch {
	case p.AbsoluteDegree != nil:
		return domain.PointSource{
			Kind:           domain.SourceAbsoluteDegree,
			AbsoluteDegree: *p.AbsoluteDegree,
		}, nil
	case p.Sign != "":
		sign, ok := domain.SignFromName(p.Sign)
		if !ok {
			return domain.PointSource{}, fmt.Errorf("unknown sign %q: %w", p.Sign, domain.ErrInvalidInput)
		}
		var degree float64
		if p.Degree != nil {
			degree = *p.Degree
		}
		return domain.PointSource{
			Kind:         domain.SourceSignDegree,
			Sign:         sign,
			DegreeInSign: degree,
		}, nil
	case p.Longitude != nil:
		return domain.PointSource{
			Kind:            domain.SourceLegacyLongitude,
			LegacyLongitude: *p.Longitude,
		}, nil
	default:
		return domain.PointSource{}, fmt.Errorf("placement has no position: %w", domain.ErrInvalidInput)
	}
}
