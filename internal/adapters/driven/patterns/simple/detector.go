// Package simple provides a naive chart pattern detector. It knows
// exactly one pattern shape: a stellium, reported when three or more
// placed bodies share a house.
package simple

import (
	"context"
	"fmt"
	"sort"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
)

// stelliumThreshold is the minimum number of bodies sharing a house.
const stelliumThreshold = 3

// Ensure Detector implements the interface.
var _ driven.PatternDetector = (*Detector)(nil)

// Detector detects stelliums by house occupancy counting.
type Detector struct{}

// New creates a Detector.
func New() *Detector {
	return &Detector{}
}

// DetectPatterns returns one stellium descriptor per house holding
// three or more bodies. Placements without a house (unknown birth
// time) are skipped.
func (d *Detector) DetectPatterns(_ context.Context, chart *domain.NatalChart) ([]domain.PatternDescriptor, error) {
	if chart == nil {
		return nil, nil
	}

	counts := make(map[int]int)
	for _, placement := range chart.Placements {
		if placement.House >= 1 && placement.House <= 12 {
			counts[placement.House]++
		}
	}

	houses := make([]int, 0, len(counts))
	for house, n := range counts {
		if n >= stelliumThreshold {
			houses = append(houses, house)
		}
	}
	sort.Ints(houses)

	var patterns []domain.PatternDescriptor
	for _, house := range houses {
		patterns = append(patterns, domain.PatternDescriptor{
			Type:  domain.PatternTypeStellium,
			Label: fmt.Sprintf("%s House", ordinal(house)),
		})
	}
	return patterns, nil
}

// ordinal renders 1..12 as "1st".."12th".
func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
