package services

import (
	"context"
	"sort"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
	"github.com/brittanydani/mysky-sub002/internal/logger"
)

// Scoring weights for candidate items.
const (
	triggerScore    = 3
	generalScore    = 1
	houseBonus      = 5
	intensityBonus  = 2
	protectiveBonus = 3
)

// topCandidates is the size of the window the deterministic pick
// rotates through.
const topCandidates = 5

// closingHashOffset separates the closing pick's rotation from the
// primary's so the two don't walk the same sequence.
const closingHashOffset = 7

// storeTimeout bounds anti-repetition store I/O. A slow store is
// treated the same as an unavailable one: selection proceeds without
// it.
const storeTimeout = 2 * time.Second

// DayHash maps a calendar date to a bounded deterministic integer.
// It replaces a random generator on purpose: the same day always
// yields the same pick for a given context and exclusion set, so
// today's quote doesn't change when the app is reopened.
func DayHash(date time.Time) int {
	return date.Year()*1000 + date.YearDay()
}

// SelectionService scores a content pool against an activation
// context and deterministically picks one item per day, avoiding
// recent repeats. The shown store is optional; without it selection
// simply loses the anti-repetition window.
type SelectionService struct {
	shown driven.ShownStore
}

// NewSelectionService creates a selection service. The store may be
// nil.
func NewSelectionService(shown driven.ShownStore) *SelectionService {
	return &SelectionService{shown: shown}
}

// scoredItem pairs an item with its score for ranking.
type scoredItem struct {
	item  domain.ContentItem
	score int
}

// SelectDaily picks the day's item from a pool. Never returns "no
// content" for a non-empty pool: exhausted exclusions fall back to the
// full pool, and an all-zero scoring round falls back to the unscored
// pool. The selected item is recorded in the shown store and old
// records are pruned opportunistically.
func (s *SelectionService) SelectDaily(ctx context.Context, pool domain.ContentPool, actx *domain.ActivationContext, date time.Time) (domain.Selection, error) {
	sel, err := s.pick(ctx, pool, actx, date, DayHash(date), "")
	if err != nil {
		return domain.Selection{}, err
	}

	s.recordShown(ctx, sel.Item.ID, date)
	return sel, nil
}

// SelectClosing picks the paired closing item from the release-tone
// sub-pool, rotated by an offset hash, avoiding the primary
// selection's id when the sub-pool allows it. Closings are part of the
// same reading, not an independent showing, so they are not recorded
// in the shown store.
func (s *SelectionService) SelectClosing(ctx context.Context, pool domain.ContentPool, actx *domain.ActivationContext, date time.Time, avoidID string) (domain.Selection, error) {
	sub := pool.WithTone(domain.ToneRelease)
	if sub.Len() == 0 {
		// No release-tone content authored for this pool; fall back
		// to the whole pool rather than returning nothing.
		sub = pool
	}
	return s.pick(ctx, sub, actx, date, DayHash(date)+closingHashOffset, avoidID)
}

// pick runs the filter/score/select pipeline with a given hash.
func (s *SelectionService) pick(ctx context.Context, pool domain.ContentPool, actx *domain.ActivationContext, date time.Time, hash int, avoidID string) (domain.Selection, error) {
	if pool.Len() == 0 {
		return domain.Selection{}, domain.ErrEmptyPool
	}

	logger.Section("Content Selection")
	logger.Debug("Pool %s: %d items, hash %d", pool.Kind, pool.Len(), hash)

	excluded := s.recentIDs(ctx, date)

	sel := domain.Selection{Pool: pool.Kind}

	// Tier 1: drop recently shown items. If that empties the pool,
	// re-run against the whole pool; a repeat beats silence.
	eligible := filterExcluded(pool.Items, excluded)
	if len(eligible) == 0 {
		logger.Info("All %d items recently shown, ignoring exclusion window", pool.Len())
		eligible = pool.Items
		sel.UsedExclusionFallback = true
	}

	// Score and rank. The sort is stable so corpus order breaks ties.
	ranked := make([]scoredItem, len(eligible))
	for i, item := range eligible {
		ranked[i] = scoredItem{item: item, score: scoreItem(item, actx)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	// Zero-score items never enter the candidate window: a zero match
	// is not a selection, only the last-resort fallback below.
	candidates := make([]domain.ContentItem, 0, topCandidates)
	for _, r := range ranked {
		if r.score <= 0 {
			break
		}
		candidates = append(candidates, r.item)
		if len(candidates) == topCandidates {
			break
		}
	}

	if len(candidates) == 0 {
		logger.Info("Every item scored zero, falling back to unscored pool")
		candidates = pool.Items
		sel.UsedScoreFallback = true
	}

	idx := hash % len(candidates)
	if candidates[idx].ID == avoidID && len(candidates) > 1 {
		idx = (idx + 1) % len(candidates)
	}

	sel.Item = candidates[idx]
	logger.Debug("Selected %s (candidate %d of %d)", sel.Item.ID, idx, len(candidates))
	return sel, nil
}

// recentIDs reads the exclusion window from the shown store. Any
// failure, including a slow store hitting the timeout, degrades to an
// empty set.
func (s *SelectionService) recentIDs(ctx context.Context, date time.Time) map[string]struct{} {
	if s.shown == nil {
		return nil
	}

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	ids, err := s.shown.RecentIDs(storeCtx, date, domain.ShownWindowDays)
	if err != nil {
		logger.Warn("Shown store unavailable: %v (selecting without exclusions)", err)
		return nil
	}
	logger.Debug("%d items in %d-day exclusion window", len(ids), domain.ShownWindowDays)
	return ids
}

// recordShown upserts the shown record and opportunistically prunes
// expired rows. Both failures are logged, never surfaced: the user
// contract is "you always get content for today".
func (s *SelectionService) recordShown(ctx context.Context, itemID string, date time.Time) {
	if s.shown == nil {
		return
	}

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := s.shown.MarkShown(storeCtx, itemID, date); err != nil {
		logger.Warn("Failed to record shown item %s: %v", itemID, err)
		return
	}

	pruned, err := s.shown.Prune(storeCtx, date, domain.ShownRetentionDays)
	if err != nil {
		logger.Warn("Failed to prune shown records: %v", err)
		return
	}
	if pruned > 0 {
		logger.Debug("Pruned %d expired shown records", pruned)
	}
}

// filterExcluded returns the items whose ids are not in the exclusion
// set, preserving order.
func filterExcluded(items []domain.ContentItem, excluded map[string]struct{}) []domain.ContentItem {
	if len(excluded) == 0 {
		return items
	}
	eligible := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if _, ok := excluded[item.ID]; !ok {
			eligible = append(eligible, item)
		}
	}
	return eligible
}

// scoreItem scores one item against the activation context.
func scoreItem(item domain.ContentItem, actx *domain.ActivationContext) int {
	score := 0

	for _, trigger := range item.Triggers {
		if trigger == domain.TriggerGeneral {
			// Always matches, but cheaply, so generic fallback
			// content doesn't dominate specific matches.
			score += generalScore
			continue
		}
		if triggerMatches(trigger, actx) {
			score += triggerScore
		}
	}

	if item.House > 0 && actx.InStelliumHouse(item.House) {
		score += houseBonus
	}

	if item.Intensity == actx.Intensity {
		score += intensityBonus
	}

	// On emotionally heavy days, lean toward gentler content.
	if actx.Intensity == domain.IntensityDeep && item.Tone == domain.ToneProtective {
		score += protectiveBonus
	}

	return score
}

// triggerMatches is the fixed trigger -> context predicate table.
func triggerMatches(trigger domain.Trigger, actx *domain.ActivationContext) bool {
	switch trigger {
	case domain.TriggerOpposition:
		return actx.HasOpposition
	case domain.TriggerSaturn:
		return actx.HasSaturnAspect
	case domain.TriggerChiron:
		return actx.Proxies.HasChiron
	case domain.TriggerNodeAxis:
		return actx.Proxies.HasNodeAxis
	case domain.TriggerRelationship:
		return actx.HasRelationshipTransit
	case domain.TriggerRetrograde:
		return actx.HasInnerRetrograde
	case domain.TriggerMars:
		return actx.HasMarsTransit
	case domain.TriggerVenus:
		return actx.HasVenusTransit
	case domain.TriggerStellium:
		return len(actx.StelliumHouses) > 0
	case domain.TriggerNewMoon:
		return actx.MoonPhase == domain.PhaseBucketNew
	case domain.TriggerFullMoon:
		return actx.MoonPhase == domain.PhaseBucketFull
	case domain.TriggerWaxingMoon:
		return actx.MoonPhase == domain.PhaseBucketWaxing
	case domain.TriggerWaningMoon:
		return actx.MoonPhase == domain.PhaseBucketWaning
	case domain.TriggerDeepDay:
		return actx.Intensity == domain.IntensityDeep
	case domain.TriggerReflective:
		return actx.Reflective
	default:
		return false
	}
}
