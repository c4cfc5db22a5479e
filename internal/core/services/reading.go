package services

import (
	"context"
	"fmt"
	"time"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driving"
	"github.com/brittanydani/mysky-sub002/internal/logger"
)

// Ensure ReadingService implements the interface.
var _ driving.ReadingService = (*ReadingService)(nil)

// ReadingService orchestrates the daily pipeline: date + chart ->
// longitudes -> aspects -> activation context -> scored selections.
// The ephemeris is optional; without it the day reads as quiet and
// selection falls through to general content.
type ReadingService struct {
	ephemeris  driven.Ephemeris
	transits   *TransitService
	activation *ActivationService
	selection  *SelectionService
	journal    driving.JournalService

	pools map[domain.PoolKind]domain.ContentPool
}

// NewReadingService creates a reading service over preloaded content
// pools. The ephemeris and journal service may be nil.
func NewReadingService(
	ephemeris driven.Ephemeris,
	transits *TransitService,
	activation *ActivationService,
	selection *SelectionService,
	pools map[domain.PoolKind]domain.ContentPool,
) *ReadingService {
	return &ReadingService{
		ephemeris:  ephemeris,
		transits:   transits,
		activation: activation,
		selection:  selection,
		pools:      pools,
	}
}

// SetJournalService wires the journal service for the reflective
// prompt boost. Optional.
func (s *ReadingService) SetJournalService(journal driving.JournalService) {
	s.journal = journal
}

// Aspects returns the transiting-Moon aspects for a date, tightest
// first.
func (s *ReadingService) Aspects(ctx context.Context, chart *domain.NatalChart, date time.Time) ([]domain.SimpleAspect, error) {
	transits, err := s.longitudes(ctx, chart, date)
	if err != nil {
		return nil, err
	}
	return s.transits.ComputeAspects(chart, transits), nil
}

// Context builds the activation context for a date without selecting
// any content.
func (s *ReadingService) Context(ctx context.Context, chart *domain.NatalChart, date time.Time) (*domain.ActivationContext, error) {
	aspects, err := s.Aspects(ctx, chart, date)
	if err != nil {
		return nil, err
	}
	actx := s.activation.BuildContext(ctx, chart, s.transits.Signals(aspects), date)
	s.applyJournalPattern(ctx, actx, date)
	return actx, nil
}

// DailyReading assembles the full reading for a date.
func (s *ReadingService) DailyReading(ctx context.Context, chart *domain.NatalChart, date time.Time) (*domain.DailyReading, error) {
	logger.Section("Daily Reading")
	logger.Debug("Date: %s", date.Format("2006-01-02"))

	actx, err := s.Context(ctx, chart, date)
	if err != nil {
		return nil, err
	}

	reading := &domain.DailyReading{
		Date:    date,
		Context: *actx,
	}

	reading.Guidance, err = s.selectFrom(ctx, domain.PoolGuidance, actx, date)
	if err != nil {
		return nil, err
	}

	reading.Quote, err = s.selectFrom(ctx, domain.PoolQuotes, actx, date)
	if err != nil {
		return nil, err
	}

	closingPool, ok := s.pools[domain.PoolClosings]
	if !ok {
		return nil, fmt.Errorf("select closing: %w", domain.ErrEmptyPool)
	}
	reading.Closing, err = s.selection.SelectClosing(ctx, closingPool, actx, date, reading.Quote.Item.ID)
	if err != nil {
		return nil, fmt.Errorf("select closing: %w", err)
	}

	reading.Prompt, err = s.selectFrom(ctx, domain.PoolPrompts, actx, date)
	if err != nil {
		return nil, err
	}

	return reading, nil
}

// selectFrom runs the daily selection against one pool.
func (s *ReadingService) selectFrom(ctx context.Context, kind domain.PoolKind, actx *domain.ActivationContext, date time.Time) (domain.Selection, error) {
	pool, ok := s.pools[kind]
	if !ok {
		return domain.Selection{}, fmt.Errorf("select %s: %w", kind, domain.ErrEmptyPool)
	}
	sel, err := s.selection.SelectDaily(ctx, pool, actx, date)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("select %s: %w", kind, err)
	}
	return sel, nil
}

// longitudes fetches the day's transiting longitudes. A missing or
// failing ephemeris degrades to an empty map: no aspects, a quiet day.
func (s *ReadingService) longitudes(ctx context.Context, chart *domain.NatalChart, date time.Time) (domain.TransitLongitudes, error) {
	if s.ephemeris == nil {
		logger.Warn("Ephemeris not configured, reading a quiet sky")
		return domain.TransitLongitudes{}, nil
	}

	transits, err := s.ephemeris.LongitudesAt(ctx, date, chart.Birth.Latitude, chart.Birth.Longitude, chart.HouseSystem)
	if err != nil {
		logger.Warn("Ephemeris failed: %v (reading a quiet sky)", err)
		return domain.TransitLongitudes{}, nil
	}
	return transits, nil
}

// applyJournalPattern sets the reflective flag from recent journal
// activity. Optional collaborator; failures degrade silently.
func (s *ReadingService) applyJournalPattern(ctx context.Context, actx *domain.ActivationContext, date time.Time) {
	if s.journal == nil {
		return
	}
	pattern, err := s.journal.Pattern(ctx, date)
	if err != nil {
		logger.Warn("Journal pattern analysis failed: %v", err)
		return
	}
	actx.Reflective = pattern.Reflective
	if pattern.Reflective {
		logger.Debug("Reflective journaling habit detected (%d entries, %d active days)", pattern.EntryCount, pattern.ActiveDays)
	}
}
