package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

// mockReadingService returns canned readings for command tests.
type mockReadingService struct {
	reading    *domain.DailyReading
	aspects    []domain.SimpleAspect
	activation *domain.ActivationContext
	err        error
}

func (m *mockReadingService) DailyReading(_ context.Context, _ *domain.NatalChart, date time.Time) (*domain.DailyReading, error) {
	if m.err != nil {
		return nil, m.err
	}
	reading := *m.reading
	reading.Date = date
	return &reading, nil
}

func (m *mockReadingService) Aspects(_ context.Context, _ *domain.NatalChart, _ time.Time) ([]domain.SimpleAspect, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.aspects, nil
}

func (m *mockReadingService) Context(_ context.Context, _ *domain.NatalChart, _ time.Time) (*domain.ActivationContext, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.activation, nil
}

// mockJournalService records calls for command tests.
type mockJournalService struct {
	entries    []domain.JournalEntry
	pattern    *domain.JournalPattern
	removedID  string
	lastBody   string
	lastPrompt string
	err        error
}

func (m *mockJournalService) Write(_ context.Context, promptID, body string) (*domain.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastPrompt = promptID
	m.lastBody = body
	return &domain.JournalEntry{ID: "entry-123", PromptID: promptID, Body: body, WrittenAt: time.Now()}, nil
}

func (m *mockJournalService) List(_ context.Context, _ int) ([]domain.JournalEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockJournalService) Remove(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.removedID = id
	return nil
}

func (m *mockJournalService) Pattern(_ context.Context, _ time.Time) (*domain.JournalPattern, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.pattern, nil
}

// testReading builds a minimal complete reading.
func testReading() *domain.DailyReading {
	return &domain.DailyReading{
		Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		Context: domain.ActivationContext{
			Intensity: domain.IntensityMedium,
			MoonPhase: domain.PhaseBucketWaxing,
		},
		Guidance: domain.Selection{Item: domain.ContentItem{ID: "g1", Body: "Move gently today."}, Pool: domain.PoolGuidance},
		Quote:    domain.Selection{Item: domain.ContentItem{ID: "q1", Body: "What you resist persists."}, Pool: domain.PoolQuotes},
		Closing:  domain.Selection{Item: domain.ContentItem{ID: "c1", Body: "Let it soften."}, Pool: domain.PoolClosings},
		Prompt:   domain.Selection{Item: domain.ContentItem{ID: "p1", Body: "Where did you hold back?"}, Pool: domain.PoolPrompts},
	}
}

// writeTestChart writes a chart fixture and returns its path.
func writeTestChart(t *testing.T) string {
	t.Helper()
	doc := `
[[placements]]
body = "Moon"
absolute_degree = 5.0
house = 4

[[placements]]
body = "Sun"
absolute_degree = 130.0
house = 1
`
	path := filepath.Join(t.TempDir(), "chart.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

// setupTestServices installs mock services and returns a cleanup func.
func setupTestServices(reading *mockReadingService, journal *mockJournalService) func() {
	prevReading := readingService
	prevJournal := journalService
	SetServices(reading, journal)
	return func() {
		readingService = prevReading
		journalService = prevJournal
		flagChartPath = ""
		flagDate = ""
	}
}
