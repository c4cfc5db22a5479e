package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brittanydani/mysky-sub002/internal/adapters/driven/storage/memory"
	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

// TestJournalService_Write tests writing an entry
func TestJournalService_Write(t *testing.T) {
	svc := NewJournalService(memory.NewJournalStore())

	entry, err := svc.Write(context.Background(), "prompt-1", "  Today I noticed something.  ")

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "prompt-1", entry.PromptID)
	assert.Equal(t, "Today I noticed something.", entry.Body, "body is trimmed")
	assert.False(t, entry.WrittenAt.IsZero())
}

// TestJournalService_Write_EmptyBody tests the empty-body rejection
func TestJournalService_Write_EmptyBody(t *testing.T) {
	svc := NewJournalService(memory.NewJournalStore())

	_, err := svc.Write(context.Background(), "", "   ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestJournalService_Write_NoStore tests the missing-store error
func TestJournalService_Write_NoStore(t *testing.T) {
	svc := NewJournalService(nil)

	_, err := svc.Write(context.Background(), "", "something")

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

// TestJournalService_List tests listing recent entries
func TestJournalService_List(t *testing.T) {
	store := memory.NewJournalStore()
	svc := NewJournalService(store)

	_, err := svc.Write(context.Background(), "", "first")
	require.NoError(t, err)
	_, err = svc.Write(context.Background(), "", "second")
	require.NoError(t, err)

	entries, err := svc.List(context.Background(), 14)

	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

// TestJournalService_Remove tests entry removal
func TestJournalService_Remove(t *testing.T) {
	store := memory.NewJournalStore()
	svc := NewJournalService(store)

	entry, err := svc.Write(context.Background(), "", "to be removed")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), entry.ID))

	entries, err := svc.List(context.Background(), 14)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// TestJournalService_Pattern_Reflective tests the reflective threshold
// over distinct writing days
func TestJournalService_Pattern_Reflective(t *testing.T) {
	store := memory.NewJournalStore()
	svc := NewJournalService(store)
	today := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// Four entries on four distinct days inside the window.
	for day := 1; day <= 4; day++ {
		entry := &domain.JournalEntry{
			ID:        "e" + string(rune('0'+day)),
			Body:      "entry",
			WrittenAt: today.AddDate(0, 0, -day),
		}
		require.NoError(t, store.Save(context.Background(), entry))
	}

	pattern, err := svc.Pattern(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, 4, pattern.EntryCount)
	assert.Equal(t, 4, pattern.ActiveDays)
	assert.True(t, pattern.Reflective)
}

// TestJournalService_Pattern_SameDayEntriesCountOnce tests distinct-day
// counting
func TestJournalService_Pattern_SameDayEntriesCountOnce(t *testing.T) {
	store := memory.NewJournalStore()
	svc := NewJournalService(store)
	today := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		entry := &domain.JournalEntry{
			ID:        "same-day-" + string(rune('a'+i)),
			Body:      "entry",
			WrittenAt: today.AddDate(0, 0, -1).Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, store.Save(context.Background(), entry))
	}

	pattern, err := svc.Pattern(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, 5, pattern.EntryCount)
	assert.Equal(t, 1, pattern.ActiveDays)
	assert.False(t, pattern.Reflective)
}

// TestJournalService_Pattern_NoStore tests pattern analysis reading as
// no activity without a store
func TestJournalService_Pattern_NoStore(t *testing.T) {
	svc := NewJournalService(nil)

	pattern, err := svc.Pattern(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, 0, pattern.EntryCount)
	assert.False(t, pattern.Reflective)
}
