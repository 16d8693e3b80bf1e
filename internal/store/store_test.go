package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"linkforge/internal/blob"
	"linkforge/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*Store, blob.Store) {
	t.Helper()
	b, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return New(b, zap.NewNop()), b
}

func sampleLink(id string) *entities.LinkRecord {
	now := time.Now().Truncate(time.Second)
	return &entities.LinkRecord{
		ID:          id,
		OriginalURL: "https://example.com/" + id,
		ShortCode:   "code-" + id,
		CreatedAt:   now,
		ExpiresAt:   entities.CalculateExpiration(now, 7),
		IsActive:    true,
		Tags:        []string{"work", "docs"},
		Description: "sample",
	}
}

func TestStore_AddAndFind(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.AddLink(sampleLink("a")))
	require.NoError(t, s.AddLink(sampleLink("b")))

	// Most recent first
	links := s.Links()
	require.Len(t, links, 2)
	assert.Equal(t, "b", links[0].ID)
	assert.Equal(t, "a", links[1].ID)

	assert.NotNil(t, s.FindByID("a"))
	assert.Nil(t, s.FindByID("zzz"))
	assert.NotNil(t, s.FindByCode("code-a"))
	assert.Nil(t, s.FindByCode("nope"))
}

func TestStore_FindByCode_Alias(t *testing.T) {
	s, _ := newTestStore(t)
	record := sampleLink("a")
	record.CustomAlias = "my-alias"
	record.ShortCode = "my-alias"
	require.NoError(t, s.AddLink(record))

	assert.NotNil(t, s.FindByCode("my-alias"))
	assert.Nil(t, s.FindByCode("MY-ALIAS")) // case-sensitive
}

func TestStore_AddLink_RejectsDuplicateCode(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddLink(sampleLink("a")))

	duplicate := sampleLink("b")
	duplicate.ShortCode = "code-a"
	assert.ErrorIs(t, s.AddLink(duplicate), ErrCodeConflict)

	// An alias claims its code too
	aliased := sampleLink("c")
	aliased.CustomAlias = "my-alias"
	aliased.ShortCode = "my-alias"
	require.NoError(t, s.AddLink(aliased))

	clash := sampleLink("d")
	clash.ShortCode = "my-alias"
	assert.ErrorIs(t, s.AddLink(clash), ErrCodeConflict)

	require.Len(t, s.Links(), 2)
}

func TestStore_HandsOutDetachedCopies(t *testing.T) {
	s, _ := newTestStore(t)
	original := sampleLink("a")
	require.NoError(t, s.AddLink(original))

	// The store keeps its own copy of an added record.
	original.ClickCount = 50
	assert.Zero(t, s.FindByID("a").ClickCount)

	// A listed record stays frozen across later mutations and writing to it
	// does not leak back into the store.
	snapshot := s.Links()[0]
	updated, ok := s.IncrementClick("a")
	require.True(t, ok)
	assert.Equal(t, 1, updated.ClickCount)
	assert.Zero(t, snapshot.ClickCount)

	snapshot.Tags[0] = "mutated"
	assert.Equal(t, "work", s.FindByID("a").Tags[0])

	// The record returned by an increment is detached as well.
	updated.ClickCount = 99
	assert.Equal(t, 1, s.FindByID("a").ClickCount)
}

func TestStore_RoundTripPreservesFields(t *testing.T) {
	b, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)

	first := New(b, zap.NewNop())
	original := sampleLink("a")
	original.ClickCount = 4
	original.QRCodeScans = 2
	require.NoError(t, first.AddLink(original))

	// A second store over the same blob must reconstruct every field,
	// including dates as real time values.
	second := New(b, zap.NewNop())
	links := second.Links()
	require.Len(t, links, 1)
	restored := links[0]

	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.OriginalURL, restored.OriginalURL)
	assert.Equal(t, original.ShortCode, restored.ShortCode)
	assert.True(t, original.CreatedAt.Equal(restored.CreatedAt))
	require.NotNil(t, restored.ExpiresAt)
	assert.True(t, original.ExpiresAt.Equal(*restored.ExpiresAt))
	assert.Equal(t, 4, restored.ClickCount)
	assert.Equal(t, 2, restored.QRCodeScans)
	assert.True(t, restored.IsActive)
	assert.Equal(t, []string{"work", "docs"}, restored.Tags)
	assert.Equal(t, "sample", restored.Description)
}

func TestStore_MalformedBlobYieldsEmpty(t *testing.T) {
	b, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, b.Set(ctx, "urls", "{not json"))
	require.NoError(t, b.Set(ctx, "activities", "also not json"))

	s := New(b, zap.NewNop())
	assert.Empty(t, s.Links())
	assert.Empty(t, s.Activities())
}

func TestStore_DeleteLink(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddLink(sampleLink("a")))

	assert.True(t, s.DeleteLink("a"))
	assert.False(t, s.DeleteLink("a"))
	assert.Empty(t, s.Links())
}

func TestStore_Counters(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.AddLink(sampleLink("a")))

	record, ok := s.IncrementClick("a")
	require.True(t, ok)
	assert.Equal(t, 1, record.ClickCount)

	record, ok = s.IncrementScan("a")
	require.True(t, ok)
	assert.Equal(t, 1, record.QRCodeScans)

	_, ok = s.IncrementClick("missing")
	assert.False(t, ok)
}

func TestStore_ActivityLogOrderAndCap(t *testing.T) {
	b, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)
	s := New(b, zap.NewNop())

	for i := 0; i < 120; i++ {
		s.LogActivity(&entities.ActivityEntry{
			ID:        fmt.Sprintf("act-%d", i),
			Type:      entities.ActivityClicked,
			Timestamp: time.Now(),
		})
	}

	// In-memory log is uncapped, most recent first
	activities := s.Activities()
	require.Len(t, activities, 120)
	assert.Equal(t, "act-119", activities[0].ID)

	// Persisted snapshot is capped to the 100 most recent
	reloaded := New(b, zap.NewNop())
	persisted := reloaded.Activities()
	require.Len(t, persisted, 100)
	assert.Equal(t, "act-119", persisted[0].ID)
	assert.Equal(t, "act-20", persisted[99].ID)
}

func TestStore_DarkModePersists(t *testing.T) {
	b, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)

	s := New(b, zap.NewNop())
	assert.False(t, s.DarkMode())

	s.SetDarkMode(true)
	assert.True(t, s.DarkMode())

	reloaded := New(b, zap.NewNop())
	assert.True(t, reloaded.DarkMode())
}
