package analytics

import (
	"fmt"
	"testing"
	"time"

	"linkforge/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkWithEngagement(id string, clicks, scans int) *entities.LinkRecord {
	return &entities.LinkRecord{ID: id, ClickCount: clicks, QRCodeScans: scans}
}

func TestSummarize_Totals(t *testing.T) {
	records := []*entities.LinkRecord{
		linkWithEngagement("a", 3, 1),
		linkWithEngagement("b", 0, 2),
		linkWithEngagement("c", 5, 0),
	}

	summary := Summarize(records, nil)
	assert.Equal(t, 3, summary.TotalURLs)
	assert.Equal(t, 8, summary.TotalClicks)
	assert.Equal(t, 3, summary.TotalQRScans)
}

func TestSummarize_TopLinksOrdering(t *testing.T) {
	// Engagement totals 10, 50, 5, 100, 20 must come back 100, 50, 20, 10, 5
	records := []*entities.LinkRecord{
		linkWithEngagement("a", 10, 0),
		linkWithEngagement("b", 40, 10),
		linkWithEngagement("c", 5, 0),
		linkWithEngagement("d", 90, 10),
		linkWithEngagement("e", 0, 20),
	}

	summary := Summarize(records, nil)
	require.Len(t, summary.TopLinks, 5)

	var totals []int
	for _, ranked := range summary.TopLinks {
		totals = append(totals, ranked.TotalEngagement)
	}
	assert.Equal(t, []int{100, 50, 20, 10, 5}, totals)
}

func TestSummarize_TopLinksTruncatedToFive(t *testing.T) {
	var records []*entities.LinkRecord
	for i := 1; i <= 7; i++ {
		records = append(records, linkWithEngagement(fmt.Sprintf("link-%d", i), i*10, 0))
	}

	summary := Summarize(records, nil)
	require.Len(t, summary.TopLinks, 5)
	assert.Equal(t, 70, summary.TopLinks[0].TotalEngagement)
	assert.Equal(t, 30, summary.TopLinks[4].TotalEngagement)
}

func TestSummarize_TopLinksTieKeepsListOrder(t *testing.T) {
	records := []*entities.LinkRecord{
		linkWithEngagement("first", 5, 0),
		linkWithEngagement("second", 0, 5),
		linkWithEngagement("third", 5, 0),
	}

	summary := Summarize(records, nil)
	require.Len(t, summary.TopLinks, 3)
	assert.Equal(t, "first", summary.TopLinks[0].ID)
	assert.Equal(t, "second", summary.TopLinks[1].ID)
	assert.Equal(t, "third", summary.TopLinks[2].ID)
}

func TestSummarize_RecentActivity(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var activities []*entities.ActivityEntry
	for i := 0; i < 15; i++ {
		activities = append(activities, &entities.ActivityEntry{
			ID:        fmt.Sprintf("act-%d", i),
			Type:      entities.ActivityClicked,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}

	summary := Summarize(nil, activities)
	require.Len(t, summary.RecentActivity, 10)
	// Newest first
	assert.Equal(t, "act-14", summary.RecentActivity[0].ID)
	assert.Equal(t, "act-5", summary.RecentActivity[9].ID)
	for i := 1; i < len(summary.RecentActivity); i++ {
		assert.False(t, summary.RecentActivity[i].Timestamp.After(summary.RecentActivity[i-1].Timestamp))
	}
}

func TestSummarize_RecentActivityTieKeepsInsertionOrder(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	activities := []*entities.ActivityEntry{
		{ID: "one", Timestamp: ts},
		{ID: "two", Timestamp: ts},
		{ID: "three", Timestamp: ts},
	}

	summary := Summarize(nil, activities)
	require.Len(t, summary.RecentActivity, 3)
	assert.Equal(t, "one", summary.RecentActivity[0].ID)
	assert.Equal(t, "two", summary.RecentActivity[1].ID)
	assert.Equal(t, "three", summary.RecentActivity[2].ID)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, nil)
	assert.Zero(t, summary.TotalURLs)
	assert.Zero(t, summary.TotalClicks)
	assert.Zero(t, summary.TotalQRScans)
	assert.Empty(t, summary.RecentActivity)
	assert.Empty(t, summary.TopLinks)
}
