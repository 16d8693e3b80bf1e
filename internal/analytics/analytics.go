// Package analytics derives summary views from the record store and the
// activity log. Summaries are recomputed on every call; there is no
// incremental state.
package analytics

import (
	"sort"

	"linkforge/internal/entities"
)

// View limits
const (
	recentActivityLimit = 10
	topLinksLimit       = 5
)

// RankedLink pairs a link record with its engagement total for ranking.
type RankedLink struct {
	entities.LinkRecord
	TotalEngagement int `json:"total_engagement"`
}

// Summary is the derived analytics view.
type Summary struct {
	TotalURLs      int                       `json:"total_urls"`
	TotalClicks    int                       `json:"total_clicks"`
	TotalQRScans   int                       `json:"total_qr_scans"`
	RecentActivity []*entities.ActivityEntry `json:"recent_activity"`
	TopLinks       []RankedLink              `json:"top_urls"`
}

// Summarize computes totals, the ten most recent activity entries and the
// five most engaged links. Both rankings use stable sorts so ties keep their
// original list order.
func Summarize(records []*entities.LinkRecord, activities []*entities.ActivityEntry) Summary {
	summary := Summary{TotalURLs: len(records)}
	for _, r := range records {
		summary.TotalClicks += r.ClickCount
		summary.TotalQRScans += r.QRCodeScans
	}

	recent := make([]*entities.ActivityEntry, len(activities))
	copy(recent, activities)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}
	summary.RecentActivity = recent

	ranked := make([]RankedLink, 0, len(records))
	for _, r := range records {
		ranked = append(ranked, RankedLink{LinkRecord: *r, TotalEngagement: r.Engagement()})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalEngagement > ranked[j].TotalEngagement
	})
	if len(ranked) > topLinksLimit {
		ranked = ranked[:topLinksLimit]
	}
	summary.TopLinks = ranked

	return summary
}
