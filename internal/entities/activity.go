package entities

import "time"

// ActivityType classifies a user-triggered event in the activity log
type ActivityType string

const (
	ActivityCreated ActivityType = "created"
	ActivityClicked ActivityType = "clicked"
	ActivityScanned ActivityType = "scanned"
)

// ActivityEntry is one append-only activity log record. ID and Timestamp are
// assigned at construction and never mutated.
type ActivityEntry struct {
	ID        string       `json:"id"` // UUID
	Type      ActivityType `json:"type"`
	Timestamp time.Time    `json:"timestamp"`
	Details   string       `json:"details"`
	URLID     string       `json:"url_id,omitempty"` // back-reference for lookup only
}

// FormatActivityType returns the display label for an activity type.
func FormatActivityType(t ActivityType) string {
	switch t {
	case ActivityCreated:
		return "URL Created"
	case ActivityClicked:
		return "URL Clicked"
	case ActivityScanned:
		return "QR Code Scanned"
	default:
		return "Unknown"
	}
}
