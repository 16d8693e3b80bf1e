package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateExpiration(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	expiresAt := CalculateExpiration(now, 7)
	require.NotNil(t, expiresAt)
	assert.Equal(t, now.AddDate(0, 0, 7), *expiresAt)
	// Same time of day, seven days later
	assert.Equal(t, 10, expiresAt.Hour())
	assert.Equal(t, 30, expiresAt.Minute())

	assert.Nil(t, CalculateExpiration(now, 0))
	assert.Nil(t, CalculateExpiration(now, -3))
}

func TestLinkRecord_Expired(t *testing.T) {
	now := time.Now()

	neverExpires := &LinkRecord{}
	assert.False(t, neverExpires.Expired(now))

	record := &LinkRecord{ExpiresAt: CalculateExpiration(now, 1)}
	assert.False(t, record.Expired(now))
	assert.False(t, record.Expired(now.Add(23*time.Hour)))
	// Strictly after the expiry
	assert.False(t, record.Expired(*record.ExpiresAt))
	assert.True(t, record.Expired(now.Add(24*time.Hour+time.Second)))
}

func TestLinkRecord_ShortURL(t *testing.T) {
	record := &LinkRecord{ShortCode: "abc1234"}
	assert.Equal(t, "https://short.ly/abc1234", record.ShortURL("https://short.ly"))
}

func TestLinkRecord_Engagement(t *testing.T) {
	record := &LinkRecord{ClickCount: 7, QRCodeScans: 3}
	assert.Equal(t, 10, record.Engagement())
}

func TestFormatActivityType(t *testing.T) {
	assert.Equal(t, "URL Created", FormatActivityType(ActivityCreated))
	assert.Equal(t, "URL Clicked", FormatActivityType(ActivityClicked))
	assert.Equal(t, "QR Code Scanned", FormatActivityType(ActivityScanned))
	assert.Equal(t, "Unknown", FormatActivityType(ActivityType("bogus")))
}
