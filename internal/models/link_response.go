package models

import "time"

// LinkResponse represents a link record in API responses
type LinkResponse struct {
	ID          string     `json:"id"`
	OriginalURL string     `json:"original_url"`
	ShortCode   string     `json:"short_code"`
	CustomAlias string     `json:"custom_alias,omitempty"`
	ShortURL    string     `json:"short_url"` // base domain + short code
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ClickCount  int        `json:"click_count"`
	QRCodeScans int        `json:"qr_code_scans"`
	IsActive    bool       `json:"is_active"`
	Expired     bool       `json:"expired"` // advisory, derived at response time
	Tags        []string   `json:"tags,omitempty"`
	Description string     `json:"description,omitempty"`
	Warning     string     `json:"warning,omitempty"` // advisory from URL validation
}
