package entities

import "time"

// LinkRecord represents a shortened URL owned by the record store
type LinkRecord struct {
	ID          string     `json:"id"` // UUID
	OriginalURL string     `json:"original_url"`
	ShortCode   string     `json:"short_code"`
	CustomAlias string     `json:"custom_alias,omitempty"` // when set, equals ShortCode
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"` // nil means never expires
	ClickCount  int        `json:"click_count"`
	QRCodeScans int        `json:"qr_code_scans"`
	IsActive    bool       `json:"is_active"`
	Tags        []string   `json:"tags,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Clone returns a deep copy. The store hands out clones so callers never
// share mutable state with records it owns.
func (r *LinkRecord) Clone() *LinkRecord {
	out := *r
	if r.ExpiresAt != nil {
		expiresAt := *r.ExpiresAt
		out.ExpiresAt = &expiresAt
	}
	if r.Tags != nil {
		out.Tags = append([]string(nil), r.Tags...)
	}
	return &out
}

// ShortURL builds the full short URL from the base domain. The short URL is
// always derived from ShortCode, never stored on its own.
func (r *LinkRecord) ShortURL(baseDomain string) string {
	return baseDomain + "/" + r.ShortCode
}

// Engagement is the combined click and QR scan total used for rankings.
func (r *LinkRecord) Engagement() int {
	return r.ClickCount + r.QRCodeScans
}

// Expired reports whether the record's expiration has passed. Expiration is
// advisory only; expired records keep accepting simulated clicks and scans.
func (r *LinkRecord) Expired(now time.Time) bool {
	if r.ExpiresAt == nil {
		return false
	}
	return now.After(*r.ExpiresAt)
}

// CalculateExpiration returns the expiration timestamp for a link that should
// live for the given number of whole days. Zero or negative days means the
// link never expires.
func CalculateExpiration(now time.Time, days int) *time.Time {
	if days <= 0 {
		return nil
	}
	expiresAt := now.AddDate(0, 0, days)
	return &expiresAt
}
