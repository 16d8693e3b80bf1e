package models

// ShortenRequest represents the request body for shortening a URL
type ShortenRequest struct {
	URL            string   `json:"url" binding:"required"`
	CustomAlias    string   `json:"custom_alias,omitempty"`
	ExpirationDays int      `json:"expiration_days,omitempty"` // 0 means never expires
	Description    string   `json:"description,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}
