package models

import (
	"time"

	"linkforge/internal/entities"
)

// QRCodeResponse represents a QR code record in API responses
type QRCodeResponse struct {
	ID        string           `json:"id"`
	Text      string           `json:"text"`
	ImageData string           `json:"image_data"` // data:image/png;base64 URI
	CreatedAt time.Time        `json:"created_at"`
	ScanCount int              `json:"scan_count"`
	Style     entities.QRStyle `json:"style"`
}
