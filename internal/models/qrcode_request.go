package models

// GenerateQRRequest represents the request body for generating a QR code.
// Unset customization fields fall back to the rendering defaults; Margin is a
// pointer so an explicit zero (no border) can be told apart from absent.
type GenerateQRRequest struct {
	Text                 string `json:"text" binding:"required"`
	Size                 int    `json:"size,omitempty"`
	ErrorCorrectionLevel string `json:"error_correction_level,omitempty" binding:"omitempty,oneof=L M Q H"`
	ForegroundColor      string `json:"foreground_color,omitempty"`
	BackgroundColor      string `json:"background_color,omitempty"`
	Margin               *int   `json:"margin,omitempty"`
}
