package entities

import "time"

// Default QR rendering settings
const (
	DefaultQRSize       = 256
	DefaultQRLevel      = "M"
	DefaultQRForeground = "#1F2937"
	DefaultQRBackground = "#FFFFFF"
	DefaultQRMargin     = 2
)

// QRStyle is the customization snapshot for a QR code. It is copied onto the
// record at creation time and immutable afterwards.
type QRStyle struct {
	Size                 int    `json:"size"` // pixels
	ErrorCorrectionLevel string `json:"error_correction_level"` // L, M, Q or H
	ForegroundColor      string `json:"foreground_color"` // hex, e.g. #1F2937
	BackgroundColor      string `json:"background_color"`
	// Margin is the requested quiet zone in modules. Rendering approximates
	// it: the encoder's border is fixed, so zero or negative removes the
	// border entirely and any positive value keeps the encoder's standard
	// quiet zone. The requested value is still recorded on the snapshot.
	Margin int `json:"margin"`
}

// DefaultQRStyle returns the rendering defaults applied when a request leaves
// a customization field unset.
func DefaultQRStyle() QRStyle {
	return QRStyle{
		Size:                 DefaultQRSize,
		ErrorCorrectionLevel: DefaultQRLevel,
		ForegroundColor:      DefaultQRForeground,
		BackgroundColor:      DefaultQRBackground,
		Margin:               DefaultQRMargin,
	}
}

// QRCodeRecord represents a generated QR code and its source text
type QRCodeRecord struct {
	ID        string    `json:"id"` // UUID
	Text      string    `json:"text"`
	ImageData string    `json:"image_data"` // data:image/png;base64 URI
	CreatedAt time.Time `json:"created_at"`
	ScanCount int       `json:"scan_count"`
	Style     QRStyle   `json:"style"`
}
