// Package qr wraps the external QR encoder and applies per-record
// customization (size, error correction, colors, margin).
package qr

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"strconv"

	"linkforge/internal/entities"

	"github.com/skip2/go-qrcode"
)

// Encode renders text as a PNG using the given style snapshot.
func Encode(text string, style entities.QRStyle) ([]byte, error) {
	code, err := qrcode.New(text, recoveryLevel(style.ErrorCorrectionLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	code.ForegroundColor = parseHexColor(style.ForegroundColor, color.RGBA{0x1F, 0x29, 0x37, 0xFF})
	code.BackgroundColor = parseHexColor(style.BackgroundColor, color.White)
	// The encoder draws a fixed-width quiet zone, so Margin maps onto the
	// border's presence: non-positive removes it, positive keeps the
	// encoder's standard width. See entities.QRStyle.Margin.
	if style.Margin <= 0 {
		code.DisableBorder = true
	}

	size := style.Size
	if size <= 0 {
		size = entities.DefaultQRSize
	}

	png, err := code.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// DataURL renders text as an embedded-data image URI suitable for direct
// display.
func DataURL(text string, style entities.QRStyle) (string, error) {
	png, err := Encode(text, style)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default: // M
		return qrcode.Medium
	}
}

// parseHexColor decodes a #RRGGBB color, falling back when the value is
// missing or malformed.
func parseHexColor(hex string, fallback color.Color) color.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return fallback
	}
	value, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xFF,
	}
}
