package models

// DarkModeRequest represents the request body for the display preference
type DarkModeRequest struct {
	DarkMode *bool `json:"dark_mode" binding:"required"`
}
