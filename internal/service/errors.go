package service

import "errors"

// Lookup failures
var (
	ErrLinkNotFound   = errors.New("link not found")
	ErrQRCodeNotFound = errors.New("QR code not found")
)

// ErrAliasTaken is returned when a custom alias conflicts with an existing
// record. Surfaced before any record is created.
var ErrAliasTaken = errors.New("custom alias is already taken")

// ValidationError carries the named constraint an input violated. No mutation
// happens when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErr(reason string) error {
	return &ValidationError{Reason: reason}
}
