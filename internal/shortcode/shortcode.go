// Package shortcode derives short codes for link records, either from a
// user-chosen alias or deterministically from the URL content mixed with the
// current time.
package shortcode

import (
	"fmt"
	"regexp"
	"time"

	"linkforge/internal/entities"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length of every generated short code.
const Length = 7

// Custom alias constraints
const (
	MinAliasLength = 3
	MaxAliasLength = 20
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Generate derives a short code from the URL content and the given timestamp.
// The derivation is a 32-bit rolling hash of the URL's code points, offset by
// the timestamp in milliseconds to reduce collision probability across calls
// for the same URL. Digits are emitted least-significant first; the order is
// part of the contract.
func Generate(rawURL string, now time.Time) string {
	var hash int32
	for _, r := range rawURL {
		hash = hash*31 + int32(r)
	}

	value := int64(hash) + now.UnixMilli()
	if value < 0 {
		value = -value
	}

	code := make([]byte, Length)
	for i := 0; i < Length; i++ {
		code[i] = alphabet[value%int64(len(alphabet))]
		value /= int64(len(alphabet))
	}
	return string(code)
}

// ValidateAlias checks a user-chosen alias against the allowed charset and
// length bounds. A valid alias is used verbatim as the short code.
func ValidateAlias(alias string) error {
	if len(alias) < MinAliasLength {
		return fmt.Errorf("custom alias must be at least %d characters long", MinAliasLength)
	}
	if len(alias) > MaxAliasLength {
		return fmt.Errorf("custom alias must be at most %d characters long", MaxAliasLength)
	}
	if !aliasPattern.MatchString(alias) {
		return fmt.Errorf("custom alias can only contain letters, numbers, hyphens, and underscores")
	}
	return nil
}

// IsAvailable reports whether no existing record already uses the code as its
// short code or custom alias. Matching is exact and case-sensitive.
func IsAvailable(code string, records []*entities.LinkRecord) bool {
	for _, r := range records {
		if r.ShortCode == code || r.CustomAlias == code {
			return false
		}
	}
	return true
}
