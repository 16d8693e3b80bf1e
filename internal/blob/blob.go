// Package blob provides the string key-value store backing record
// persistence. The store is passive: callers overwrite whole values after
// each mutation batch and read them back once at startup.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is a string-keyed, string-valued blob store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
