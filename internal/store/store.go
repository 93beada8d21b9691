// Package store keeps controller snapshots between host view lifetimes.
//
// A Store maps a key, usually one per host view, to the snapshot bytes the
// controller persisted. Three implementations are provided: MemoryStore for
// tests and short-lived hosts, FileStore for a single JSON document on disk,
// and SQLiteStore for hosts that already keep state in SQLite.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNotFound is returned by Load when nothing is stored under the key.
	ErrNotFound = errors.New("snapshot not found")

	// ErrInvalidKey is returned for empty keys or keys with characters
	// other than letters, digits, '_' and '-'.
	ErrInvalidKey = errors.New("invalid snapshot key")

	// ErrInvalidSnapshot is returned when saving bytes that are not JSON.
	ErrInvalidSnapshot = errors.New("snapshot is not valid JSON")
)

// Store persists snapshots by key. Implementations are safe for
// concurrent use.
type Store interface {
	// Save stores data under key, replacing any previous snapshot.
	Save(ctx context.Context, key string, data []byte) error

	// Load returns the snapshot under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes the snapshot under key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// ValidateKey reports whether key can be used with every Store.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
