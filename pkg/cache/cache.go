// Package cache stores rendered artifacts so repeated exports can skip
// expensive work such as Graphviz layout.
//
// Keys are derived from the artifact's inputs with [Key], so a changed
// book produces a new key and stale entries are simply never read again.
//
//	c, err := cache.NewFileCache(dir)
//	key := cache.Key("outline.svg", dot)
//	if svg, ok, _ := c.Get(ctx, key); ok {
//	    return svg
//	}
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// Key derives a cache key for an artifact kind from its inputs.
func Key(kind string, inputs ...string) string {
	h := sha256.New()
	for _, in := range inputs {
		h.Write([]byte(in))
		h.Write([]byte{0})
	}
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
