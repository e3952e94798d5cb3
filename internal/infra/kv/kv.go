// Package kv is the single durability integration point: one store
// entry per collection name, holding that collection's serialized
// value. It has no transactional guarantees and no partial-write
// protection beyond the driver's own single-key overwrite.
package kv

import "context"

// Store reads and writes whole collection values. Get reports an absent
// or unreadable value as !ok, never as an error; callers fall back to
// their defaults. Set durably overwrites the value for one key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}
