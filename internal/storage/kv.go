// Package storage implements the persistence gateway: a key-value store
// holding whole JSON-encoded collections, with first-access seeding and
// read-side field migration layered on top.
package storage

import (
	"context"
	"errors"
)

// Collection keys. Each key holds one JSON array.
const (
	KeyRecipes  = "culina_recipes"
	KeyNotebook = "culina_notebook"
)

// ErrKeyNotFound is returned by KV.Get when the key has never been written.
var ErrKeyNotFound = errors.New("storage: key not found")

// KV is the minimal key-value contract the gateway runs on. Values are
// opaque to the store; the gateway always writes whole collections, so a
// concurrent writer on the same key loses or wins in full (last write wins).
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
