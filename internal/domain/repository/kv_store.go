package repository

import "context"

// KeyValueStore is the host-provided string-keyed storage the collections are
// persisted to. Capacity and eviction belong to the backend.
type KeyValueStore interface {
	// Get returns found=false, with a nil error, when the key has never been set.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
}
