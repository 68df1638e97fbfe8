package repository

import (
	"context"
	"encoding/json"

	"fleamarket/internal/domain/repository"
	"fleamarket/pkg/errors"
	"fleamarket/pkg/logger"
)

const (
	productsKey = "products"
	cartKey     = "cart"
	chatsKey    = "chats"
)

// Keys names the three collections inside the key-value store.
type Keys struct {
	Products string
	Cart     string
	Chats    string
}

// NewKeys prefixes the fixed collection names, e.g. "demo:" gives "demo:products".
func NewKeys(prefix string) Keys {
	return Keys{
		Products: prefix + productsKey,
		Cart:     prefix + cartKey,
		Chats:    prefix + chatsKey,
	}
}

// loadCollection never fails: a read error, a missing key and an unparseable
// blob all yield an empty collection. The next save overwrites the bad value.
func loadCollection[T any](ctx context.Context, kv repository.KeyValueStore, key string) []T {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		logger.Warn("Failed to read collection %q, treating as empty: %v", key, err)
		return []T{}
	}
	if !found || raw == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("Collection %q is malformed, treating as empty: %v", key, err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func saveCollection[T any](ctx context.Context, kv repository.KeyValueStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return errors.Internal("Failed to encode "+key, err)
	}

	if err := kv.Set(ctx, key, string(data)); err != nil {
		return errors.Internal("Failed to persist "+key, err)
	}

	logger.Debug("Persisted %d item(s) under %q", len(items), key)
	return nil
}

// findIndex returns the position of the first item matching the predicate, or -1.
func findIndex[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}
