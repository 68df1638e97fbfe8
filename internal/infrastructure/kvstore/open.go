// Package kvstore provides the key-value backends the marketplace collections
// are persisted to.
package kvstore

import (
	"context"
	"fmt"

	"fleamarket/internal/domain/repository"
	"fleamarket/pkg/config"
)

const (
	DriverMemory    = "memory"
	DriverFile      = "file"
	DriverSQLite    = "sqlite"
	DriverRedis     = "redis"
	DriverFirestore = "firestore"
)

// Store is a KeyValueStore that owns a connection or file handle.
type Store interface {
	repository.KeyValueStore
	Close() error
}

// Open builds the backend named by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverFile, "":
		return NewFileStore(cfg.StoragePath)
	case DriverSQLite:
		return OpenSQLiteStore(cfg.StoragePath)
	case DriverRedis:
		return OpenRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case DriverFirestore:
		return OpenFirestoreStore(ctx, FirestoreOptions{
			ProjectID:          cfg.FirebaseProject,
			Collection:         cfg.FirestoreCollection,
			ServiceAccountJSON: cfg.FirebaseServiceAccountJSON,
			ServiceAccountPath: cfg.FirebaseServiceAccountPath,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
