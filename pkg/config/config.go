package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	StorageDriver    string `env:"STORAGE_DRIVER" envDefault:"file"` // memory, file, sqlite, redis, firestore
	StoragePath      string `env:"STORAGE_PATH"`
	StorageKeyPrefix string `env:"STORAGE_KEY_PREFIX"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	FirebaseProject            string `env:"FIREBASE_PROJECT_ID"`
	FirebaseServiceAccountPath string `env:"FIREBASE_SERVICE_ACCOUNT_PATH"`
	FirebaseServiceAccountJSON string `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	FirestoreCollection        string `env:"FIRESTORE_COLLECTION" envDefault:"kv"`

	SeedCatalog   bool          `env:"SEED_CATALOG" envDefault:"true"`
	ShippingFee   float64       `env:"SHIPPING_FEE" envDefault:"60"`
	CheckoutDelay time.Duration `env:"CHECKOUT_DELAY" envDefault:"1500ms"`
}

func Load() (*Config, error) {
	// A missing .env file is fine; the process environment still applies.
	godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if config.StoragePath == "" {
		config.StoragePath = defaultStoragePath(config.StorageDriver)
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func defaultStoragePath(driver string) string {
	switch driver {
	case "sqlite":
		return "./fleamarket.db"
	default:
		return "./fleamarket.json"
	}
}
