package config

import (
	"fmt"
	"reflect"
	"strings"

	"catalog-sync/core/cache"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/core/redis"
	"catalog-sync/core/server"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog/upstream"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the products/ledger database.
	Database database.Config `mapstructure:"database"`
	// Upstream holds configuration for the point-of-sale catalog API.
	Upstream upstream.Config `mapstructure:"upstream"`
	// Cache holds configuration for the advisory response cache.
	Cache cache.Config `mapstructure:"cache"`
	// Storage holds configuration for the object storage (used by the object cache backend).
	Storage storage.Config `mapstructure:"storage"`
	// Redis holds configuration for the distributed sync lock and redis cache backend.
	Redis redis.Config `mapstructure:"redis"`
	// Sync holds batching and locking parameters for sync passes.
	Sync SyncConfig `mapstructure:"sync"`
}

// SyncConfig holds parameters of a sync pass.
type SyncConfig struct {
	// UpsertBatchSize is the number of products written per upsert statement.
	UpsertBatchSize int `mapstructure:"upsert_batch_size" default:"100" validate:"gte=1"`
	// DeleteBatchSize is the number of SKUs removed per delete statement.
	DeleteBatchSize int `mapstructure:"delete_batch_size" default:"100" validate:"gte=1"`
	// ListPageSize is the page size used when enumerating persisted SKUs.
	ListPageSize int `mapstructure:"list_page_size" default:"1000" validate:"gte=1"`
	// LockTTLSeconds bounds how long a crashed holder blocks other passes.
	// A running pass renews its lease every third of this.
	LockTTLSeconds int `mapstructure:"lock_ttl_seconds" default:"900" validate:"gte=1"`
	// StaleAfterSeconds marks the ledger stale in integrity checks when the
	// newest completed pass is older than this. Zero disables the check.
	StaleAfterSeconds int `mapstructure:"stale_after_seconds" default:"86400" validate:"gte=0"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks every section against its validate tags.
// Commands that talk to the upstream API call it before any work starts,
// so missing credentials never reach a sync pass.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
