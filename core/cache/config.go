package cache

import "time"

// Backend names accepted by Config.Backend.
const (
	BackendFile   = "file"
	BackendObject = "object"
	BackendRedis  = "redis"
)

// Config holds configuration for the advisory response cache.
type Config struct {
	// Enabled makes cached reads the default for CLI passes. HTTP triggers
	// choose per request with the cache flag.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Backend selects where entries live (file, object, redis).
	Backend string `mapstructure:"backend" default:"file" validate:"oneof=file object redis"`
	// Dir is the directory used by the file backend.
	Dir string `mapstructure:"dir" default:".cache"`
	// Prefix namespaces object and redis keys.
	Prefix string `mapstructure:"prefix" default:"upstream/"`
	// MaxAgeSeconds expires entries older than this. Zero keeps entries forever.
	MaxAgeSeconds int `mapstructure:"max_age_seconds" default:"0" validate:"gte=0"`
}

// MaxAge returns the configured max age, or zero for no expiry.
func (c Config) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeSeconds) * time.Second
}
