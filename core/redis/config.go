package redis

// Config holds Redis connection configuration.
type Config struct {
	// Enabled turns on the distributed sync lock.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Host is the Redis host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the Redis port.
	Port int `mapstructure:"port" default:"6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis logical database.
	DB int `mapstructure:"db" default:"0"`
	// KeyPrefix namespaces every key written by catalog-sync.
	KeyPrefix string `mapstructure:"key_prefix" default:"catalog-sync:"`
}
