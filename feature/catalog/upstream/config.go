package upstream

import "time"

// Config holds configuration for the point-of-sale catalog API.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string `mapstructure:"base_url" default:"https://api.loyverse.com/v1.0" validate:"required,url"`
	// AccessToken is sent as a bearer token on every request.
	AccessToken string `mapstructure:"access_token" default:"" validate:"required"`
	// PageSize is the limit requested per page.
	PageSize int `mapstructure:"page_size" default:"250" validate:"gte=1,lte=250"`
	// TimeoutSeconds bounds a single page request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"gte=0"`
	// RateLimitRPS paces page requests. Zero disables pacing.
	RateLimitRPS float64 `mapstructure:"rate_limit_rps" default:"0" validate:"gte=0"`
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
