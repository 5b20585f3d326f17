package config

import "time"

// Config holds all application configuration. It is constructed once at
// startup and passed to the components that need it; packages never read
// the environment themselves.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"   validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains token and password hashing settings.
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"     validate:"required,min=32"`
	TokenLifetime time.Duration `mapstructure:"token_lifetime" validate:"required"`
	BcryptCost    int           `mapstructure:"bcrypt_cost"    validate:"required,gte=4,lte=31"`
}

// RateLimitConfig contains request rate limiting settings. The auth limiter
// is stricter and applies only to the login and signup endpoints.
type RateLimitConfig struct {
	GlobalRequests int           `mapstructure:"global_requests" validate:"required,gt=0"`
	GlobalWindow   time.Duration `mapstructure:"global_window"   validate:"required"`
	AuthRequests   int           `mapstructure:"auth_requests"   validate:"required,gt=0"`
	AuthWindow     time.Duration `mapstructure:"auth_window"     validate:"required"`
}
