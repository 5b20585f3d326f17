package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config file and the environment
// and returns a validated Config. Environment variables use the NCNEWS_
// prefix with underscores for nesting (NCNEWS_DATABASE_URL, NCNEWS_AUTH_JWT_SECRET)
// and take precedence over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 9090)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.token_lifetime", "24h")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("rate_limit.global_requests", 100)
	v.SetDefault("rate_limit.global_window", "15m")
	v.SetDefault("rate_limit.auth_requests", 5)
	v.SetDefault("rate_limit.auth_window", "1h")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("NCNEWS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults are invisible to Unmarshal unless bound.
	for _, key := range []string{"database.url", "auth.jwt_secret"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; the environment can carry everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
