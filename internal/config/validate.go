package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Weather.BaseURL == "" {
		return fmt.Errorf("weather.base_url must not be empty")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port (got %d)", c.Server.Port)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be positive when enabled (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}
