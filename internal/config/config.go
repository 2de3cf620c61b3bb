package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Weather  WeatherConfig  `yaml:"weather"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrationsDir   string        `yaml:"migrations_dir"     env:"DATABASE_MIGRATIONS_DIR"     env-default:"./migrations"`
}

// AuthConfig holds token and password-hashing settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"taskmate"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"1h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// WeatherConfig holds the external weather API settings.
type WeatherConfig struct {
	BaseURL string        `yaml:"base_url" env:"WEATHER_BASE_URL" env-default:"https://f-api.github.io/f-api/weather.json"`
	Timeout time.Duration `yaml:"timeout"  env:"WEATHER_TIMEOUT"  env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request rate limiting settings.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"300"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"1m"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
