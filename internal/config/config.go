package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	League   LeagueConfig   `yaml:"league"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds identity-provider settings. Auth0 is the production
// verifier; DevTokenSecret enables the local HS256 verifier for development
// and tests when the Auth0 domain is not configured.
type AuthConfig struct {
	Auth0Domain    string        `yaml:"auth0_domain"     env:"AUTH_AUTH0_DOMAIN"`
	VerifyTimeout  time.Duration `yaml:"verify_timeout"   env:"AUTH_VERIFY_TIMEOUT"   env-default:"10s"`
	DevTokenSecret string        `yaml:"dev_token_secret" env:"AUTH_DEV_TOKEN_SECRET"`
}

// LeagueConfig holds league rules. The pick cap and season scoping are
// deliberately configuration, not constants.
type LeagueConfig struct {
	Season          int           `yaml:"season"            env:"LEAGUE_SEASON"            env-default:"48"`
	PickLimit       int           `yaml:"pick_limit"        env:"LEAGUE_PICK_LIMIT"        env-default:"1"`
	LockGraceWindow time.Duration `yaml:"lock_grace_window" env:"LEAGUE_LOCK_GRACE_WINDOW" env-default:"48h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// HasAuth0 reports whether the Auth0 verifier is configured.
func (c AuthConfig) HasAuth0() bool {
	return c.Auth0Domain != ""
}

// HasDevTokens reports whether the local HS256 verifier is configured.
func (c AuthConfig) HasDevTokens() bool {
	return c.DevTokenSecret != ""
}
