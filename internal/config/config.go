// Package config loads dev server configuration.
//
// Sources, later ones winning: built-in defaults, an optional YAML file
// (CONFIG_PATH, or devserver.yaml in the working directory), then
// environment variables.
//
//	DEVSERVER_HOST, DEVSERVER_PORT    listen address
//	STATIC_DIR                        directory served at /
//	UPSTREAM_URL                      recommendations backend for /api/*
//	UPSTREAM_TIMEOUT                  per-request proxy timeout (e.g. 10s)
//	BREAKER_FAILURES, BREAKER_TIMEOUT circuit breaker trip count and open period
//	PREVIEW_RATE_LIMIT                /preview requests per IP per minute (0 = off)
//	CORS_ORIGINS                      comma separated allowed origins
//	LOG_LEVEL, LOG_FORMAT             see internal/logging
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the dev server configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Upstream UpstreamConfig `koanf:"upstream"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig controls the listener and static file serving.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	StaticDir       string        `koanf:"static_dir" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`

	// PreviewRateLimit caps /preview requests per client IP per minute; 0 disables.
	PreviewRateLimit int `koanf:"preview_rate_limit" validate:"gte=0"`
}

// UpstreamConfig points at the recommendations backend.
type UpstreamConfig struct {
	URL     string        `koanf:"url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// BreakerFailures consecutive failures open the breaker for BreakerTimeout.
	BreakerFailures uint32        `koanf:"breaker_failures" validate:"min=1"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout" validate:"gt=0"`
}

// SecurityConfig holds CORS settings.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins" validate:"dive,required"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// Addr returns host:port for the listener.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
