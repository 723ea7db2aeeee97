// Package config provides centralized configuration management for the service.
// Configuration is layered from defaults, an optional YAML file, and
// environment variables, and is validated on startup to fail fast on
// misconfiguration.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Parse    ParseConfig    `koanf:"parse"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Rate     RateConfig     `koanf:"rate"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `koanf:"host"`

	// Port is the port to listen on (default: 8080)
	Port int `koanf:"port" validate:"min=1,max=65535"`

	// ReadTimeout is the maximum duration for reading the request (default: 15s)
	ReadTimeout time.Duration `koanf:"read_timeout" validate:"gte=0"`

	// WriteTimeout is the maximum duration for writing the response (default: 30s)
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gte=0"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `koanf:"idle_timeout" validate:"gte=0"`

	// ShutdownTimeout bounds graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"gt=0"`
}

// ParseConfig holds export parsing limits.
type ParseConfig struct {
	// MaxFileSize is the maximum accepted export size in bytes (default: 10MB)
	MaxFileSize int64 `koanf:"max_file_size" validate:"gt=0"`

	// MaxConcurrent is the maximum number of parallel parses (default: 5)
	MaxConcurrent int `koanf:"max_concurrent" validate:"gt=0"`

	// MaxWaitTime is how long to wait for a parse slot (default: 30s)
	MaxWaitTime time.Duration `koanf:"max_wait_time" validate:"gt=0"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies lists proxy CIDRs whose X-Real-IP/X-Forwarded-For are honored
	TrustedProxies []string `koanf:"trusted_proxies" validate:"dive,cidr|ip"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `koanf:"level" validate:"oneof=debug info warn error"`

	// Format is the log format: text or json (default: text)
	Format string `koanf:"format" validate:"oneof=text json"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	// Enabled mounts the metrics endpoint (default: true)
	Enabled bool `koanf:"enabled"`

	// Path is the metrics endpoint path (default: /metrics)
	Path string `koanf:"path"`
}

// RateConfig holds per-client request rate limiting for the API routes.
type RateConfig struct {
	// Enabled turns rate limiting on (default: true)
	Enabled bool `koanf:"enabled"`

	// RequestsPerMinute is the sustained rate per client IP (default: 60)
	RequestsPerMinute int `koanf:"requests_per_minute" validate:"gte=0"`

	// Burst is how many requests a client may make at once (default: 10)
	Burst int `koanf:"burst" validate:"gte=0"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			RequestTimeout:  60 * time.Second,
		},
		Parse: ParseConfig{
			MaxFileSize:   10 * 1024 * 1024,
			MaxConcurrent: 5,
			MaxWaitTime:   30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Rate: RateConfig{
			Enabled:           true,
			RequestsPerMinute: 60,
			Burst:             10,
		},
	}
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// Validate checks that the configuration is valid.
// Field rules come from the validate tags; rules spanning several fields are
// checked here. Returns one error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, describe(fe))
		}
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Sprintf("metrics.path (%q) must start with /", c.Metrics.Path))
	}
	if c.Rate.Enabled && (c.Rate.RequestsPerMinute == 0 || c.Rate.Burst == 0) {
		errs = append(errs, "rate.requests_per_minute and rate.burst must be positive when rate limiting is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}

// validate reports field names by their koanf keys, e.g. server.port.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("koanf")
		if name == "" || name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// describe renders one field failure with its dotted key.
func describe(fe validator.FieldError) string {
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}

	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s (%q) must be one of: %s", key, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s (%v) must be at least %s", key, fe.Value(), fe.Param())
	case "max":
		return fmt.Sprintf("%s (%v) must be at most %s", key, fe.Value(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s (%v) must be positive", key, fe.Value())
	case "gte":
		return fmt.Sprintf("%s (%v) must be non-negative", key, fe.Value())
	case "cidr|ip":
		return fmt.Sprintf("%s (%q) must be a CIDR or IP address", key, fe.Value())
	default:
		return fmt.Sprintf("%s (%v) failed %s", key, fe.Value(), fe.Tag())
	}
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Server: {Addr: %q}, Parse: {MaxFileSize: %d, MaxConcurrent: %d}, Logging: {Level: %q, Format: %q}, Metrics: {Enabled: %v, Path: %q}, Rate: {Enabled: %v, PerMinute: %d}}",
		c.Server.Addr(), c.Parse.MaxFileSize, c.Parse.MaxConcurrent,
		c.Logging.Level, c.Logging.Format, c.Metrics.Enabled, c.Metrics.Path,
		c.Rate.Enabled, c.Rate.RequestsPerMinute,
	)
}
