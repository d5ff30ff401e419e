package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

const (
	AuditSinkFile  = "file"
	AuditSinkRedis = "redis"
	AuditSinkMySQL = "mysql"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds all configuration for the shop simulator.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`

	// Audit trail backend
	AuditSink    string `env:"AUDIT_SINK" envDefault:"file" validate:"oneof=file redis mysql"`
	AuditLogPath string `env:"AUDIT_LOG_PATH" envDefault:"log.txt" validate:"required_if=AuditSink file"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379" validate:"required_if=AuditSink redis"`
	RedisPass     string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`
	AuditRedisKey string `env:"AUDIT_REDIS_KEY" envDefault:"audit:checkout" validate:"required_if=AuditSink redis"`

	// MySQL
	MySQLDSN string `env:"MYSQL_DSN" envDefault:"root:root@tcp(localhost:3306)/shop?parseTime=true" validate:"required_if=AuditSink mysql"`

	// Upper bound on a single audit write to a network backend
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"5s"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("invalid backend timeout: %s", c.BackendTimeout)
	}
	return nil
}
