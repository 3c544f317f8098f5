package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "smartcharge/libs/config"
)

// Config defines the ingest service configuration.
type Config struct {
	Environment string `yaml:"environment" env:"APP_ENV"`
	HTTP        struct {
		Port string `yaml:"port" env:"HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"POSTGRES_DSN"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
	} `yaml:"redis"`
	AMQP struct {
		URL      string `yaml:"url" env:"AMQP_URL"`
		Exchange string `yaml:"exchange" env:"AMQP_EXCHANGE"`
	} `yaml:"amqp"`
	Auth struct {
		JWTSecret string        `yaml:"jwtSecret" env:"AUTH_JWT_SECRET"`
		TokenTTL  time.Duration `yaml:"tokenTtl" env:"AUTH_TOKEN_TTL"`
	} `yaml:"auth"`
	Device struct {
		APIKey           string `yaml:"apiKey" env:"IOT_API_KEY"`
		ReportIntervalMS int    `yaml:"reportIntervalMs" env:"IOT_REPORT_INTERVAL_MS"`
	} `yaml:"device"`
}

// Load reads configuration via the shared helper and applies defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.Environment = "development"
	cfg.HTTP.Port = "8080"
	cfg.AMQP.Exchange = "smartcharge.events"
	cfg.Auth.TokenTTL = 24 * time.Hour
	cfg.Device.ReportIntervalMS = 5000

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return nil, errors.New("config: auth jwt secret required")
	}
	if cfg.Device.ReportIntervalMS <= 0 {
		return nil, errors.New("config: device report interval must be positive")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// IsProduction reports whether the deployment is marked production. The
// device gate only admits keyless requests outside production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}

// ReportInterval returns the recommended device poll interval.
func (c *Config) ReportInterval() time.Duration {
	return time.Duration(c.Device.ReportIntervalMS) * time.Millisecond
}

// PresenceTTL is how long a station counts as online after an accepted poll.
// Three missed polls in a row flips it offline.
func (c *Config) PresenceTTL() time.Duration {
	return 3 * c.ReportInterval()
}
