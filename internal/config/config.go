// Package config provides configuration management for the Squadra application.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App          AppConfig          `mapstructure:"app" validate:"required"`
	Database     DatabaseConfig     `mapstructure:"database" validate:"required"`
	Server       ServerConfig       `mapstructure:"server" validate:"required"`
	Club         ClubConfig         `mapstructure:"club" validate:"required"`
	FixturesFeed FixturesFeedConfig `mapstructure:"fixtures_feed"`
	Stats        StatsConfig        `mapstructure:"stats" validate:"required"`
	Metrics      MetricsConfig      `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// ServerConfig represents HTTP API server configuration
type ServerConfig struct {
	Port              int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	HealthPort        int      `mapstructure:"health_port" validate:"required,min=1,max=65535"`
	CORSAllowOrigins  []string `mapstructure:"cors_allow_origins"`
	ReadTimeoutSecs   int      `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSecs  int      `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	ShutdownGraceSecs int      `mapstructure:"shutdown_grace_seconds" validate:"required,gt=0"`
}

// ClubConfig represents club-level settings
type ClubConfig struct {
	Name             string  `mapstructure:"name" validate:"required"`
	Season           string  `mapstructure:"season" validate:"required"`
	DefaultFormation string  `mapstructure:"default_formation" validate:"required,formation"`
	SeasonFee        float64 `mapstructure:"season_fee" validate:"gte=0"`
}

// FixturesFeedConfig represents the federation fixtures feed client
// configuration
type FixturesFeedConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	URL            string  `mapstructure:"url" validate:"omitempty,url"`
	APIKey         string  `mapstructure:"api_key"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"omitempty,gt=0"`
	MaxRetries     int     `mapstructure:"max_retries" validate:"omitempty,gte=0"`
	RateLimit      float64 `mapstructure:"rate_limit" validate:"omitempty,gt=0"`
	RefreshCron    string  `mapstructure:"refresh_cron"`
}

// StatsConfig represents derived-statistics computation configuration
type StatsConfig struct {
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	WarmCron        string `mapstructure:"warm_cron"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
