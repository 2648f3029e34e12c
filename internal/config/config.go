package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Planner  PlannerConfig  `mapstructure:"planner"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the SQL dialect: "sqlite" (default) or "postgres".
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite postgres"`
	// URL is a file path or DSN for SQLite, or a postgres:// URL.
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains the optional API token settings.
// Leaving JWTSecret empty disables authentication entirely.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"omitempty,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
}

// Enabled reports whether API requests must carry a bearer token.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// TokenLifetime returns the configured token lifetime as a duration.
func (c AuthConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenLifetimeMinutes) * time.Minute
}

// PlannerConfig contains settings for plan generation.
type PlannerConfig struct {
	// Timezone is the IANA zone used to decide which calendar day is "today".
	// "Local" uses the server's zone.
	Timezone string `mapstructure:"timezone" validate:"required"`
}

// Location resolves Timezone.
func (c PlannerConfig) Location() (*time.Location, error) {
	if strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid planner timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
