package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Source modes select where property and issue records come from.
const (
	SourceModeDatabase = "database"
	SourceModeRemote   = "remote"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Source   SourceConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	PoolMin  int
	PoolMax  int
}

// SourceConfig holds configuration for the inspection-data source: either
// the local Postgres store or the remote inspection API.
type SourceConfig struct {
	Mode           string
	BaseURL        string
	TimeoutSeconds int
	RetryMax       int
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Origins []string
}

// Load reads configuration from environment variables.
// It uses viper to read values and provides sensible defaults for development.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults for development
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "realityai")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_POOL_MIN", 2)
	v.SetDefault("DB_POOL_MAX", 10)
	v.SetDefault("SOURCE_MODE", SourceModeDatabase)
	v.SetDefault("SOURCE_BASE_URL", "http://localhost:8000")
	v.SetDefault("SOURCE_TIMEOUT_SECONDS", 6)
	v.SetDefault("SOURCE_RETRY_MAX", 3)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")

	// Bind environment variables
	v.AutomaticEnv()

	// Build configuration
	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			PoolMin:  v.GetInt("DB_POOL_MIN"),
			PoolMax:  v.GetInt("DB_POOL_MAX"),
		},
		Source: SourceConfig{
			Mode:           v.GetString("SOURCE_MODE"),
			BaseURL:        v.GetString("SOURCE_BASE_URL"),
			TimeoutSeconds: v.GetInt("SOURCE_TIMEOUT_SECONDS"),
			RetryMax:       v.GetInt("SOURCE_RETRY_MAX"),
		},
		CORS: CORSConfig{
			Origins: parseOrigins(v.GetString("CORS_ORIGINS")),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	// Validate server config
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	// Validate source config; the database settings only matter in
	// database mode.
	switch c.Source.Mode {
	case SourceModeDatabase:
		if err := c.validateDatabase(); err != nil {
			return err
		}
	case SourceModeRemote:
		if c.Source.BaseURL == "" {
			return fmt.Errorf("SOURCE_BASE_URL is required in remote mode")
		}
	default:
		return fmt.Errorf("SOURCE_MODE must be %q or %q", SourceModeDatabase, SourceModeRemote)
	}

	if c.Source.TimeoutSeconds < 1 {
		return fmt.Errorf("SOURCE_TIMEOUT_SECONDS must be at least 1")
	}
	if c.Source.RetryMax < 0 {
		return fmt.Errorf("SOURCE_RETRY_MAX must be non-negative")
	}

	// Validate CORS config
	if len(c.CORS.Origins) == 0 {
		return fmt.Errorf("CORS_ORIGINS is required")
	}

	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Port == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Database.PoolMin < 0 {
		return fmt.Errorf("DB_POOL_MIN must be non-negative")
	}
	if c.Database.PoolMax < 1 {
		return fmt.Errorf("DB_POOL_MAX must be at least 1")
	}
	if c.Database.PoolMin > c.Database.PoolMax {
		return fmt.Errorf("DB_POOL_MIN must be less than or equal to DB_POOL_MAX")
	}
	return nil
}

// parseOrigins splits a comma-separated string of origins into a slice.
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
