package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	ISBNdb   ISBNdbConfig
	NYTimes  NYTimesConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type AuthConfig struct {
	Secret   string
	Audience string
	Issuer   string
}

// ISBNdbConfig covers the upstream bibliographic API.
type ISBNdbConfig struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	CacheTTL  time.Duration
}

type NYTimesConfig struct {
	BaseURL  string
	APIKey   string
	CacheTTL time.Duration
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Book Tracker API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "booktracker"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			Secret:   getEnv("AUTH_SECRET", "change-me-in-production"),
			Audience: getEnv("AUTH_AUDIENCE", "booktracker"),
			Issuer:   getEnv("AUTH_ISSUER", ""),
		},
		ISBNdb: ISBNdbConfig{
			BaseURL:   getEnv("ISBNDB_URL", "https://api2.isbndb.com"),
			APIKey:    getEnv("ISBNDB_KEY", ""),
			UserAgent: getEnv("USER_AGENT", "booktracker-backend"),
			CacheTTL:  time.Duration(getEnvInt("ISBNDB_CACHE_TTL", 3600)) * time.Second,
		},
		NYTimes: NYTimesConfig{
			BaseURL:  getEnv("NYT_BOOKS_URL", "https://api.nytimes.com/svc/books/v3/lists/"),
			APIKey:   getEnv("NYT_KEY", ""),
			CacheTTL: time.Duration(getEnvInt("NYT_CACHE_TTL", 3600)) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded config for values that must not ship as defaults.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Auth.Secret == "change-me-in-production" {
			return fmt.Errorf("AUTH_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.ISBNdb.APIKey == "" {
			fmt.Println("WARNING: ISBNDB_KEY not set - book lookups will not work")
		}
		if c.NYTimes.APIKey == "" {
			fmt.Println("WARNING: NYT_KEY not set - bestseller lists will not work")
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
