package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"financetracker/analytics"
	"financetracker/logging"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the server
type Config struct {
	Port string

	DatabaseURL    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	ConnectRetries int
	RetryInterval  time.Duration
	RunMigrations  bool

	AllowedOrigins []string

	Logging logging.Config

	DashboardMonths int

	RecurringEnabled  bool
	RecurringInterval time.Duration

	Breaker BreakerConfig
}

// BreakerConfig configures the circuit breaker in front of the database
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// loadConfig reads .env (if present) and the environment
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBHost:         getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:         getEnvOrDefault("DB_PORT", "5432"),
		DBUser:         getEnvOrDefault("DB_USER", "postgres"),
		DBPassword:     getEnvOrDefault("DB_PASSWORD", "password"),
		DBName:         getEnvOrDefault("DB_NAME", "financetracker"),
		DBSSLMode:      getEnvOrDefault("DB_SSLMODE", "disable"),
		AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		Logging: logging.Config{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	cfg.ConnectRetries, err = getEnvInt("DB_CONNECT_RETRIES", 30)
	collect(err)
	cfg.RetryInterval, err = getEnvDuration("DB_RETRY_INTERVAL", 2*time.Second)
	collect(err)
	cfg.RunMigrations, err = getEnvBool("RUN_MIGRATIONS", true)
	collect(err)
	cfg.Logging.Development, err = getEnvBool("LOG_DEV", false)
	collect(err)
	cfg.DashboardMonths, err = getEnvInt("DASHBOARD_MONTHS", analytics.DefaultMonths)
	collect(err)
	cfg.RecurringEnabled, err = getEnvBool("RECURRING_ENABLED", true)
	collect(err)
	cfg.RecurringInterval, err = getEnvDuration("RECURRING_INTERVAL", time.Hour)
	collect(err)

	maxRequests, err := getEnvInt("BREAKER_MAX_REQUESTS", 1)
	collect(err)
	cfg.Breaker.Interval, err = getEnvDuration("BREAKER_INTERVAL", 60*time.Second)
	collect(err)
	cfg.Breaker.Timeout, err = getEnvDuration("BREAKER_TIMEOUT", 30*time.Second)
	collect(err)
	threshold, err := getEnvInt("BREAKER_FAILURE_THRESHOLD", 5)
	collect(err)
	if maxRequests > 0 {
		cfg.Breaker.MaxRequests = uint32(maxRequests)
	}
	if threshold > 0 {
		cfg.Breaker.FailureThreshold = uint32(threshold)
	}

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %q", c.Port))
	}
	if c.ConnectRetries < 1 {
		errs = append(errs, errors.New("DB_CONNECT_RETRIES must be positive"))
	}
	if c.DashboardMonths < 1 || c.DashboardMonths > maxMonths {
		errs = append(errs, fmt.Errorf("DASHBOARD_MONTHS must be between 1 and %d", maxMonths))
	}
	if c.RecurringEnabled && c.RecurringInterval <= 0 {
		errs = append(errs, errors.New("RECURRING_INTERVAL must be positive"))
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format))
	}
	if c.Breaker.MaxRequests == 0 {
		errs = append(errs, errors.New("BREAKER_MAX_REQUESTS must be positive"))
	}
	if c.Breaker.FailureThreshold == 0 {
		errs = append(errs, errors.New("BREAKER_FAILURE_THRESHOLD must be positive"))
	}

	return errors.Join(errs...)
}

// connString returns DATABASE_URL or a URL assembled from the DB_* settings
func (c Config) connString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s must be a boolean, got %q", key, value)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s must be a duration, got %q", key, value)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
