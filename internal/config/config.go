package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Loans    LoanConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds access-token configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// LoanConfig holds loan-service behavior settings
type LoanConfig struct {
	// EmptyListNotFound reports an empty loan list as 404 instead of
	// an empty 200. Existing clients depend on it; default on.
	EmptyListNotFound bool
	// Timezone names the location used for created_at/updated_at and
	// the maturity sweep.
	Timezone string
	// SweepCron is the maturity sweep schedule; empty disables it.
	SweepCron string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Loans:    loadLoanConfig(),
	}

	// Set global config
	AppConfig = config

	log.Printf("Configuration loaded [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "peerloan"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "15"))

	return JWTConfig{
		Secret:          getEnv(prefix+"JWT_SECRET", "default_secret"),
		AccessTokenMins: accessMins,
	}
}

// loadLoanConfig loads loan-service behavior settings
func loadLoanConfig() LoanConfig {
	emptyNotFound, err := strconv.ParseBool(getEnv("LOAN_EMPTY_LIST_NOT_FOUND", "true"))
	if err != nil {
		emptyNotFound = true
	}

	return LoanConfig{
		EmptyListNotFound: emptyNotFound,
		Timezone:          getEnv("LOAN_TIMEZONE", "America/New_York"),
		SweepCron:         getEnv("LOAN_SWEEP_CRON", "30 2 * * *"),
	}
}

// Location resolves the configured loan timezone, falling back to UTC
// on an unknown name.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Loans.Timezone)
	if err != nil {
		log.Printf("Warning: unknown LOAN_TIMEZONE %q, using UTC", c.Loans.Timezone)
		return time.UTC
	}
	return loc
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" && c.IsDev() {
		return "*"
	}
	return origins
}
