package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends for persisted preferences (watchlist, theme)
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Screener backend API
	ScreenerAPI ScreenerAPIConfig

	// Preference storage
	Storage StorageConfig

	// Database (only when Storage.Backend == postgres)
	Database DatabaseConfig

	// Redis (only when Storage.Backend == redis)
	Redis RedisConfig

	// Filter presets YAML file (optional)
	PresetsFile string

	// Cron expression for background refresh, empty disables it
	RefreshSchedule string

	// Logging
	LogLevel  string
	LogFormat string
}

// ScreenerAPIConfig holds the backend REST API settings
type ScreenerAPIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 = unlimited
}

// StorageConfig selects where the watchlist and theme flag are persisted
type StorageConfig struct {
	Backend   string
	StateFile string
	KeyPrefix string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		ScreenerAPI: ScreenerAPIConfig{
			BaseURL:   strings.TrimRight(getEnv("SCREENER_API_URL", "http://localhost:5000/api"), "/"),
			Timeout:   getEnvAsDuration("API_TIMEOUT", "30s"),
			RateLimit: getEnvAsFloat("API_RATE_LIMIT", 0),
		},

		Storage: StorageConfig{
			Backend:   strings.ToLower(getEnv("STORAGE_BACKEND", StorageFile)),
			StateFile: getEnv("STATE_FILE", filepath.Join(".screener", "state.json")),
			KeyPrefix: getEnv("STORAGE_KEY_PREFIX", "screener"),
		},

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 5),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},

		PresetsFile:     getEnv("PRESETS_FILE", ""),
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", ""),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.ScreenerAPI.BaseURL == "" {
		return fmt.Errorf("SCREENER_API_URL is required")
	}

	switch c.Storage.Backend {
	case StorageFile:
		if c.Storage.StateFile == "" {
			return fmt.Errorf("STATE_FILE is required for file storage")
		}
	case StoragePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for postgres storage")
		}
	case StorageRedis:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: file, postgres, redis")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
