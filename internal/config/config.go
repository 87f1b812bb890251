package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// Auth Configuration
	Auth AuthConfig `json:"auth"`

	// Rate limiting for message sending
	RateLimit RateLimitConfig `json:"rate_limit"`

	// Notification Configuration
	Notification NotificationConfig `json:"notification"`

	Pagination PaginationConfig `json:"pagination"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver       string `json:"driver"` // mysql, sqlite
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	SQLitePath   string `json:"sqlite_path"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type AuthConfig struct {
	JWTSecret   string `json:"-"`
	TokenTTLHrs int    `json:"token_ttl_hours"`
}

type RateLimitConfig struct {
	PerMinute int  `json:"per_minute"`
	Burst     int  `json:"burst"`
	Enabled   bool `json:"enabled"`
}

// NotificationConfig contains notification system configuration
type NotificationConfig struct {
	PreviewLength int `json:"preview_length"` // characters of message content copied into the notification
}

type PaginationConfig struct {
	PageSize    int `json:"page_size"`
	MaxPageSize int `json:"max_page_size"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, text
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("HTTP_HOST", "0.0.0.0"),
			Port:         getEnv("HTTP_PORT", "8080"),
			ReadTimeout:  getEnvAsInt("HTTP_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("HTTP_WRITE_TIMEOUT", 15),
			Environment:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:       strings.ToLower(getEnv("DB_DRIVER", "mysql")),
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "messaging"),
			Password:     getEnv("MYSQL_PASSWORD", "messaging123"),
			DatabaseName: getEnv("MYSQL_DATABASE", "messaging"),
			SQLitePath:   getEnv("SQLITE_PATH", "messaging.db"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", "change-me"),
			TokenTTLHrs: getEnvAsInt("JWT_TTL_HOURS", 24),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 5),
			Burst:     getEnvAsInt("RATE_LIMIT_BURST", 5),
			Enabled:   getEnvAsBool("RATE_LIMIT_ENABLED", true),
		},
		Notification: NotificationConfig{
			PreviewLength: getEnvAsInt("NOTIF_PREVIEW_LENGTH", 50),
		},
		Pagination: PaginationConfig{
			PageSize:    getEnvAsInt("PAGE_SIZE", 20),
			MaxPageSize: getEnvAsInt("MAX_PAGE_SIZE", 100),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			OutputPath: getEnv("LOG_OUTPUT", "stdout"),
		},
	}
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) IsDevelopment() bool {
	return cfg.Server.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
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

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
