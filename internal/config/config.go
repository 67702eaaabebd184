package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"freqdeck/internal/domain"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	Database    DatabaseConfig
	Table       TableConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// TableConfig holds frequency table settings
type TableConfig struct {
	DefaultLanguage  domain.Language
	DefaultPageSize  int
	SessionTTL       time.Duration
	MaxDocumentBytes int64
	ExampleLimit     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "freqdeck"),
			User:     getEnv("DB_USER", "freqdeck"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	table, err := loadTable()
	if err != nil {
		return nil, err
	}
	cfg.Table = table

	return cfg, nil
}

func loadTable() (TableConfig, error) {
	var table TableConfig

	lang, err := domain.ParseLanguage(getEnv("DEFAULT_LANGUAGE", string(domain.LanguageEnglish)))
	if err != nil {
		return table, fmt.Errorf("DEFAULT_LANGUAGE: %w", err)
	}
	table.DefaultLanguage = lang

	table.DefaultPageSize, err = strconv.Atoi(getEnv("DEFAULT_PAGE_SIZE", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil || !domain.IsValidPageSize(table.DefaultPageSize) {
		return table, fmt.Errorf("DEFAULT_PAGE_SIZE must be one of %v", domain.PageSizes)
	}

	table.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "6h"))
	if err != nil || table.SessionTTL <= 0 {
		return table, fmt.Errorf("SESSION_TTL must be a positive duration")
	}

	table.MaxDocumentBytes, err = strconv.ParseInt(getEnv("MAX_DOCUMENT_BYTES", "10485760"), 10, 64)
	if err != nil || table.MaxDocumentBytes <= 0 {
		return table, fmt.Errorf("MAX_DOCUMENT_BYTES must be a positive number")
	}

	table.ExampleLimit, err = strconv.Atoi(getEnv("EXAMPLE_LIMIT", "5"))
	if err != nil || table.ExampleLimit <= 0 {
		return table, fmt.Errorf("EXAMPLE_LIMIT must be a positive number")
	}

	return table, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
