package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the bot
type Config struct {
	Telegram TelegramConfig
	Database DatabaseConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	Bot      BotConfig
	Logging  LoggingConfig
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MigrationsDir string
}

// KafkaConfig holds Kafka configuration for the analytics event stream.
// An empty broker list disables publishing.
type KafkaConfig struct {
	Brokers []string
}

// RedisConfig holds Redis configuration for the admin session store.
// An empty address falls back to the in-memory store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// BotConfig holds application-level bot settings
type BotConfig struct {
	AdminIDs         []int64
	StorageChannelID int64
	CodeLength       int
	PageSize         int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config   *Config
	Telegram *TelegramConfig
	Database *DatabaseConfig
	Kafka    *KafkaConfig
	Redis    *RedisConfig
	Bot      *BotConfig
	Logging  *LoggingConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:   cfg,
		Telegram: &cfg.Telegram,
		Database: &cfg.Database,
		Kafka:    &cfg.Kafka,
		Redis:    &cfg.Redis,
		Bot:      &cfg.Bot,
		Logging:  &cfg.Logging,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken: getEnv("BOT_TOKEN", ""),
		},
		Database: DatabaseConfig{
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "5432"),
			User:          getEnv("DB_USER", "postgres"),
			Password:      getEnv("DB_PASSWORD", "postgres"),
			DBName:        getEnv("DB_NAME", "kinamax"),
			SSLMode:       getEnv("DB_SSLMODE", "disable"),
			MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		},
		Kafka: KafkaConfig{
			Brokers: splitNonEmpty(getEnv("KAFKA_BROKERS", "")),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Bot: BotConfig{
			AdminIDs:         parseAdminIDs(getEnv("ADMIN_IDS", "")),
			StorageChannelID: int64(getEnvInt("MOVIE_CHANNEL_ID", 0)),
			CodeLength:       getEnvInt("CODE_LENGTH", 4),
			PageSize:         getEnvInt("MOVIES_PER_PAGE", 10),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}

	if len(c.Bot.AdminIDs) == 0 {
		return fmt.Errorf("ADMIN_IDS is required")
	}

	if c.Bot.CodeLength < 1 || c.Bot.CodeLength > 8 {
		return fmt.Errorf("CODE_LENGTH must be between 1 and 8")
	}

	return nil
}

// GetDSN builds the PostgreSQL connection string
func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func parseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range splitNonEmpty(raw) {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func splitNonEmpty(raw string) []string {
	var parts []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// getEnv gets environment variable with default value
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
