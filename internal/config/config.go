package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port string

	PostgresDSN string
	RedisAddr   string

	JWTSecret string

	// Provider selects the generation adapter; the adapter reads its own
	// credentials from the environment (gemini.NewConfig).
	Provider string

	JobSearchAPIKey string
	NewsAPIKey      string

	PaymentKeySecret string

	// MonthlyResumeCredits is the allowance restored on the pull-based
	// monthly renewal.
	MonthlyResumeCredits int

	NotificationRetentionDays int
	CleanupSchedule           string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                      getEnv("PORT", "8080"),
		PostgresDSN:               buildPostgresDSN(),
		RedisAddr:                 getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:                 getEnv("JWT_SECRET", "dev"),
		Provider:                  getEnv("AI_PROVIDER", "gemini"),
		JobSearchAPIKey:           os.Getenv("SERP_API_KEY"),
		NewsAPIKey:                os.Getenv("NEWS_API_KEY"),
		PaymentKeySecret:          os.Getenv("PAYMENT_KEY_SECRET"),
		MonthlyResumeCredits:      getEnvInt("MONTHLY_RESUME_CREDITS", 2),
		NotificationRetentionDays: getEnvInt("NOTIFICATION_RETENTION_DAYS", 90),
		CleanupSchedule:           getEnv("CLEANUP_SCHEDULE", "0 3 * * *"),
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + cfg.Provider + ". Currently supported: gemini")
	}
	return nil
}

func buildPostgresDSN() string {
	host := getEnv("POSTGRES_HOST", "localhost")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	dbname := getEnv("POSTGRES_DB", "prepify")
	port := getEnv("POSTGRES_PORT", "5432")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
