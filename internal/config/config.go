package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/itschool-lms/lms-backend-go/internal/pkg/trainingtime"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Training TrainingConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// TrainingConfig holds the scheduled training hours and the hour of day at
// which punches start counting toward the next training date.
type TrainingConfig struct {
	StandardStartTime trainingtime.TrainingTime
	StandardEndTime   trainingtime.TrainingTime
	RolloverHour      int
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "itschool-lms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Training schedule configuration
	startTime, err := trainingtime.Parse(getEnv("STANDARD_START_TIME", "9:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_START_TIME: %w", err)
	}
	endTime, err := trainingtime.Parse(getEnv("STANDARD_END_TIME", "18:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_END_TIME: %w", err)
	}
	rolloverHour, err := strconv.Atoi(getEnv("TRAINING_DATE_ROLLOVER_HOUR", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRAINING_DATE_ROLLOVER_HOUR: %w", err)
	}

	config.Training = TrainingConfig{
		StandardStartTime: startTime,
		StandardEndTime:   endTime,
		RolloverHour:      rolloverHour,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Training.RolloverHour < 0 || c.Training.RolloverHour > 23 {
		return fmt.Errorf("TRAINING_DATE_ROLLOVER_HOUR must be between 0 and 23")
	}
	if !c.Training.StandardStartTime.Before(c.Training.StandardEndTime) {
		return fmt.Errorf("STANDARD_START_TIME must be before STANDARD_END_TIME")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
