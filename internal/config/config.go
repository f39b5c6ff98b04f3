package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds all configuration values from environment.
type Config struct {
	AppPort    string
	DBHost     string `validate:"required"`
	DBPort     string
	DBUser     string `validate:"required"`
	DBPassword string
	DBName     string `validate:"required"`

	// SeedSampleData inserts demo skills and logs on startup when the
	// database is empty (default: false)
	SeedSampleData bool
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	seedSampleData := false
	if seedEnv := os.Getenv("SEED_SAMPLE_DATA"); seedEnv != "" {
		val, err := strconv.ParseBool(seedEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_SAMPLE_DATA value: %v", err)
		}
		seedSampleData = val
	}
	cfg := &Config{
		AppPort:        os.Getenv("APP_PORT"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		SeedSampleData: seedSampleData,
	}
	// Basic validation for required fields
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("database configuration is incomplete: %w", err)
	}
	return cfg, nil
}

// ConnectDatabase initializes a GORM database connection to PostgreSQL.
// Error translation is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return db, nil
}
