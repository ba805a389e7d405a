package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Photo blob sink configuration
	PhotoDriver       string // fs or s3
	PhotoDir          string
	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PathStyle       bool

	// Auth configuration
	BcryptCost        int
	SessionTTLMinutes int
}

// MinBcryptCost is the floor for the password hash cost factor.
const MinBcryptCost = 8

// Load loads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be fully populated already.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DBType:            getEnv("DB_TYPE", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		PhotoDriver:       getEnv("PHOTO_DRIVER", "fs"),
		PhotoDir:          getEnv("PHOTO_DIR", "./data/photos"),
		S3Bucket:          getEnv("PHOTO_S3_BUCKET", ""),
		S3Region:          getEnv("PHOTO_S3_REGION", ""),
		S3Endpoint:        getEnv("PHOTO_S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("PHOTO_S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("PHOTO_S3_SECRET_ACCESS_KEY", ""),
		S3PathStyle:       getEnv("PHOTO_S3_PATH_STYLE", "false") == "true",
		BcryptCost:        getEnvAsInt("BCRYPT_COST", 10),
		SessionTTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	switch cfg.DBType {
	case "sqlite", "sqlite-memory":
		// file path or in-memory, no credentials
	default:
		if cfg.DBUser == "" {
			return nil, fmt.Errorf("DB_USER is required for DB_TYPE %s", cfg.DBType)
		}
	}
	switch cfg.PhotoDriver {
	case "fs":
		if cfg.PhotoDir == "" {
			return nil, fmt.Errorf("PHOTO_DIR is required for the fs photo driver")
		}
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("PHOTO_S3_BUCKET is required for the s3 photo driver")
		}
	default:
		return nil, fmt.Errorf("unsupported photo driver: %s", cfg.PhotoDriver)
	}
	if cfg.BcryptCost < MinBcryptCost {
		return nil, fmt.Errorf("BCRYPT_COST must be at least %d", MinBcryptCost)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
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
