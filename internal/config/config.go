package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"edusport/pkg/logger"
)

// Config is everything the server reads from the environment.
type Config struct {
	Port       string
	Env        string
	SessionTTL time.Duration
	Log        logger.Config

	// Optional admin bootstrap; when all three are set, an admin account
	// is created at startup so a fresh instance is reachable.
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := Config{
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		SessionTTL: 24 * time.Hour,
		Log: logger.Config{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
	}

	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			cfg.SessionTTL = time.Duration(hours) * time.Hour
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
