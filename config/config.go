package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	Timezone  string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
	LogLevel  string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	ttlHours, err := strconv.Atoi(get("TOKEN_TTL_HOURS", "168")) // 7 days
	if err != nil || ttlHours <= 0 {
		ttlHours = 168
	}
	cfg := AppConfig{
		Port:      get("PORT", "8080"),
		Timezone:  get("TZ", "UTC"),
		DBPath:    get("DB_PATH", "kubeterra.db"),
		JWTSecret: get("JWT_SECRET", ""),
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
		LogLevel:  get("LOG_LEVEL", "info"),
	}
	if cfg.JWTSecret == "" {
		log.Fatal("[cfg] JWT_SECRET is required")
	}
	return cfg
}
