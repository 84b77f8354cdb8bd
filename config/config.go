package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	Timezone       string
	DBPath         string
	AuthSecret     string
	WebhookSecret  string
	EnableDevLogin bool
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
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		Timezone:       get("TZ", "UTC"),
		DBPath:         get("DB_PATH", "farmdash.db"),
		AuthSecret:     get("AUTH_SECRET", "dev-secret"),
		WebhookSecret:  get("WEBHOOK_SECRET", ""),
		EnableDevLogin: get("ENABLE_DEV_LOGIN", "false") == "true",
	}
	log.Printf("[cfg] port=%s db=%s devlogin=%v", cfg.Port, cfg.DBPath, cfg.EnableDevLogin)
	return cfg
}
