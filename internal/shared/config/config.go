package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	DatabasePath  string
	WebhookURL    string
	DefaultPlan   string
	DefaultLocale string
	StatsCronSpec string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		Env:           os.Getenv("ENV"),
		DatabasePath:  os.Getenv("DATABASE_PATH"),
		WebhookURL:    os.Getenv("WEBHOOK_URL"),
		DefaultPlan:   os.Getenv("DEFAULT_PLAN"),
		DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
		StatsCronSpec: os.Getenv("STATS_REFRESH_CRON"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "agent-hub.db"
	}
	if cfg.DefaultPlan == "" {
		cfg.DefaultPlan = "business"
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "es"
	}
	if cfg.StatsCronSpec == "" {
		cfg.StatsCronSpec = "@every 5m"
	}

	return cfg
}
