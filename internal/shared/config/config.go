package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	Env         string

	// Auto-reply scheduler
	AutoReplyCron    string
	AutoReplyEnabled bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          os.Getenv("PORT"),
		Env:           os.Getenv("ENV"),
		AutoReplyCron: os.Getenv("AUTO_REPLY_CRON"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.AutoReplyCron == "" {
		cfg.AutoReplyCron = "@every 5m"
	}

	cfg.AutoReplyEnabled = true
	if v := os.Getenv("AUTO_REPLY_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("⚠️ Invalid AUTO_REPLY_ENABLED=%q, defaulting to true", v)
			enabled = true
		}
		cfg.AutoReplyEnabled = enabled
	}

	return cfg
}
