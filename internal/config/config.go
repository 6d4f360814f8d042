package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	Environment string
	UploadsDir  string

	// DisplayTimeZone is used when formatting booking times for the
	// cancellation page. Falls back to the host zone when CANCEL_DISPLAY_TZ
	// is absent or unparseable.
	DisplayTimeZone *time.Location
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("loaded configuration from .env file")
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Port:        os.Getenv("PORT"),
		Environment: os.Getenv("ENV"),
		UploadsDir:  os.Getenv("UPLOADS_DIR"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = "./uploads"
	}

	cfg.DisplayTimeZone = time.Local
	if tz := os.Getenv("CANCEL_DISPLAY_TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Printf("invalid CANCEL_DISPLAY_TZ %q, using host zone", tz)
		} else {
			cfg.DisplayTimeZone = loc
		}
	}

	return cfg, nil
}
