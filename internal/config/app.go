package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type AppConfig struct {
	Name         string
	Env          string
	Port         string
	SessionTTL   time.Duration
	PDFExtractor string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = loadAppConfigFromEnv()
	})
	return appConfig
}

func loadAppConfigFromEnv() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
		log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
	}
	name := os.Getenv("APP_NAME")
	if name == "" {
		name = "Interview Preparation AI"
	}
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = ":8080"
	}
	ttl := 2 * time.Hour
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Warning: invalid SESSION_TTL %q, defaulting to %s", raw, ttl)
		} else {
			ttl = parsed
		}
	}
	extractor := os.Getenv("PDF_EXTRACTOR")
	if extractor == "" {
		extractor = "fitz"
	}
	return &AppConfig{
		Name:         name,
		Env:          env,
		Port:         port,
		SessionTTL:   ttl,
		PDFExtractor: extractor,
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
