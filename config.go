package main

import (
	"fmt"
	"os"
	"time"

	"vitrine/database"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	Port      string
	Postgres  database.PostgresConfig
	RedisURL  string
	CartTTL   time.Duration
	JWTSecret string

	// Requests per minute, per client IP, per zone.
	VitrineRateLimit int
	AdminRateLimit   int
	APIRateLimit     int
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Env:  env,
		Port: getEnv("PORT", "8080"),
		Postgres: database.PostgresConfig{
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
			TimeZone: getEnv("POSTGRES_TIMEZONE", "Africa/Tunis"),
		},
		RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379"),
		CartTTL:   time.Hour * 24 * 30,
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	// Production limits mirror the storefront/admin/API split; development
	// limits are loose enough to never get in the way.
	if env == "production" {
		cfg.VitrineRateLimit = 200
		cfg.AdminRateLimit = 50
		cfg.APIRateLimit = 100
	} else {
		cfg.VitrineRateLimit = 1000
		cfg.AdminRateLimit = 200
		cfg.APIRateLimit = 500
	}

	if cfg.Postgres.User == "" || cfg.Postgres.Password == "" || cfg.Postgres.DBName == "" || cfg.Postgres.Host == "" {
		return nil, fmt.Errorf("database config incomplete")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
