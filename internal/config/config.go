package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

type Config struct {
	AppPort         string
	Env             string
	DatabaseURL     string
	JWTSecret       string
	TokenExpiry     time.Duration
	ResetCodeExpiry time.Duration
	SendGridAPIKey  string
	FromEmail       string
	FromName        string
	AllowedOrigin   string
}

// Load reads the environment (plus an optional .env file in local
// development) and fails fast on anything required.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("no .env file found, using environment")
	}

	cfg := &Config{
		AppPort:         getEnv("APP_PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		DatabaseURL:     mustGetEnv("DATABASE_URL"),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		TokenExpiry:     getDuration("TOKEN_EXPIRY", 24*time.Hour),
		ResetCodeExpiry: getDuration("RESET_CODE_EXPIRY", 15*time.Minute),
		SendGridAPIKey:  mustGetEnv("SENDGRID_API_KEY"),
		FromEmail:       mustGetEnv("SENDGRID_FROM_EMAIL"),
		FromName:        getEnv("SENDGRID_FROM_NAME", "Inmuebles"),
		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", "*"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustGetEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("missing required environment variable %s", key)
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.Logger.Fatalf("invalid duration in %s: %v", key, err)
	}
	return d
}
