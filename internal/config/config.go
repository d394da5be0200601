package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port                string // HTTP listen port
	DBUser              string // Document store user
	DBPass              string // Document store password
	DBHost              string // Document store cluster host
	DBName              string // Database name
	StripeSecret        string // Payment provider secret key
	SiteDomain          string // Base URL for checkout redirects
	FirebaseCredentials string // Path to identity provider service account file
}

// Load reads configuration from environment variables. A .env file is
// loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                os.Getenv("PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPass:              os.Getenv("DB_PASS"),
		DBHost:              os.Getenv("DB_HOST"),
		DBName:              os.Getenv("DB_NAME"),
		StripeSecret:        os.Getenv("STRIPE_SECRET"),
		SiteDomain:          os.Getenv("SITE_DOMAIN"),
		FirebaseCredentials: os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"),
	}

	if cfg.Port == "" {
		cfg.Port = "3333"
	}
	if cfg.DBName == "" {
		cfg.DBName = "zapshiftDB"
	}

	return cfg
}
