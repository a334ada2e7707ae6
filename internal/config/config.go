package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// DefaultAdminPassword is the fallback admin password used when
// ADMIN_PASSWORD is not set. It exists so local development works out of
// the box; production deployments must override it.
const DefaultAdminPassword = "change_me"

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port string
	Env  string

	// DatabaseURL is the PostgreSQL connection string (required).
	DatabaseURL string

	// AdminPassword is the shared secret for the admin login.
	AdminPassword string

	// FrontendURL is the single origin allowed by CORS. "*" allows any
	// origin but without credentials.
	FrontendURL string

	// UploadDir is the directory product images are written to and served
	// from via the static mount.
	UploadDir string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		FrontendURL:   getEnv("FRONTEND_URL", "*"),
		UploadDir:     getEnv("UPLOAD_DIR", "content/uploads"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("database configuration incomplete: ensure DATABASE_URL is set")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
