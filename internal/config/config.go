package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the campus API server
type Config struct {
	// Database Configuration
	Database DatabaseConfig

	// HTTP Configuration
	HTTP HTTPConfig

	// Authentication Configuration
	Auth AuthConfig

	// Logging Configuration
	Logging LoggingConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	Addr       string // Listen address (host:port)
	CORSOrigin string // Allowed origin for the browser frontend
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads server configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	return &Config{
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", "campusd.sqlite"),
		},
		HTTP: HTTPConfig{
			Addr:       getEnv("LISTEN_ADDR", ":8080"),
			CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}, nil
}

// ShellConfig holds configuration for the campusd shell
type ShellConfig struct {
	// APIBaseURL is the campus API the shell talks to
	APIBaseURL string

	// StorageBackend selects where credentials are persisted:
	// "keyring" (default) or "file"
	StorageBackend string

	// CredentialsPath overrides the file backend's location
	CredentialsPath string

	Logging LoggingConfig
}

// LoadShell loads shell configuration from environment variables
func LoadShell() (*ShellConfig, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	return &ShellConfig{
		APIBaseURL:      getEnv("CAMPUSD_API_URL", "http://localhost:8080"),
		StorageBackend:  getEnv("CAMPUSD_STORAGE", "keyring"),
		CredentialsPath: os.Getenv("CAMPUSD_CREDENTIALS_PATH"),
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
