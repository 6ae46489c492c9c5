package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
	Port          string
	LogLevel      slog.Level
	LogFormat     string
	LogFile       string
	DBPath        string
	BackendURL    string
}

// Load reads configuration from environment variables and returns a Config struct.
// If a .env file exists in the current directory or a parent directory, it is loaded first.
// Environment variables already set take precedence over .env file values.
//
// GEMINI_API_KEY is deliberately not validated here: the relay checks it on every request.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiBaseURL: strings.TrimRight(getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"), "/"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		Port:          getEnv("PORT", "3001"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogFile:       getEnv("LOG_FILE", ""),
		DBPath:        getEnv("DB_PATH", ""),
		BackendURL:    backendURL(),
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("PORT must be a valid integer: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535")
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	cfg.LogLevel = parseLogLevel(getEnv("LOG_LEVEL", "info"))

	// The call ledger is optional; only prepare its directory when enabled.
	if cfg.DBPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// BackendURL returns the relay base URL for clients. It reads the .env files and
// SHARK_BACKEND_URL only, so it has none of Load's validation or side effects.
func BackendURL() string {
	loadDotEnv()
	return backendURL()
}

func backendURL() string {
	return strings.TrimRight(getEnv("SHARK_BACKEND_URL", "http://localhost:3001/api"), "/")
}

// loadDotEnv loads .env from the current directory, then the nearest one in a parent directory.
// Environment variables already set take precedence.
func loadDotEnv() {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// HasAPIKey reports whether the upstream credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
