package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	Env             string
	Provider        string
	ProviderAPIKey  string
	ProviderModel   string
	MaxUploadBytes  int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		Env:             env,
		Provider:        normalizeProvider(getEnv("RECOMMENDER_PROVIDER", defaultProviderFor(env))),
		ProviderAPIKey:  getEnv("RECOMMENDER_API_KEY", ""),
		ProviderModel:   getEnv("RECOMMENDER_MODEL", ""),
		MaxUploadBytes:  5 << 20,
	}
}

// Validate rejects configurations that must not accept traffic. The provider
// credential is checked here so a bad deployment fails at startup instead of
// failing every submission.
func (c Config) Validate() error {
	if c.Env == "production" {
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required in production")
		}
		if c.Provider == "stub" {
			return fmt.Errorf("RECOMMENDER_PROVIDER must name a real provider in production")
		}
	}
	if c.Provider != "stub" && strings.TrimSpace(c.ProviderAPIKey) == "" {
		return fmt.Errorf("RECOMMENDER_API_KEY is required for provider %q", c.Provider)
	}
	return nil
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	case "gemini":
		return "gemini"
	default:
		return "stub"
	}
}

func defaultProviderFor(env string) string {
	if env == "production" || env == "staging" {
		return "openai"
	}
	return "stub"
}
