package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "CORS_ALLOW_ORIGINS", "DATABASE_URL", "ENV",
		"RECOMMENDER_PROVIDER", "RECOMMENDER_API_KEY", "RECOMMENDER_MODEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
	if cfg.Provider != "stub" {
		t.Fatalf("expected stub provider in dev, got %q", cfg.Provider)
	}
	if len(cfg.CORSAllowOrigin) != 1 {
		t.Fatalf("expected one default origin, got %v", cfg.CORSAllowOrigin)
	}
	if cfg.MaxUploadBytes != 5<<20 {
		t.Fatalf("unexpected upload limit: %d", cfg.MaxUploadBytes)
	}
}

func TestLoadNormalizesProviderAndEnv(t *testing.T) {
	t.Setenv("ENV", "PROD")
	t.Setenv("RECOMMENDER_PROVIDER", "GeMiNi")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("RECOMMENDER_API_KEY", "key")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini, got %q", cfg.Provider)
	}
}

func TestProductionDefaultsToRealProvider(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("RECOMMENDER_PROVIDER", "")

	cfg := Load()
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai default in production, got %q", cfg.Provider)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "dev stub is fine",
			cfg:  Config{Env: "dev", Provider: "stub"},
		},
		{
			name:    "production requires database",
			cfg:     Config{Env: "production", Provider: "openai", ProviderAPIKey: "k"},
			wantErr: "DATABASE_URL",
		},
		{
			name:    "production rejects stub",
			cfg:     Config{Env: "production", Provider: "stub", DatabaseURL: "postgres://x"},
			wantErr: "RECOMMENDER_PROVIDER",
		},
		{
			name:    "real provider requires key",
			cfg:     Config{Env: "dev", Provider: "openai"},
			wantErr: "RECOMMENDER_API_KEY",
		},
		{
			name: "real provider with key",
			cfg:  Config{Env: "dev", Provider: "openai", ProviderAPIKey: "k"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantErr, err)
			}
		})
	}
}
