package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"careerpath-backend/internal/bundles"
	"careerpath-backend/internal/shared/config"
)

func devConfig() config.Config {
	return config.Config{
		Port:            "8080",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
		Provider:        "stub",
	}
}

func TestBuildDevUsesMemoryRepos(t *testing.T) {
	app, err := Build(devConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil {
		t.Fatalf("expected no database without DATABASE_URL")
	}
	if _, ok := app.BundlesRepo.(*bundles.MemoryRepo); !ok {
		t.Fatalf("expected in-memory bundles repo, got %T", app.BundlesRepo)
	}
	if app.Router == nil {
		t.Fatalf("expected router")
	}
}

func TestBuildRejectsProductionWithoutDatabase(t *testing.T) {
	cfg := devConfig()
	cfg.Env = "production"
	cfg.Provider = "openai"
	cfg.ProviderAPIKey = "sk-test"
	if _, err := Build(cfg); err == nil {
		t.Fatalf("expected error for production without DATABASE_URL")
	}
}

func TestBuildRejectsProviderWithoutKey(t *testing.T) {
	cfg := devConfig()
	cfg.Provider = "openai"
	if _, err := Build(cfg); err == nil {
		t.Fatalf("expected error for openai provider without api key")
	}
}

func TestSubmitFlowEndToEnd(t *testing.T) {
	app, err := Build(devConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	form := url.Values{
		"name":      {"Bo"},
		"interests": {"robotics"},
		"save":      {"on"},
	}
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Recommendations for Bo") {
		t.Fatalf("expected rendered results, got %s", resp.Body.String())
	}

	repo, ok := app.BundlesRepo.(*bundles.MemoryRepo)
	if !ok {
		t.Fatalf("expected memory repo, got %T", app.BundlesRepo)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected exactly one saved bundle, got %d", repo.Len())
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/bundles", nil)
	listResp := httptest.NewRecorder()
	app.Router.ServeHTTP(listResp, listReq)
	if listResp.Code != http.StatusOK {
		t.Fatalf("expected 200 from bundle list, got %d", listResp.Code)
	}
	var listBody struct {
		Bundles []struct {
			BundleID string `json:"bundleId"`
		} `json:"bundles"`
	}
	if err := json.Unmarshal(listResp.Body.Bytes(), &listBody); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listBody.Bundles) != 1 || listBody.Bundles[0].BundleID == "" {
		t.Fatalf("expected the saved bundle in the list, got %+v", listBody.Bundles)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, err := Build(devConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
