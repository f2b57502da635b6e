package bundles

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/shared/server/middleware"
	"careerpath-backend/internal/shared/server/respond"
)

func newBundleRouter(t *testing.T, repo Repo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Identity())
	h := NewHandler(NewService(repo))
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestGetBundleByID(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	saved, err := svc.Save(context.Background(), testProfile, testCareers, testColleges, testRoadmap, 42)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	r := newBundleRouter(t, repo)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bundles/"+saved.ID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body bundleResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.BundleID != saved.ID || body.UserID != 42 {
		t.Fatalf("unexpected response: %+v", body)
	}
	if body.Profile.Name != "Bo" || len(body.Careers) != 1 {
		t.Fatalf("unexpected bundle contents: %+v", body)
	}
}

func TestGetBundleNotFound(t *testing.T) {
	r := newBundleRouter(t, NewMemoryRepo())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bundles/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var body respond.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "not_found" {
		t.Fatalf("expected not_found code, got %q", body.Error.Code)
	}
}

func TestListBundlesLimitHandling(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	for i := 0; i < 3; i++ {
		if _, err := svc.Save(context.Background(), testProfile, testCareers, testColleges, testRoadmap, 0); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	r := newBundleRouter(t, repo)
	list := func(query string) []bundleResponse {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bundles"+query, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %q, got %d", query, resp.Code)
		}
		var body struct {
			Bundles []bundleResponse `json:"bundles"`
		}
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return body.Bundles
	}

	if got := list("?limit=1"); len(got) != 1 {
		t.Fatalf("expected 1 bundle for limit=1, got %d", len(got))
	}
	// Non-positive limits mean the default page size, not an empty page.
	if got := list("?limit=0"); len(got) != 3 {
		t.Fatalf("expected default page for limit=0, got %d", len(got))
	}
	if got := list("?limit=-5"); len(got) != 3 {
		t.Fatalf("expected default page for negative limit, got %d", len(got))
	}
	if got := list("?limit=banana"); len(got) != 3 {
		t.Fatalf("expected default page for unparseable limit, got %d", len(got))
	}
}

func TestListBundlesScopedToCaller(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	if _, err := svc.Save(context.Background(), testProfile, testCareers, testColleges, testRoadmap, 1); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := svc.Save(context.Background(), testProfile, testCareers, testColleges, testRoadmap, 2); err != nil {
		t.Fatalf("Save: %v", err)
	}

	r := newBundleRouter(t, repo)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bundles", nil)
	req.Header.Set("X-User-Id", "1")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Bundles []bundleResponse `json:"bundles"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Bundles) != 1 || body.Bundles[0].UserID != 1 {
		t.Fatalf("expected only caller's bundles, got %+v", body.Bundles)
	}
}
