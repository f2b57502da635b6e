package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/bundles"
	"careerpath-backend/internal/shared/config"
	"careerpath-backend/internal/shared/metrics"
	"careerpath-backend/internal/shared/server/middleware"
	"careerpath-backend/internal/shared/server/respond"
	"careerpath-backend/internal/submissions"
	"careerpath-backend/internal/uploads"
	"careerpath-backend/internal/web"
)

// RouterDeps carries the handlers the router wires up. Every field is
// required; NewRouter is only called from bootstrap, which nil-checks them.
type RouterDeps struct {
	Config            config.Config
	SubmissionHandler *submissions.Handler
	UploadHandler     *uploads.Handler
	BundleHandler     *bundles.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
	)
	if deps.Config.Env == "production" || deps.Config.Env == "staging" {
		r.Use(middleware.RateLimit(rateLimits()))
	}

	// Page flows live at the root, matching the frontend's form actions.
	deps.SubmissionHandler.RegisterRoutes(r)
	deps.UploadHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	deps.BundleHandler.RegisterRoutes(api)

	return r
}

// rateLimits throttles the flows that fan out to the remote provider.
func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"SUBMIT": {Rate: 0.5, Burst: 5},
			"UPLOAD": {Rate: 1, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			switch c.FullPath() {
			case "/submit":
				return "SUBMIT"
			case "/upload_resume":
				return "UPLOAD"
			default:
				return ""
			}
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
