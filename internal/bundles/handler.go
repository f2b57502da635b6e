package bundles

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/profile"
	"careerpath-backend/internal/recommend"
	"careerpath-backend/internal/shared/server/middleware"
	"careerpath-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the bundles service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches bundle routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bundles", h.list)
	rg.GET("/bundles/:id", h.get)
}

type bundleResponse struct {
	BundleID  string               `json:"bundleId"`
	UserID    int64                `json:"userId,omitempty"`
	Profile   profile.Profile      `json:"profile"`
	Careers   recommend.CareerSet  `json:"careers"`
	Colleges  recommend.CollegeSet `json:"colleges"`
	Roadmap   recommend.Roadmap    `json:"roadmap"`
	CreatedAt time.Time            `json:"createdAt"`
}

func toResponse(b Bundle) bundleResponse {
	return bundleResponse{
		BundleID:  b.ID,
		UserID:    b.UserID,
		Profile:   b.Profile,
		Careers:   b.Careers,
		Colleges:  b.Colleges,
		Roadmap:   b.Roadmap,
		CreatedAt: b.CreatedAt,
	}
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	// Non-positive or unparseable limits fall back to the default page
	// size, matching what the repos do for limit <= 0.
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list bundles", nil)
		return
	}

	out := make([]bundleResponse, 0, len(items))
	for _, b := range items {
		out = append(out, toResponse(b))
	}
	respond.JSON(c, http.StatusOK, gin.H{"bundles": out})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	b, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "bundle not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch bundle", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(b))
}
