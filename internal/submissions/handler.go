package submissions

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerpath-backend/internal/profile"
	"careerpath-backend/internal/recommend"
	"careerpath-backend/internal/shared/server/middleware"
)

// formKeys are the form fields the profile builder recognizes.
var formKeys = []string{
	"name", "email", "grade", "gpa",
	"subjects", "interests", "skills",
	"education", "experience",
}

// Handler wires the HTML entry and submission flows to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the page routes.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.index)
	r.POST("/submit", h.submit)
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Business failures re-render the entry form with an inline error and a 200
// status; the user never sees a failure page or a stack trace.
func (h *Handler) submit(c *gin.Context) {
	fields := make(map[string]string, len(formKeys))
	for _, key := range formKeys {
		if val, ok := c.GetPostForm(key); ok {
			fields[key] = val
		}
	}
	save := isTruthy(c.PostForm("save"))
	userID := middleware.UserIDFromContext(c)

	result, err := h.Svc.Process(c.Request.Context(), fields, save, userID)
	if err != nil {
		c.Set("submissionStage", "failed")
		c.HTML(http.StatusOK, "index.html", gin.H{"Error": userMessage(err)})
		return
	}

	view := gin.H{
		"Profile":  result.Profile,
		"Careers":  result.Careers,
		"Colleges": result.Colleges,
		"Roadmap":  result.Roadmap,
	}
	if result.SaveErr != nil {
		view["SaveError"] = "we could not store your results right now"
	}
	if result.Bundle != nil {
		view["BundleID"] = result.Bundle.ID
		c.Set("bundleId", result.Bundle.ID)
	}
	c.Set("submissionStage", "rendered")
	c.HTML(http.StatusOK, "results.html", view)
}

// userMessage converts internal error kinds into the inline form message.
func userMessage(err error) string {
	var validationErr *profile.ValidationError
	if errors.As(err, &validationErr) {
		return "Please check your input: " + validationErr.Error()
	}

	var providerErr *recommend.ProviderError
	if errors.As(err, &providerErr) {
		switch providerErr.Kind {
		case recommend.KindAuth:
			return "Error processing request: the recommendation service rejected our credentials."
		case recommend.KindRateLimited:
			return "Error processing request: the recommendation service is over capacity. Please try again later."
		case recommend.KindNetwork:
			return "Error processing request: the recommendation service is unreachable. Please try again."
		default:
			return "Error processing request: the recommendation service returned an unexpected answer."
		}
	}

	return "Error processing request: something went wrong. Please try again."
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
