package bundles

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"careerpath-backend/internal/profile"
	"careerpath-backend/internal/recommend"
	"careerpath-backend/internal/shared/metrics"
)

// Service contains business logic for recommendation bundles.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Save persists the profile with all three recommendation outputs as one
// logical unit. It refuses to write anything when a piece is missing, which
// keeps the never-partially-persisted invariant even against caller bugs.
func (s *Service) Save(ctx context.Context, p profile.Profile, careers recommend.CareerSet, colleges recommend.CollegeSet, roadmap recommend.Roadmap, userID int64) (Bundle, error) {
	if p.Name == "" || len(careers) == 0 || len(colleges) == 0 || len(roadmap) == 0 {
		return Bundle{}, ErrIncomplete
	}

	b := Bundle{
		ID:        uuid.NewString(),
		UserID:    userID,
		Profile:   p,
		Careers:   careers,
		Colleges:  colleges,
		Roadmap:   roadmap,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		metrics.IncBundleSaveFailed()
		return Bundle{}, fmt.Errorf("persist bundle: %w", err)
	}
	metrics.IncBundleSaved()
	return b, nil
}

// GetByID returns a stored bundle.
func (s *Service) GetByID(ctx context.Context, id string) (Bundle, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns stored bundles newest-first.
func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]Bundle, error) {
	return s.Repo.List(ctx, userID, limit, offset)
}
