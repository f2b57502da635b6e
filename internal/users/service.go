package users

import (
	"context"
	"errors"
)

// Service resolves numeric user IDs to account records.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Load resolves an account record by ID.
func (s *Service) Load(ctx context.Context, userID int64) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if userID <= 0 {
		return User{}, errors.New("user id must be positive")
	}
	return s.Repo.GetByID(ctx, userID)
}
