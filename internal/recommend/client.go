package recommend

import (
	"context"

	"careerpath-backend/internal/profile"
)

// Client abstracts the remote recommendation provider. Calls are strictly
// ordered: college and roadmap generation both require a prior successful
// career result for the same profile.
type Client interface {
	GenerateCareers(ctx context.Context, p profile.Profile) (CareerSet, error)
	GenerateColleges(ctx context.Context, p profile.Profile, careers CareerSet) (CollegeSet, error)
	GenerateRoadmap(ctx context.Context, p profile.Profile, careers CareerSet) (Roadmap, error)
}
