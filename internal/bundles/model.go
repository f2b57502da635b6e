package bundles

import (
	"time"

	"careerpath-backend/internal/profile"
	"careerpath-backend/internal/recommend"
)

// Bundle is the atomic persisted unit: a profile plus all three
// recommendation outputs. It is never stored partially; Save either writes
// all four pieces or nothing.
type Bundle struct {
	ID        string
	UserID    int64 // 0 means anonymous
	Profile   profile.Profile
	Careers   recommend.CareerSet
	Colleges  recommend.CollegeSet
	Roadmap   recommend.Roadmap
	CreatedAt time.Time
}
