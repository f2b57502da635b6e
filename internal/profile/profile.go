package profile

import "time"

// Profile is the structured, validated representation of a submission.
// It is immutable once built; Build either returns a complete profile or an
// error, never a partial one.
type Profile struct {
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	GradeLevel string    `json:"gradeLevel,omitempty"`
	GPA        *float64  `json:"gpa,omitempty"`
	Subjects   []string  `json:"subjects,omitempty"`
	Interests  []string  `json:"interests,omitempty"`
	Skills     []string  `json:"skills,omitempty"`
	Education  string    `json:"education,omitempty"`
	Experience string    `json:"experience,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
