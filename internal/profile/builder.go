package profile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ValidationError reports a form field that is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

const (
	gpaMin = 0.0
	gpaMax = 5.0
)

// Build converts raw form fields into a validated Profile. Recognized keys:
// name (required), email, grade, gpa, subjects, interests, skills, education,
// experience. List-valued fields are comma separated.
func Build(fields map[string]string) (Profile, error) {
	get := func(key string) string {
		return strings.TrimSpace(fields[key])
	}

	name := get("name")
	if name == "" {
		return Profile{}, &ValidationError{Field: "name", Reason: "is required"}
	}

	email := get("email")
	if email != "" && !strings.Contains(email, "@") {
		return Profile{}, &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	var gpa *float64
	if raw := get("gpa"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		// ParseFloat accepts "NaN" and "Inf"; neither survives JSON encoding.
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return Profile{}, &ValidationError{Field: "gpa", Reason: "must be a number"}
		}
		if parsed < gpaMin || parsed > gpaMax {
			return Profile{}, &ValidationError{Field: "gpa", Reason: fmt.Sprintf("must be between %.1f and %.1f", gpaMin, gpaMax)}
		}
		gpa = &parsed
	}

	return Profile{
		Name:       name,
		Email:      email,
		GradeLevel: get("grade"),
		GPA:        gpa,
		Subjects:   splitList(get("subjects")),
		Interests:  splitList(get("interests")),
		Skills:     splitList(get("skills")),
		Education:  get("education"),
		Experience: get("experience"),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
