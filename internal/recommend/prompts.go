package recommend

import (
	"fmt"
	"strings"

	"careerpath-backend/internal/profile"
)

// OpCareers, OpColleges and OpRoadmap name the three provider operations in
// errors and logs.
const (
	OpCareers  = "generate_careers"
	OpColleges = "generate_colleges"
	OpRoadmap  = "generate_roadmap"
)

const careersPromptTemplate = `You are a career counselor for students.

STUDENT PROFILE:
%s

Suggest 3 to 5 career paths that fit this student. For each, explain briefly
why it fits and what the job outlook is.

Return a JSON object with this exact structure:
{
  "careers": [
    {"title": "<career title>", "reason": "<why this fits the student>", "outlook": "<short job outlook>"}
  ]
}

Return ONLY the JSON object, no markdown, no explanation.`

const collegesPromptTemplate = `You are a college advisor for students.

STUDENT PROFILE:
%s

SUGGESTED CAREERS:
%s

Suggest 3 to 5 colleges with a concrete program that prepares this student
for the suggested careers.

Return a JSON object with this exact structure:
{
  "colleges": [
    {"name": "<college name>", "program": "<degree or program>", "reason": "<why it fits>"}
  ]
}

Return ONLY the JSON object, no markdown, no explanation.`

const roadmapPromptTemplate = `You are a career planner for students.

STUDENT PROFILE:
%s

SUGGESTED CAREERS:
%s

Create a step-by-step roadmap (4 to 7 steps) this student should follow
toward the first suggested career, from their current grade level onward.

Return a JSON object with this exact structure:
{
  "roadmap": [
    {"order": <step number>, "title": "<step title>", "description": "<what to do>", "timeframe": "<when or how long>"}
  ]
}

Return ONLY the JSON object, no markdown, no explanation.`

// CareersPrompt renders the career-generation prompt for a profile.
func CareersPrompt(p profile.Profile) string {
	return fmt.Sprintf(careersPromptTemplate, FormatProfile(p))
}

// CollegesPrompt renders the college-generation prompt.
func CollegesPrompt(p profile.Profile, careers CareerSet) string {
	return fmt.Sprintf(collegesPromptTemplate, FormatProfile(p), formatCareers(careers))
}

// RoadmapPrompt renders the roadmap-generation prompt.
func RoadmapPrompt(p profile.Profile, careers CareerSet) string {
	return fmt.Sprintf(roadmapPromptTemplate, FormatProfile(p), formatCareers(careers))
}

// FormatProfile renders a profile as prompt-friendly lines, skipping empty fields.
func FormatProfile(p profile.Profile) string {
	var b strings.Builder
	writeLine := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		fmt.Fprintf(&b, "%s: %s\n", label, value)
	}
	writeLine("Name", p.Name)
	writeLine("Grade level", p.GradeLevel)
	if p.GPA != nil {
		fmt.Fprintf(&b, "GPA: %.2f\n", *p.GPA)
	}
	writeLine("Favorite subjects", strings.Join(p.Subjects, ", "))
	writeLine("Interests", strings.Join(p.Interests, ", "))
	writeLine("Skills", strings.Join(p.Skills, ", "))
	writeLine("Education", p.Education)
	writeLine("Experience", p.Experience)
	return strings.TrimRight(b.String(), "\n")
}

func formatCareers(careers CareerSet) string {
	var b strings.Builder
	for i, c := range careers {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, c.Title, c.Reason)
	}
	return strings.TrimRight(b.String(), "\n")
}
