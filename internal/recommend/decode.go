package recommend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CleanJSON strips markdown code fences some providers wrap around JSON output.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// DecodeCareers parses a provider payload of shape {"careers":[...]}.
func DecodeCareers(raw string) (CareerSet, error) {
	var payload struct {
		Careers CareerSet `json:"careers"`
	}
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("decode careers payload: %w", err)
	}
	if len(payload.Careers) == 0 {
		return nil, fmt.Errorf("careers payload is empty")
	}
	return payload.Careers, nil
}

// DecodeColleges parses a provider payload of shape {"colleges":[...]}.
func DecodeColleges(raw string) (CollegeSet, error) {
	var payload struct {
		Colleges CollegeSet `json:"colleges"`
	}
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("decode colleges payload: %w", err)
	}
	if len(payload.Colleges) == 0 {
		return nil, fmt.Errorf("colleges payload is empty")
	}
	return payload.Colleges, nil
}

// DecodeRoadmap parses a provider payload of shape {"roadmap":[...]}.
// Steps keep provider order; missing order numbers are filled in.
func DecodeRoadmap(raw string) (Roadmap, error) {
	var payload struct {
		Roadmap Roadmap `json:"roadmap"`
	}
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("decode roadmap payload: %w", err)
	}
	if len(payload.Roadmap) == 0 {
		return nil, fmt.Errorf("roadmap payload is empty")
	}
	for i := range payload.Roadmap {
		if payload.Roadmap[i].Order == 0 {
			payload.Roadmap[i].Order = i + 1
		}
	}
	return payload.Roadmap, nil
}
