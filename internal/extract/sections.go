package extract

import (
	"regexp"
	"strings"
)

var knownSections = []string{
	"summary",
	"objective",
	"skills",
	"education",
	"experience",
	"projects",
	"certifications",
	"achievements",
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
)

// parseSections splits extracted text into named sections using heading
// heuristics. Everything is best-effort; unrecognized content before the
// first heading contributes only name/contact detection.
func parseSections(text string) ParsedResume {
	parsed := ParsedResume{}

	if m := emailPattern.FindString(text); m != "" {
		parsed.Email = m
	}
	if m := phonePattern.FindString(text); m != "" {
		parsed.Phone = strings.TrimSpace(m)
	}

	sections := make(map[string][]string)
	current := ""
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if heading, ok := matchHeading(line); ok {
			current = heading
			if _, exists := sections[current]; !exists {
				sections[current] = nil
			}
			continue
		}

		if current == "" {
			if parsed.Name == "" && looksLikeName(line) {
				parsed.Name = line
			}
			continue
		}
		sections[current] = append(sections[current], line)
	}

	// A heading with no body is the same as no section at all.
	for key, lines := range sections {
		if len(lines) == 0 {
			delete(sections, key)
		}
	}
	if len(sections) > 0 {
		parsed.Sections = sections
	}
	return parsed
}

func matchHeading(line string) (string, bool) {
	normalized := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ":"))
	if len(normalized) > 40 {
		return "", false
	}
	for _, section := range knownSections {
		if normalized == section || strings.HasPrefix(normalized, section+" ") {
			return section, true
		}
		// "work experience", "technical skills" and similar phrasings.
		if strings.HasSuffix(normalized, " "+section) {
			return section, true
		}
	}
	return "", false
}

func looksLikeName(line string) bool {
	if strings.ContainsAny(line, "@0123456789") {
		return false
	}
	words := strings.Fields(line)
	return len(words) >= 1 && len(words) <= 5 && len(line) <= 60
}
