package recommend

import (
	"context"
	"fmt"
	"strings"

	"careerpath-backend/internal/profile"
)

// StubClient produces deterministic recommendations without any remote call.
// It is the dev default and the client used by end-to-end tests.
type StubClient struct{}

// GenerateCareers derives suggestions from the profile's interests, or a
// general-purpose set when none are given.
func (StubClient) GenerateCareers(ctx context.Context, p profile.Profile) (CareerSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ProviderError{Kind: KindNetwork, Op: OpCareers, Err: err}
	}
	interests := p.Interests
	if len(interests) == 0 {
		interests = []string{"general studies"}
	}
	careers := make(CareerSet, 0, len(interests))
	for _, interest := range interests {
		title := titleCase(interest) + " Specialist"
		careers = append(careers, CareerSuggestion{
			Title:   title,
			Reason:  fmt.Sprintf("Builds directly on your interest in %s.", interest),
			Outlook: "Stable demand",
		})
		if len(careers) == 5 {
			break
		}
	}
	return careers, nil
}

// GenerateColleges returns one college per suggested career.
func (StubClient) GenerateColleges(ctx context.Context, p profile.Profile, careers CareerSet) (CollegeSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ProviderError{Kind: KindNetwork, Op: OpColleges, Err: err}
	}
	if len(careers) == 0 {
		return nil, &ProviderError{Kind: KindBadResponse, Op: OpColleges, Err: fmt.Errorf("career suggestions are required")}
	}
	colleges := make(CollegeSet, 0, len(careers))
	for i, career := range careers {
		colleges = append(colleges, CollegeSuggestion{
			Name:    fmt.Sprintf("State University #%d", i+1),
			Program: "B.S. program aligned with " + career.Title,
			Reason:  fmt.Sprintf("Strong department for a future %s.", career.Title),
		})
	}
	return colleges, nil
}

// GenerateRoadmap returns a fixed-shape plan toward the first suggested career.
func (StubClient) GenerateRoadmap(ctx context.Context, p profile.Profile, careers CareerSet) (Roadmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ProviderError{Kind: KindNetwork, Op: OpRoadmap, Err: err}
	}
	if len(careers) == 0 {
		return nil, &ProviderError{Kind: KindBadResponse, Op: OpRoadmap, Err: fmt.Errorf("career suggestions are required")}
	}
	target := careers[0].Title
	return Roadmap{
		{Order: 1, Title: "Strengthen fundamentals", Description: "Focus on coursework related to " + target + ".", Timeframe: "This school year"},
		{Order: 2, Title: "Join a related activity", Description: "Find a club, competition or volunteer role touching " + target + ".", Timeframe: "Next 6 months"},
		{Order: 3, Title: "Build a small project", Description: "Produce something concrete you can show, however small.", Timeframe: "Next year"},
		{Order: 4, Title: "Apply to aligned programs", Description: "Target programs that feed into " + target + " roles.", Timeframe: "Application season"},
	}, nil
}

func titleCase(raw string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var _ Client = StubClient{}
