package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"careerpath-backend/internal/profile"
	"careerpath-backend/internal/recommend"
)

const defaultModel = "gemini-2.5-flash"

// Client implements recommend.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini-backed recommendation client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("RECOMMENDER_API_KEY is required for Gemini")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// GenerateCareers asks the model for career suggestions.
func (c *Client) GenerateCareers(ctx context.Context, p profile.Profile) (recommend.CareerSet, error) {
	raw, err := c.complete(ctx, recommend.OpCareers, recommend.CareersPrompt(p))
	if err != nil {
		return nil, err
	}
	careers, err := recommend.DecodeCareers(raw)
	if err != nil {
		return nil, &recommend.ProviderError{Kind: recommend.KindBadResponse, Op: recommend.OpCareers, Err: err}
	}
	return careers, nil
}

// GenerateColleges asks the model for college suggestions given prior careers.
func (c *Client) GenerateColleges(ctx context.Context, p profile.Profile, careers recommend.CareerSet) (recommend.CollegeSet, error) {
	raw, err := c.complete(ctx, recommend.OpColleges, recommend.CollegesPrompt(p, careers))
	if err != nil {
		return nil, err
	}
	colleges, err := recommend.DecodeColleges(raw)
	if err != nil {
		return nil, &recommend.ProviderError{Kind: recommend.KindBadResponse, Op: recommend.OpColleges, Err: err}
	}
	return colleges, nil
}

// GenerateRoadmap asks the model for a roadmap given prior careers.
func (c *Client) GenerateRoadmap(ctx context.Context, p profile.Profile, careers recommend.CareerSet) (recommend.Roadmap, error) {
	raw, err := c.complete(ctx, recommend.OpRoadmap, recommend.RoadmapPrompt(p, careers))
	if err != nil {
		return nil, err
	}
	roadmap, err := recommend.DecodeRoadmap(raw)
	if err != nil {
		return nil, &recommend.ProviderError{Kind: recommend.KindBadResponse, Op: recommend.OpRoadmap, Err: err}
	}
	return roadmap, nil
}

func (c *Client) complete(ctx context.Context, op, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", &recommend.ProviderError{Kind: classify(err), Op: op, Err: err}
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &recommend.ProviderError{Kind: recommend.KindBadResponse, Op: op, Err: fmt.Errorf("gemini response empty content")}
	}
	return text, nil
}

func classify(err error) recommend.Kind {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return recommend.KindAuth
		case apiErr.Code == http.StatusTooManyRequests:
			return recommend.KindRateLimited
		case apiErr.Code >= 500:
			return recommend.KindNetwork
		default:
			return recommend.KindBadResponse
		}
	}
	return recommend.KindNetwork
}

var _ recommend.Client = (*Client)(nil)
