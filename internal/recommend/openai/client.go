package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"careerpath-backend/internal/profile"
	"careerpath-backend/internal/recommend"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

const defaultModel = "gpt-4o-mini"

// Client implements recommend.Client using OpenAI Chat Completions.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("RECOMMENDER_API_KEY is required for OpenAI")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    *float32       `json:"temperature,omitempty"`
	ResponseFormat responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
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
	temp := float32(0)
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	}
	reqBody.Temperature = &temp
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &recommend.ProviderError{Kind: recommend.KindBadResponse, Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", &recommend.ProviderError{Kind: recommend.KindBadResponse, Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", &recommend.ProviderError{Kind: recommend.KindNetwork, Op: op, Err: fmt.Errorf("openai request timeout: %w", err)}
		}
		return "", &recommend.ProviderError{Kind: recommend.KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &recommend.ProviderError{Kind: recommend.KindNetwork, Op: op, Err: err}
	}

	if kind, ok := classifyStatus(resp.StatusCode); ok {
		return "", &recommend.ProviderError{Kind: kind, Op: op, Err: fmt.Errorf("openai status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &recommend.ProviderError{Kind: recommend.KindBadResponse, Op: op, Err: fmt.Errorf("openai response parse: %w", err)}
	}
	if parsed.Error != nil {
		return "", &recommend.ProviderError{Kind: recommend.KindBadResponse, Op: op, Err: fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type)}
	}
	if len(parsed.Choices) == 0 {
		return "", &recommend.ProviderError{Kind: recommend.KindBadResponse, Op: op, Err: fmt.Errorf("openai response missing choices")}
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", &recommend.ProviderError{Kind: recommend.KindBadResponse, Op: op, Err: fmt.Errorf("openai response empty content")}
	}
	logUsage(c.model, op, parsed.Usage)
	return content, nil
}

// endpoint allows tests to redirect calls via OPENAI_BASE_URL.
func (c *Client) endpoint() string {
	if base := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); base != "" {
		return strings.TrimRight(base, "/") + "/v1/chat/completions"
	}
	return apiURL
}

func classifyStatus(status int) (recommend.Kind, bool) {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return recommend.KindAuth, true
	case status == http.StatusTooManyRequests:
		return recommend.KindRateLimited, true
	case status >= 500:
		return recommend.KindNetwork, true
	case status != http.StatusOK:
		return recommend.KindBadResponse, true
	default:
		return "", false
	}
}

func logUsage(model, op string, usage *struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}) {
	if usage == nil {
		log.Printf("provider response model=%s op=%s", model, op)
		return
	}
	log.Printf("provider response model=%s op=%s prompt_tokens=%d completion_tokens=%d total_tokens=%d",
		model, op, usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
}

var _ recommend.Client = (*Client)(nil)
