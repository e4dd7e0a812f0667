// Package classify wraps the LLM call that turns a raw email into a
// structured Analysis. The model is treated as a black box with a fixed
// JSON contract; everything it returns is normalized and backfilled here so
// the rest of the pipeline only ever sees canonical shapes.
package classify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"inboxzero/internal/config"
	"inboxzero/internal/models"

	"github.com/sashabaranov/go-openai"
)

// ErrRateLimited signals that the provider refused the call due to rate
// limiting. The orchestrator halts further classification on it while
// keeping already-computed results.
var ErrRateLimited = errors.New("classifier rate limit reached")

// Classifier calls the chat-completion API to analyze emails.
type Classifier struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// New creates a classifier from application config.
func New(cfg *config.Config) (*Classifier, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not configured")
	}
	return &Classifier{
		client:  openai.NewClient(cfg.OpenAIKey),
		model:   openai.GPT4oMini,
		timeout: time.Duration(cfg.OpenAITimeout) * time.Second,
	}, nil
}

// Classify analyzes one email against the user profile. On any model or
// parse failure it returns an error; callers substitute Fallback so the
// email stays visible.
func (c *Classifier) Classify(ctx context.Context, email models.Email, prefs models.UserPreferences) (*models.Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a helpful assistant that analyzes emails and extracts structured information. Always return valid JSON only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(email, prefs),
			},
		},
		MaxTokens:   1024,
		Temperature: 0,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
			return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return nil, fmt.Errorf("classification request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("classifier returned no choices")
	}

	analysis, err := ParseAnalysis(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("classifier response unparseable: %w", err)
	}

	backfill(analysis, email)
	analysis.Normalize()
	return analysis, nil
}

// ParseAnalysis extracts and decodes the JSON object from a model response,
// tolerating markdown code fences and surrounding prose.
func ParseAnalysis(content string) (*models.Analysis, error) {
	jsonText, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	var analysis models.Analysis
	if err := json.Unmarshal([]byte(jsonText), &analysis); err != nil {
		return nil, fmt.Errorf("invalid analysis JSON: %w", err)
	}
	return &analysis, nil
}

// FallbackScore is the fixed priority score assigned alongside Fallback.
// The email never went through real classification, so it must not compete
// with scored emails: it sits below the medium tier regardless of keyword
// hits in the raw text.
const FallbackScore = 30

// Fallback returns the default analysis substituted when classification
// fails: intent other with a low priority, so the email remains visible to
// the user at the bottom of the ranking.
func Fallback(email models.Email) *models.Analysis {
	platform := models.PlatformEmail
	if email.IsLinkedInNotification {
		platform = models.PlatformLinkedIn
	}
	analysis := &models.Analysis{
		Intent:             models.IntentOther,
		ActionItems:        []string{},
		SenderInfo:         &models.SenderInfo{Name: email.FromName, Email: email.From},
		Platform:           platform,
		Priority:           models.PriorityLow,
		CompanyCategory:    models.CompanyCategoryUnknown,
		LinkedInProfileURL: email.LinkedInProfileURL,
	}
	analysis.Normalize()
	return analysis
}

// backfill fills analysis fields the model left empty from the email itself.
func backfill(analysis *models.Analysis, email models.Email) {
	if analysis.SenderInfo == nil {
		analysis.SenderInfo = &models.SenderInfo{Name: email.FromName, Email: email.From}
	}
	if analysis.LinkedInProfileURL == "" {
		analysis.LinkedInProfileURL = email.LinkedInProfileURL
	}
	if analysis.Platform == "" {
		if email.IsLinkedInNotification {
			analysis.Platform = models.PlatformLinkedIn
		} else {
			analysis.Platform = models.PlatformEmail
		}
	}
	if analysis.Priority == "" {
		analysis.Priority = models.PriorityMedium
	}
}

// extractJSON strips markdown fences and returns the first top-level JSON
// object found in content.
func extractJSON(content string) (string, error) {
	start := -1
	depth := 0
	for i, r := range content {
		switch r {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return content[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("no JSON object found in response")
}
