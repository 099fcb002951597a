// Package llm is the optional OpenAI collaborator. It extracts taste
// keywords from free text and judges product relevance; callers fall back to
// heuristics whenever a Client is absent or a call fails.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cast"

	"github.com/cloo-solutions/shopmate/internal/domain"
	"github.com/cloo-solutions/shopmate/internal/extract"
)

const (
	// DefaultModel is the chat model used when none is configured.
	DefaultModel = openai.GPT4o

	temperature = 0.3

	defaultScore  = 50
	defaultReason = "관련 제품입니다."
	judgedContent = 200
)

// ErrEmptyText is returned when there is nothing to send to the model.
var ErrEmptyText = errors.New("text cannot be empty")

// ChatAPI defines the interface for JSON-mode chat completions.
type ChatAPI interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}

// OpenAIAdapter implements ChatAPI with go-openai.
type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter creates an adapter. An empty baseURL uses the public API.
func NewOpenAIAdapter(apiKey, baseURL, model string) *OpenAIAdapter {
	if model == "" {
		model = DefaultModel
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// CompleteJSON calls the chat completion API in JSON object mode.
func (a *OpenAIAdapter) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// Config configures the OpenAI-backed Client. An empty BaseURL uses the
// public API and an empty Model uses DefaultModel.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client wraps a ChatAPI with the application's prompts.
type Client struct {
	api ChatAPI
}

// NewClient creates a new OpenAI-backed client.
func NewClient(cfg Config) *Client {
	return &Client{api: NewOpenAIAdapter(cfg.APIKey, cfg.BaseURL, cfg.Model)}
}

// NewClientWithAPI creates a client over an existing ChatAPI.
func NewClientWithAPI(api ChatAPI) *Client {
	return &Client{api: api}
}

// ExtractKeywords returns the fashion taste keywords found in input. The
// result may be empty.
func (c *Client) ExtractKeywords(ctx context.Context, input string) ([]string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyText
	}

	raw, err := c.api.CompleteJSON(ctx, keywordSystemPrompt, fmt.Sprintf(keywordUserPrompt, input))
	if err != nil {
		return nil, domain.ErrLLMFailed.WithCause(err)
	}

	var payload map[string]interface{}
	if err := ParseJSON(raw, &payload); err != nil {
		return nil, domain.ErrLLMFailed.WithCause(fmt.Errorf("failed to parse keywords: %w", err))
	}

	field, ok := payload["keywords"]
	if !ok || field == nil {
		return []string{}, nil
	}
	values, err := cast.ToStringSliceE(field)
	if err != nil {
		return nil, domain.ErrLLMFailed.WithCause(fmt.Errorf("invalid keywords: %w", err))
	}

	keywords := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			keywords = append(keywords, v)
		}
	}
	return keywords, nil
}

// Judgement is the model's verdict on one product.
type Judgement struct {
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// JudgeRelevance scores how well a product matches keywords on 0-100.
// Missing or malformed fields in the answer take neutral defaults.
func (c *Client) JudgeRelevance(ctx context.Context, keywords []string, title, content string) (Judgement, error) {
	product := title + " " + extract.Truncate(content, judgedContent)
	user := fmt.Sprintf(judgeUserPrompt, strings.Join(keywords, ", "), title, product)

	raw, err := c.api.CompleteJSON(ctx, judgeSystemPrompt, user)
	if err != nil {
		return Judgement{}, domain.ErrLLMFailed.WithCause(err)
	}

	var payload map[string]interface{}
	if err := ParseJSON(raw, &payload); err != nil {
		return Judgement{}, domain.ErrLLMFailed.WithCause(fmt.Errorf("failed to parse judgement: %w", err))
	}

	j := Judgement{Score: defaultScore, Reason: defaultReason}
	if v, ok := payload["score"]; ok {
		if score, err := cast.ToFloat64E(v); err == nil {
			j.Score = min(max(score, 0), 100)
		}
	}
	if v, ok := payload["reason"]; ok {
		if reason := strings.TrimSpace(cast.ToString(v)); reason != "" {
			j.Reason = reason
		}
	}
	return j, nil
}
