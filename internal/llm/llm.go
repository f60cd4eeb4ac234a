// Package llm wraps the Groq chat-completion API behind a plain
// prompt-in/text-out boundary. The pipeline never requests structured
// output; downstream consumers regex-parse the expected templates.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/FranksOps/prospect/internal/metrics"
)

// DefaultBaseURL is the OpenAI-compatible Groq endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// DefaultModel is the production model for scoring and outreach generation.
const DefaultModel = "llama-3.3-70b-versatile"

// Generator produces free text for a prompt. kind labels the invocation for
// metrics ("analysis", "emails", "followups", "multichannel").
type Generator interface {
	Generate(ctx context.Context, kind, prompt string) (string, error)
}

// Config holds the language-model client settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// ensure Client implements Generator
var _ Generator = (*Client)(nil)

// Client is a Generator backed by an OpenAI-compatible chat endpoint.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

// New creates a Groq-backed Generator.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.2
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL

	return &Client{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

// Generate sends one chat completion request and returns the model's text.
func (c *Client) Generate(ctx context.Context, kind, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(kind, "error").Inc()
		return "", parseAPIError(err)
	}
	if len(resp.Choices) == 0 {
		metrics.LLMRequestsTotal.WithLabelValues(kind, "error").Inc()
		return "", errors.New("empty completion response")
	}

	metrics.LLMRequestsTotal.WithLabelValues(kind, "ok").Inc()
	metrics.LLMRequestDuration.WithLabelValues(kind).Observe(duration.Seconds())

	return resp.Choices[0].Message.Content, nil
}

// parseAPIError extracts a human-readable error from the API response.
func parseAPIError(err error) error {
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("llm API error %d: %s", reqErr.HTTPStatusCode, string(reqErr.Body))
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("llm API error %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}

	return fmt.Errorf("llm request failed: %w", err)
}
