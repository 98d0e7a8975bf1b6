package judge

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	// DefaultOpenAIModel is used when no model is configured
	DefaultOpenAIModel = "gpt-4o-mini"
	// DefaultOpenAITimeout bounds a single judgment call
	DefaultOpenAITimeout = 30 * time.Second
)

// OpenAIClient sends judgment requests to an OpenAI-compatible
// chat-completions endpoint. With a base URL override it also covers
// DashScope/Qwen compatible mode and an Ollama OpenAI endpoint.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
	limiter     *rate.Limiter
}

type OpenAIOption func(*openaiSettings)

type openaiSettings struct {
	baseURL     string
	model       string
	temperature float32
	timeout     time.Duration
	limiter     *rate.Limiter
}

// WithBaseURL points the client at a compatible endpoint, e.g.
// https://dashscope.aliyuncs.com/compatible-mode/v1 or http://localhost:11434/v1.
func WithBaseURL(url string) OpenAIOption {
	return func(s *openaiSettings) {
		s.baseURL = url
	}
}

func WithModel(model string) OpenAIOption {
	return func(s *openaiSettings) {
		s.model = model
	}
}

func WithTemperature(t float32) OpenAIOption {
	return func(s *openaiSettings) {
		s.temperature = t
	}
}

func WithTimeout(d time.Duration) OpenAIOption {
	return func(s *openaiSettings) {
		s.timeout = d
	}
}

// WithRateLimit caps outgoing judgment calls at rps requests per second.
// The limiter delays the single request; it never adds retries.
func WithRateLimit(rps float64) OpenAIOption {
	return func(s *openaiSettings) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

func NewOpenAIClient(apiKey string, opts ...OpenAIOption) *OpenAIClient {
	s := &openaiSettings{
		model:   DefaultOpenAIModel,
		timeout: DefaultOpenAITimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	cfg := openai.DefaultConfig(apiKey)
	if s.baseURL != "" {
		cfg.BaseURL = s.baseURL
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(cfg),
		model:       s.model,
		temperature: s.temperature,
		timeout:     s.timeout,
		limiter:     s.limiter,
	}
}

// Invoke sends a single chat completion request and returns the raw
// response text.
func (c *OpenAIClient) Invoke(ctx context.Context, prompt string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("backend returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
