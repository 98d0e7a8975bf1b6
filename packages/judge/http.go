package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

const (
	// DefaultResponsePath matches the Ollama generate API response shape.
	DefaultResponsePath = "response"
	// DefaultHTTPTimeout bounds a single judgment call
	DefaultHTTPTimeout = 60 * time.Second
)

// HTTPClient is a generic adapter for self-hosted judgment backends that
// speak JSON over HTTP. It POSTs {"prompt": <request>} plus any configured
// extra fields and extracts the response text by a gjson path, so any
// endpoint with a "text in, text out" shape can serve as the judge.
type HTTPClient struct {
	url          string
	headers      map[string]string
	bodyFields   map[string]any
	responsePath string
	httpClient   *http.Client
}

type HTTPOption func(*HTTPClient)

func WithHeader(name, value string) HTTPOption {
	return func(c *HTTPClient) {
		c.headers[name] = value
	}
}

// WithBodyField adds a static field to the request body, e.g.
// WithBodyField("model", "llama3") or WithBodyField("stream", false).
func WithBodyField(name string, value any) HTTPOption {
	return func(c *HTTPClient) {
		c.bodyFields[name] = value
	}
}

// WithResponsePath sets the gjson path of the response text, e.g.
// "choices.0.message.content" for chat-completion shaped endpoints.
// An empty path returns the whole response body.
func WithResponsePath(path string) HTTPOption {
	return func(c *HTTPClient) {
		c.responsePath = path
	}
}

func WithHTTPTimeout(d time.Duration) HTTPOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = d
	}
}

func NewHTTPClient(url string, opts ...HTTPOption) *HTTPClient {
	c := &HTTPClient{
		url:          url,
		headers:      make(map[string]string),
		bodyFields:   make(map[string]any),
		responsePath: DefaultResponsePath,
		httpClient:   &http.Client{Timeout: DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Invoke(ctx context.Context, prompt string) (string, error) {
	body := make(map[string]any, len(c.bodyFields)+1)
	for k, v := range c.bodyFields {
		body[k] = v
	}
	body["prompt"] = prompt

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for name, value := range c.headers {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	if c.responsePath == "" {
		return string(data), nil
	}

	result := gjson.GetBytes(data, c.responsePath)
	if !result.Exists() {
		return "", fmt.Errorf("response has no %q field", c.responsePath)
	}
	return result.String(), nil
}
