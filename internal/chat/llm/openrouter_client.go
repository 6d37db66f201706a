package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vicdevman/portfolio-api/internal/chat/domain"
)

// DefaultTimeout bounds a single completion call.
const DefaultTimeout = 60 * time.Second

// maxErrorBody caps how much of an upstream error body is kept.
const maxErrorBody = 64 << 10

var ErrNoChoices = errors.New("completion response has no choices")

// StatusError is returned when the completion API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion api returned status %d", e.StatusCode)
}

type CompletionRequest struct {
	Model       string               `json:"model"`
	Messages    []domain.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
	MaxTokens   int                  `json:"max_tokens"`
}

type Choice struct {
	Index        int                `json:"index"`
	Message      domain.ChatMessage `json:"message"`
	FinishReason string             `json:"finish_reason,omitempty"`
}

type CompletionResponse struct {
	ID      string   `json:"id,omitempty"`
	Model   string   `json:"model,omitempty"`
	Choices []Choice `json:"choices"`
}

// OpenRouterClient calls an OpenAI-compatible chat completions endpoint.
// AppTitle and SiteURL are sent as X-Title and HTTP-Referer when set.
type OpenRouterClient struct {
	BaseURL  string
	APIKey   string
	AppTitle string
	SiteURL  string
	HTTP     *http.Client
}

type Options struct {
	BaseURL  string
	APIKey   string
	AppTitle string
	SiteURL  string
	Timeout  time.Duration
}

func NewOpenRouter(opt Options) *OpenRouterClient {
	if opt.Timeout <= 0 {
		opt.Timeout = DefaultTimeout
	}
	return &OpenRouterClient{
		BaseURL:  opt.BaseURL,
		APIKey:   opt.APIKey,
		AppTitle: opt.AppTitle,
		SiteURL:  opt.SiteURL,
		HTTP:     &http.Client{Timeout: opt.Timeout},
	}
}

// Configured reports whether an API key is set.
func (c *OpenRouterClient) Configured() bool { return c.APIKey != "" }

// Complete issues one chat completion call. A non-2xx answer is returned as
// *StatusError; transport and decode failures are wrapped errors.
func (c *OpenRouterClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.AppTitle != "" {
		httpReq.Header.Set("X-Title", c.AppTitle)
	}
	if c.SiteURL != "" {
		httpReq.Header.Set("HTTP-Referer", c.SiteURL)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	var out CompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode completion response: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, ErrNoChoices
	}
	return &out, nil
}
