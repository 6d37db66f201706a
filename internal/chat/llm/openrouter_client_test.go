package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vicdevman/portfolio-api/internal/chat/domain"
)

func TestComplete_SendsRequestAndParsesReply(t *testing.T) {
	var got CompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "Portfolio", r.Header.Get("X-Title"))
		assert.Equal(t, "https://example.dev", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"gen-1","choices":[{"index":0,"message":{"role":"assistant","content":"Hi there"}}]}`))
	}))
	defer server.Close()

	client := NewOpenRouter(Options{
		BaseURL:  server.URL,
		APIKey:   "sk-test",
		AppTitle: "Portfolio",
		SiteURL:  "https://example.dev",
	})

	resp, err := client.Complete(context.Background(), CompletionRequest{
		Model:       "some-model",
		Messages:    []domain.ChatMessage{{Role: domain.RoleUser, Content: "hello"}},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "Hi there", resp.Choices[0].Message.Content)

	assert.Equal(t, "some-model", got.Model)
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, 1000, got.MaxTokens)
	assert.Equal(t, []domain.ChatMessage{{Role: "user", Content: "hello"}}, got.Messages)
}

func TestComplete_OmitsOptionalHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-Title"))
		assert.Empty(t, r.Header.Get("HTTP-Referer"))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer server.Close()

	client := NewOpenRouter(Options{BaseURL: server.URL, APIKey: "k"})
	_, err := client.Complete(context.Background(), CompletionRequest{})
	require.NoError(t, err)
}

func TestComplete_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	client := NewOpenRouter(Options{BaseURL: server.URL, APIKey: "k"})
	_, err := client.Complete(context.Background(), CompletionRequest{})

	var se *StatusError
	require.True(t, errors.As(err, &se), "expected *StatusError, got %v", err)
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"rate limited"}}`, string(se.Body))
}

func TestComplete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewOpenRouter(Options{BaseURL: server.URL, APIKey: "k"})
	_, err := client.Complete(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestComplete_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewOpenRouter(Options{BaseURL: server.URL, APIKey: "k"})
	_, err := client.Complete(context.Background(), CompletionRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode completion response")
}

func TestComplete_TransportError(t *testing.T) {
	client := NewOpenRouter(Options{BaseURL: "http://invalid-url-that-does-not-exist.invalid", APIKey: "k", Timeout: 2 * time.Second})
	_, err := client.Complete(context.Background(), CompletionRequest{})
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewOpenRouter(Options{}).Configured())
	assert.True(t, NewOpenRouter(Options{APIKey: "k"}).Configured())
	assert.Equal(t, DefaultTimeout, NewOpenRouter(Options{}).HTTP.Timeout)
}
