package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/vicdevman/portfolio-api/internal/apperr"
	"github.com/vicdevman/portfolio-api/internal/chat/domain"
	"github.com/vicdevman/portfolio-api/internal/chat/llm"
	"github.com/vicdevman/portfolio-api/internal/logging"
)

const (
	Model       = "meta-llama/llama-3.3-70b-instruct:free"
	Temperature = 0.7
	MaxTokens   = 1000
)

const (
	msgInvalidRequest = "Invalid request format"
	msgNoAPIKey       = "API key not configured"
	msgUpstream       = "Error from completion API"
)

// Completer is the completion API used by ChatService.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error)
}

// ChatService answers visitor conversations on behalf of the portfolio owner.
type ChatService struct {
	llm          Completer
	systemPrompt string
}

// NewChatService creates a chat service. systemPrompt is sent as the first
// message of every outbound conversation.
func NewChatService(c Completer, systemPrompt string) *ChatService {
	return &ChatService{llm: c, systemPrompt: systemPrompt}
}

// Reply forwards the conversation to the completion API and returns the
// first choice's content unmodified.
func (s *ChatService) Reply(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	logger := logging.NewLogger(ctx)

	if messages == nil {
		return "", apperr.InvalidRequest(msgInvalidRequest)
	}
	if s.llm == nil || !s.llm.Configured() {
		return "", apperr.Configuration(msgNoAPIKey)
	}

	outbound := make([]domain.ChatMessage, 0, len(messages)+1)
	outbound = append(outbound, domain.ChatMessage{Role: domain.RoleSystem, Content: s.systemPrompt})
	outbound = append(outbound, messages...)

	resp, err := s.llm.Complete(ctx, llm.CompletionRequest{
		Model:       Model,
		Messages:    outbound,
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	if err != nil {
		var se *llm.StatusError
		if errors.As(err, &se) {
			logger.LogWarnf("chat.reply", "completion api status=%d messages=%d", se.StatusCode, len(messages))
			return "", apperr.Upstream(msgUpstream, se.StatusCode, upstreamDetails(se.Body), err)
		}
		return "", apperr.Internal(err)
	}

	logger.LogInfof("chat.reply", "completion ok messages=%d", len(messages))
	return resp.Choices[0].Message.Content, nil
}

// upstreamDetails keeps a JSON error body as JSON and anything else as text.
func upstreamDetails(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
