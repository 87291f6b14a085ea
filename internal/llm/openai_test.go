package llm

import (
	"errors"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o-mini"})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestBuildOpenAIMessages_WithSystem(t *testing.T) {
	req := Request{
		System: "be terse",
		Messages: []Message{
			{Role: RoleUser, Content: "hello"},
			{Role: RoleAssistant, Content: "hi"},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content != "be terse" {
		t.Errorf("unexpected system message: %+v", msgs[0])
	}
	if msgs[1].Role != openai.ChatMessageRoleUser {
		t.Errorf("expected user role, got %q", msgs[1].Role)
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("expected assistant role, got %q", msgs[2].Role)
	}
}

func TestBuildOpenAIMessages_NoSystem(t *testing.T) {
	msgs := buildOpenAIMessages(Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
}

func TestMapOpenAIError_RateLimit(t *testing.T) {
	apiErr := &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}
	err := mapOpenAIError(apiErr)
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
}

func TestMapOpenAIError_ServerError(t *testing.T) {
	apiErr := &openai.APIError{HTTPStatusCode: http.StatusInternalServerError}
	err := mapOpenAIError(apiErr)
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gpt-4o-mini", openaiModels); got != "gpt-4o-mini" {
		t.Errorf("friendly name: got %q", got)
	}
	if got := resolveModel("some-custom-model", openaiModels); got != "some-custom-model" {
		t.Errorf("unknown names pass through: got %q", got)
	}
}
