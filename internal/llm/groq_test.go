package llm

import "testing"

func TestNewGroqProvider_RequiresKey(t *testing.T) {
	_, err := NewGroqProvider(GroqConfig{Model: "llama-instant"})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestNewGroqProvider_ResolvesFriendlyModel(t *testing.T) {
	p, err := NewGroqProvider(GroqConfig{APIKey: "k", Model: "llama-instant"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "llama-3.1-8b-instant" {
		t.Errorf("expected llama-3.1-8b-instant, got %q", p.ModelID())
	}
}

func TestNewGroqProvider_DirectModelID(t *testing.T) {
	p, err := NewGroqProvider(GroqConfig{APIKey: "k", Model: "qwen-2.5-32b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "qwen-2.5-32b" {
		t.Errorf("expected pass-through model ID, got %q", p.ModelID())
	}
}
