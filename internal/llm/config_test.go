package llm

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"groq with key", Config{Provider: "groq", Groq: GroqConfig{APIKey: "k"}}, false},
		{"groq without key", Config{Provider: "groq"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llamafile"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigWithAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"

	got := cfg.WithAPIKey("sk-test")
	if got.OpenAI.APIKey != "sk-test" {
		t.Errorf("expected key on openai config, got %q", got.OpenAI.APIKey)
	}
	if cfg.OpenAI.APIKey != "" {
		t.Error("WithAPIKey must not mutate the receiver")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("LOGIQ_LLM_PROVIDER", "gemini")
	t.Setenv("LOGIQ_GEMINI_API_KEY", "gk")
	t.Setenv("LOGIQ_GEMINI_MODEL", "gemini-pro")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "gk" || cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("gemini config = %+v", cfg.Gemini)
	}
}

func TestDiscoverConfig_PrefersGroq(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "grk")
	t.Setenv("OPENAI_API_KEY", "ok")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "groq" || cfg.Groq.APIKey != "grk" {
		t.Errorf("expected groq config, got provider=%q", cfg.Provider)
	}
}
