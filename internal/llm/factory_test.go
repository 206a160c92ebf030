package llm

import (
	"errors"
	"testing"

	"promptvault/internal/config"
)

func TestNewAssistant(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		wantName string
		wantErr  error
	}{
		{"none", config.Config{LLMProvider: config.LLMProviderNone}, "", ErrNotConfigured},
		{"empty provider", config.Config{}, "", ErrNotConfigured},
		{"gemini without key", config.Config{LLMProvider: config.LLMProviderGemini}, "", ErrNotConfigured},
		{"openai without key", config.Config{LLMProvider: config.LLMProviderOpenAI}, "", ErrNotConfigured},
		{"volcengine without key", config.Config{LLMProvider: config.LLMProviderVolcengine}, "", ErrNotConfigured},
		{"gemini", config.Config{LLMProvider: "Gemini", GeminiAPIKey: "k"}, "gemini", nil},
		{"openai", config.Config{LLMProvider: config.LLMProviderOpenAI, OpenAIAPIKey: "k"}, "openai", nil},
		{"volcengine", config.Config{LLMProvider: config.LLMProviderVolcengine, VolcengineAPIKey: "k"}, "volcengine", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assistant, err := NewAssistant(tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAssistant: %v", err)
			}
			if assistant.Name() != tt.wantName {
				t.Fatalf("Name() = %q, want %q", assistant.Name(), tt.wantName)
			}
		})
	}
}

func TestNewAssistantUnknownProvider(t *testing.T) {
	_, err := NewAssistant(config.Config{LLMProvider: "claude"})
	if err == nil || errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected unsupported provider error, got %v", err)
	}
}
