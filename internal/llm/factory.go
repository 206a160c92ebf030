package llm

import (
	"fmt"
	"strings"

	"promptvault/internal/config"
)

// NewAssistant instantiates the Assistant selected by LLM_PROVIDER. A provider
// set to "none" or missing its API key yields ErrNotConfigured.
func NewAssistant(cfg config.Config) (Assistant, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.LLMProvider))

	switch driver {
	case config.LLMProviderNone, "":
		return nil, ErrNotConfigured
	case config.LLMProviderGemini:
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is empty", ErrNotConfigured)
		}
		return wrap(NewGemini(GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		}))
	case config.LLMProviderOpenAI:
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is empty", ErrNotConfigured)
		}
		return wrap(NewOpenAI(OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		}))
	case config.LLMProviderVolcengine:
		if strings.TrimSpace(cfg.VolcengineAPIKey) == "" {
			return nil, fmt.Errorf("%w: VOLCENGINE_API_KEY is empty", ErrNotConfigured)
		}
		return wrap(NewVolcengine(cfg.VolcengineAPIKey, cfg.VolcengineModel))
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.LLMProvider)
	}
}

// wrap 避免把 nil 指针包装成非 nil 的接口值
func wrap[T Assistant](a T, err error) (Assistant, error) {
	if err != nil {
		return nil, err
	}
	return a, nil
}
