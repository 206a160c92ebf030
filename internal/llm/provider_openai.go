package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const openAIDefaultModel = openai.ChatModelGPT4o

// OpenAIConfig configures the OpenAI-compatible adapter. BaseURL lets the
// same client reach OpenRouter, AiHubMix or DashScope compatible mode.
type OpenAIConfig struct {
	APIKey     string
	Model      string
	BaseURL    string       // Optional (gateways, tests)
	HTTPClient *http.Client // Optional (tests)
}

// OpenAI implements Assistant with the official SDK and chat completions.
type OpenAI struct {
	model  string
	client openai.Client
}

func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openai api key is not configured")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = openAIDefaultModel
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAI{
		model:  model,
		client: openai.NewClient(opts...),
	}, nil
}

func (o *OpenAI) Name() string {
	return "openai"
}

func (o *OpenAI) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	logger := providerLogger(ctx, o.Name(), o.model)
	logger.WithField("topic", logSnippet(req.Topic)).Info("llm_generate_start")

	content, err := o.complete(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(generateSystemPrompt),
			openai.UserMessage(buildGenerateInstruction(req)),
		},
		MaxTokens: openai.Int(generateMaxTokens),
	})
	if err != nil {
		logger.WithError(err).Error("llm_generate_failed")
		return "", err
	}

	text := strings.TrimSpace(content)
	if text == "" {
		logger.Warn("llm_generate_empty_fallback")
		return FallbackPrompt, nil
	}
	logger.WithField("prompt_preview", logSnippet(text)).Info("llm_generate_done")
	return text, nil
}

func (o *OpenAI) Enhance(ctx context.Context, prompt string) ([]string, error) {
	logger := providerLogger(ctx, o.Name(), o.model)
	logger.WithField("prompt_preview", logSnippet(prompt)).Info("llm_enhance_start")

	content, err := o.complete(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(enhanceSystemPrompt),
			openai.UserMessage(buildEnhanceInstruction(prompt)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		MaxTokens: openai.Int(enhanceMaxTokens),
	})
	if err != nil {
		logger.WithError(err).Error("llm_enhance_failed")
		return nil, err
	}

	suggestions := parseJSONSuggestions(content)
	logger.WithFields(map[string]interface{}{
		"suggestion_count": len(suggestions),
		"reply_preview":    logSnippet(content),
	}).Info("llm_enhance_done")
	return suggestions, nil
}

func (o *OpenAI) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", mapOpenAIError(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return fmt.Errorf("%w: openai status %d: %s", ErrUpstream, apiErr.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%w: openai status %d", ErrUpstream, apiErr.StatusCode)
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

var _ Assistant = (*OpenAI)(nil)
