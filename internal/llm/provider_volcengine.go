package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	volcModel "github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
	"github.com/volcengine/volcengine-go-sdk/volcengine"
)

const volcengineDefaultModel = "doubao-seed-1-6-250615"

type volcengineChatFunc func(ctx context.Context, req volcModel.CreateChatCompletionRequest) (string, error)

// Volcengine 火山方舟对话模型
type Volcengine struct {
	model string
	chat  volcengineChatFunc
}

func NewVolcengine(apiKey, model string) (*Volcengine, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("volcengine api key is not configured")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = volcengineDefaultModel
	}

	client := arkruntime.NewClientWithApiKey(apiKey)
	return &Volcengine{
		model: model,
		chat: func(ctx context.Context, req volcModel.CreateChatCompletionRequest) (string, error) {
			resp, err := client.CreateChatCompletion(ctx, req)
			if err != nil {
				return "", err
			}
			if len(resp.Choices) == 0 {
				return "", nil
			}
			content := resp.Choices[0].Message.Content
			if content == nil || content.StringValue == nil {
				return "", nil
			}
			return *content.StringValue, nil
		},
	}, nil
}

func (v *Volcengine) Name() string {
	return "volcengine"
}

func (v *Volcengine) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	logger := providerLogger(ctx, v.Name(), v.model)
	logger.WithField("topic", logSnippet(req.Topic)).Info("llm_generate_start")

	content, err := v.chat(ctx, v.request(generateSystemPrompt, buildGenerateInstruction(req)))
	if err != nil {
		err = fmt.Errorf("%w: volcengine: %v", ErrUpstream, err)
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

func (v *Volcengine) Enhance(ctx context.Context, prompt string) ([]string, error) {
	logger := providerLogger(ctx, v.Name(), v.model)
	logger.WithField("prompt_preview", logSnippet(prompt)).Info("llm_enhance_start")

	content, err := v.chat(ctx, v.request(enhanceSystemPrompt, buildEnhanceInstruction(prompt)))
	if err != nil {
		err = fmt.Errorf("%w: volcengine: %v", ErrUpstream, err)
		logger.WithError(err).Error("llm_enhance_failed")
		return nil, err
	}

	// 方舟模型偶尔会用 ```json 包裹输出
	suggestions := parseJSONSuggestions(stripCodeFence(content))
	logger.WithField("suggestion_count", len(suggestions)).Info("llm_enhance_done")
	return suggestions, nil
}

func (v *Volcengine) request(system, user string) volcModel.CreateChatCompletionRequest {
	return volcModel.CreateChatCompletionRequest{
		Model: v.model,
		Messages: []*volcModel.ChatCompletionMessage{
			{
				Role:    volcModel.ChatMessageRoleSystem,
				Content: &volcModel.ChatCompletionMessageContent{StringValue: volcengine.String(system)},
			},
			{
				Role:    volcModel.ChatMessageRoleUser,
				Content: &volcModel.ChatCompletionMessageContent{StringValue: volcengine.String(user)},
			},
		},
	}
}

var _ Assistant = (*Volcengine)(nil)
