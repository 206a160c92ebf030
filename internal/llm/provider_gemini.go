package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiDefaultModel   = "gemini-pro"
)

// Request payload pieces ----------------------------------------------------
type (
	geminiPart struct {
		Text string `json:"text,omitempty"`
	}
	geminiContent struct {
		Role  string       `json:"role,omitempty"`
		Parts []geminiPart `json:"parts"`
	}
	geminiRequest struct {
		Contents []geminiContent `json:"contents"`
	}
)

// Response payload pieces ---------------------------------------------------
type (
	geminiCandidate struct {
		FinishReason string        `json:"finishReason,omitempty"`
		Content      geminiContent `json:"content"`
	}
	geminiError struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	geminiResponse struct {
		Candidates []geminiCandidate `json:"candidates"`
		Error      *geminiError      `json:"error,omitempty"`
	}
)

// GeminiConfig configures the Gemini adapter.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string       // Optional (tests, gateways)
	HTTPClient *http.Client // Optional (tests)
}

// Gemini talks to the generateContent REST endpoint. Suggestions are read
// from a blank-line separated reply.
type Gemini struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGemini(cfg GeminiConfig) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini api key is not configured")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = geminiDefaultModel
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Gemini{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		model:      model,
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

func (g *Gemini) Name() string {
	return "gemini"
}

func (g *Gemini) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	logger := providerLogger(ctx, g.Name(), g.model)
	logger.WithField("topic", logSnippet(req.Topic)).Info("llm_generate_start")

	text, err := g.generateContent(ctx, buildGeminiGenerateInstruction(req))
	if err != nil {
		logger.WithError(err).Error("llm_generate_failed")
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		err := fmt.Errorf("%w: gemini returned an empty prompt", ErrUpstream)
		logger.WithError(err).Warn("llm_generate_empty")
		return "", err
	}

	logger.WithField("prompt_preview", logSnippet(text)).Info("llm_generate_done")
	return text, nil
}

func (g *Gemini) Enhance(ctx context.Context, prompt string) ([]string, error) {
	logger := providerLogger(ctx, g.Name(), g.model)
	logger.WithField("prompt_preview", logSnippet(prompt)).Info("llm_enhance_start")

	text, err := g.generateContent(ctx, buildGeminiEnhanceInstruction(prompt))
	if err != nil {
		logger.WithError(err).Error("llm_enhance_failed")
		return nil, err
	}

	suggestions := splitSuggestions(text)
	logger.WithField("suggestion_count", len(suggestions)).Info("llm_enhance_done")
	return suggestions, nil
}

// generateContent sends one user turn and joins the text parts of the first candidate.
func (g *Gemini) generateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini marshal request: %w", err)
	}

	targetURL := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini create request: %w", err)
	}
	// 使用 header 传递 key，避免出现在 URL 日志中
	httpReq.Header.Set("x-goog-api-key", g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: gemini send request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: gemini read response: %v", ErrUpstream, err)
	}

	var parsed geminiResponse
	decodeErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode != http.StatusOK {
		message := strings.TrimSpace(string(raw))
		if decodeErr == nil && parsed.Error != nil && parsed.Error.Message != "" {
			message = parsed.Error.Message
		}
		return "", fmt.Errorf("%w: gemini http %d: %s", ErrUpstream, resp.StatusCode, logSnippet(message))
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w: gemini decode response: %v", ErrUpstream, decodeErr)
	}
	if parsed.Error != nil && parsed.Error.Message != "" {
		return "", fmt.Errorf("%w: gemini: %s", ErrUpstream, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("%w: gemini returned no candidates", ErrUpstream)
	}

	var b strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}

var _ Assistant = (*Gemini)(nil)
