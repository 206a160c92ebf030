package api

import (
	"net/http"
	"strings"

	"promptvault/internal/entity"
	"promptvault/internal/llm"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// EnhancePrompt 调用语言模型给出最多三条改进建议
func (h *HTTPHandler) EnhancePrompt(c *gin.Context) {
	if h.assistant == nil {
		ServiceUnavailable(c, "AI assistant is not configured")
		return
	}

	var req entity.EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		MissingField(c, "prompt")
		return
	}

	// 模型调用不设超时，由客户端请求上下文控制
	suggestions, err := h.assistant.Enhance(c.Request.Context(), req.Prompt)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"provider":   h.assistant.Name(),
			"request_id": c.GetString(requestIDKey),
		}).Error("enhance_prompt_failed")
		ErrorResponse(c, http.StatusInternalServerError, ErrCodeAIFailed, "failed to enhance prompt")
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	c.JSON(http.StatusOK, entity.EnhanceResponse{Suggestions: suggestions})
}

// GeneratePrompt 根据主题生成新的提示词
func (h *HTTPHandler) GeneratePrompt(c *gin.Context) {
	if h.assistant == nil {
		ServiceUnavailable(c, "AI assistant is not configured")
		return
	}

	var req entity.GeneratePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		MissingField(c, "topic")
		return
	}

	prompt, err := h.assistant.Generate(c.Request.Context(), llm.GenerateRequest{
		Topic:       req.Topic,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"provider":   h.assistant.Name(),
			"request_id": c.GetString(requestIDKey),
		}).Error("generate_prompt_failed")
		ErrorResponse(c, http.StatusInternalServerError, ErrCodeAIFailed, "failed to generate prompt")
		return
	}
	c.JSON(http.StatusOK, entity.GeneratePromptResponse{Prompt: prompt})
}
