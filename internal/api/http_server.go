package api

import (
	"context"
	"net/http"
	"time"

	"promptvault/internal/llm"
	"promptvault/internal/service"

	"github.com/gin-gonic/gin"
)

const repoTimeout = 5 * time.Second

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	prompts   *service.PromptService
	assistant llm.Assistant
	exporter  *service.ExportService
}

// NewHTTPHandler 创建 HTTP 处理器实例。assistant 与 exporter 可以为 nil，
// 对应接口返回 503。
func NewHTTPHandler(prompts *service.PromptService, assistant llm.Assistant, exporter *service.ExportService) *HTTPHandler {
	return &HTTPHandler{
		prompts:   prompts,
		assistant: assistant,
		exporter:  exporter,
	}
}

// RegisterRoutes 挂载 /health 与 /api 路由
func (h *HTTPHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	apiGroup := r.Group("/api")

	apiGroup.GET("/categories", h.ListCategories)
	apiGroup.GET("/categories/:id/prompts", h.ListPromptsByCategory)

	apiGroup.GET("/prompts", h.ListPublicPrompts)
	apiGroup.POST("/prompts", h.CreatePrompt)
	apiGroup.GET("/prompts/search", h.SearchPrompts)
	apiGroup.GET("/prompts/search/:query", h.SearchPrompts)
	apiGroup.GET("/prompts/:id", h.GetPrompt)
	apiGroup.PUT("/prompts/:id", h.UpdatePrompt)
	apiGroup.DELETE("/prompts/:id", h.DeletePrompt)

	apiGroup.GET("/tags", h.ListTags)
	apiGroup.POST("/tags", h.CreateTag)
	apiGroup.GET("/tags/:id/prompts", h.ListPromptsByTag)

	apiGroup.POST("/users", h.CreateUser)
	apiGroup.GET("/users/:id/prompts", h.ListUserPrompts)

	aiGroup := apiGroup.Group("/ai")
	aiGroup.POST("/enhance", h.EnhancePrompt)
	aiGroup.POST("/generate", h.GeneratePrompt)

	apiGroup.POST("/exports", h.CreateExport)
}

// repoContext 存储访问使用带超时的上下文
func repoContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), repoTimeout)
}
