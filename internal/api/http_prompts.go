package api

import (
	"net/http"
	"strings"

	"promptvault/internal/entity"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) ListPublicPrompts(c *gin.Context) {
	ctx, cancel := repoContext(c)
	defer cancel()

	prompts, err := h.prompts.PublicPrompts(ctx)
	if err != nil {
		respondServiceError(c, err, "prompt", "list_prompts")
		return
	}
	c.JSON(http.StatusOK, prompts)
}

func (h *HTTPHandler) GetPrompt(c *gin.Context) {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := repoContext(c)
	defer cancel()

	detail, err := h.prompts.Detail(ctx, promptID)
	if err != nil {
		respondServiceError(c, err, "prompt", "load_prompt")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *HTTPHandler) CreatePrompt(c *gin.Context) {
	var req entity.PromptCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := repoContext(c)
	defer cancel()

	detail, err := h.prompts.CreatePrompt(ctx, req)
	if err != nil {
		respondServiceError(c, err, "prompt", "create_prompt")
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func (h *HTTPHandler) UpdatePrompt(c *gin.Context) {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req entity.PromptUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := repoContext(c)
	defer cancel()

	detail, err := h.prompts.UpdatePrompt(ctx, promptID, req)
	if err != nil {
		respondServiceError(c, err, "prompt", "update_prompt")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *HTTPHandler) DeletePrompt(c *gin.Context) {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := repoContext(c)
	defer cancel()

	deleted, err := h.prompts.DeletePrompt(ctx, promptID)
	if err != nil {
		respondServiceError(c, err, "prompt", "delete_prompt")
		return
	}
	if !deleted {
		NotFound(c, ErrCodePromptNotFound, "prompt not found")
		return
	}
	c.JSON(http.StatusOK, entity.MessageResponse{Message: "Prompt deleted successfully"})
}

// SearchPrompts 支持 /prompts/search/:query 与 /prompts/search?q=
func (h *HTTPHandler) SearchPrompts(c *gin.Context) {
	query := c.Param("query")
	if strings.TrimSpace(query) == "" {
		query = c.Query("q")
	}

	ctx, cancel := repoContext(c)
	defer cancel()

	prompts, err := h.prompts.Search(ctx, query)
	if err != nil {
		respondServiceError(c, err, "prompt", "search_prompts")
		return
	}
	c.JSON(http.StatusOK, prompts)
}

func (h *HTTPHandler) ListUserPrompts(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := repoContext(c)
	defer cancel()

	if _, err := h.prompts.GetUser(ctx, userID); err != nil {
		respondServiceError(c, err, "user", "load_user")
		return
	}

	prompts, err := h.prompts.UserPrompts(ctx, userID)
	if err != nil {
		respondServiceError(c, err, "prompt", "list_user_prompts")
		return
	}
	c.JSON(http.StatusOK, prompts)
}
