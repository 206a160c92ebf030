package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) ListCategories(c *gin.Context) {
	ctx, cancel := repoContext(c)
	defer cancel()

	categories, err := h.prompts.ListCategories(ctx)
	if err != nil {
		respondServiceError(c, err, "category", "list_categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *HTTPHandler) ListPromptsByCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := repoContext(c)
	defer cancel()

	if _, err := h.prompts.GetCategory(ctx, categoryID); err != nil {
		respondServiceError(c, err, "category", "load_category")
		return
	}

	prompts, err := h.prompts.PromptsByCategory(ctx, categoryID)
	if err != nil {
		respondServiceError(c, err, "prompt", "list_category_prompts")
		return
	}
	c.JSON(http.StatusOK, prompts)
}
