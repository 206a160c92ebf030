package api

import (
	"errors"
	"net/http"
	"strings"

	"promptvault/internal/entity"
	"promptvault/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) ListTags(c *gin.Context) {
	ctx, cancel := repoContext(c)
	defer cancel()

	tags, err := h.prompts.ListTags(ctx)
	if err != nil {
		respondServiceError(c, err, "tag", "list_tags")
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *HTTPHandler) CreateTag(c *gin.Context) {
	var req entity.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		MissingField(c, "name")
		return
	}

	ctx, cancel := repoContext(c)
	defer cancel()

	tag, err := h.prompts.CreateTag(ctx, req.Name)
	if errors.Is(err, model.ErrDuplicate) {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeTagExists, "tag already exists", gin.H{"name": strings.TrimSpace(req.Name)})
		return
	}
	if err != nil {
		respondServiceError(c, err, "tag", "create_tag")
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *HTTPHandler) ListPromptsByTag(c *gin.Context) {
	tagID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := repoContext(c)
	defer cancel()

	if _, err := h.prompts.GetTag(ctx, tagID); err != nil {
		respondServiceError(c, err, "tag", "load_tag")
		return
	}

	prompts, err := h.prompts.PromptsByTag(ctx, tagID)
	if err != nil {
		respondServiceError(c, err, "prompt", "list_tag_prompts")
		return
	}
	c.JSON(http.StatusOK, prompts)
}
