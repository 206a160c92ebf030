package api

import (
	"errors"
	"net/http"
	"strings"

	"promptvault/internal/entity"
	"promptvault/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) CreateUser(c *gin.Context) {
	var req entity.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		MissingField(c, "username")
		return
	}
	if req.Password == "" {
		MissingField(c, "password")
		return
	}

	ctx, cancel := repoContext(c)
	defer cancel()

	user, err := h.prompts.CreateUser(ctx, username, req.Password)
	if errors.Is(err, model.ErrDuplicate) {
		ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeUserExists, "username already taken", gin.H{"username": username})
		return
	}
	if err != nil {
		respondServiceError(c, err, "user", "create_user")
		return
	}
	c.JSON(http.StatusCreated, user)
}
