package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 远端对象存储上传可能较慢
const exportTimeout = 30 * time.Second

// CreateExport 将公开提示词归档到存储后端
func (h *HTTPHandler) CreateExport(c *gin.Context) {
	if !h.exporter.Enabled() {
		ServiceUnavailable(c, "export storage is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), exportTimeout)
	defer cancel()

	result, err := h.exporter.ExportPublic(ctx)
	if err != nil {
		respondServiceError(c, err, "prompt", "export_prompts")
		return
	}

	logrus.WithFields(logrus.Fields{
		"location":   result.Location,
		"count":      result.Count,
		"request_id": c.GetString(requestIDKey),
	}).Info("export_created")
	c.JSON(http.StatusCreated, result)
}
