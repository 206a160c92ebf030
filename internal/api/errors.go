package api

import (
	"errors"
	"net/http"
	"strings"

	"promptvault/internal/model"
	"promptvault/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 错误码定义
const (
	// 通用错误码
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeInvalidID          = "ERR_INVALID_ID"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	// 资源错误码
	ErrCodePromptNotFound   = "ERR_PROMPT_NOT_FOUND"
	ErrCodeCategoryNotFound = "ERR_CATEGORY_NOT_FOUND"
	ErrCodeTagNotFound      = "ERR_TAG_NOT_FOUND"
	ErrCodeUserNotFound     = "ERR_USER_NOT_FOUND"

	// 业务逻辑错误码
	ErrCodeMissingField    = "ERR_MISSING_FIELD"
	ErrCodeInvalidCategory = "ERR_INVALID_CATEGORY"
	ErrCodeInvalidUser     = "ERR_INVALID_USER"
	ErrCodeTagExists       = "ERR_TAG_EXISTS"
	ErrCodeUserExists      = "ERR_USER_EXISTS"
	ErrCodeAIFailed        = "ERR_AI_FAILED"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// 常用错误响应快捷函数

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// ServiceUnavailable 503 服务不可用
func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// notFoundCodes 资源类型到错误码的映射
var notFoundCodes = map[string]string{
	"prompt":   ErrCodePromptNotFound,
	"category": ErrCodeCategoryNotFound,
	"tag":      ErrCodeTagNotFound,
	"user":     ErrCodeUserNotFound,
}

// respondServiceError maps service and repository errors onto the API error
// taxonomy. resource names what a not-found error refers to; action is only
// used for logging unexpected failures.
func respondServiceError(c *gin.Context, err error, resource, action string) {
	switch {
	case errors.Is(err, service.ErrInvalidCategory):
		BadRequest(c, ErrCodeInvalidCategory, "category does not exist")
	case errors.Is(err, service.ErrInvalidUser):
		BadRequest(c, ErrCodeInvalidUser, "user does not exist")
	case errors.Is(err, service.ErrMissingField):
		BadRequest(c, ErrCodeMissingField, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		BadRequest(c, ErrCodeInvalidRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		code, ok := notFoundCodes[resource]
		if !ok {
			code = ErrCodeInvalidRequest
		}
		NotFound(c, code, resource+" not found")
	case errors.Is(err, service.ErrStorageDisabled):
		ServiceUnavailable(c, "export storage is not configured")
	default:
		logrus.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Error(action + "_failed")
		InternalError(c, "failed to "+strings.ReplaceAll(action, "_", " "))
	}
}
