package api

import (
	"strings"

	"promptvault/internal/storage"

	"github.com/gin-gonic/gin"
)

// MountLocalFiles 本地存储时通过 publicBase 提供导出文件下载。
// 远端存储或绝对 URL 不挂载，返回空字符串。
func MountLocalFiles(r *gin.Engine, store storage.Storage, publicBase string) string {
	localProvider, ok := store.(storage.LocalBaseDirProvider)
	if !ok {
		return ""
	}
	prefix := NormalisePublicBase(publicBase)
	if strings.HasPrefix(prefix, "http://") || strings.HasPrefix(prefix, "https://") {
		return ""
	}
	r.Static(prefix, localProvider.LocalBaseDir())
	return prefix
}

// NormalisePublicBase 规范化公共 URL 基础路径
func NormalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = "/files"
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}
