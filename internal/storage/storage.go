package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"promptvault/internal/config"
)

const (
	// TypeLocal 表示本地文件系统存储。
	TypeLocal = "local"
	// TypeS3 表示 Amazon S3 或兼容的存储后端。
	TypeS3 = "s3"
	// TypeOSS 表示阿里云 OSS 存储。
	TypeOSS = "oss"
	// TypeCOS 表示腾讯云 COS 存储。
	TypeCOS = "cos"
	// TypeR2 表示 Cloudflare R2 存储。
	TypeR2 = "r2"
	// TypeNone 关闭导出存储。
	TypeNone = "none"
)

// SaveOptions 控制存储后端如何持久化文件。
//
// Category 用于组织对象路径，Extension 为文件扩展名（可带前导点）。
// ContentType 为空时根据扩展名推断。Metadata 写入对象的自定义元数据
// （本地存储忽略）。
type SaveOptions struct {
	Category    string
	Extension   string
	BaseName    string
	ContentType string
	Metadata    map[string]string
}

// Storage 持久化二进制数据并返回存储相关的对象键（本地存储为相对路径）。
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
}

// LocalBaseDirProvider 由暴露可通过 HTTP 直接提供服务的本地目录的存储驱动实现。
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// NewStorage 根据配置实例化存储后端。STORAGE_TYPE=none 时返回 nil。
func NewStorage(cfg config.Config) (Storage, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	switch typeName {
	case "", TypeLocal:
		return NewLocalStorage(cfg.StorageLocalDir)
	case TypeNone:
		return nil, nil
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeOSS:
		return NewOSSStorage(cfg)
	case TypeCOS:
		return NewCOSStorage(cfg)
	case TypeR2:
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}

func contentTypeFor(opts SaveOptions) string {
	if ct := strings.TrimSpace(opts.ContentType); ct != "" {
		return ct
	}
	return detectContentType(opts.Extension)
}

// objectKey 校验写入参数并生成带前缀的对象键
func objectKey(ctx context.Context, data []byte, prefix string, opts SaveOptions) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty payload")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := buildObjectPath(opts.Category, opts.BaseName, opts.Extension)
	if prefix != "" {
		key = joinPrefix(prefix, key)
	}
	return key, nil
}

// attachmentDisposition 让浏览器以原文件名下载导出文件
func attachmentDisposition(key string) string {
	return fmt.Sprintf("attachment; filename=%q", path.Base(key))
}
