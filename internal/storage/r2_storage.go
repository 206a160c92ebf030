package storage

import (
	"errors"
	"fmt"
	"strings"

	"promptvault/internal/config"
)

// NewR2Storage 使用 S3 协议访问 Cloudflare R2，R2 要求 path-style 访问
func NewR2Storage(cfg config.Config) (Storage, error) {
	bucket := strings.TrimSpace(cfg.StorageR2Bucket)
	if bucket == "" {
		return nil, errors.New("storage: missing R2 bucket")
	}
	endpoint, err := r2Endpoint(cfg.StorageR2Endpoint, cfg.StorageR2AccountID)
	if err != nil {
		return nil, err
	}

	region := strings.TrimSpace(cfg.StorageR2Region)
	if region == "" {
		region = "auto"
	}

	client, err := newS3Client(s3ClientOptions{
		Region:          region,
		Endpoint:        endpoint,
		AccessKeyID:     cfg.StorageR2AccessKeyID,
		SecretAccessKey: cfg.StorageR2SecretAccessKey,
		ForcePathStyle:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: create R2 client: %w", err)
	}

	return &remoteS3Storage{
		client: client,
		bucket: bucket,
		prefix: trimPrefix(cfg.StorageR2Prefix),
	}, nil
}

// r2Endpoint 优先使用显式 endpoint，否则由 account id 推导
func r2Endpoint(endpoint, accountID string) (string, error) {
	if endpoint = normalizeEndpoint(endpoint); endpoint != "" {
		return endpoint, nil
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", errors.New("storage: missing R2 endpoint or account id")
	}
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID), nil
}
