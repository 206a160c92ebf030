package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"promptvault/internal/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type ossStorage struct {
	bucket *oss.Bucket
	prefix string
}

func NewOSSStorage(cfg config.Config) (Storage, error) {
	endpoint := strings.TrimSpace(cfg.StorageOSSEndpoint)
	bucketName := strings.TrimSpace(cfg.StorageOSSBucket)
	accessKey := strings.TrimSpace(cfg.StorageOSSAccessKeyID)
	secretKey := strings.TrimSpace(cfg.StorageOSSAccessKeySecret)
	switch {
	case endpoint == "":
		return nil, errors.New("storage: missing OSS endpoint")
	case bucketName == "":
		return nil, errors.New("storage: missing OSS bucket")
	case accessKey == "" || secretKey == "":
		return nil, errors.New("storage: missing OSS credentials")
	}

	client, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("storage: create OSS client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("storage: open OSS bucket: %w", err)
	}

	return &ossStorage{
		bucket: bucket,
		prefix: trimPrefix(cfg.StorageOSSPrefix),
	}, nil
}

func (s *ossStorage) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	key, err := objectKey(ctx, data, s.prefix, opts)
	if err != nil {
		return "", err
	}

	options := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentTypeFor(opts)),
		oss.ContentDisposition(attachmentDisposition(key)),
	}
	// OSS 按 x-oss-meta-* 头写入元数据，排序保证请求稳定
	names := make([]string, 0, len(opts.Metadata))
	for name := range opts.Metadata {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		options = append(options, oss.Meta(name, opts.Metadata[name]))
	}

	if err := s.bucket.PutObject(key, bytes.NewReader(data), options...); err != nil {
		var svcErr oss.ServiceError
		if errors.As(err, &svcErr) {
			return "", fmt.Errorf("put object %s: %s: %w", key, svcErr.Code, err)
		}
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return key, nil
}

var _ Storage = (*ossStorage)(nil)
