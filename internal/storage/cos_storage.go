package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"promptvault/internal/config"

	"github.com/tencentyun/cos-go-sdk-v5"
)

type cosStorage struct {
	client *cos.Client
	prefix string
}

func NewCOSStorage(cfg config.Config) (Storage, error) {
	baseURL := strings.TrimSpace(cfg.StorageCOSBucketURL)
	if baseURL == "" {
		return nil, errors.New("storage: missing COS bucket URL")
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil || parsedURL.Host == "" {
		return nil, fmt.Errorf("storage: invalid COS bucket URL %q", baseURL)
	}

	secretID := strings.TrimSpace(cfg.StorageCOSSecretID)
	secretKey := strings.TrimSpace(cfg.StorageCOSSecretKey)
	if secretID == "" || secretKey == "" {
		return nil, errors.New("storage: missing COS credentials")
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: parsedURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  secretID,
			SecretKey: secretKey,
		},
	})

	return &cosStorage{
		client: client,
		prefix: trimPrefix(cfg.StorageCOSPrefix),
	}, nil
}

func (s *cosStorage) Save(ctx context.Context, data []byte, opts SaveOptions) (string, error) {
	key, err := objectKey(ctx, data, s.prefix, opts)
	if err != nil {
		return "", err
	}

	headers := &cos.ObjectPutHeaderOptions{
		ContentType:        contentTypeFor(opts),
		ContentDisposition: attachmentDisposition(key),
		ContentLength:      int64(len(data)),
	}
	if len(opts.Metadata) > 0 {
		meta := http.Header{}
		for name, value := range opts.Metadata {
			meta.Set("x-cos-meta-"+name, value)
		}
		headers.XCosMetaXXX = &meta
	}

	resp, err := s.client.Object.Put(ctx, key, bytes.NewReader(data), &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: headers,
	})
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		var cosErr *cos.ErrorResponse
		if errors.As(err, &cosErr) {
			return "", fmt.Errorf("put object %s: %s: %w", key, cosErr.Code, err)
		}
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return key, nil
}

var _ Storage = (*cosStorage)(nil)
