package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"promptvault/internal/entity"
	"promptvault/internal/storage"

	"github.com/sirupsen/logrus"
)

const exportCategory = "exports"

// ExportService 将公开提示词库快照写入存储后端
type ExportService struct {
	prompts    *PromptService
	storage    storage.Storage
	publicBase string
	now        func() time.Time
}

// NewExportService creates an exporter. A nil store disables exports.
// publicBase is prefixed to the returned object key.
func NewExportService(prompts *PromptService, store storage.Storage, publicBase string) *ExportService {
	return &ExportService{
		prompts:    prompts,
		storage:    store,
		publicBase: publicBase,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Enabled reports whether a storage backend is configured.
func (s *ExportService) Enabled() bool {
	return s != nil && s.storage != nil
}

// ExportPublic writes the current public prompts and the category list as
// indented JSON and returns where the snapshot was stored.
func (s *ExportService) ExportPublic(ctx context.Context) (*entity.ExportResult, error) {
	if !s.Enabled() {
		return nil, ErrStorageDisabled
	}

	prompts, err := s.prompts.PublicPrompts(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect public prompts: %w", err)
	}
	categories, err := s.prompts.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	generatedAt := s.now()
	snapshot := entity.PromptExport{
		GeneratedAt: generatedAt,
		Count:       len(prompts),
		Categories:  categories,
		Prompts:     prompts,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	key, err := s.storage.Save(ctx, data, storage.SaveOptions{
		Category:    exportCategory,
		Extension:   "json",
		BaseName:    "prompts-" + generatedAt.Format("20060102-150405"),
		ContentType: "application/json",
		Metadata: map[string]string{
			"prompt-count": strconv.Itoa(len(prompts)),
			"generated-at": generatedAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		logrus.WithError(err).WithField("count", len(prompts)).Error("prompt_export_failed")
		return nil, fmt.Errorf("save export: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"key":   key,
		"count": len(prompts),
		"bytes": len(data),
	}).Info("prompt_export_saved")

	return &entity.ExportResult{
		Location: storage.Location(s.publicBase, key),
		Count:    len(prompts),
	}, nil
}
