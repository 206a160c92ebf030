package sql

import (
	"context"
	"fmt"
	"time"

	"promptvault/internal/entity"

	"gorm.io/gorm"
)

// CreatePrompt inserts a prompt and stamps CreatedAt.
func (r *GormRepository) CreatePrompt(ctx context.Context, prompt *entity.DbPrompt) error {
	if err := r.ready(); err != nil {
		return err
	}
	if prompt == nil {
		return fmt.Errorf("prompt is nil")
	}
	prompt.ID = 0
	prompt.CreatedAt = time.Now().UTC()
	// Select("*") 确保 is_public=false 不会被 default:true 覆盖
	return r.db.WithContext(ctx).Select("*").Omit("id").Create(prompt).Error
}

// GetPrompt loads a prompt by ID.
func (r *GormRepository) GetPrompt(ctx context.Context, id uint) (*entity.DbPrompt, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var prompt entity.DbPrompt
	if err := r.db.WithContext(ctx).First(&prompt, id).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

// ListPrompts returns every prompt in id order.
func (r *GormRepository) ListPrompts(ctx context.Context) ([]entity.DbPrompt, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var prompts []entity.DbPrompt
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

// UpdatePrompt applies the non-nil fields and returns the stored row.
func (r *GormRepository) UpdatePrompt(ctx context.Context, id uint, updates entity.PromptUpdates) (*entity.DbPrompt, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var prompt entity.DbPrompt
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&prompt, id).Error; err != nil {
			return err
		}
		if updates.IsEmpty() {
			return nil
		}
		if err := tx.Model(&entity.DbPrompt{}).Where("id = ?", id).Updates(updates.ToMap()).Error; err != nil {
			return err
		}
		updates.Apply(&prompt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &prompt, nil
}

// DeletePrompt removes the prompt and its tag associations in one transaction.
func (r *GormRepository) DeletePrompt(ctx context.Context, id uint) (bool, error) {
	if err := r.ready(); err != nil {
		return false, err
	}
	if id == 0 {
		return false, nil
	}

	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&entity.DbPrompt{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("prompt_id = ?", id).Delete(&entity.DbPromptTag{}).Error
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
