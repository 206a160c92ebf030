package sql

import (
	"context"
	"errors"

	"promptvault/internal/entity"

	"gorm.io/gorm"
)

// AttachTag links a tag to a prompt, returning the existing link if present.
func (r *GormRepository) AttachTag(ctx context.Context, promptID, tagID uint) (*entity.DbPromptTag, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}

	var link entity.DbPromptTag
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("prompt_id = ? AND tag_id = ?", promptID, tagID).First(&link).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		link = entity.DbPromptTag{PromptID: promptID, TagID: tagID}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DetachTag removes the association and reports whether one existed.
func (r *GormRepository) DetachTag(ctx context.Context, promptID, tagID uint) (bool, error) {
	if err := r.ready(); err != nil {
		return false, err
	}
	result := r.db.WithContext(ctx).
		Where("prompt_id = ? AND tag_id = ?", promptID, tagID).
		Delete(&entity.DbPromptTag{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// TagsForPrompt resolves a prompt's tags in attachment order.
func (r *GormRepository) TagsForPrompt(ctx context.Context, promptID uint) ([]entity.DbTag, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	tags := make([]entity.DbTag, 0)
	err := r.db.WithContext(ctx).
		Model(&entity.DbTag{}).
		Joins("JOIN prompt_tags ON prompt_tags.tag_id = tags.id").
		Where("prompt_tags.prompt_id = ?", promptID).
		Order("prompt_tags.id ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// PromptIDsForTag lists the prompts carrying the tag.
func (r *GormRepository) PromptIDsForTag(ctx context.Context, tagID uint) ([]uint, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&entity.DbPromptTag{}).
		Where("tag_id = ?", tagID).
		Order("id ASC").
		Pluck("prompt_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
