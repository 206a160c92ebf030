package sql

import (
	"context"
	"fmt"
	"strings"

	"promptvault/internal/entity"

	"gorm.io/gorm"
)

// CreateTag inserts a new tag unless the name is already taken in any case.
func (r *GormRepository) CreateTag(ctx context.Context, tag *entity.DbTag) error {
	if err := r.ready(); err != nil {
		return err
	}
	if tag == nil {
		return fmt.Errorf("tag is nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.DbTag{}).Where("LOWER(name) = ?", strings.ToLower(tag.Name)).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(tag).Error
	})
}

// GetTag loads a tag by ID.
func (r *GormRepository) GetTag(ctx context.Context, id uint) (*entity.DbTag, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var tag entity.DbTag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetTagByName matches the name case-insensitively.
func (r *GormRepository) GetTagByName(ctx context.Context, name string) (*entity.DbTag, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var tag entity.DbTag
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Order("id ASC").
		First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListTags returns all tags ordered by id.
func (r *GormRepository) ListTags(ctx context.Context) ([]entity.DbTag, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var tags []entity.DbTag
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
