package sql

import (
	"context"
	"fmt"
	"strings"

	"promptvault/internal/entity"

	"gorm.io/gorm"
)

// CreateCategory inserts a new category.
func (r *GormRepository) CreateCategory(ctx context.Context, category *entity.DbCategory) error {
	if err := r.ready(); err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("category is nil")
	}
	return r.db.WithContext(ctx).Create(category).Error
}

// GetCategory loads a category by ID.
func (r *GormRepository) GetCategory(ctx context.Context, id uint) (*entity.DbCategory, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var category entity.DbCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategoryByName matches the name case-insensitively.
func (r *GormRepository) GetCategoryByName(ctx context.Context, name string) (*entity.DbCategory, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var category entity.DbCategory
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Order("id ASC").
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns all categories ordered by id.
func (r *GormRepository) ListCategories(ctx context.Context) ([]entity.DbCategory, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var categories []entity.DbCategory
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
