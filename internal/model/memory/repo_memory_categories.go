package memory

import (
	"context"
	"errors"
	"strings"

	"promptvault/internal/entity"

	"gorm.io/gorm"
)

// CreateCategory assigns the next category id and stores the record.
func (r *Repository) CreateCategory(ctx context.Context, category *entity.DbCategory) error {
	if category == nil {
		return errors.New("category is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	category.ID = r.categories.allocate()
	r.categories.put(category.ID, *category)
	return nil
}

// GetCategory loads a category by id.
func (r *Repository) GetCategory(ctx context.Context, id uint) (*entity.DbCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories.get(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &category, nil
}

// GetCategoryByName matches names case-insensitively.
func (r *Repository) GetCategoryByName(ctx context.Context, name string) (*entity.DbCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *entity.DbCategory
	r.categories.each(func(category entity.DbCategory) bool {
		if strings.EqualFold(category.Name, name) {
			found = &category
			return false
		}
		return true
	})
	if found == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return found, nil
}

// ListCategories returns every category in insertion order.
func (r *Repository) ListCategories(ctx context.Context) ([]entity.DbCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.categories.values(), nil
}
