package memory

import (
	"context"
	"errors"
	"strings"

	"promptvault/internal/entity"

	"gorm.io/gorm"
)

// CreateTag stores a new tag. A tag whose name differs only by case from an
// existing one is rejected with gorm.ErrDuplicatedKey.
func (r *Repository) CreateTag(ctx context.Context, tag *entity.DbTag) error {
	if tag == nil {
		return errors.New("tag is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findTagByNameLocked(tag.Name) != nil {
		return gorm.ErrDuplicatedKey
	}

	tag.ID = r.tags.allocate()
	r.tags.put(tag.ID, *tag)
	return nil
}

// GetTag loads a tag by id.
func (r *Repository) GetTag(ctx context.Context, id uint) (*entity.DbTag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tag, ok := r.tags.get(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &tag, nil
}

// GetTagByName matches names case-insensitively.
func (r *Repository) GetTagByName(ctx context.Context, name string) (*entity.DbTag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if tag := r.findTagByNameLocked(name); tag != nil {
		return tag, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ListTags returns every tag in insertion order.
func (r *Repository) ListTags(ctx context.Context) ([]entity.DbTag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tags.values(), nil
}

func (r *Repository) findTagByNameLocked(name string) *entity.DbTag {
	var found *entity.DbTag
	r.tags.each(func(tag entity.DbTag) bool {
		if strings.EqualFold(tag.Name, name) {
			found = &tag
			return false
		}
		return true
	})
	return found
}
