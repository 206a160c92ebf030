package memory

import (
	"context"
	"errors"

	"promptvault/internal/entity"

	"gorm.io/gorm"
)

// CreateUser assigns the next user id and stores the record.
func (r *Repository) CreateUser(ctx context.Context, user *entity.DbUser) error {
	if user == nil {
		return errors.New("user is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	duplicate := false
	r.users.each(func(existing entity.DbUser) bool {
		duplicate = existing.Username == user.Username
		return !duplicate
	})
	if duplicate {
		return gorm.ErrDuplicatedKey
	}

	user.ID = r.users.allocate()
	r.users.put(user.ID, *user)
	return nil
}

// GetUser loads a user by id.
func (r *Repository) GetUser(ctx context.Context, id uint) (*entity.DbUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users.get(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

// GetUserByUsername returns the first user whose username matches exactly.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*entity.DbUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *entity.DbUser
	r.users.each(func(user entity.DbUser) bool {
		if user.Username == username {
			found = &user
			return false
		}
		return true
	})
	if found == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return found, nil
}
