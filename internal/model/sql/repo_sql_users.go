package sql

import (
	"context"
	"fmt"

	"promptvault/internal/entity"

	"gorm.io/gorm"
)

// CreateUser persists a new user record.
func (r *GormRepository) CreateUser(ctx context.Context, user *entity.DbUser) error {
	if err := r.ready(); err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user is nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.DbUser{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(user).Error
	})
}

// GetUser loads a user by ID.
func (r *GormRepository) GetUser(ctx context.Context, id uint) (*entity.DbUser, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var user entity.DbUser
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername loads a user by exact username.
func (r *GormRepository) GetUserByUsername(ctx context.Context, username string) (*entity.DbUser, error) {
	if err := r.ready(); err != nil {
		return nil, err
	}
	var user entity.DbUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).Order("id ASC").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
