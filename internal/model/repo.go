package model

import (
	"context"

	"promptvault/internal/entity"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record with the requested key does not exist.
// It aliases gorm's sentinel so every backend reports absence the same way.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate is returned when a unique name or username is already taken.
var ErrDuplicate = gorm.ErrDuplicatedKey

// Repository 定义数据存储操作接口
type Repository interface {
	// 用户
	CreateUser(ctx context.Context, user *entity.DbUser) error
	GetUser(ctx context.Context, id uint) (*entity.DbUser, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.DbUser, error)

	// 分类
	CreateCategory(ctx context.Context, category *entity.DbCategory) error
	GetCategory(ctx context.Context, id uint) (*entity.DbCategory, error)
	GetCategoryByName(ctx context.Context, name string) (*entity.DbCategory, error)
	ListCategories(ctx context.Context) ([]entity.DbCategory, error)

	// 标签
	CreateTag(ctx context.Context, tag *entity.DbTag) error
	GetTag(ctx context.Context, id uint) (*entity.DbTag, error)
	GetTagByName(ctx context.Context, name string) (*entity.DbTag, error)
	ListTags(ctx context.Context) ([]entity.DbTag, error)

	// 提示词
	CreatePrompt(ctx context.Context, prompt *entity.DbPrompt) error
	GetPrompt(ctx context.Context, id uint) (*entity.DbPrompt, error)
	ListPrompts(ctx context.Context) ([]entity.DbPrompt, error)
	UpdatePrompt(ctx context.Context, id uint, updates entity.PromptUpdates) (*entity.DbPrompt, error)
	DeletePrompt(ctx context.Context, id uint) (bool, error)

	// 提示词与标签的关联
	AttachTag(ctx context.Context, promptID, tagID uint) (*entity.DbPromptTag, error)
	DetachTag(ctx context.Context, promptID, tagID uint) (bool, error)
	TagsForPrompt(ctx context.Context, promptID uint) ([]entity.DbTag, error)
	PromptIDsForTag(ctx context.Context, tagID uint) ([]uint, error)
}
