package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"promptvault/internal/auth"
	"promptvault/internal/config"
	"promptvault/internal/entity"

	"gorm.io/gorm"
)

// DefaultCategories 初始分类，顺序即 id 顺序
var DefaultCategories = []entity.DbCategory{
	{Name: "Creative Writing", Icon: "palette", Color: "blue"},
	{Name: "Business", Icon: "chart-simple", Color: "green"},
	{Name: "Programming", Icon: "code", Color: "purple"},
	{Name: "Education", Icon: "lightbulb", Color: "amber"},
	{Name: "Health", Icon: "heart", Color: "red"},
}

// DefaultTags 初始标签词汇表
var DefaultTags = []string{
	"writing", "storytelling", "fiction", "business", "marketing",
	"analysis", "coding", "optimization", "software", "education",
	"learning", "teaching", "wellness", "health", "lifestyle",
	"character", "creative",
}

// SeedDefaults ensures the default user, categories and tags exist. Records
// already present under the same unique name are left untouched, so running
// it against a persistent store twice is harmless. It returns the default user.
func SeedDefaults(ctx context.Context, repo Repository, cfg config.Config) (*entity.DbUser, error) {
	if repo == nil {
		return nil, errors.New("repository is nil")
	}

	user, err := seedDefaultUser(ctx, repo, cfg)
	if err != nil {
		return nil, err
	}

	for _, seed := range DefaultCategories {
		_, err := repo.GetCategoryByName(ctx, seed.Name)
		switch {
		case err == nil:
			continue
		case errors.Is(err, gorm.ErrRecordNotFound):
			category := seed
			if err := repo.CreateCategory(ctx, &category); err != nil {
				return nil, fmt.Errorf("seed category %q: %w", seed.Name, err)
			}
		default:
			return nil, err
		}
	}

	for _, name := range DefaultTags {
		tag := entity.DbTag{Name: name}
		if err := repo.CreateTag(ctx, &tag); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("seed tag %q: %w", name, err)
		}
	}

	return user, nil
}

func seedDefaultUser(ctx context.Context, repo Repository, cfg config.Config) (*entity.DbUser, error) {
	username := strings.TrimSpace(cfg.DefaultUsername)
	if username == "" {
		username = "John Doe"
	}

	existing, err := repo.GetUserByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	password := cfg.DefaultPassword
	if strings.TrimSpace(password) == "" {
		password = "password"
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash default password: %w", err)
	}

	user := entity.DbUser{Username: username, Password: hashed}
	if err := repo.CreateUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("seed default user: %w", err)
	}
	return &user, nil
}
