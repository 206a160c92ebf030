package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"promptvault/internal/auth"
	"promptvault/internal/entity"
	"promptvault/internal/entity/converter"
	"promptvault/internal/model"

	"github.com/sirupsen/logrus"
)

// CreatePrompt validates the references, stores the prompt, attaches the
// requested tags and returns the detailed view. A failing tag attachment
// leaves the prompt in place.
func (s *PromptService) CreatePrompt(ctx context.Context, req entity.PromptCreateRequest) (*entity.PromptWithDetails, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, missingField("title")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, missingField("content")
	}
	if err := s.requireCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	userID := req.UserID
	if userID == 0 {
		userID = s.defaultUserID
	}
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidUser, userID)
		}
		return nil, err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	prompt := entity.DbPrompt{
		Title:      title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		UserID:     userID,
		IsPublic:   isPublic,
	}
	if err := s.repo.CreatePrompt(ctx, &prompt); err != nil {
		return nil, err
	}

	for _, name := range req.Tags {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if err := s.attachByName(ctx, prompt.ID, name); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"prompt_id": prompt.ID,
				"tag":       name,
			}).Warn("prompt_tag_attach_failed")
			return nil, err
		}
	}

	return s.Detail(ctx, prompt.ID)
}

// UpdatePrompt applies a partial update. When req.Tags is non-nil the tag set
// is replaced by the named tags.
func (s *PromptService) UpdatePrompt(ctx context.Context, id uint, req entity.PromptUpdateRequest) (*entity.PromptWithDetails, error) {
	if _, err := s.repo.GetPrompt(ctx, id); err != nil {
		return nil, err
	}

	updates := entity.PromptUpdates{
		Content:    req.Content,
		CategoryID: req.CategoryID,
		IsPublic:   req.IsPublic,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, missingField("title")
		}
		updates.Title = &title
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return nil, missingField("content")
	}
	if req.CategoryID != nil {
		if err := s.requireCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	if !updates.IsEmpty() {
		if _, err := s.repo.UpdatePrompt(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	if req.Tags != nil {
		if err := s.SyncPromptTags(ctx, id, *req.Tags); err != nil {
			return nil, err
		}
	}

	return s.Detail(ctx, id)
}

// DeletePrompt removes the prompt and its tag links. It reports false when
// no prompt had the id.
func (s *PromptService) DeletePrompt(ctx context.Context, id uint) (bool, error) {
	return s.repo.DeletePrompt(ctx, id)
}

func (s *PromptService) requireCategory(ctx context.Context, categoryID uint) error {
	if categoryID == 0 {
		return missingField("categoryId")
	}
	_, err := s.repo.GetCategory(ctx, categoryID)
	if errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("%w: %d", ErrInvalidCategory, categoryID)
	}
	return err
}

// CreateTag adds a tag. A name already taken in any letter case yields
// model.ErrDuplicate.
func (s *PromptService) CreateTag(ctx context.Context, name string) (*entity.Tag, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, missingField("name")
	}
	tag := entity.DbTag{Name: trimmed}
	if err := s.repo.CreateTag(ctx, &tag); err != nil {
		return nil, err
	}
	out := converter.TagToDTO(tag)
	return &out, nil
}

// CreateUser registers a user with a bcrypt-hashed password.
func (s *PromptService) CreateUser(ctx context.Context, username, password string) (*entity.UserSummary, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, missingField("username")
	}
	hashed, err := auth.HashPassword(password)
	if errors.Is(err, auth.ErrEmptyPassword) {
		return nil, missingField("password")
	}
	if err != nil {
		return nil, err
	}

	user := entity.DbUser{Username: username, Password: hashed}
	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}
	summary := converter.UserToSummary(&user)
	return &summary, nil
}

// ListCategories 全部分类
func (s *PromptService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return converter.CategoriesToDTO(categories), nil
}

// ListTags 全部标签
func (s *PromptService) ListTags(ctx context.Context) ([]entity.Tag, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return converter.TagsToDTO(tags), nil
}

func (s *PromptService) GetCategory(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	out := converter.CategoryToDTO(*category)
	return &out, nil
}

func (s *PromptService) GetTag(ctx context.Context, id uint) (*entity.Tag, error) {
	tag, err := s.repo.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}
	out := converter.TagToDTO(*tag)
	return &out, nil
}

func (s *PromptService) GetUser(ctx context.Context, id uint) (*entity.UserSummary, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := converter.UserToSummary(user)
	return &summary, nil
}
