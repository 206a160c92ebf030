package service

import (
	"context"
	"errors"
	"strings"

	"promptvault/internal/entity"
	"promptvault/internal/entity/converter"
	"promptvault/internal/model"
)

// PromptService composes prompt read models and runs the prompt write paths
// on top of a Repository. Views are rebuilt from the repository on every call.
type PromptService struct {
	repo          model.Repository
	defaultUserID uint
}

// NewPromptService creates a service. Prompts created without an owner are
// assigned to defaultUserID.
func NewPromptService(repo model.Repository, defaultUserID uint) *PromptService {
	return &PromptService{repo: repo, defaultUserID: defaultUserID}
}

// Detail joins a prompt with its category, owner and tags. It returns
// model.ErrNotFound when the prompt or either reference is missing.
func (s *PromptService) Detail(ctx context.Context, promptID uint) (*entity.PromptWithDetails, error) {
	prompt, err := s.repo.GetPrompt(ctx, promptID)
	if err != nil {
		return nil, err
	}
	return s.detailOf(ctx, prompt)
}

func (s *PromptService) detailOf(ctx context.Context, prompt *entity.DbPrompt) (*entity.PromptWithDetails, error) {
	category, err := s.repo.GetCategory(ctx, prompt.CategoryID)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetUser(ctx, prompt.UserID)
	if err != nil {
		return nil, err
	}
	tags, err := s.repo.TagsForPrompt(ctx, prompt.ID)
	if err != nil {
		return nil, err
	}
	detail := converter.PromptWithDetails(prompt, category, user, tags)
	return &detail, nil
}

// collect filters every stored prompt and maps the survivors to detailed
// views. Prompts with a dangling category or user are left out.
func (s *PromptService) collect(ctx context.Context, keep func(*entity.DbPrompt) bool) ([]entity.PromptWithDetails, error) {
	prompts, err := s.repo.ListPrompts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.PromptWithDetails, 0, len(prompts))
	for i := range prompts {
		prompt := &prompts[i]
		if !keep(prompt) {
			continue
		}
		detail, err := s.detailOf(ctx, prompt)
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *detail)
	}
	return out, nil
}

// PublicPrompts 所有公开的提示词
func (s *PromptService) PublicPrompts(ctx context.Context) ([]entity.PromptWithDetails, error) {
	return s.collect(ctx, func(p *entity.DbPrompt) bool { return p.IsPublic })
}

// PromptsByCategory 某分类下的公开提示词
func (s *PromptService) PromptsByCategory(ctx context.Context, categoryID uint) ([]entity.PromptWithDetails, error) {
	return s.collect(ctx, func(p *entity.DbPrompt) bool {
		return p.IsPublic && p.CategoryID == categoryID
	})
}

// PromptsByTag 带有某标签的公开提示词
func (s *PromptService) PromptsByTag(ctx context.Context, tagID uint) ([]entity.PromptWithDetails, error) {
	ids, err := s.repo.PromptIDsForTag(ctx, tagID)
	if err != nil {
		return nil, err
	}
	tagged := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		tagged[id] = struct{}{}
	}
	return s.collect(ctx, func(p *entity.DbPrompt) bool {
		_, ok := tagged[p.ID]
		return ok && p.IsPublic
	})
}

// Search matches the query as a case-insensitive substring of the title or
// content of public prompts.
func (s *PromptService) Search(ctx context.Context, query string) ([]entity.PromptWithDetails, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, missingField("query")
	}
	return s.collect(ctx, func(p *entity.DbPrompt) bool {
		if !p.IsPublic {
			return false
		}
		return strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Content), needle)
	})
}

// UserPrompts returns every prompt owned by the user, private ones included.
func (s *PromptService) UserPrompts(ctx context.Context, userID uint) ([]entity.PromptWithDetails, error) {
	return s.collect(ctx, func(p *entity.DbPrompt) bool { return p.UserID == userID })
}
