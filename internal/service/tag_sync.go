package service

import (
	"context"
	"errors"
	"strings"

	"promptvault/internal/entity"
	"promptvault/internal/model"
)

// EnsureTag returns the tag with the given name, matched case-insensitively,
// creating it with that spelling when absent.
func (s *PromptService) EnsureTag(ctx context.Context, name string) (*entity.DbTag, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, missingField("tag")
	}

	tag, err := s.repo.GetTagByName(ctx, trimmed)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	created := entity.DbTag{Name: trimmed}
	err = s.repo.CreateTag(ctx, &created)
	if errors.Is(err, model.ErrDuplicate) {
		// 并发请求先创建了同名标签
		return s.repo.GetTagByName(ctx, trimmed)
	}
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PromptService) attachByName(ctx context.Context, promptID uint, name string) error {
	tag, err := s.EnsureTag(ctx, name)
	if err != nil {
		return err
	}
	_, err = s.repo.AttachTag(ctx, promptID, tag.ID)
	return err
}

// SyncPromptTags makes the prompt's tag set equal to desired. Missing names
// are attached in the given order, tags no longer named are detached, and
// tags present in both are left alone. Blank names are ignored.
func (s *PromptService) SyncPromptTags(ctx context.Context, promptID uint, desired []string) error {
	current, err := s.repo.TagsForPrompt(ctx, promptID)
	if err != nil {
		return err
	}

	have := make(map[string]struct{}, len(current))
	for _, tag := range current {
		have[tagKey(tag.Name)] = struct{}{}
	}

	want := make(map[string]struct{}, len(desired))
	for _, name := range desired {
		key := tagKey(name)
		if key == "" {
			continue
		}
		if _, dup := want[key]; dup {
			continue
		}
		want[key] = struct{}{}
		if _, ok := have[key]; ok {
			continue
		}
		if err := s.attachByName(ctx, promptID, name); err != nil {
			return err
		}
	}

	for _, tag := range current {
		if _, keep := want[tagKey(tag.Name)]; keep {
			continue
		}
		if _, err := s.repo.DetachTag(ctx, promptID, tag.ID); err != nil {
			return err
		}
	}
	return nil
}

func tagKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
