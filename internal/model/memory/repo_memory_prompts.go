package memory

import (
	"context"
	"errors"
	"time"

	"promptvault/internal/entity"

	"gorm.io/gorm"
)

// CreatePrompt assigns the next prompt id and stamps CreatedAt.
func (r *Repository) CreatePrompt(ctx context.Context, prompt *entity.DbPrompt) error {
	if prompt == nil {
		return errors.New("prompt is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	prompt.ID = r.prompts.allocate()
	prompt.CreatedAt = time.Now().UTC()
	r.prompts.put(prompt.ID, *prompt)
	return nil
}

// GetPrompt loads a prompt by id.
func (r *Repository) GetPrompt(ctx context.Context, id uint) (*entity.DbPrompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prompt, ok := r.prompts.get(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &prompt, nil
}

// ListPrompts returns every prompt, public or not, in insertion order.
func (r *Repository) ListPrompts(ctx context.Context) ([]entity.DbPrompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prompts.values(), nil
}

// UpdatePrompt merges the provided fields. ID and CreatedAt are never touched.
func (r *Repository) UpdatePrompt(ctx context.Context, id uint, updates entity.PromptUpdates) (*entity.DbPrompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prompt, ok := r.prompts.get(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	updates.Apply(&prompt)
	r.prompts.put(id, prompt)
	return &prompt, nil
}

// DeletePrompt removes the prompt together with all of its tag associations.
func (r *Repository) DeletePrompt(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.prompts.remove(id) {
		return false, nil
	}

	var linked []uint
	r.promptTags.each(func(pt entity.DbPromptTag) bool {
		if pt.PromptID == id {
			linked = append(linked, pt.ID)
		}
		return true
	})
	for _, linkID := range linked {
		r.promptTags.remove(linkID)
	}
	return true, nil
}
