package memory

import (
	"context"

	"promptvault/internal/entity"
)

// AttachTag links a tag to a prompt. Attaching an existing pair returns the
// association already stored.
func (r *Repository) AttachTag(ctx context.Context, promptID, tagID uint) (*entity.DbPromptTag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing := r.findPromptTagLocked(promptID, tagID); existing != nil {
		return existing, nil
	}

	link := entity.DbPromptTag{
		ID:       r.promptTags.allocate(),
		PromptID: promptID,
		TagID:    tagID,
	}
	r.promptTags.put(link.ID, link)
	return &link, nil
}

// DetachTag removes the association and reports whether one existed.
func (r *Repository) DetachTag(ctx context.Context, promptID, tagID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.findPromptTagLocked(promptID, tagID)
	if existing == nil {
		return false, nil
	}
	return r.promptTags.remove(existing.ID), nil
}

// TagsForPrompt resolves a prompt's tags in attachment order. Links pointing
// at a missing tag are skipped.
func (r *Repository) TagsForPrompt(ctx context.Context, promptID uint) ([]entity.DbTag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]entity.DbTag, 0)
	r.promptTags.each(func(pt entity.DbPromptTag) bool {
		if pt.PromptID != promptID {
			return true
		}
		if tag, ok := r.tags.get(pt.TagID); ok {
			tags = append(tags, tag)
		}
		return true
	})
	return tags, nil
}

// PromptIDsForTag lists the prompts carrying the tag.
func (r *Repository) PromptIDsForTag(ctx context.Context, tagID uint) ([]uint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []uint
	r.promptTags.each(func(pt entity.DbPromptTag) bool {
		if pt.TagID == tagID {
			ids = append(ids, pt.PromptID)
		}
		return true
	})
	return ids, nil
}

func (r *Repository) findPromptTagLocked(promptID, tagID uint) *entity.DbPromptTag {
	var found *entity.DbPromptTag
	r.promptTags.each(func(pt entity.DbPromptTag) bool {
		if pt.PromptID == promptID && pt.TagID == tagID {
			found = &pt
			return false
		}
		return true
	})
	return found
}
