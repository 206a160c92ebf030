package converter

import (
	"promptvault/internal/entity/db"
	"promptvault/internal/entity/dto"
)

// CategoryToDTO converts a db.Category to dto.Category.
func CategoryToDTO(c db.Category) dto.Category {
	return dto.Category{
		ID:    c.ID,
		Name:  c.Name,
		Icon:  c.Icon,
		Color: c.Color,
	}
}

// CategoriesToDTO converts a slice of db.Category.
func CategoriesToDTO(categories []db.Category) []dto.Category {
	out := make([]dto.Category, len(categories))
	for i, c := range categories {
		out[i] = CategoryToDTO(c)
	}
	return out
}

// TagToDTO converts a db.Tag to dto.Tag.
func TagToDTO(t db.Tag) dto.Tag {
	return dto.Tag{ID: t.ID, Name: t.Name}
}

// TagsToDTO converts a slice of db.Tag. The result is never nil so it
// encodes as an empty JSON array.
func TagsToDTO(tags []db.Tag) []dto.Tag {
	out := make([]dto.Tag, len(tags))
	for i, t := range tags {
		out[i] = TagToDTO(t)
	}
	return out
}

// PromptWithDetails joins a prompt with its already resolved relations.
func PromptWithDetails(p *db.Prompt, category *db.Category, user *db.User, tags []db.Tag) dto.PromptWithDetails {
	return dto.PromptWithDetails{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		CategoryID: p.CategoryID,
		UserID:     p.UserID,
		IsPublic:   p.IsPublic,
		CreatedAt:  p.CreatedAt,
		Category:   CategoryToDTO(*category),
		User:       UserToSummary(user),
		Tags:       TagsToDTO(tags),
	}
}
