package dto

import "time"

// UserSummary is the public projection of a prompt owner.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// PromptWithDetails is a prompt joined with its category, owner and tags.
type PromptWithDetails struct {
	ID         uint        `json:"id"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	CategoryID uint        `json:"categoryId"`
	UserID     uint        `json:"userId"`
	IsPublic   bool        `json:"isPublic"`
	CreatedAt  time.Time   `json:"createdAt"`
	Category   Category    `json:"category"`
	User       UserSummary `json:"user"`
	Tags       []Tag       `json:"tags"`
}

// PromptCreateRequest is the payload for creating a prompt.
type PromptCreateRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	CategoryID uint     `json:"categoryId"`
	UserID     uint     `json:"userId"`
	IsPublic   *bool    `json:"isPublic"`
	Tags       []string `json:"tags"`
}

// PromptUpdateRequest is the payload for a partial prompt update. A non-nil
// Tags replaces the whole tag set, an empty list clears it.
type PromptUpdateRequest struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	CategoryID *uint     `json:"categoryId,omitempty"`
	IsPublic   *bool     `json:"isPublic,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
