package entity

// Re-export persisted and transport types so callers only import entity.

import (
	"promptvault/internal/entity/db"
	"promptvault/internal/entity/dto"
)

// Persisted records
type DbUser = db.User
type DbCategory = db.Category
type DbTag = db.Tag
type DbPrompt = db.Prompt
type DbPromptTag = db.PromptTag

// Transport types
type UserSummary = dto.UserSummary
type Category = dto.Category
type Tag = dto.Tag
type PromptWithDetails = dto.PromptWithDetails
type PromptCreateRequest = dto.PromptCreateRequest
type PromptUpdateRequest = dto.PromptUpdateRequest
type TagCreateRequest = dto.TagCreateRequest
type UserCreateRequest = dto.UserCreateRequest
type MessageResponse = dto.MessageResponse
type EnhanceRequest = dto.EnhanceRequest
type EnhanceResponse = dto.EnhanceResponse
type GeneratePromptRequest = dto.GeneratePromptRequest
type GeneratePromptResponse = dto.GeneratePromptResponse
type PromptExport = dto.PromptExport
type ExportResult = dto.ExportResult
