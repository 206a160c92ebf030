package memory

import (
	"sync"

	"promptvault/internal/entity"
)

// Repository keeps every entity in process memory. All state is lost when
// the process exits. Missing and duplicate records are reported with the
// same gorm sentinels the SQL backend returns.
type Repository struct {
	mu sync.RWMutex

	users      *table[entity.DbUser]
	categories *table[entity.DbCategory]
	tags       *table[entity.DbTag]
	prompts    *table[entity.DbPrompt]
	promptTags *table[entity.DbPromptTag]
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		users:      newTable[entity.DbUser](),
		categories: newTable[entity.DbCategory](),
		tags:       newTable[entity.DbTag](),
		prompts:    newTable[entity.DbPrompt](),
		promptTags: newTable[entity.DbPromptTag](),
	}
}
