package sql

import (
	"fmt"

	"gorm.io/gorm"
)

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ready() error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	return nil
}
