package db

import "time"

// Prompt stores a reusable prompt template.
type Prompt struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	CategoryID uint      `gorm:"column:category_id;index;not null" json:"categoryId"`
	UserID     uint      `gorm:"column:user_id;index;not null" json:"userId"`
	IsPublic   bool      `gorm:"column:is_public;not null;default:true" json:"isPublic"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;autoCreateTime:false" json:"createdAt"`
}

// TableName 指定表名
func (Prompt) TableName() string {
	return "prompts"
}
