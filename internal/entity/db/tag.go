package db

// Tag 表示用户定义的标签。名称按不区分大小写的方式唯一。
type Tag struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;size:64;uniqueIndex;not null" json:"name"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// PromptTag 提示词与标签的关联表，(prompt_id, tag_id) 唯一。
type PromptTag struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	PromptID uint `gorm:"column:prompt_id;not null;uniqueIndex:idx_prompt_tag" json:"promptId"`
	TagID    uint `gorm:"column:tag_id;not null;uniqueIndex:idx_prompt_tag;index" json:"tagId"`
}

// TableName 指定表名
func (PromptTag) TableName() string {
	return "prompt_tags"
}
