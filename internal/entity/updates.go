package entity

// PromptUpdates 提示词的可变字段，nil 表示保持不变
type PromptUpdates struct {
	Title      *string
	Content    *string
	CategoryID *uint
	IsPublic   *bool
}

// Apply 将非 nil 字段合并到 prompt 上
func (u PromptUpdates) Apply(prompt *DbPrompt) {
	if prompt == nil {
		return
	}
	if u.Title != nil {
		prompt.Title = *u.Title
	}
	if u.Content != nil {
		prompt.Content = *u.Content
	}
	if u.CategoryID != nil {
		prompt.CategoryID = *u.CategoryID
	}
	if u.IsPublic != nil {
		prompt.IsPublic = *u.IsPublic
	}
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u PromptUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Content != nil {
		updates["content"] = *u.Content
	}
	if u.CategoryID != nil {
		updates["category_id"] = *u.CategoryID
	}
	if u.IsPublic != nil {
		updates["is_public"] = *u.IsPublic
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u PromptUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
