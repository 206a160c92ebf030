package db

// Category 是提示词的固定分类。
type Category struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Icon  string `gorm:"column:icon;type:varchar(64);not null" json:"icon"`
	Color string `gorm:"column:color;type:varchar(32);not null" json:"color"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
