package db

// User 表示提示词的所有者账户。
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"column:username;type:varchar(255);uniqueIndex;not null" json:"username"`
	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`
}

// TableName 指定表名。
func (User) TableName() string {
	return "users"
}
