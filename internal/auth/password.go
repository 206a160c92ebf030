package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword 明文密码为空或只包含空白
var ErrEmptyPassword = errors.New("password must not be empty")

// BcryptCost 哈希强度，测试中可调低
var BcryptCost = bcrypt.DefaultCost

// HashPassword 对明文密码进行哈希处理，用户记录中只保存哈希值
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword 验证密码是否与存储的哈希值匹配
func VerifyPassword(hash, candidate string) error {
	if strings.TrimSpace(hash) == "" {
		return errors.New("stored password hash is empty")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
}

// IsHashed 判断字符串是否已经是 bcrypt 哈希
func IsHashed(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}
