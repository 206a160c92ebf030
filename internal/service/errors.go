package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks every validation failure raised by the service.
var ErrInvalidInput = errors.New("invalid input")

var (
	// ErrMissingField 必填字段为空
	ErrMissingField = fmt.Errorf("%w: missing field", ErrInvalidInput)
	// ErrInvalidCategory 引用的分类不存在
	ErrInvalidCategory = fmt.Errorf("%w: category does not exist", ErrInvalidInput)
	// ErrInvalidUser 引用的用户不存在
	ErrInvalidUser = fmt.Errorf("%w: user does not exist", ErrInvalidInput)
)

// ErrStorageDisabled is returned by exports when no storage backend is configured.
var ErrStorageDisabled = errors.New("export storage is disabled")

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}
