package model

import (
	"errors"
	"fmt"
)

// 存储层哨兵错误，由用例层转换为领域错误
var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// 错误码，出现在错误响应的 errorCode 字段
const (
	CodeUserNotFound    = "USER_NOT_FOUND"
	CodeInvalidUserData = "INVALID_USER_DATA"
)

// UserNotFoundError 按 ID 或用户名查找用户失败
type UserNotFoundError struct {
	// int64 或 string
	Identifier any
}

func (e *UserNotFoundError) Error() string {
	if username, ok := e.Identifier.(string); ok {
		return fmt.Sprintf("User '%s' not found.", username)
	}
	return fmt.Sprintf("User with ID %v not found", e.Identifier)
}

func (e *UserNotFoundError) Unwrap() error {
	return ErrRecordNotFound
}

// InvalidUserDataError 用户数据不合法或主键重复
type InvalidUserDataError struct {
	Message string
	Err     error
}

func (e *InvalidUserDataError) Error() string {
	return e.Message
}

func (e *InvalidUserDataError) Unwrap() error {
	return e.Err
}

func NewUserNotFound(identifier any) error {
	return &UserNotFoundError{Identifier: identifier}
}

func NewInvalidUserData(message string) error {
	return &InvalidUserDataError{Message: message}
}
