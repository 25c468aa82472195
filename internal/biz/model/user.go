package model

import (
	"context"
	"strconv"
)

// Profile 以整数 ID 为主键的用户记录
type Profile struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

// Account 以用户名为主键的注册用户，密码只保存 bcrypt 摘要
type Account struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Registration 注册请求
type Registration struct {
	Username string `json:"username" validate:"required,notid"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=8,max=16"`
}

// UserUseCase 用户用例接口
type UserUseCase interface {
	GetProfile(ctx context.Context, id int64) (*Profile, error)
	CreateProfile(ctx context.Context, profile Profile) (*Profile, error)
	Register(ctx context.Context, reg Registration) (*Account, error)
	GetAccount(ctx context.Context, username string) (*Account, error)
}

// ParseProfileKey 判断 /users/{key} 中的键是否为 Profile ID。
// 只接受规范写法的十进制整数，"+7"、"007" 按用户名处理。
func ParseProfileKey(key string) (int64, bool) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil || strconv.FormatInt(id, 10) != key {
		return 0, false
	}
	return id, true
}
