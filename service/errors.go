package service

import "errors"

var (
	// ErrDatabaseUnavailable 无法连接数据库
	ErrDatabaseUnavailable = errors.New("database unavailable")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidConfig 题目 config 不是合法的 yaml
	ErrInvalidConfig = errors.New("invalid config format")
)
