package service

import "errors"

// 组件边界上的错误分类，handler 层据此落成对应的 HTTP 语义。
// 读失败和"查到零条"是两种结果，绝不混用。
var (
	ErrValidation  = errors.New("invalid input")
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("forbidden")
	ErrPersistence = errors.New("storage failure")
)
