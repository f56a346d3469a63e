package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 业务错误分类：参数校验、未登录、越权、不存在、存储层失败。
// handler 层只抛 error，由 context.Wrap 统一落成 JSON。

func NewValidationError(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

func NewUnauthorizedError(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

func NewAuthorizationError(msg string) *BizError {
	return NewError(http.StatusForbidden, msg)
}

func NewNotFoundError(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

func NewPersistenceError(msg string) *BizError {
	return NewError(http.StatusInternalServerError, msg)
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
