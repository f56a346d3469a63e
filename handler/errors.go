package handler

import (
	"errors"

	"Bazaar/pkg/response"
	"Bazaar/service"
)

// asBizError 把 service 层的错误分类翻译成带 HTTP 语义的业务错误
func asBizError(err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return response.NewValidationError(err.Error())
	case errors.Is(err, service.ErrNotFound):
		return response.NewNotFoundError(err.Error())
	case errors.Is(err, service.ErrForbidden):
		return response.NewAuthorizationError(err.Error())
	case errors.Is(err, service.ErrPersistence):
		return response.NewPersistenceError(err.Error())
	}
	return err
}
