package handler

import (
	"Bazaar/config"
	"Bazaar/middleware"
	"Bazaar/pkg/context"
	"Bazaar/pkg/response"
	"Bazaar/service"
	"Bazaar/types"

	"github.com/gin-gonic/gin"
)

type Application struct {
	Config             *config.Config
	ApplicationService service.IApplicationService
}

func (h *Application) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	apply := r.Group("/v1/vendor/applications")
	apply.Use(authorize)
	apply.POST("", context.Wrap(h.Submit))

	admin := r.Group("/v1/admin/applications")
	admin.Use(authorize, middleware.RequireAdmin())
	admin.GET("", context.Wrap(h.List))
	admin.POST("/:id/review", context.Wrap(h.Review))
}

func (h *Application) Submit(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	var req types.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}
	app, err := h.ApplicationService.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, app)
	return nil
}

func (h *Application) List(c *gin.Context) error {
	apps, err := h.ApplicationService.List(c.Request.Context())
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, apps)
	return nil
}

// Review 审核是一次性的，approved/rejected 之后不允许再改判
func (h *Application) Review(c *gin.Context) error {
	reviewerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	var req types.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}
	if err := h.ApplicationService.Review(c.Request.Context(), reviewerID, c.Param("id"), &req); err != nil {
		return asBizError(err)
	}
	response.Success(c, gin.H{"reviewed": true})
	return nil
}
