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

type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	orders := r.Group("/v1/orders")
	orders.Use(authorize)
	orders.POST("", context.Wrap(h.Checkout))
	orders.GET("", context.Wrap(h.List))

	admin := r.Group("/v1/admin/orders")
	admin.Use(authorize, middleware.RequireAdmin())
	admin.POST("/:id/status", context.Wrap(h.UpdateStatus))
}

func (h *Order) Checkout(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}
	order, err := h.OrderService.Checkout(c.Request.Context(), userID, &req)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, order)
	return nil
}

// List 普通用户只能看自己的订单，admin 可以按 customer_id 过滤全量
func (h *Order) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	var filter types.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewValidationError(err.Error())
	}
	orders, err := h.OrderService.List(c.Request.Context(), userID, context.GetRole(c), filter)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, orders)
	return nil
}

func (h *Order) UpdateStatus(c *gin.Context) error {
	var req types.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}
	if err := h.OrderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		return asBizError(err)
	}
	response.Success(c, gin.H{"updated": true})
	return nil
}
