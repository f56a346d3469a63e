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

type Cart struct {
	Config      *config.Config
	CartService service.ICartService
}

func (h *Cart) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	cart := r.Group("/v1/cart")
	cart.Use(authorize)
	cart.GET("", context.Wrap(h.View))
	cart.POST("/items", context.Wrap(h.AddItem))
	cart.PUT("/items/:product_id", context.Wrap(h.SetQuantity))
	cart.DELETE("/items/:product_id", context.Wrap(h.RemoveItem))
	cart.DELETE("", context.Wrap(h.Clear))
}

func (h *Cart) View(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	view, err := h.CartService.View(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, view)
	return nil
}

// AddItem 加购是累加语义：已有同商品的行就加量，没有才插新行
func (h *Cart) AddItem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	var req types.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}
	if err := h.CartService.AddToCart(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		return asBizError(err)
	}
	view, err := h.CartService.View(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, view)
	return nil
}

func (h *Cart) SetQuantity(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	var req types.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}
	if err := h.CartService.SetQuantity(c.Request.Context(), userID, c.Param("product_id"), req.Quantity); err != nil {
		return asBizError(err)
	}
	view, err := h.CartService.View(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, view)
	return nil
}

func (h *Cart) RemoveItem(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	if err := h.CartService.RemoveFromCart(c.Request.Context(), userID, c.Param("product_id")); err != nil {
		return asBizError(err)
	}
	view, err := h.CartService.View(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, view)
	return nil
}

func (h *Cart) Clear(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	if err := h.CartService.ClearCart(c.Request.Context(), userID); err != nil {
		return asBizError(err)
	}
	response.Success(c, gin.H{"cleared": true})
	return nil
}
