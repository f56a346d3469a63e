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

// Product 卖家侧的商品管理接口，全部要求 vendor（或 admin）角色
type Product struct {
	Config         *config.Config
	ProductService service.IProductService
	UploadService  service.IUploadService
}

func (h *Product) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	vendor := r.Group("/v1/vendor")
	vendor.Use(authorize, middleware.RequireVendor())
	vendor.GET("/products", context.Wrap(h.List))
	vendor.POST("/products", context.Wrap(h.Create))
	vendor.PUT("/products/:id", context.Wrap(h.Update))
	vendor.DELETE("/products/:id", context.Wrap(h.Delete))
	vendor.POST("/uploads", context.Wrap(h.Upload))
}

func (h *Product) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	products, err := h.ProductService.ListByVendor(c.Request.Context(), userID)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, products)
	return nil
}

func (h *Product) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	var req types.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}
	product, err := h.ProductService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, product)
	return nil
}

func (h *Product) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	var req types.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError(err.Error())
	}
	product, err := h.ProductService.Update(c.Request.Context(), userID, context.GetRole(c), c.Param("id"), &req)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, product)
	return nil
}

func (h *Product) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	if err := h.ProductService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		return asBizError(err)
	}
	response.Success(c, gin.H{"deleted": true})
	return nil
}

func (h *Product) Upload(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewUnauthorizedError(err.Error())
	}
	file, err := c.FormFile("image")
	if err != nil {
		return response.NewValidationError("image 文件不能为空")
	}
	resp, err := h.UploadService.UploadImage(c.Request.Context(), userID, file)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, resp)
	return nil
}
