package handler

import (
	"Bazaar/pkg/context"
	"Bazaar/pkg/response"
	"Bazaar/service"
	"Bazaar/types"

	"github.com/gin-gonic/gin"
)

// Catalog 商品目录的公开只读接口，不需要登录
type Catalog struct {
	CatalogService service.ICatalogService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	catalog := r.Group("/v1")
	catalog.GET("/products", context.Wrap(h.ListProducts))
	catalog.GET("/products/:id", context.Wrap(h.GetProduct))
	catalog.GET("/categories", context.Wrap(h.ListCategories))
}

func (h *Catalog) ListProducts(c *gin.Context) error {
	var filter types.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewValidationError(err.Error())
	}
	products, err := h.CatalogService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, products)
	return nil
}

func (h *Catalog) GetProduct(c *gin.Context) error {
	product, err := h.CatalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, product)
	return nil
}

func (h *Catalog) ListCategories(c *gin.Context) error {
	categories, err := h.CatalogService.ListCategories(c.Request.Context())
	if err != nil {
		return asBizError(err)
	}
	response.Success(c, categories)
	return nil
}
