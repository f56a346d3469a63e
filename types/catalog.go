package types

import (
	"time"

	"Bazaar/models"

	"github.com/shopspring/decimal"
)

// ProductFilter 列表查询条件，全部可选，多个条件取 AND
type ProductFilter struct {
	CategoryID    string `form:"category_id"`
	SubcategoryID string `form:"subcategory_id"`
	VendorID      string `form:"vendor_id"`
	Status        string `form:"status"`
	Limit         int    `form:"limit"`
}

// Product 商品视图，带冗余的商家/分类名称，供列表页直接渲染
type Product struct {
	ID              string           `json:"id"`
	VendorID        string           `json:"vendor_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"original_price"`
	Images          []string         `json:"images"`
	CategoryID      string           `json:"category_id"`
	SubcategoryID   string           `json:"subcategory_id"`
	PurchaseUrl     string           `json:"purchase_url"`
	Stock           int              `json:"stock"`
	Tags            []string         `json:"tags"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	VendorName      string           `json:"vendor_name"`
	CategoryName    string           `json:"category_name"`
	SubcategoryName string           `json:"subcategory_name"`
	DiscountPercent int              `json:"discount_percent"`
	InStock         bool             `json:"in_stock"`
}

// Discount 折扣百分比。原价缺失或低于现价时视为无折扣。
func (p *Product) Discount() int {
	if p.OriginalPrice == nil || p.Price.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	if p.OriginalPrice.LessThan(p.Price) {
		return 0
	}
	diff := p.OriginalPrice.Sub(p.Price)
	return int(diff.Div(*p.OriginalPrice).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// Category 分类及其按名称排序的子分类
type Category struct {
	models.Category
	Subcategories []models.Subcategory `json:"subcategories"`
}
