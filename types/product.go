package types

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Title         string           `json:"title" binding:"required"`
	Description   string           `json:"description" binding:"required"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Images        []string         `json:"images"`
	CategoryID    string           `json:"category_id"`
	SubcategoryID string           `json:"subcategory_id"`
	PurchaseUrl   string           `json:"purchase_url" binding:"required"`
	Stock         int              `json:"stock"`
	Tags          []string         `json:"tags"`
	Status        string           `json:"status"`
}

// UpdateProductRequest 部分更新，nil 字段保持原值
type UpdateProductRequest struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Images        []string         `json:"images"`
	CategoryID    *string          `json:"category_id"`
	SubcategoryID *string          `json:"subcategory_id"`
	PurchaseUrl   *string          `json:"purchase_url"`
	Stock         *int             `json:"stock"`
	Tags          []string         `json:"tags"`
	Status        *string          `json:"status"`
}

type UploadImageResponse struct {
	Url string `json:"url"`
	Key string `json:"key"`
}
