package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
	ProductPending  ProductStatus = "pending"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductInactive, ProductPending:
		return true
	}
	return false
}

// Product 对应 products 表，归属唯一一个 vendor
type Product struct {
	ID            string                       `gorm:"primaryKey;size:255;column:id" json:"id"`
	VendorID      string                       `gorm:"size:255;not null;index:idx_products_vendor;column:vendor_id" json:"vendor_id"`
	Title         string                       `gorm:"size:500;not null;column:title" json:"title"`
	Description   string                       `gorm:"type:text;not null;column:description" json:"description"`
	Price         decimal.Decimal              `gorm:"type:decimal(10,2);not null;column:price" json:"price"`
	OriginalPrice *decimal.Decimal             `gorm:"type:decimal(10,2);column:original_price" json:"original_price"`
	Images        datatypes.JSONSlice[string]  `gorm:"column:images" json:"images"`
	CategoryID    string                       `gorm:"size:255;index:idx_products_category;column:category_id" json:"category_id"`
	SubcategoryID string                       `gorm:"size:255;column:subcategory_id" json:"subcategory_id"`
	PurchaseUrl   string                       `gorm:"type:text;not null;column:purchase_url" json:"purchase_url"`
	Stock         int                          `gorm:"default:0;not null;column:stock" json:"stock"`
	Tags          datatypes.JSONSlice[string]  `gorm:"column:tags" json:"tags"`
	Status        ProductStatus                `gorm:"type:enum('active','inactive','pending');default:'pending';index:idx_products_status;column:status" json:"status"`
	CreatedAt     time.Time                    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time                    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
