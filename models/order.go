package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order 订单主表
type Order struct {
	ID              string          `gorm:"primaryKey;size:255;column:id" json:"id"`
	OrderSn         string          `gorm:"size:32;not null;uniqueIndex:idx_orders_order_sn;column:order_sn" json:"order_sn"`
	CustomerID      string          `gorm:"size:255;not null;index:idx_orders_customer;column:customer_id" json:"customer_id"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null;column:total" json:"total"`
	Status          OrderStatus     `gorm:"type:enum('pending','processing','shipped','delivered','cancelled');default:'pending';index:idx_orders_status;column:status" json:"status"`
	ShippingAddress string          `gorm:"type:text;not null;column:shipping_address" json:"shipping_address"`
	Notes           string          `gorm:"type:text;column:notes" json:"notes"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单明细，单价在下单时刻冻结，之后商品改价不影响已成交订单
type OrderItem struct {
	ID        string          `gorm:"primaryKey;size:255;column:id" json:"id"`
	OrderID   string          `gorm:"size:255;not null;index:idx_order_items_order;column:order_id" json:"order_id"`
	ProductID string          `gorm:"size:255;not null;index:idx_order_items_product;column:product_id" json:"product_id"`
	Quantity  int             `gorm:"not null;column:quantity" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;column:price" json:"price"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
