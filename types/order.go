package types

import (
	"time"

	"Bazaar/models"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	ShippingAddress string             `json:"shipping_address" binding:"required"`
	Notes           string             `json:"notes"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
}

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type OrderFilter struct {
	CustomerID string `form:"customer_id"`
	Status     string `form:"status"`
}

// OrderItemView 明细携带下单时冻结的单价
type OrderItemView struct {
	models.OrderItem
	ProductTitle string `json:"product_title"`
	ProductImage string `json:"product_image"`
}

type OrderView struct {
	models.Order
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Items         []OrderItemView `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderCreatedEvent 下单成功后投递到 MQ 的事件体
type OrderCreatedEvent struct {
	OrderID    string          `json:"order_id"`
	OrderSn    string          `json:"order_sn"`
	CustomerID string          `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
}
