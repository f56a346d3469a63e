package models

import "time"

// CartItem 购物车行，(user_id, product_id) 全局唯一，数量归零即删行
type CartItem struct {
	ID        string    `gorm:"primaryKey;size:255;column:id" json:"id"`
	UserID    string    `gorm:"size:255;not null;uniqueIndex:idx_cart_user_product;column:user_id" json:"user_id"`
	ProductID string    `gorm:"size:255;not null;uniqueIndex:idx_cart_user_product;column:product_id" json:"product_id"`
	Quantity  int       `gorm:"not null;column:quantity" json:"quantity"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
