package dao

import (
	"context"

	"Bazaar/models"
	"Bazaar/types"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{Repo: NewRepo[models.Order](db)}
}

// CreateWithItems 订单和明细同一事务落库
func (o *Order) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	return o.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return nil
	})
}

type orderRow struct {
	models.Order
	CustomerName  string `gorm:"column:customer_name"`
	CustomerEmail string `gorm:"column:customer_email"`
}

type orderItemRow struct {
	models.OrderItem
	ProductTitle  string                      `gorm:"column:product_title"`
	ProductImages datatypes.JSONSlice[string] `gorm:"column:product_images"`
}

func (o *Order) ListDetailed(ctx context.Context, filter types.OrderFilter) ([]types.OrderView, error) {
	q := o.Db.WithContext(ctx).Table("orders").
		Select("orders.*, profiles.name AS customer_name, profiles.email AS customer_email").
		Joins("LEFT JOIN profiles ON profiles.id = orders.customer_id")

	if filter.CustomerID != "" {
		q = q.Where("orders.customer_id = ?", filter.CustomerID)
	}
	if filter.Status != "" {
		q = q.Where("orders.status = ?", filter.Status)
	}

	var rows []orderRow
	if err := q.Order("orders.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []types.OrderView{}, nil
	}

	orderIds := make([]string, len(rows))
	for i, row := range rows {
		orderIds[i] = row.ID
	}

	var itemRows []orderItemRow
	err := o.Db.WithContext(ctx).Table("order_items").
		Select("order_items.*, products.title AS product_title, products.images AS product_images").
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id IN ?", orderIds).
		Scan(&itemRows).Error
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[string][]types.OrderItemView, len(rows))
	for _, item := range itemRows {
		image := ""
		if len(item.ProductImages) > 0 {
			image = item.ProductImages[0]
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], types.OrderItemView{
			OrderItem:    item.OrderItem,
			ProductTitle: item.ProductTitle,
			ProductImage: image,
		})
	}

	views := make([]types.OrderView, len(rows))
	for i, row := range rows {
		items := itemsByOrder[row.ID]
		if items == nil {
			items = []types.OrderItemView{}
		}
		views[i] = types.OrderView{
			Order:         row.Order,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			Items:         items,
		}
	}
	return views, nil
}

func (o *Order) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return o.Db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
