package dao

import (
	"context"

	"Bazaar/models"
	"Bazaar/types"

	"gorm.io/gorm"
)

type Cart struct {
	Repo[models.CartItem]

	products *Product
}

func NewCart(db *gorm.DB, products *Product) *Cart {
	return &Cart{Repo: NewRepo[models.CartItem](db), products: products}
}

// ListByUser 购物车行带商品视图；商品已被删的行 Product 为 nil
func (c *Cart) ListByUser(ctx context.Context, userID string) ([]types.CartItem, error) {
	var rows []models.CartItem
	err := c.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ProductID
	}
	productViews, err := c.products.ListDetailedByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*types.Product, len(productViews))
	for i := range productViews {
		byID[productViews[i].ID] = &productViews[i]
	}

	items := make([]types.CartItem, len(rows))
	for i, row := range rows {
		items[i] = types.CartItem{
			ID:        row.ID,
			UserID:    row.UserID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
			Product:   byID[row.ProductID],
		}
	}
	return items, nil
}

func (c *Cart) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	return c.Db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
}

// Delete 删除不存在的行也算成功
func (c *Cart) Delete(ctx context.Context, userID, productID string) error {
	return c.Db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

func (c *Cart) DeleteAll(ctx context.Context, userID string) error {
	return c.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
