package dao

import (
	"context"

	"Bazaar/models"

	"gorm.io/gorm"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{Repo: NewRepo[models.Category](db)}
}

func (c *Category) ListAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := c.Db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

// ListSubcategories 某个分类下的子分类，按名称排序；没有子分类返回空列表
func (c *Category) ListSubcategories(ctx context.Context, categoryID string) ([]models.Subcategory, error) {
	subcategories := make([]models.Subcategory, 0)
	err := c.Db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&subcategories).Error
	return subcategories, err
}
