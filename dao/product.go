package dao

import (
	"context"

	"Bazaar/models"
	"Bazaar/types"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{Repo: NewRepo[models.Product](db)}
}

type productRow struct {
	models.Product
	VendorName      string `gorm:"column:vendor_name"`
	CategoryName    string `gorm:"column:category_name"`
	SubcategoryName string `gorm:"column:subcategory_name"`
}

func (p *Product) detailQuery(ctx context.Context) *gorm.DB {
	return p.Db.WithContext(ctx).Table("products").
		Select("products.*, profiles.name AS vendor_name, categories.name AS category_name, subcategories.name AS subcategory_name").
		Joins("LEFT JOIN profiles ON profiles.id = products.vendor_id").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN subcategories ON subcategories.id = products.subcategory_id")
}

// ListDetailed 条件全部取 AND，最新创建的排前面。
// 冗余名称列可能为空串，默认值由 service 层填。
func (p *Product) ListDetailed(ctx context.Context, filter types.ProductFilter) ([]types.Product, error) {
	q := p.detailQuery(ctx)

	if filter.CategoryID != "" {
		q = q.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.SubcategoryID != "" {
		q = q.Where("products.subcategory_id = ?", filter.SubcategoryID)
	}
	if filter.VendorID != "" {
		q = q.Where("products.vendor_id = ?", filter.VendorID)
	}
	if filter.Status != "" {
		q = q.Where("products.status = ?", filter.Status)
	}

	q = q.Order("products.created_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []productRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]types.Product, len(rows))
	for i := range rows {
		views[i] = rows[i].toView()
	}
	return views, nil
}

func (p *Product) FindDetailed(ctx context.Context, id string) (*types.Product, error) {
	var row productRow
	err := p.detailQuery(ctx).Where("products.id = ?", id).Limit(1).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}
	view := row.toView()
	return &view, nil
}

// ListDetailedByIds 购物车等场景按 ID 批量取商品视图
func (p *Product) ListDetailedByIds(ctx context.Context, ids []string) ([]types.Product, error) {
	if len(ids) == 0 {
		return []types.Product{}, nil
	}
	var rows []productRow
	err := p.detailQuery(ctx).Where("products.id IN ?", ids).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	views := make([]types.Product, len(rows))
	for i := range rows {
		views[i] = rows[i].toView()
	}
	return views, nil
}

func (r productRow) toView() types.Product {
	return types.Product{
		ID:              r.ID,
		VendorID:        r.VendorID,
		Title:           r.Title,
		Description:     r.Description,
		Price:           r.Price,
		OriginalPrice:   r.OriginalPrice,
		Images:          r.Images,
		CategoryID:      r.CategoryID,
		SubcategoryID:   r.SubcategoryID,
		PurchaseUrl:     r.PurchaseUrl,
		Stock:           r.Stock,
		Tags:            r.Tags,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		VendorName:      r.VendorName,
		CategoryName:    r.CategoryName,
		SubcategoryName: r.SubcategoryName,
	}
}
