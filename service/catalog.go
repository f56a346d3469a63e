package service

import (
	"context"
	"errors"
	"fmt"

	"Bazaar/models"
	"Bazaar/types"

	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
)

type CatalogStore interface {
	ListDetailed(ctx context.Context, filter types.ProductFilter) ([]types.Product, error)
	FindDetailed(ctx context.Context, id string) (*types.Product, error)
}

type CategoryStore interface {
	ListAll(ctx context.Context) ([]models.Category, error)
	ListSubcategories(ctx context.Context, categoryID string) ([]models.Subcategory, error)
}

// CategoryTreeCache 分类树缓存，读多写少
type CategoryTreeCache interface {
	Get(ctx context.Context) ([]types.Category, bool)
	Set(ctx context.Context, categories []types.Category)
}

type CatalogService struct {
	Products   CatalogStore
	Categories CategoryStore
	Cache      CategoryTreeCache
}

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	ListProducts(ctx context.Context, filter types.ProductFilter) ([]types.Product, error)
	GetProduct(ctx context.Context, id string) (*types.Product, error)
	ListCategories(ctx context.Context) ([]types.Category, error)
}

// ListProducts 查询失败和零结果是两回事：失败返回 error，零结果返回空切片
func (s *CatalogService) ListProducts(ctx context.Context, filter types.ProductFilter) ([]types.Product, error) {
	products, err := s.Products.ListDetailed(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %v", ErrPersistence, err)
	}

	if products == nil {
		products = []types.Product{}
	}
	for i := range products {
		decorateProduct(&products[i])
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*types.Product, error) {
	product, err := s.Products.FindDetailed(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: find product: %v", ErrPersistence, err)
	}
	decorateProduct(product)
	return product, nil
}

// ListCategories 每个分类带按名称排序的子分类；没有子分类的返回空列表而不是报错
func (s *CatalogService) ListCategories(ctx context.Context) ([]types.Category, error) {
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx); ok {
			return cached, nil
		}
	}

	categories, err := s.Categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", ErrPersistence, err)
	}

	views := make([]types.Category, len(categories))

	// 每个分类的子分类并行拉取
	p := pool.New().WithErrors().WithContext(ctx)
	for i, category := range categories {
		p.Go(func(ctx context.Context) error {
			subcategories, err := s.Categories.ListSubcategories(ctx, category.ID)
			if err != nil {
				return err
			}
			views[i] = types.Category{
				Category:      category,
				Subcategories: subcategories,
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("%w: list subcategories: %v", ErrPersistence, err)
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, views)
	}
	return views, nil
}

// decorateProduct 冗余名称兜底 + 折扣/库存展示字段。
// 视图里 vendor/category/subcategory 名称永远非空。
func decorateProduct(p *types.Product) {
	if p.VendorName == "" {
		p.VendorName = "Unknown Vendor"
	}
	if p.CategoryName == "" {
		p.CategoryName = "Unknown Category"
	}
	if p.SubcategoryName == "" {
		p.SubcategoryName = "Unknown Subcategory"
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.DiscountPercent = p.Discount()
	p.InStock = p.Stock > 0
}
