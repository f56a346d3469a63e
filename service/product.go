package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Bazaar/models"
	"Bazaar/types"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	FindById(ctx context.Context, id any) (*models.Product, error)
	UpdateById(ctx context.Context, id any, data map[string]any) error
	DeleteById(ctx context.Context, id any) error
	ListDetailed(ctx context.Context, filter types.ProductFilter) ([]types.Product, error)
}

type ProductService struct {
	Store ProductStore
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	Create(ctx context.Context, vendorID string, req *types.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, actorID string, actorRole models.Role, productID string, req *types.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, actorID string, productID string) error
	ListByVendor(ctx context.Context, vendorID string) ([]types.Product, error)
}

func (s *ProductService) Create(ctx context.Context, vendorID string, req *types.CreateProductRequest) (*models.Product, error) {
	// 1. 基本校验
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if strings.TrimSpace(req.PurchaseUrl) == "" {
		return nil, fmt.Errorf("%w: purchase_url is required", ErrValidation)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if req.OriginalPrice != nil && req.OriginalPrice.IsNegative() {
		return nil, fmt.Errorf("%w: original_price must be non-negative", ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be non-negative", ErrValidation)
	}

	status := models.ProductPending
	if req.Status != "" {
		status = models.ProductStatus(req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
		}
	}

	// 2. 构造并写入
	product := &models.Product{
		ID:            uuid.NewString(),
		VendorID:      vendorID,
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Images:        datatypes.NewJSONSlice(emptyIfNil(req.Images)),
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		PurchaseUrl:   req.PurchaseUrl,
		Stock:         req.Stock,
		Tags:          datatypes.NewJSONSlice(emptyIfNil(req.Tags)),
		Status:        status,
	}
	if err := s.Store.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("%w: create product: %v", ErrPersistence, err)
	}
	return product, nil
}

// Update 部分更新；只有归属商家或管理员可以改
func (s *ProductService) Update(ctx context.Context, actorID string, actorRole models.Role, productID string, req *types.UpdateProductRequest) (*models.Product, error) {
	existing, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing.VendorID != actorID && !actorRole.CanModerate() {
		return nil, fmt.Errorf("%w: not the owning vendor", ErrForbidden)
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
		}
		updates["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		if req.OriginalPrice.IsNegative() {
			return nil, fmt.Errorf("%w: original_price must be non-negative", ErrValidation)
		}
		updates["original_price"] = *req.OriginalPrice
	}
	if req.Images != nil {
		updates["images"] = datatypes.NewJSONSlice(req.Images)
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.SubcategoryID != nil {
		updates["subcategory_id"] = *req.SubcategoryID
	}
	if req.PurchaseUrl != nil {
		updates["purchase_url"] = *req.PurchaseUrl
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must be non-negative", ErrValidation)
		}
		updates["stock"] = *req.Stock
	}
	if req.Tags != nil {
		updates["tags"] = datatypes.NewJSONSlice(req.Tags)
	}
	if req.Status != nil {
		status := models.ProductStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
		updates["status"] = status
	}

	if err := s.Store.UpdateById(ctx, productID, updates); err != nil {
		return nil, fmt.Errorf("%w: update product: %v", ErrPersistence, err)
	}
	return s.findProduct(ctx, productID)
}

// Delete 只有归属商家能删自己的商品
func (s *ProductService) Delete(ctx context.Context, actorID string, productID string) error {
	existing, err := s.findProduct(ctx, productID)
	if err != nil {
		return err
	}
	if existing.VendorID != actorID {
		return fmt.Errorf("%w: not the owning vendor", ErrForbidden)
	}
	if err := s.Store.DeleteById(ctx, productID); err != nil {
		return fmt.Errorf("%w: delete product: %v", ErrPersistence, err)
	}
	return nil
}

// ListByVendor 商家后台看自己的全部商品，不限状态
func (s *ProductService) ListByVendor(ctx context.Context, vendorID string) ([]types.Product, error) {
	products, err := s.Store.ListDetailed(ctx, types.ProductFilter{VendorID: vendorID})
	if err != nil {
		return nil, fmt.Errorf("%w: list vendor products: %v", ErrPersistence, err)
	}
	if products == nil {
		products = []types.Product{}
	}
	for i := range products {
		decorateProduct(&products[i])
	}
	return products, nil
}

func (s *ProductService) findProduct(ctx context.Context, productID string) (*models.Product, error) {
	existing, err := s.Store.FindById(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return nil, fmt.Errorf("%w: find product: %v", ErrPersistence, err)
	}
	return existing, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
