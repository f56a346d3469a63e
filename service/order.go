package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"Bazaar/models"
	"Bazaar/pkg/log"
	"Bazaar/pkg/mq"
	"Bazaar/pkg/ordersn"
	"Bazaar/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderStore interface {
	CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error
	ListDetailed(ctx context.Context, filter types.OrderFilter) ([]types.OrderView, error)
	FindById(ctx context.Context, id any) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
}

// OrderService 下单即快照：明细里的单价在创建时刻冻结，
// 之后商品改价不影响已有订单。
type OrderService struct {
	Store    OrderStore
	Products ProductStore
	Cart     ICartService
	Events   EventPublisher
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	Checkout(ctx context.Context, customerID string, req *types.CreateOrderRequest) (*models.Order, error)
	List(ctx context.Context, actorID string, actorRole models.Role, filter types.OrderFilter) ([]types.OrderView, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

func (s *OrderService) Checkout(ctx context.Context, customerID string, req *types.CreateOrderRequest) (*models.Order, error) {
	if strings.TrimSpace(req.ShippingAddress) == "" {
		return nil, fmt.Errorf("%w: shipping_address is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", ErrValidation)
	}

	order := &models.Order{
		ID:              uuid.NewString(),
		OrderSn:         ordersn.Gen(),
		CustomerID:      customerID,
		Status:          models.OrderPending,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}
		product, err := s.Products.FindById(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: product %s", ErrNotFound, line.ProductID)
			}
			return nil, fmt.Errorf("%w: find product: %v", ErrPersistence, err)
		}

		// 冻结当前售价
		items = append(items, models.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	order.Total = total

	if err := s.Store.CreateWithItems(ctx, order, items); err != nil {
		return nil, fmt.Errorf("%w: create order: %v", ErrPersistence, err)
	}

	// 下单成功后清空购物车；清失败不影响订单本身
	if s.Cart != nil {
		if err := s.Cart.ClearCart(ctx, customerID); err != nil {
			log.L.Warn("clear cart after checkout", zap.String("customer_id", customerID), zap.Error(err))
		}
	}

	if s.Events != nil {
		body, _ := json.Marshal(types.OrderCreatedEvent{
			OrderID:    order.ID,
			OrderSn:    order.OrderSn,
			CustomerID: customerID,
			Total:      total,
			CreatedAt:  order.CreatedAt,
		})
		if err := s.Events.Publish(ctx, mq.TopicOrderCreated, body); err != nil {
			log.L.Warn("publish order created event", zap.String("order_sn", order.OrderSn), zap.Error(err))
		}
	}
	return order, nil
}

// List 普通用户只能看自己的订单，管理员可以按客户/状态过滤
func (s *OrderService) List(ctx context.Context, actorID string, actorRole models.Role, filter types.OrderFilter) ([]types.OrderView, error) {
	if !actorRole.CanModerate() {
		filter.CustomerID = actorID
	}
	orders, err := s.Store.ListDetailed(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: list orders: %v", ErrPersistence, err)
	}
	if orders == nil {
		orders = []types.OrderView{}
	}
	return orders, nil
}

// UpdateStatus 只校验状态取值合法，不强制流转顺序
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	next := models.OrderStatus(status)
	if !next.Valid() {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}

	if _, err := s.Store.FindById(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %s", ErrNotFound, orderID)
		}
		return fmt.Errorf("%w: find order: %v", ErrPersistence, err)
	}

	if err := s.Store.UpdateStatus(ctx, orderID, next); err != nil {
		return fmt.Errorf("%w: update order status: %v", ErrPersistence, err)
	}
	return nil
}
