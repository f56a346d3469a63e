package service

import (
	"context"
	"fmt"
	"sync"

	"Bazaar/models"
	"Bazaar/pkg/log"
	"Bazaar/types"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CartStore interface {
	ListByUser(ctx context.Context, userID string) ([]types.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error
	Delete(ctx context.Context, userID, productID string) error
	DeleteAll(ctx context.Context, userID string) error
}

// CartService 维护每个用户的购物车内存快照和持久化行之间的一致性。
// 约定：改量/删行先写库、成功后本地打补丁；新增行写库后重拉全量，
// 不做乐观插入，避免和库端默认值漂移。写失败快照保持原样。
type CartService struct {
	Store CartStore

	snapshots cmap.ConcurrentMap[string, []types.CartItem]
	locks     cmap.ConcurrentMap[string, *sync.Mutex]
}

func NewCartService(store CartStore) *CartService {
	return &CartService{
		Store:     store,
		snapshots: cmap.New[[]types.CartItem](),
		locks:     cmap.New[*sync.Mutex](),
	}
}

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	Items(ctx context.Context, userID string) ([]types.CartItem, error)
	AddToCart(ctx context.Context, userID, productID string, quantity int) error
	SetQuantity(ctx context.Context, userID, productID string, quantity int) error
	RemoveFromCart(ctx context.Context, userID, productID string) error
	ClearCart(ctx context.Context, userID string) error
	View(ctx context.Context, userID string) (*types.CartView, error)
}

// 同一用户的变更操作串行执行，连点两下不会互相踩
func (s *CartService) lockFor(userID string) *sync.Mutex {
	s.locks.SetIfAbsent(userID, &sync.Mutex{})
	mu, _ := s.locks.Get(userID)
	return mu
}

func (s *CartService) refresh(ctx context.Context, userID string) ([]types.CartItem, error) {
	items, err := s.Store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch cart: %v", ErrPersistence, err)
	}
	if items == nil {
		items = []types.CartItem{}
	}
	s.snapshots.Set(userID, items)
	return items, nil
}

// current 调用方必须已持有该用户的锁
func (s *CartService) current(ctx context.Context, userID string) ([]types.CartItem, error) {
	if items, ok := s.snapshots.Get(userID); ok {
		return items, nil
	}
	return s.refresh(ctx, userID)
}

func (s *CartService) Items(ctx context.Context, userID string) ([]types.CartItem, error) {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	return s.refresh(ctx, userID)
}

// AddToCart 同一 (user, product) 只有一行：已有行就累加数量，不会悄悄覆盖
func (s *CartService) AddToCart(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	items, err := s.current(ctx, userID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.ProductID == productID {
			return s.setQuantityLocked(ctx, userID, productID, item.Quantity+quantity, items)
		}
	}

	row := models.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.Store.Create(ctx, &row); err != nil {
		return fmt.Errorf("%w: add cart item: %v", ErrPersistence, err)
	}

	// 新行落库成功，重拉全量；拉取失败只记日志，写入本身已成功。
	// 旧快照缺了刚加的行，丢掉它让下次读重新拉库。
	if _, err := s.refresh(ctx, userID); err != nil {
		log.L.Warn("refresh cart after add", zap.String("user_id", userID), zap.Error(err))
		s.snapshots.Remove(userID)
	}
	return nil
}

func (s *CartService) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	items, err := s.current(ctx, userID)
	if err != nil {
		return err
	}
	return s.setQuantityLocked(ctx, userID, productID, quantity, items)
}

func (s *CartService) setQuantityLocked(ctx context.Context, userID, productID string, quantity int, items []types.CartItem) error {
	// 数量归零（或更低）就是删行，不保留零数量的行
	if quantity <= 0 {
		return s.removeLocked(ctx, userID, productID, items)
	}

	if err := s.Store.UpdateQuantity(ctx, userID, productID, quantity); err != nil {
		return fmt.Errorf("%w: update quantity: %v", ErrPersistence, err)
	}

	next := make([]types.CartItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = quantity
		}
	}
	s.snapshots.Set(userID, next)
	return nil
}

// RemoveFromCart 删除不存在的行是成功的空操作
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID string) error {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	items, err := s.current(ctx, userID)
	if err != nil {
		return err
	}
	return s.removeLocked(ctx, userID, productID, items)
}

func (s *CartService) removeLocked(ctx context.Context, userID, productID string, items []types.CartItem) error {
	if err := s.Store.Delete(ctx, userID, productID); err != nil {
		return fmt.Errorf("%w: remove cart item: %v", ErrPersistence, err)
	}

	next := make([]types.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			next = append(next, item)
		}
	}
	s.snapshots.Set(userID, next)
	return nil
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := s.Store.DeleteAll(ctx, userID); err != nil {
		return fmt.Errorf("%w: clear cart: %v", ErrPersistence, err)
	}
	s.snapshots.Set(userID, []types.CartItem{})
	return nil
}

// View 当前快照加上合计。总件数是数量之和，总价按商品现价估算，
// 和订单冻结价无关。
func (s *CartService) View(ctx context.Context, userID string) (*types.CartView, error) {
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	items, err := s.current(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.CartView{
		Items:      items,
		TotalItems: totalItems(items),
		TotalPrice: totalPrice(items),
	}, nil
}

func totalItems(items []types.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

func totalPrice(items []types.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
