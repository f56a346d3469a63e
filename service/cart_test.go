package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"Bazaar/models"
	"Bazaar/types"

	"github.com/shopspring/decimal"
)

// fakeCartStore 内存版购物车存储，可按操作注入失败
type fakeCartStore struct {
	rows   []models.CartItem
	prices map[string]decimal.Decimal

	failList   error
	failCreate error
	failUpdate error
	failDelete error
	failClear  error
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{prices: map[string]decimal.Decimal{}}
}

func (f *fakeCartStore) ListByUser(_ context.Context, userID string) ([]types.CartItem, error) {
	if f.failList != nil {
		return nil, f.failList
	}
	var out []types.CartItem
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		item := types.CartItem{
			ID:        row.ID,
			UserID:    row.UserID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
		}
		if price, ok := f.prices[row.ProductID]; ok {
			item.Product = &types.Product{ID: row.ProductID, Price: price}
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeCartStore) Create(_ context.Context, item *models.CartItem) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.rows = append(f.rows, *item)
	return nil
}

func (f *fakeCartStore) UpdateQuantity(_ context.Context, userID, productID string, quantity int) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	for i := range f.rows {
		if f.rows[i].UserID == userID && f.rows[i].ProductID == productID {
			f.rows[i].Quantity = quantity
		}
	}
	return nil
}

func (f *fakeCartStore) Delete(_ context.Context, userID, productID string) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	kept := f.rows[:0]
	for _, row := range f.rows {
		if row.UserID != userID || row.ProductID != productID {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeCartStore) DeleteAll(_ context.Context, userID string) error {
	if f.failClear != nil {
		return f.failClear
	}
	kept := f.rows[:0]
	for _, row := range f.rows {
		if row.UserID != userID {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeCartStore) countRows(userID, productID string) (int, int) {
	rows, qty := 0, 0
	for _, row := range f.rows {
		if row.UserID == userID && row.ProductID == productID {
			rows++
			qty = row.Quantity
		}
	}
	return rows, qty
}

func TestAddToCartMergesExistingRow(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	if err := svc.AddToCart(ctx, "u1", "p1", 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.AddToCart(ctx, "u1", "p1", 3); err != nil {
		t.Fatalf("second add: %v", err)
	}

	rows, qty := store.countRows("u1", "p1")
	if rows != 1 {
		t.Fatalf("expected a single row for the pair, got %d", rows)
	}
	if qty != 5 {
		t.Fatalf("expected merged quantity 5, got %d", qty)
	}

	view, err := svc.View(ctx, "u1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 5 {
		t.Fatalf("snapshot differs from store: %+v", view.Items)
	}
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)

	if err := svc.AddToCart(context.Background(), "u1", "p1", 0); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, qty := store.countRows("u1", "p1"); qty != 1 {
		t.Fatalf("expected quantity 1, got %d", qty)
	}
}

func TestSetQuantityZeroRemovesRow(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	if err := svc.AddToCart(ctx, "u1", "p1", 4); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.SetQuantity(ctx, "u1", "p1", 0); err != nil {
		t.Fatalf("set quantity 0: %v", err)
	}

	if rows, _ := store.countRows("u1", "p1"); rows != 0 {
		t.Fatalf("row should be gone, got %d rows", rows)
	}
	view, err := svc.View(ctx, "u1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("snapshot still has items: %+v", view.Items)
	}
}

func TestRemoveMissingRowSucceeds(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)

	if err := svc.RemoveFromCart(context.Background(), "u1", "never-added"); err != nil {
		t.Fatalf("remove of missing row should succeed, got %v", err)
	}
}

func TestFailedRemoveLeavesSnapshotUntouched(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	if err := svc.AddToCart(ctx, "u1", "p1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	before, err := svc.View(ctx, "u1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}

	store.failDelete = errors.New("connection reset")
	err = svc.RemoveFromCart(ctx, "u1", "p1")
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}

	store.failDelete = nil
	after, err := svc.View(ctx, "u1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if !reflect.DeepEqual(before.Items, after.Items) {
		t.Fatalf("snapshot changed after failed remove:\nbefore %+v\nafter  %+v", before.Items, after.Items)
	}
}

func TestFailedUpdateLeavesSnapshotUntouched(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	if err := svc.AddToCart(ctx, "u1", "p1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	before, _ := svc.View(ctx, "u1")

	store.failUpdate = errors.New("deadlock")
	if err := svc.SetQuantity(ctx, "u1", "p1", 9); !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}

	store.failUpdate = nil
	after, _ := svc.View(ctx, "u1")
	if !reflect.DeepEqual(before.Items, after.Items) {
		t.Fatalf("snapshot changed after failed update")
	}
	if _, qty := store.countRows("u1", "p1"); qty != 2 {
		t.Fatalf("store row changed after failed update, qty=%d", qty)
	}
}

func TestAddSucceedsEvenIfRefreshFails(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	// 先让快照就位，再让后续的全量拉取失败
	if _, err := svc.Items(ctx, "u1"); err != nil {
		t.Fatalf("items: %v", err)
	}
	store.failList = errors.New("timeout")

	if err := svc.AddToCart(ctx, "u1", "p1", 1); err != nil {
		t.Fatalf("add should report success once the row is persisted, got %v", err)
	}
	if rows, _ := store.countRows("u1", "p1"); rows != 1 {
		t.Fatalf("row not persisted")
	}

	// 失败的重拉不能留下缺行的旧快照：库恢复后第一次读就要看到新行
	store.failList = nil
	view, err := svc.View(ctx, "u1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].ProductID != "p1" {
		t.Fatalf("next read should refetch and include the added row: %+v", view.Items)
	}
}

func TestViewTotals(t *testing.T) {
	store := newFakeCartStore()
	store.prices["p1"] = decimal.RequireFromString("19.99")
	store.prices["p2"] = decimal.RequireFromString("5.00")
	svc := NewCartService(store)
	ctx := context.Background()

	if err := svc.AddToCart(ctx, "u1", "p1", 2); err != nil {
		t.Fatalf("add p1: %v", err)
	}
	if err := svc.AddToCart(ctx, "u1", "p2", 3); err != nil {
		t.Fatalf("add p2: %v", err)
	}
	// p3 没有对应商品（已下架），只计件数不计价
	if err := svc.AddToCart(ctx, "u1", "p3", 1); err != nil {
		t.Fatalf("add p3: %v", err)
	}

	view, err := svc.View(ctx, "u1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.TotalItems != 6 {
		t.Fatalf("expected 6 total items, got %d", view.TotalItems)
	}
	want := decimal.RequireFromString("54.98")
	if !view.TotalPrice.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, view.TotalPrice)
	}
}

func TestClearCart(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	_ = svc.AddToCart(ctx, "u1", "p1", 2)
	_ = svc.AddToCart(ctx, "u1", "p2", 1)
	_ = svc.AddToCart(ctx, "u2", "p1", 1)

	if err := svc.ClearCart(ctx, "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	view, _ := svc.View(ctx, "u1")
	if len(view.Items) != 0 {
		t.Fatalf("cart not empty after clear: %+v", view.Items)
	}
	// 别的用户不受影响
	if rows, _ := store.countRows("u2", "p1"); rows != 1 {
		t.Fatalf("another user's cart was touched")
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)
	ctx := context.Background()

	_ = svc.AddToCart(ctx, "u1", "p1", 2)
	_ = svc.AddToCart(ctx, "u2", "p1", 7)

	v1, _ := svc.View(ctx, "u1")
	v2, _ := svc.View(ctx, "u2")
	if v1.TotalItems != 2 || v2.TotalItems != 7 {
		t.Fatalf("carts leaked across users: u1=%d u2=%d", v1.TotalItems, v2.TotalItems)
	}
}
