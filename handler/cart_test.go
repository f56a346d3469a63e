package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Bazaar/config"
	"Bazaar/pkg/jwt"
	"Bazaar/service"
	"Bazaar/types"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type fakeCartService struct {
	view *types.CartView
	fail error
}

func (f *fakeCartService) Items(context.Context, string) ([]types.CartItem, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.view.Items, nil
}

func (f *fakeCartService) AddToCart(context.Context, string, string, int) error { return f.fail }
func (f *fakeCartService) SetQuantity(context.Context, string, string, int) error {
	return f.fail
}
func (f *fakeCartService) RemoveFromCart(context.Context, string, string) error { return f.fail }
func (f *fakeCartService) ClearCart(context.Context, string) error              { return f.fail }

func (f *fakeCartService) View(context.Context, string) (*types.CartView, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return f.view, nil
}

func cartTestRouter(svc service.ICartService) (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Jwt: &config.Jwt{Secret: "handler-test-secret", ExpiresIn: 600}}
	h := &Cart{Config: cfg, CartService: svc}
	r := gin.New()
	h.RegisterRouter(r.Group("/api"))
	return r, cfg
}

func bearer(t *testing.T, cfg *config.Config, userID string) string {
	t.Helper()
	token, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), userID, "customer", "access", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func TestCartRequiresToken(t *testing.T) {
	r, _ := cartTestRouter(&fakeCartService{view: &types.CartView{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}
}

func TestGetCartReturnsView(t *testing.T) {
	view := &types.CartView{
		Items:      []types.CartItem{{ProductID: "p1", Quantity: 2}},
		TotalItems: 2,
		TotalPrice: decimal.RequireFromString("48.00"),
	}
	r, cfg := cartTestRouter(&fakeCartService{view: view})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", bearer(t, cfg, "u1"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Code int `json:"code"`
		Data struct {
			TotalItems int `json:"total_items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != 0 || body.Data.TotalItems != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestServiceErrorsMapToBizCodes(t *testing.T) {
	fake := &fakeCartService{
		view: &types.CartView{},
		fail: fmt.Errorf("%w: cart row", service.ErrPersistence),
	}
	r, cfg := cartTestRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"p1","quantity":1}`))
	req.Header.Set("Authorization", bearer(t, cfg, "u1"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var body struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != http.StatusInternalServerError {
		t.Fatalf("persistence failure should map to code 500, got %d: %s", body.Code, w.Body.String())
	}
}
