package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mypham-next/internal/config"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/provider"
	"github.com/mypham-next/internal/repository"
	"github.com/mypham-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:cart_handler_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Cart.LockPriceAtAdd = true

	container := &provider.Container{
		Config:      cfg,
		CartService: service.NewCartService(cfg, repository.NewCartRepository(db), repository.NewProductRepository(db)),
	}
	handler := New(container)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
	})
	r.PUT("/cart/items", handler.UpdateCartItem)
	return r, db
}

func seedCartLine(t *testing.T, db *gorm.DB, quantity int) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:     "serum",
		Title:    "Serum B5",
		Category: "cham-soc-da",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(100000)),
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	item := &models.CartItem{
		UserID:    1,
		ProductID: product.ID,
		Title:     product.Title,
		UnitPrice: product.Price,
		Quantity:  quantity,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
	return product
}

func putCartQuantity(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateCartItemZeroQuantityRemovesLine(t *testing.T) {
	r, db := setupCartHandlerTest(t)
	product := seedCartLine(t, db, 2)

	w := putCartQuantity(t, r, fmt.Sprintf(`{"product_id":%d,"quantity":0}`, product.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("zero quantity should be accepted, got HTTP %d body %s", w.Code, w.Body.String())
	}
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("business code want 0 got %d", resp.StatusCode)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("zero-quantity update should delete the line, count %d", count)
	}
}

func TestUpdateCartItemSetsQuantity(t *testing.T) {
	r, db := setupCartHandlerTest(t)
	product := seedCartLine(t, db, 2)

	w := putCartQuantity(t, r, fmt.Sprintf(`{"product_id":%d,"quantity":5}`, product.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("update failed: HTTP %d body %s", w.Code, w.Body.String())
	}

	var item models.CartItem
	if err := db.Where("user_id = ? AND product_id = ?", 1, product.ID).First(&item).Error; err != nil {
		t.Fatalf("load item failed: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", item.Quantity)
	}
}

func TestUpdateCartItemRequiresProductID(t *testing.T) {
	r, _ := setupCartHandlerTest(t)

	w := putCartQuantity(t, r, `{"quantity":1}`)
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if resp.StatusCode == 0 {
		t.Fatalf("missing product_id should be rejected, body %s", w.Body.String())
	}
}
