package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mypham-next/internal/config"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Cart.LockPriceAtAdd = true
	cfg.Order.FreeShippingThreshold = 300000
	cfg.Order.ShippingFee = 30000

	svc := NewCartService(cfg, repository.NewCartRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func createCartProduct(t *testing.T, db *gorm.DB, slug string, price int64, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:     slug,
		Title:    "Sản phẩm " + slug,
		Category: "cham-soc-da",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		IsActive: active,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartProduct(t, db, "toner", 120000, true)

	if err := svc.AddItem(1, product.ID, 1); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddItem(1, product.ID, 2); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	summary, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(summary.Items) != 1 || summary.Items[0].Quantity != 3 {
		t.Fatalf("same product should merge into one line of quantity 3, got %+v", summary.Items)
	}
}

func TestAddItemRejectsInvalidInput(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartProduct(t, db, "serum", 200000, true)
	inactive := createCartProduct(t, db, "retired", 80000, false)

	if err := svc.AddItem(1, product.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity want ErrInvalidQuantity got %v", err)
	}
	if err := svc.AddItem(1, inactive.ID, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("inactive product want ErrProductNotAvailable got %v", err)
	}
}

func TestUpdateQuantityZeroRemovesItem(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartProduct(t, db, "mask", 50000, true)

	if err := svc.AddItem(1, product.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity(1, product.ID, 0); err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}

	summary, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(summary.Items) != 0 {
		t.Fatalf("cart should be empty after zero-quantity update, got %+v", summary.Items)
	}

	if err := svc.UpdateQuantity(1, product.ID, 5); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("updating missing item want ErrCartItemNotFound got %v", err)
	}
}

func TestListByUserComputesTotalsWithShipping(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	cheap := createCartProduct(t, db, "cheap", 100000, true)

	if err := svc.AddItem(1, cheap.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	summary, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if summary.Subtotal.String() != "200000" {
		t.Fatalf("subtotal want 200000 got %s", summary.Subtotal.String())
	}
	if summary.ShippingFee.String() != "30000" {
		t.Fatalf("shipping fee want 30000 got %s", summary.ShippingFee.String())
	}
	if summary.Total.String() != "230000" {
		t.Fatalf("total want 230000 got %s", summary.Total.String())
	}

	if err := svc.AddItem(1, cheap.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	summary, err = svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if summary.ShippingFee.String() != "0" {
		t.Fatalf("subtotal 300000 should reach free shipping, got fee %s", summary.ShippingFee.String())
	}
}

func TestListByUserPrunesInactiveProducts(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	keep := createCartProduct(t, db, "keep", 150000, true)
	gone := createCartProduct(t, db, "gone", 90000, true)

	if err := svc.AddItem(1, keep.ID, 1); err != nil {
		t.Fatalf("add keep failed: %v", err)
	}
	if err := svc.AddItem(1, gone.ID, 1); err != nil {
		t.Fatalf("add gone failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", gone.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	summary, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(summary.Items) != 1 || summary.Items[0].ProductID != keep.ID {
		t.Fatalf("inactive product should be pruned, got %+v", summary.Items)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("pruned item should be deleted from storage, count %d", count)
	}
}

func TestSyncGuestCartServerWins(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	server := createCartProduct(t, db, "server-item", 100000, true)
	local := createCartProduct(t, db, "local-item", 70000, true)

	if err := svc.AddItem(1, server.ID, 1); err != nil {
		t.Fatalf("seed server cart failed: %v", err)
	}

	summary, err := svc.SyncGuestCart(1, []GuestCartItem{{ProductID: local.ID, Quantity: 2}})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if len(summary.Items) != 1 || summary.Items[0].ProductID != server.ID {
		t.Fatalf("non-empty server cart should win over snapshot, got %+v", summary.Items)
	}
}

func TestSyncGuestCartAdoptsSnapshotWhenServerEmpty(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	valid := createCartProduct(t, db, "valid", 100000, true)
	inactive := createCartProduct(t, db, "dead", 50000, false)

	snapshot := []GuestCartItem{
		{ProductID: valid.ID, Quantity: 2},
		{ProductID: inactive.ID, Quantity: 1},
		{ProductID: 0, Quantity: 3},
		{ProductID: valid.ID + 100, Quantity: 0},
	}
	summary, err := svc.SyncGuestCart(1, snapshot)
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if len(summary.Items) != 1 || summary.Items[0].ProductID != valid.ID || summary.Items[0].Quantity != 2 {
		t.Fatalf("snapshot adoption should keep only valid active entries, got %+v", summary.Items)
	}
}

func TestSyncGuestCartMergesDuplicateSnapshotEntries(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartProduct(t, db, "dup", 100000, true)

	snapshot := []GuestCartItem{
		{ProductID: product.ID, Quantity: 1},
		{ProductID: product.ID, Quantity: 2},
	}
	summary, err := svc.SyncGuestCart(1, snapshot)
	if err != nil {
		t.Fatalf("sync with duplicate entries failed: %v", err)
	}
	if len(summary.Items) != 1 || summary.Items[0].ProductID != product.ID || summary.Items[0].Quantity != 3 {
		t.Fatalf("duplicate snapshot entries should merge into one line of quantity 3, got %+v", summary.Items)
	}
}

func TestResolveShippingFee(t *testing.T) {
	cfg := config.OrderConfig{FreeShippingThreshold: 300000, ShippingFee: 30000}

	if fee := resolveShippingFee(cfg, decimal.Zero); !fee.IsZero() {
		t.Fatalf("empty subtotal should ship free, got %s", fee)
	}
	if fee := resolveShippingFee(cfg, decimal.NewFromInt(299999)); !fee.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("below threshold want 30000 got %s", fee)
	}
	if fee := resolveShippingFee(cfg, decimal.NewFromInt(300000)); !fee.IsZero() {
		t.Fatalf("at threshold want 0 got %s", fee)
	}

	noThreshold := config.OrderConfig{FreeShippingThreshold: 0, ShippingFee: 30000}
	if fee := resolveShippingFee(noThreshold, decimal.NewFromInt(1000000)); !fee.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("zero threshold never ships free, got %s", fee)
	}
}
