package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mypham-next/internal/config"
	"github.com/mypham-next/internal/constants"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	prevDB := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = prevDB })

	cfg := &config.Config{}
	cfg.Cart.LockPriceAtAdd = true
	cfg.Order.FreeShippingThreshold = 300000
	cfg.Order.ShippingFee = 30000

	svc := NewOrderService(cfg, repository.NewOrderRepository(db), repository.NewCartRepository(db), repository.NewProductRepository(db), nil)
	return svc, db
}

func createCheckoutProduct(t *testing.T, db *gorm.DB, slug string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:     slug,
		Title:    "Sản phẩm " + slug,
		Category: "cham-soc-da",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func addCheckoutCartItem(t *testing.T, db *gorm.DB, userID uint, product *models.Product, quantity int) {
	t.Helper()
	item := &models.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Title:     product.Title,
		UnitPrice: product.Price,
		Quantity:  quantity,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
}

func checkoutInputFor(userID uint, productIDs ...uint) CheckoutInput {
	return CheckoutInput{
		UserID:       userID,
		ProductIDs:   productIDs,
		CustomerName: "Nguyễn Văn A",
		Phone:        "0901234567",
		Address:      "12 Lê Lợi",
		City:         "Hồ Chí Minh",
		District:     "Quận 1",
		Ward:         "Phường Bến Nghé",
	}
}

func TestCheckoutChargesShippingBelowThreshold(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createCheckoutProduct(t, db, "below-threshold", 299999)
	addCheckoutCartItem(t, db, 1, product, 1)

	order, err := svc.Checkout(checkoutInputFor(1, product.ID))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.Subtotal.String() != "299999" {
		t.Fatalf("subtotal want 299999 got %s", order.Subtotal.String())
	}
	if order.ShippingFee.String() != "30000" {
		t.Fatalf("shipping fee want 30000 got %s", order.ShippingFee.String())
	}
	if order.TotalAmount.String() != "329999" {
		t.Fatalf("total want 329999 got %s", order.TotalAmount.String())
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("new order status want %s got %s", constants.OrderStatusPending, order.Status)
	}
	if order.Version != 1 {
		t.Fatalf("new order version want 1 got %d", order.Version)
	}
}

func TestCheckoutFreeShippingAtThreshold(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createCheckoutProduct(t, db, "at-threshold", 300000)
	addCheckoutCartItem(t, db, 1, product, 1)

	order, err := svc.Checkout(checkoutInputFor(1, product.ID))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.ShippingFee.String() != "0" {
		t.Fatalf("shipping fee at threshold want 0 got %s", order.ShippingFee.String())
	}
	if order.TotalAmount.String() != "300000" {
		t.Fatalf("total want 300000 got %s", order.TotalAmount.String())
	}
}

func TestCheckoutRemovesOnlySelectedCartItems(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	bought := createCheckoutProduct(t, db, "bought", 100000)
	kept := createCheckoutProduct(t, db, "kept", 150000)
	addCheckoutCartItem(t, db, 1, bought, 2)
	addCheckoutCartItem(t, db, 1, kept, 1)

	order, err := svc.Checkout(checkoutInputFor(1, bought.ID))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if len(order.Items) != 1 || order.Items[0].ProductID != bought.ID || order.Items[0].Quantity != 2 {
		t.Fatalf("order items mismatch: %+v", order.Items)
	}

	var remaining []models.CartItem
	if err := db.Where("user_id = ?", 1).Find(&remaining).Error; err != nil {
		t.Fatalf("load remaining cart failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ProductID != kept.ID {
		t.Fatalf("unselected cart item should survive checkout, got %+v", remaining)
	}
}

func TestCheckoutRejectsEmptySelection(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createCheckoutProduct(t, db, "not-selected", 100000)
	addCheckoutCartItem(t, db, 1, product, 1)

	if _, err := svc.Checkout(checkoutInputFor(1)); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("empty product ids want ErrCartEmpty got %v", err)
	}

	other := createCheckoutProduct(t, db, "other-user-product", 100000)
	if _, err := svc.Checkout(checkoutInputFor(1, other.ID)); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("selection not in cart want ErrCartEmpty got %v", err)
	}
}

func TestCheckoutRequiresFullAddress(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createCheckoutProduct(t, db, "needs-address", 100000)
	addCheckoutCartItem(t, db, 1, product, 1)

	for _, blank := range []string{"city", "district", "ward"} {
		input := checkoutInputFor(1, product.ID)
		switch blank {
		case "city":
			input.City = "  "
		case "district":
			input.District = ""
		case "ward":
			input.Ward = " "
		}
		if _, err := svc.Checkout(input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("blank %s want ErrInvalidInput got %v", blank, err)
		}
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no order should be created, got %d", count)
	}
}

func TestCheckoutRejectsInactiveProduct(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createCheckoutProduct(t, db, "retired", 100000)
	addCheckoutCartItem(t, db, 1, product, 1)
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	if _, err := svc.Checkout(checkoutInputFor(1, product.ID)); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("inactive product want ErrProductNotAvailable got %v", err)
	}
}

func TestCancelOrderOnlyFromPending(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createCheckoutProduct(t, db, "cancel-me", 100000)
	addCheckoutCartItem(t, db, 1, product, 1)

	order, err := svc.Checkout(checkoutInputFor(1, product.ID))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	canceled, err := svc.CancelOrder(order.ID, 1, 0)
	if err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}
	if canceled.Status != constants.OrderStatusCanceled {
		t.Fatalf("status want %s got %s", constants.OrderStatusCanceled, canceled.Status)
	}
	if canceled.Version != 2 {
		t.Fatalf("version after cancel want 2 got %d", canceled.Version)
	}
	if canceled.CanceledAt == nil {
		t.Fatalf("canceled_at should be set")
	}

	if _, err := svc.CancelOrder(order.ID, 1, 0); !errors.Is(err, ErrStatusTransitionInvalid) {
		t.Fatalf("cancel canceled order want ErrStatusTransitionInvalid got %v", err)
	}
}

func TestConfirmReceivedOnlyFromShipping(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createCheckoutProduct(t, db, "confirm-me", 100000)
	addCheckoutCartItem(t, db, 1, product, 1)

	order, err := svc.Checkout(checkoutInputFor(1, product.ID))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := svc.ConfirmReceived(order.ID, 1, 0); !errors.Is(err, ErrStatusTransitionInvalid) {
		t.Fatalf("confirm pending order want ErrStatusTransitionInvalid got %v", err)
	}

	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusShipping, 0); err != nil {
		t.Fatalf("move to shipping failed: %v", err)
	}

	delivered, err := svc.ConfirmReceived(order.ID, 1, 0)
	if err != nil {
		t.Fatalf("confirm received failed: %v", err)
	}
	if delivered.Status != constants.OrderStatusDelivered {
		t.Fatalf("status want %s got %s", constants.OrderStatusDelivered, delivered.Status)
	}
	if delivered.DeliveredAt == nil {
		t.Fatalf("delivered_at should be set")
	}
}

func TestUpdateOrderStatusRejectsInvalidTarget(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createCheckoutProduct(t, db, "bad-target", 100000)
	addCheckoutCartItem(t, db, 1, product, 1)

	order, err := svc.Checkout(checkoutInputFor(1, product.ID))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := svc.UpdateOrderStatus(order.ID, "unknown", 0); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("unknown status want ErrOrderStatusInvalid got %v", err)
	}
	// Chưa giao 不能直接跳到 Đã giao
	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusDelivered, 0); !errors.Is(err, ErrStatusTransitionInvalid) {
		t.Fatalf("pending to delivered want ErrStatusTransitionInvalid got %v", err)
	}
}

func TestUpdateOrderStatusVersionConflict(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := createCheckoutProduct(t, db, "stale-version", 100000)
	addCheckoutCartItem(t, db, 1, product, 1)

	order, err := svc.Checkout(checkoutInputFor(1, product.ID))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusShipping, 99); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("stale version want ErrVersionConflict got %v", err)
	}

	updated, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusShipping, order.Version)
	if err != nil {
		t.Fatalf("update with matching version failed: %v", err)
	}
	if updated.Version != order.Version+1 {
		t.Fatalf("version want %d got %d", order.Version+1, updated.Version)
	}
}

func TestCheckoutUsesCurrentPriceWhenLockDisabled(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	svc.cfg.Cart.LockPriceAtAdd = false

	product := createCheckoutProduct(t, db, "reprice", 100000)
	addCheckoutCartItem(t, db, 1, product, 1)
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("price", models.NewMoneyFromDecimal(decimal.NewFromInt(120000))).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	order, err := svc.Checkout(checkoutInputFor(1, product.ID))
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.Subtotal.String() != "120000" {
		t.Fatalf("subtotal should follow current price, want 120000 got %s", order.Subtotal.String())
	}
}
