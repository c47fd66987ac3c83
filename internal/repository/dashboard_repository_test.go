package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mypham-next/internal/constants"
	"github.com/mypham-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDashboardRepositoryTest(t *testing.T) (*GormDashboardRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Booking{}, &models.Contact{}); err != nil {
		t.Fatalf("migrate dashboard models failed: %v", err)
	}
	return NewDashboardRepository(db), db
}

func createDashboardOrder(t *testing.T, db *gorm.DB, orderNo, status string, total int64, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:      orderNo,
		UserID:       1,
		CustomerName: "Nguyễn Văn A",
		Phone:        "0901234567",
		Address:      "12 Lê Lợi",
		City:         "Hồ Chí Minh",
		District:     "Quận 1",
		Ward:         "Phường Bến Nghé",
		Subtotal:     models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		TotalAmount:  models.NewMoneyFromDecimal(decimal.NewFromInt(total)),
		Status:       status,
		Version:      1,
		CreatedAt:    createdAt,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order %s failed: %v", orderNo, err)
	}
	return order
}

func TestGetOverviewCountsAndRevenueExcludesCanceled(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	now := time.Now()
	startAt := now.Add(-24 * time.Hour)
	endAt := now.Add(time.Hour)

	createDashboardOrder(t, db, "MP-OV-1", constants.OrderStatusPending, 200000, now)
	createDashboardOrder(t, db, "MP-OV-2", constants.OrderStatusDelivered, 300000, now)
	createDashboardOrder(t, db, "MP-OV-3", constants.OrderStatusCanceled, 500000, now)
	// 时间窗外的订单不计入
	createDashboardOrder(t, db, "MP-OV-4", constants.OrderStatusDelivered, 100000, now.Add(-48*time.Hour))

	if err := db.Create(&models.Booking{CustomerName: "Trần B", Phone: "0907654321", Status: constants.BookingStatusPending, Version: 1, CreatedAt: now}).Error; err != nil {
		t.Fatalf("create booking failed: %v", err)
	}
	if err := db.Create(&models.Contact{Name: "Lê C", Message: "Tư vấn da khô", Handled: false, CreatedAt: now}).Error; err != nil {
		t.Fatalf("create contact failed: %v", err)
	}

	overview, err := repo.GetOverview(startAt, endAt)
	if err != nil {
		t.Fatalf("get overview failed: %v", err)
	}
	if overview.OrdersTotal != 3 {
		t.Fatalf("orders total want 3 got %d", overview.OrdersTotal)
	}
	if overview.PendingOrders != 1 || overview.DeliveredOrders != 1 || overview.CanceledOrders != 1 {
		t.Fatalf("status counts mismatch: %+v", overview)
	}
	if overview.Revenue != 500000 {
		t.Fatalf("revenue should exclude canceled and out-of-range orders, want 500000 got %v", overview.Revenue)
	}
	if overview.BookingsTotal != 1 || overview.PendingBookings != 1 {
		t.Fatalf("booking counts mismatch: %+v", overview)
	}
	if overview.UnhandledContacts != 1 {
		t.Fatalf("unhandled contacts want 1 got %d", overview.UnhandledContacts)
	}
}

func TestGetOrderTrendsGroupsByDay(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	dayOne := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	dayTwo := dayOne.Add(24 * time.Hour)

	createDashboardOrder(t, db, "MP-TR-1", constants.OrderStatusDelivered, 100000, dayOne)
	createDashboardOrder(t, db, "MP-TR-2", constants.OrderStatusPending, 200000, dayOne)
	createDashboardOrder(t, db, "MP-TR-3", constants.OrderStatusCanceled, 900000, dayTwo)

	trends, err := repo.GetOrderTrends(dayOne.Add(-time.Hour), dayTwo.Add(time.Hour))
	if err != nil {
		t.Fatalf("get order trends failed: %v", err)
	}
	if len(trends) != 2 {
		t.Fatalf("trend days want 2 got %d", len(trends))
	}
	if trends[0].OrdersTotal != 2 || trends[0].Revenue != 300000 {
		t.Fatalf("day one trend mismatch: %+v", trends[0])
	}
	// 已取消订单计入单量但不计入营收
	if trends[1].OrdersTotal != 1 || trends[1].Revenue != 0 {
		t.Fatalf("day two trend mismatch: %+v", trends[1])
	}
}

func TestGetTopProductsOrdersByPaidAmount(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	now := time.Now()

	serum := &models.Product{Slug: "top-serum", Title: "Serum B5", Category: "cham-soc-da", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(240000)), IsActive: true}
	toner := &models.Product{Slug: "top-toner", Title: "Toner trà xanh", Category: "cham-soc-da", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(310000)), IsActive: true}
	for _, p := range []*models.Product{serum, toner} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	delivered := createDashboardOrder(t, db, "MP-TOP-1", constants.OrderStatusDelivered, 790000, now)
	canceled := createDashboardOrder(t, db, "MP-TOP-2", constants.OrderStatusCanceled, 240000, now)

	items := []models.OrderItem{
		{OrderID: delivered.ID, ProductID: serum.ID, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(240000)), Quantity: 2},
		{OrderID: delivered.ID, ProductID: toner.ID, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(310000)), Quantity: 1},
		{OrderID: canceled.ID, ProductID: serum.ID, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(240000)), Quantity: 1},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("create order item failed: %v", err)
		}
	}

	rankings, err := repo.GetTopProducts(now.Add(-time.Hour), now.Add(time.Hour), 5)
	if err != nil {
		t.Fatalf("get top products failed: %v", err)
	}
	if len(rankings) != 2 {
		t.Fatalf("rankings want 2 rows got %d", len(rankings))
	}
	if rankings[0].ProductID != serum.ID {
		t.Fatalf("top product want serum got %+v", rankings[0])
	}
	// 已取消订单的订单项不计入销量
	if rankings[0].Quantity != 2 || rankings[0].PaidAmount != 480000 {
		t.Fatalf("serum ranking mismatch: %+v", rankings[0])
	}
	if rankings[0].Title != "Serum B5" {
		t.Fatalf("ranking title want Serum B5 got %s", rankings[0].Title)
	}
}
