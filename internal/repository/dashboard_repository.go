package repository

import (
	"fmt"
	"time"

	"github.com/mypham-next/internal/constants"
	"github.com/mypham-next/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error)
	GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error)
	GetTopProducts(startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error)
}

// DashboardOverviewRow 仪表盘总览原始统计结果
type DashboardOverviewRow struct {
	OrdersTotal       int64
	PendingOrders     int64
	ShippingOrders    int64
	DeliveredOrders   int64
	CanceledOrders    int64
	Revenue           float64
	NewUsers          int64
	BookingsTotal     int64
	PendingBookings   int64
	ActiveProducts    int64
	UnhandledContacts int64
}

// DashboardOrderTrendRow 订单趋势统计
type DashboardOrderTrendRow struct {
	Day         string
	OrdersTotal int64
	Revenue     float64
}

// DashboardProductRankingRow 商品排行原始行
type DashboardProductRankingRow struct {
	ProductID  uint
	Title      string
	Orders     int64
	Quantity   int64
	PaidAmount float64
}

// GormDashboardRepository GORM 仪表盘聚合实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// revenueOrderStatuses 计入营收的订单状态（已取消订单不计入）
func revenueOrderStatuses() []string {
	return []string{
		constants.OrderStatusPending,
		constants.OrderStatusShipping,
		constants.OrderStatusDelivered,
	}
}

// GetOverview 获取总览统计
func (r *GormDashboardRepository) GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	orderBase := func() *gorm.DB {
		return r.db.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", startAt, endAt)
	}

	if err := orderBase().Count(&result.OrdersTotal).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusPending).Count(&result.PendingOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusShipping).Count(&result.ShippingOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusDelivered).Count(&result.DeliveredOrders).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusCanceled).Count(&result.CanceledOrders).Error; err != nil {
		return result, err
	}

	if err := orderBase().
		Where("status IN ?", revenueOrderStatuses()).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&result.Revenue).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.User{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Count(&result.NewUsers).Error; err != nil {
		return result, err
	}

	bookingBase := func() *gorm.DB {
		return r.db.Model(&models.Booking{}).
			Where("created_at >= ? AND created_at < ?", startAt, endAt)
	}
	if err := bookingBase().Count(&result.BookingsTotal).Error; err != nil {
		return result, err
	}
	if err := bookingBase().Where("status = ?", constants.BookingStatusPending).Count(&result.PendingBookings).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&result.ActiveProducts).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.Contact{}).
		Where("handled = ?", false).
		Count(&result.UnhandledContacts).Error; err != nil {
		return result, err
	}

	return result, nil
}

// GetOrderTrends 获取订单趋势（按天）
func (r *GormDashboardRepository) GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error) {
	type trendRow struct {
		Day     string
		Total   int64
		Revenue float64
	}

	dayExpr := "CAST(date(created_at) AS TEXT)"
	var rows []trendRow
	if err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as day, COUNT(*) as total, COALESCE(SUM(CASE WHEN status <> ? THEN total_amount ELSE 0 END), 0) as revenue", dayExpr), constants.OrderStatusCanceled).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Group(dayExpr).
		Order("day asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]DashboardOrderTrendRow, 0, len(rows))
	for _, item := range rows {
		result = append(result, DashboardOrderTrendRow{
			Day:         item.Day,
			OrdersTotal: item.Total,
			Revenue:     item.Revenue,
		})
	}
	return result, nil
}

// GetTopProducts 获取商品销量排行榜
func (r *GormDashboardRepository) GetTopProducts(startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error) {
	if limit <= 0 {
		limit = 5
	}
	rows := make([]DashboardProductRankingRow, 0)
	if err := r.db.Model(&models.OrderItem{}).
		Select(`
			order_items.product_id as product_id,
			COALESCE(products.title, '') as title,
			COUNT(DISTINCT order_items.order_id) as orders,
			COALESCE(SUM(order_items.quantity), 0) as quantity,
			COALESCE(SUM(order_items.unit_price * order_items.quantity), 0) as paid_amount
		`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("LEFT JOIN products ON products.id = order_items.product_id").
		Where("orders.created_at >= ? AND orders.created_at < ? AND orders.status IN ?", startAt, endAt, revenueOrderStatuses()).
		Group("order_items.product_id, products.title").
		Order("paid_amount DESC, quantity DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
