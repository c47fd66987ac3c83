package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mypham-next/internal/cache"
	"github.com/mypham-next/internal/config"
	"github.com/mypham-next/internal/repository"
)

const dashboardCustomMaxDays = 90

// DashboardService 仪表盘服务
// 说明：聚合后台首页核心经营数据，按月环比展示变化。
type DashboardService struct {
	cfg  *config.Config
	repo repository.DashboardRepository
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(cfg *config.Config, repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{cfg: cfg, repo: repo}
}

// DashboardQueryInput 仪表盘查询输入
type DashboardQueryInput struct {
	Range        string
	From         *time.Time
	To           *time.Time
	Timezone     string
	ForceRefresh bool
}

// DashboardMetric 单项指标及环比
type DashboardMetric struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	PercentChange string  `json:"percent_change"`
}

// DashboardOverviewResponse 仪表盘总览响应
type DashboardOverviewResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Timezone string `json:"timezone"`

	Revenue  DashboardMetric `json:"revenue"`
	Orders   DashboardMetric `json:"orders"`
	NewUsers DashboardMetric `json:"new_users"`
	Bookings DashboardMetric `json:"bookings"`

	PendingOrders     int64 `json:"pending_orders"`
	ShippingOrders    int64 `json:"shipping_orders"`
	DeliveredOrders   int64 `json:"delivered_orders"`
	CanceledOrders    int64 `json:"canceled_orders"`
	PendingBookings   int64 `json:"pending_bookings"`
	ActiveProducts    int64 `json:"active_products"`
	UnhandledContacts int64 `json:"unhandled_contacts"`
}

// DashboardTrendResponse 仪表盘趋势响应
type DashboardTrendResponse struct {
	Range  string                `json:"range"`
	From   string                `json:"from"`
	To     string                `json:"to"`
	Points []DashboardTrendPoint `json:"points"`
}

// DashboardTrendPoint 单日趋势点
type DashboardTrendPoint struct {
	Day     string  `json:"day"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// DashboardRankingsResponse 商品排行响应
type DashboardRankingsResponse struct {
	Range    string                    `json:"range"`
	Products []DashboardProductRanking `json:"products"`
}

// DashboardProductRanking 商品排行项
type DashboardProductRanking struct {
	ProductID uint    `json:"product_id"`
	Title     string  `json:"title"`
	Orders    int64   `json:"orders"`
	Quantity  int64   `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

type dashboardWindow struct {
	rangeKey string
	startAt  time.Time
	endAt    time.Time
	timezone string
}

// GetOverview 获取仪表盘总览（本月与上月环比）
func (s *DashboardService) GetOverview(ctx context.Context, input DashboardQueryInput) (*DashboardOverviewResponse, error) {
	if s == nil || s.repo == nil {
		return &DashboardOverviewResponse{}, nil
	}

	location := resolveDashboardLocation(input.Timezone)
	now := time.Now().In(location)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, location)
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	cacheKey := fmt.Sprintf("dashboard:overview:%d:%s", monthStart.Unix(), location.String())
	if !input.ForceRefresh {
		var cached DashboardOverviewResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	current, err := s.repo.GetOverview(monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	previous, err := s.repo.GetOverview(prevMonthStart, monthStart)
	if err != nil {
		return nil, err
	}

	response := &DashboardOverviewResponse{
		From:     monthStart.Format(time.RFC3339),
		To:       now.Format(time.RFC3339),
		Timezone: location.String(),
		Revenue:  buildMetric(current.Revenue, previous.Revenue),
		Orders:   buildMetric(float64(current.OrdersTotal), float64(previous.OrdersTotal)),
		NewUsers: buildMetric(float64(current.NewUsers), float64(previous.NewUsers)),
		Bookings: buildMetric(float64(current.BookingsTotal), float64(previous.BookingsTotal)),

		PendingOrders:     current.PendingOrders,
		ShippingOrders:    current.ShippingOrders,
		DeliveredOrders:   current.DeliveredOrders,
		CanceledOrders:    current.CanceledOrders,
		PendingBookings:   current.PendingBookings,
		ActiveProducts:    current.ActiveProducts,
		UnhandledContacts: current.UnhandledContacts,
	}

	_ = cache.SetJSON(ctx, cacheKey, response, s.cacheTTL())
	return response, nil
}

// GetTrends 获取订单趋势（按日）
func (s *DashboardService) GetTrends(ctx context.Context, input DashboardQueryInput) (*DashboardTrendResponse, error) {
	if s == nil || s.repo == nil {
		return &DashboardTrendResponse{}, nil
	}
	window, err := resolveDashboardWindow(input, time.Now())
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:trends:%s:%d:%d", window.rangeKey, window.startAt.Unix(), window.endAt.Unix())
	if !input.ForceRefresh {
		var cached DashboardTrendResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	rows, err := s.repo.GetOrderTrends(window.startAt, window.endAt)
	if err != nil {
		return nil, err
	}
	points := make([]DashboardTrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, DashboardTrendPoint{
			Day:     row.Day,
			Orders:  row.OrdersTotal,
			Revenue: row.Revenue,
		})
	}

	response := &DashboardTrendResponse{
		Range:  window.rangeKey,
		From:   window.startAt.Format(time.RFC3339),
		To:     window.endAt.Add(-time.Second).Format(time.RFC3339),
		Points: points,
	}
	_ = cache.SetJSON(ctx, cacheKey, response, s.cacheTTL())
	return response, nil
}

// GetRankings 获取商品销量排行
func (s *DashboardService) GetRankings(ctx context.Context, input DashboardQueryInput, limit int) (*DashboardRankingsResponse, error) {
	if s == nil || s.repo == nil {
		return &DashboardRankingsResponse{}, nil
	}
	window, err := resolveDashboardWindow(input, time.Now())
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("dashboard:rankings:%s:%d:%d:%d", window.rangeKey, window.startAt.Unix(), window.endAt.Unix(), limit)
	if !input.ForceRefresh {
		var cached DashboardRankingsResponse
		hit, cacheErr := cache.GetJSON(ctx, cacheKey, &cached)
		if cacheErr == nil && hit {
			return &cached, nil
		}
	}

	rows, err := s.repo.GetTopProducts(window.startAt, window.endAt, limit)
	if err != nil {
		return nil, err
	}
	products := make([]DashboardProductRanking, 0, len(rows))
	for _, row := range rows {
		products = append(products, DashboardProductRanking{
			ProductID: row.ProductID,
			Title:     row.Title,
			Orders:    row.Orders,
			Quantity:  row.Quantity,
			Revenue:   row.PaidAmount,
		})
	}

	response := &DashboardRankingsResponse{
		Range:    window.rangeKey,
		Products: products,
	}
	_ = cache.SetJSON(ctx, cacheKey, response, s.cacheTTL())
	return response, nil
}

func (s *DashboardService) cacheTTL() time.Duration {
	if s.cfg != nil && s.cfg.Dashboard.CacheTTLSeconds > 0 {
		return time.Duration(s.cfg.Dashboard.CacheTTLSeconds) * time.Second
	}
	return 60 * time.Second
}

// buildMetric 计算环比，上期为 0 时当期有量记为 100%
func buildMetric(current, previous float64) DashboardMetric {
	return DashboardMetric{
		Current:       current,
		Previous:      previous,
		PercentChange: formatPercentValue(percentChange(current, previous)),
	}
}

func percentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func resolveDashboardLocation(timezone string) *time.Location {
	trimmed := strings.TrimSpace(timezone)
	if trimmed == "" {
		return time.Local
	}
	location, err := time.LoadLocation(trimmed)
	if err != nil {
		return time.Local
	}
	return location
}

func resolveDashboardWindow(input DashboardQueryInput, now time.Time) (dashboardWindow, error) {
	rangeKey := strings.ToLower(strings.TrimSpace(input.Range))
	if rangeKey == "" {
		rangeKey = "7d"
	}

	location := resolveDashboardLocation(input.Timezone)
	localNow := now.In(location)
	todayStart := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, location)
	window := dashboardWindow{rangeKey: rangeKey, timezone: location.String()}

	switch rangeKey {
	case "today":
		window.startAt = todayStart
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "7d":
		window.startAt = todayStart.AddDate(0, 0, -6)
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "30d":
		window.startAt = todayStart.AddDate(0, 0, -29)
		window.endAt = todayStart.AddDate(0, 0, 1)
	case "custom":
		if input.From == nil || input.To == nil {
			return dashboardWindow{}, ErrDashboardRangeInvalid
		}
		startAt := input.From.In(location)
		endAt := input.To.In(location)
		if endAt.Before(startAt) {
			return dashboardWindow{}, ErrDashboardRangeInvalid
		}
		if endAt.Sub(startAt) > time.Hour*24*dashboardCustomMaxDays {
			return dashboardWindow{}, ErrDashboardRangeInvalid
		}
		window.startAt = startAt
		window.endAt = endAt.Add(time.Second)
	default:
		return dashboardWindow{}, ErrDashboardRangeInvalid
	}

	if !window.endAt.After(window.startAt) {
		return dashboardWindow{}, ErrDashboardRangeInvalid
	}
	return window, nil
}

func formatPercentValue(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
