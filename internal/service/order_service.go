package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/mypham-next/internal/config"
	"github.com/mypham-next/internal/constants"
	"github.com/mypham-next/internal/logger"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/queue"
	"github.com/mypham-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutInput 下单输入
type CheckoutInput struct {
	UserID       uint
	ProductIDs   []uint
	CustomerName string
	Phone        string
	Address      string
	City         string
	District     string
	Ward         string
	Note         string
}

// OrderService 订单服务
type OrderService struct {
	cfg         *config.Config
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(cfg *config.Config, orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		cfg:         cfg,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		queueClient: queueClient,
	}
}

// Checkout 从购物车选中项结算下单。
// 订单与订单项的创建、选中购物车项的删除在同一事务内完成。
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.CustomerName) == "" || strings.TrimSpace(input.Phone) == "" || strings.TrimSpace(input.Address) == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.City) == "" || strings.TrimSpace(input.District) == "" || strings.TrimSpace(input.Ward) == "" {
		return nil, ErrInvalidInput
	}
	if len(input.ProductIDs) == 0 {
		return nil, ErrCartEmpty
	}

	cartItems, err := s.cartRepo.ListByUser(input.UserID)
	if err != nil {
		return nil, ErrOrderCreateFailed
	}
	selected := selectCartItems(cartItems, input.ProductIDs)
	if len(selected) == 0 {
		return nil, ErrCartEmpty
	}

	subtotal := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(selected))
	selectedIDs := make([]uint, 0, len(selected))
	for _, item := range selected {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, ErrOrderCreateFailed
			}
			product = p
		}
		if product == nil || !product.IsActive {
			return nil, ErrProductNotAvailable
		}

		unitPrice := item.UnitPrice
		if !s.cfg.Cart.LockPriceAtAdd {
			unitPrice = product.Price
		}
		subtotal = subtotal.Add(unitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			UnitPrice: unitPrice,
			Quantity:  item.Quantity,
		})
		selectedIDs = append(selectedIDs, item.ProductID)
	}

	shippingFee := resolveShippingFee(s.cfg.Order, subtotal)
	now := time.Now()
	order := &models.Order{
		OrderNo:      generateOrderNo(),
		UserID:       input.UserID,
		CustomerName: strings.TrimSpace(input.CustomerName),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		City:         strings.TrimSpace(input.City),
		District:     strings.TrimSpace(input.District),
		Ward:         strings.TrimSpace(input.Ward),
		Note:         strings.TrimSpace(input.Note),
		DisplayDate:  now.Format("02/01/2006"),
		DisplayTime:  now.Format("15:04"),
		Subtotal:     models.NewMoneyFromDecimal(subtotal),
		ShippingFee:  models.NewMoneyFromDecimal(shippingFee),
		TotalAmount:  models.NewMoneyFromDecimal(subtotal.Add(shippingFee)),
		Status:       constants.OrderStatusPending,
		Version:      1,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}
		return cartRepo.DeleteByUserAndProducts(input.UserID, selectedIDs)
	})
	if err != nil {
		logger.Errorw("order_checkout_failed",
			"user_id", input.UserID,
			"error", err,
		)
		return nil, ErrOrderCreateFailed
	}
	order.Items = orderItems

	logger.Infow("order_created",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"user_id", input.UserID,
		"total_amount", order.TotalAmount.String(),
	)
	s.enqueueStatusEmail(order.ID, order.Status)
	return order, nil
}

// GetByIDAndUser 获取用户自己的订单详情
func (s *OrderService) GetByIDAndUser(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByOrderNoAndUser 按订单号获取用户自己的订单详情
func (s *OrderService) GetByOrderNoAndUser(orderNo string, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNoAndUser(strings.TrimSpace(orderNo), userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByUser 用户订单列表
func (s *OrderService) ListByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrInvalidInput
	}
	return s.orderRepo.ListByUser(filter)
}

// ListAdmin 管理端订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetByID 管理端订单详情
func (s *OrderService) GetByID(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// CancelOrder 用户取消未发货订单
func (s *OrderService) CancelOrder(orderID, userID uint, expectedVersion uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusPending {
		return nil, ErrStatusTransitionInvalid
	}
	return s.transition(order, constants.OrderStatusCanceled, expectedVersion)
}

// ConfirmReceived 用户确认收货
func (s *OrderService) ConfirmReceived(orderID, userID uint, expectedVersion uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusShipping {
		return nil, ErrStatusTransitionInvalid
	}
	return s.transition(order, constants.OrderStatusDelivered, expectedVersion)
}

// UpdateOrderStatus 管理端更新订单状态
func (s *OrderService) UpdateOrderStatus(orderID uint, targetStatus string, expectedVersion uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	target := strings.TrimSpace(targetStatus)
	if !isOrderStatusSupported(target) {
		return nil, ErrOrderStatusInvalid
	}
	if order.Status == target {
		return order, nil
	}
	if !canTransitionOrderStatus(order.Status, target) {
		return nil, ErrStatusTransitionInvalid
	}
	return s.transition(order, target, expectedVersion)
}

// transition 以版本校验方式写入状态，版本不一致时返回冲突
func (s *OrderService) transition(order *models.Order, target string, expectedVersion uint) (*models.Order, error) {
	if expectedVersion == 0 {
		expectedVersion = order.Version
	}

	now := time.Now()
	updates := map[string]interface{}{
		"updated_at": now,
	}
	switch target {
	case constants.OrderStatusCanceled:
		updates["canceled_at"] = now
	case constants.OrderStatusDelivered:
		updates["delivered_at"] = now
	}

	affected, err := s.orderRepo.UpdateStatusWithVersion(order.ID, expectedVersion, target, updates)
	if err != nil {
		return nil, ErrOrderUpdateFailed
	}
	if affected == 0 {
		logger.Warnw("order_status_version_conflict",
			"order_id", order.ID,
			"expected_version", expectedVersion,
			"target_status", target,
		)
		return nil, ErrVersionConflict
	}

	order.Status = target
	order.Version = expectedVersion + 1
	order.UpdatedAt = now
	switch target {
	case constants.OrderStatusCanceled:
		order.CanceledAt = &now
	case constants.OrderStatusDelivered:
		order.DeliveredAt = &now
	}

	logger.Infow("order_status_updated",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"status", target,
	)
	s.enqueueStatusEmail(order.ID, target)
	return order, nil
}

func (s *OrderService) enqueueStatusEmail(orderID uint, status string) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	if _, err := enqueueOrderStatusEmailTaskIfEligible(s.orderRepo, s.queueClient, orderID, status); err != nil {
		logger.Warnw("order_enqueue_status_email_failed",
			"order_id", orderID,
			"status", status,
			"error", err,
		)
	}
}

// enqueueOrderStatusEmailTaskIfEligible 有收件邮箱时才推送状态邮件任务
func enqueueOrderStatusEmailTaskIfEligible(orderRepo repository.OrderRepository, queueClient *queue.Client, orderID uint, status string) (bool, error) {
	if queueClient == nil || !queueClient.Enabled() {
		return false, nil
	}
	email, err := orderRepo.ResolveReceiverEmailByOrderID(orderID)
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(email) == "" {
		return false, nil
	}
	if err := queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: orderID,
		Status:  status,
	}); err != nil {
		return false, err
	}
	return true, nil
}

func selectCartItems(items []models.CartItem, productIDs []uint) []models.CartItem {
	wanted := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}
	selected := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if wanted[item.ProductID] {
			selected = append(selected, item)
		}
	}
	return selected
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("MP%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
