package service

import (
	"github.com/mypham-next/internal/config"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ProductID uint            `json:"product_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	LineTotal models.Money    `json:"line_total"`
	Product   *models.Product `json:"product"`
}

// CartSummary 购物车汇总
type CartSummary struct {
	Items       []CartItemDetail `json:"items"`
	Subtotal    models.Money     `json:"subtotal"`
	ShippingFee models.Money     `json:"shipping_fee"`
	Total       models.Money     `json:"total"`
}

// GuestCartItem 游客端本地购物车快照项
type GuestCartItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CartService 购物车服务
type CartService struct {
	cfg         *config.Config
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cfg *config.Config, cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cfg:         cfg,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser 获取用户购物车及汇总金额
func (s *CartService) ListByUser(userID uint) (*CartSummary, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	details := make([]CartItemDetail, 0, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil || !product.IsActive {
			_ = s.cartRepo.DeleteByUserAndProduct(userID, item.ProductID)
			continue
		}

		unitPrice := item.UnitPrice
		title := item.Title
		if !s.cfg.Cart.LockPriceAtAdd {
			unitPrice = product.Price
			title = product.Title
		}
		lineTotal := models.NewMoneyFromDecimal(unitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
		subtotal = subtotal.Add(lineTotal.Decimal)

		details = append(details, CartItemDetail{
			ProductID: item.ProductID,
			Title:     title,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
			Product:   product,
		})
	}

	shippingFee := resolveShippingFee(s.cfg.Order, subtotal)
	return &CartSummary{
		Items:       details,
		Subtotal:    models.NewMoneyFromDecimal(subtotal),
		ShippingFee: models.NewMoneyFromDecimal(shippingFee),
		Total:       models.NewMoneyFromDecimal(subtotal.Add(shippingFee)),
	}, nil
}

// AddItem 加入购物车，同一商品累加数量
func (s *CartService) AddItem(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 || quantity <= 0 {
		return ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotAvailable
	}

	exist, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if exist != nil {
		return s.cartRepo.UpdateQuantity(userID, productID, exist.Quantity+quantity)
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Title:     product.Title,
		UnitPrice: product.Price,
		Quantity:  quantity,
	}
	return s.cartRepo.Create(item)
}

// UpdateQuantity 设置购物车项数量，数量小于等于 0 时删除该项
func (s *CartService) UpdateQuantity(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidInput
	}
	if quantity <= 0 {
		return s.cartRepo.DeleteByUserAndProduct(userID, productID)
	}
	exist, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if exist == nil {
		return ErrCartItemNotFound
	}
	return s.cartRepo.UpdateQuantity(userID, productID, quantity)
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.ClearByUser(userID)
}

// SyncGuestCart 登录时合并游客本地购物车。
// 服务端已有内容时以服务端为准，否则采纳本地快照。
func (s *CartService) SyncGuestCart(userID uint, snapshot []GuestCartItem) (*CartSummary, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	existing, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 || len(snapshot) == 0 {
		return s.ListByUser(userID)
	}

	// 快照内同一商品可能出现多行，先按商品合并数量
	merged := make(map[uint]int, len(snapshot))
	order := make([]uint, 0, len(snapshot))
	for _, entry := range snapshot {
		if entry.ProductID == 0 || entry.Quantity <= 0 {
			continue
		}
		if _, ok := merged[entry.ProductID]; !ok {
			order = append(order, entry.ProductID)
		}
		merged[entry.ProductID] += entry.Quantity
	}

	for _, productID := range order {
		product, err := s.productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			continue
		}
		item := &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Title:     product.Title,
			UnitPrice: product.Price,
			Quantity:  merged[productID],
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, err
		}
	}
	return s.ListByUser(userID)
}

// resolveShippingFee 按小计计算运费，达到免运费门槛时为 0
func resolveShippingFee(cfg config.OrderConfig, subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	threshold := decimal.NewFromInt(cfg.FreeShippingThreshold)
	if cfg.FreeShippingThreshold > 0 && subtotal.GreaterThanOrEqual(threshold) {
		return decimal.Zero
	}
	return decimal.NewFromInt(cfg.ShippingFee)
}
