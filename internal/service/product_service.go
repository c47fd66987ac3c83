package service

import (
	"strings"

	"github.com/mypham-next/internal/constants"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductListInput 商品列表查询输入
type ProductListInput struct {
	Page          int
	PageSize      int
	Search        string
	Category      string
	Subcategories []string
	SkinTypes     []string
	Benefits      []string
	PriceMin      *int64
	PriceMax      *int64
	OnSale        *bool
	Sort          string
}

// CreateProductInput 创建/更新商品输入
type CreateProductInput struct {
	Slug          string
	Title         string
	Description   string
	Image         string
	Category      string
	Subcategory   string
	Brand         string
	SkinTypes     []string
	Benefits      []string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	OnSale        bool
	IsActive      *bool
	SortOrder     int
}

// ListPublic 获取公开商品列表（筛选 → 排序 → 分页）
func (s *ProductService) ListPublic(input ProductListInput) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:          input.Page,
		PageSize:      input.PageSize,
		Search:        input.Search,
		Category:      input.Category,
		Subcategories: cleanStringSlice(input.Subcategories),
		SkinTypes:     cleanStringSlice(input.SkinTypes),
		Benefits:      cleanStringSlice(input.Benefits),
		PriceMin:      input.PriceMin,
		PriceMax:      input.PriceMax,
		OnSale:        input.OnSale,
		OnlyActive:    true,
		Sort:          normalizeProductSort(input.Sort),
	}
	return s.repo.List(filter)
}

// GetPublicBySlug 获取公开商品详情
func (s *ProductService) GetPublicBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(strings.TrimSpace(slug), true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListAdmin 获取后台商品列表
func (s *ProductService) ListAdmin(input ProductListInput) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:          input.Page,
		PageSize:      input.PageSize,
		Search:        input.Search,
		Category:      input.Category,
		Subcategories: cleanStringSlice(input.Subcategories),
		SkinTypes:     cleanStringSlice(input.SkinTypes),
		Benefits:      cleanStringSlice(input.Benefits),
		PriceMin:      input.PriceMin,
		PriceMax:      input.PriceMax,
		OnSale:        input.OnSale,
		OnlyActive:    false,
		Sort:          normalizeProductSort(input.Sort),
	}
	return s.repo.List(filter)
}

// GetAdminByID 获取后台商品详情
func (s *ProductService) GetAdminByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, ErrInvalidInput
	}
	price := input.Price.Round(0)
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	originalPrice := input.OriginalPrice.Round(0)
	if originalPrice.LessThanOrEqual(decimal.Zero) {
		originalPrice = price
	}

	product := models.Product{
		Slug:          slug,
		Title:         title,
		Description:   strings.TrimSpace(input.Description),
		Image:         strings.TrimSpace(input.Image),
		Category:      strings.TrimSpace(input.Category),
		Subcategory:   strings.TrimSpace(input.Subcategory),
		Brand:         strings.TrimSpace(input.Brand),
		SkinTypes:     models.StringArray(cleanStringSlice(input.SkinTypes)),
		Benefits:      models.StringArray(cleanStringSlice(input.Benefits)),
		Price:         models.NewMoneyFromDecimal(price),
		OriginalPrice: models.NewMoneyFromDecimal(originalPrice),
		OnSale:        input.OnSale,
		IsActive:      isActive,
		SortOrder:     input.SortOrder,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update 更新商品
func (s *ProductService) Update(id uint, input CreateProductInput) (*models.Product, error) {
	slug := strings.TrimSpace(input.Slug)
	title := strings.TrimSpace(input.Title)
	if slug == "" || title == "" {
		return nil, ErrInvalidInput
	}
	price := input.Price.Round(0)
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	count, err := s.repo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	originalPrice := input.OriginalPrice.Round(0)
	if originalPrice.LessThanOrEqual(decimal.Zero) {
		originalPrice = price
	}

	product.Slug = slug
	product.Title = title
	product.Description = strings.TrimSpace(input.Description)
	product.Image = strings.TrimSpace(input.Image)
	product.Category = strings.TrimSpace(input.Category)
	product.Subcategory = strings.TrimSpace(input.Subcategory)
	product.Brand = strings.TrimSpace(input.Brand)
	product.SkinTypes = models.StringArray(cleanStringSlice(input.SkinTypes))
	product.Benefits = models.StringArray(cleanStringSlice(input.Benefits))
	product.Price = models.NewMoneyFromDecimal(price)
	product.OriginalPrice = models.NewMoneyFromDecimal(originalPrice)
	product.OnSale = input.OnSale
	product.SortOrder = input.SortOrder
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.repo.Delete(id)
}

func normalizeProductSort(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case constants.ProductSortPriceAsc, constants.ProductSortPriceDesc,
		constants.ProductSortNameAsc, constants.ProductSortNameDesc:
		return value
	default:
		return constants.ProductSortDefault
	}
}

func cleanStringSlice(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
