package service

import (
	"strings"

	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/repository"
)

// CatalogFacets 商品筛选维度集合
type CatalogFacets struct {
	Categories []models.Category `json:"categories"`
	Brands     []models.Brand    `json:"brands"`
	SkinTypes  []models.SkinType `json:"skin_types"`
	Benefits   []models.Benefit  `json:"benefits"`
}

// CatalogService 分类与筛选维度服务
type CatalogService struct {
	facetRepo repository.FacetRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(facetRepo repository.FacetRepository) *CatalogService {
	return &CatalogService{facetRepo: facetRepo}
}

// ListCategories 获取分类列表
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.facetRepo.ListCategories()
}

// GetCategoryBySlug 按别名获取分类
func (s *CatalogService) GetCategoryBySlug(slug string) (*models.Category, error) {
	category, err := s.facetRepo.GetCategoryBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// SaveCategory 新建或更新分类
func (s *CatalogService) SaveCategory(category *models.Category) (*models.Category, error) {
	if category == nil {
		return nil, ErrInvalidInput
	}
	category.Slug = strings.TrimSpace(category.Slug)
	category.Name = strings.TrimSpace(category.Name)
	if category.Slug == "" || category.Name == "" {
		return nil, ErrInvalidInput
	}
	exist, err := s.facetRepo.GetCategoryBySlug(category.Slug)
	if err != nil {
		return nil, err
	}
	if exist != nil && exist.ID != category.ID {
		return nil, ErrSlugExists
	}
	if err := s.facetRepo.SaveCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory 删除分类
func (s *CatalogService) DeleteCategory(id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}
	return s.facetRepo.DeleteCategory(id)
}

// ListFacets 获取全部筛选维度
func (s *CatalogService) ListFacets() (*CatalogFacets, error) {
	categories, err := s.facetRepo.ListCategories()
	if err != nil {
		return nil, err
	}
	brands, err := s.facetRepo.ListBrands()
	if err != nil {
		return nil, err
	}
	skinTypes, err := s.facetRepo.ListSkinTypes()
	if err != nil {
		return nil, err
	}
	benefits, err := s.facetRepo.ListBenefits()
	if err != nil {
		return nil, err
	}
	return &CatalogFacets{
		Categories: categories,
		Brands:     brands,
		SkinTypes:  skinTypes,
		Benefits:   benefits,
	}, nil
}
