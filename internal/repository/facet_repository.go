package repository

import (
	"errors"

	"github.com/mypham-next/internal/models"

	"gorm.io/gorm"
)

// FacetRepository 筛选维度数据访问接口（分类/品牌/肤质/功效）
type FacetRepository interface {
	ListCategories() ([]models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	SaveCategory(category *models.Category) error
	DeleteCategory(id uint) error
	ListBrands() ([]models.Brand, error)
	ListSkinTypes() ([]models.SkinType, error)
	ListBenefits() ([]models.Benefit, error)
}

// GormFacetRepository GORM 实现
type GormFacetRepository struct {
	db *gorm.DB
}

// NewFacetRepository 创建筛选维度仓库
func NewFacetRepository(db *gorm.DB) *GormFacetRepository {
	return &GormFacetRepository{db: db}
}

// ListCategories 获取分类列表
func (r *GormFacetRepository) ListCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := r.db.Order("sort_order DESC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryBySlug 根据 slug 获取分类
func (r *GormFacetRepository) GetCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// SaveCategory 创建或更新分类
func (r *GormFacetRepository) SaveCategory(category *models.Category) error {
	if category == nil {
		return nil
	}
	return r.db.Save(category).Error
}

// DeleteCategory 删除分类（软删除）
func (r *GormFacetRepository) DeleteCategory(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Category{}, id).Error
}

// ListBrands 获取品牌列表
func (r *GormFacetRepository) ListBrands() ([]models.Brand, error) {
	brands := make([]models.Brand, 0)
	if err := r.db.Order("sort_order DESC, id ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// ListSkinTypes 获取肤质列表
func (r *GormFacetRepository) ListSkinTypes() ([]models.SkinType, error) {
	skinTypes := make([]models.SkinType, 0)
	if err := r.db.Order("sort_order DESC, id ASC").Find(&skinTypes).Error; err != nil {
		return nil, err
	}
	return skinTypes, nil
}

// ListBenefits 获取功效列表
func (r *GormFacetRepository) ListBenefits() ([]models.Benefit, error) {
	benefits := make([]models.Benefit, 0)
	if err := r.db.Order("sort_order DESC, id ASC").Find(&benefits).Error; err != nil {
		return nil, err
	}
	return benefits, nil
}
