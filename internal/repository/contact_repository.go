package repository

import (
	"errors"

	"github.com/mypham-next/internal/models"

	"gorm.io/gorm"
)

// ContactRepository 联系咨询数据访问接口
type ContactRepository interface {
	Create(contact *models.Contact) error
	GetByID(id uint) (*models.Contact, error)
	List(filter ContactListFilter) ([]models.Contact, int64, error)
	UpdateHandled(id uint, handled bool) error
	Delete(id uint) error
}

// GormContactRepository GORM 实现
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建联系咨询仓库
func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Create 创建联系咨询
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// GetByID 根据 ID 获取联系咨询
func (r *GormContactRepository) GetByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

// List 联系咨询列表
func (r *GormContactRepository) List(filter ContactListFilter) ([]models.Contact, int64, error) {
	query := r.db.Model(&models.Contact{})

	if filter.Handled != nil {
		query = query.Where("handled = ?", *filter.Handled)
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR subject LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var contacts []models.Contact
	if err := query.Order("id DESC").Find(&contacts).Error; err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// UpdateHandled 更新处理状态
func (r *GormContactRepository) UpdateHandled(id uint, handled bool) error {
	return r.db.Model(&models.Contact{}).Where("id = ?", id).Update("handled", handled).Error
}

// Delete 删除联系咨询（软删除）
func (r *GormContactRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Contact{}, id).Error
}
