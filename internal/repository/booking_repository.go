package repository

import (
	"errors"
	"time"

	"github.com/mypham-next/internal/models"

	"gorm.io/gorm"
)

// BookingRepository 预约数据访问接口
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	List(filter BookingListFilter) ([]models.Booking, int64, error)
	CountCreatedBetween(startAt, endAt time.Time) (int64, error)
	UpdateStatusWithVersion(id uint, expectedVersion uint, status string) (int64, error)
	Delete(id uint) error
}

// GormBookingRepository GORM 实现
type GormBookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository 创建预约仓库
func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Create 创建预约
func (r *GormBookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID 根据 ID 获取预约
func (r *GormBookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// List 预约列表
func (r *GormBookingRepository) List(filter BookingListFilter) ([]models.Booking, int64, error) {
	query := r.db.Model(&models.Booking{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ServiceCategory != "" {
		query = query.Where("service_category = ?", filter.ServiceCategory)
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("customer_name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var bookings []models.Booking
	if err := query.Order("id DESC").Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// CountCreatedBetween 统计时间窗口内的新增预约数
func (r *GormBookingRepository) CountCreatedBetween(startAt, endAt time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Count(&count).Error
	return count, err
}

// UpdateStatusWithVersion 按版本号更新预约状态（CAS，返回影响行数）
func (r *GormBookingRepository) UpdateStatusWithVersion(id uint, expectedVersion uint, status string) (int64, error) {
	result := r.db.Model(&models.Booking{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]interface{}{
			"status":  status,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete 删除预约（软删除）
func (r *GormBookingRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Booking{}, id).Error
}
