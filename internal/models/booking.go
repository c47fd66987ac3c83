package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking 护肤服务预约表
type Booking struct {
	ID              uint           `gorm:"primarykey" json:"id"`                 // 主键
	CustomerName    string         `gorm:"not null" json:"customer_name"`        // 预约人姓名
	Email           string         `gorm:"index" json:"email"`                   // 联系邮箱
	Phone           string         `gorm:"not null" json:"phone"`                // 联系电话
	BookingDate     string         `gorm:"type:varchar(20)" json:"booking_date"` // 期望到店日期
	ServiceCategory string         `gorm:"index" json:"service_category"`        // 服务类别 slug
	SkinType        string         `gorm:"index" json:"skin_type"`               // 肤质 slug
	Need            string         `gorm:"type:text" json:"need"`                // 需求描述
	Status          string         `gorm:"index;not null" json:"status"`         // 预约状态
	Version         uint           `gorm:"not null;default:1" json:"version"`    // 乐观锁版本号
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`              // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间
}

// TableName 指定表名
func (Booking) TableName() string {
	return "bookings"
}
