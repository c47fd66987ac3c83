package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact 联系咨询表
type Contact struct {
	ID        uint           `gorm:"primarykey" json:"id"`                  // 主键
	Name      string         `gorm:"not null" json:"name"`                  // 姓名
	Email     string         `gorm:"index" json:"email"`                    // 邮箱
	Phone     string         `json:"phone"`                                 // 电话
	Subject   string         `json:"subject"`                               // 主题
	Message   string         `gorm:"type:text;not null" json:"message"`     // 内容
	Handled   bool           `gorm:"default:false;index" json:"handled"`    // 是否已处理
	CreatedAt time.Time      `gorm:"index" json:"created_at"`               // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`               // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                        // 软删除时间
}

// TableName 指定表名
func (Contact) TableName() string {
	return "contacts"
}
