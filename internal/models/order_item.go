package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表（只存商品ID、单价、数量，标题由详情页回查商品表）
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID   uint           `gorm:"index;not null" json:"order_id"`                          // 订单ID
	ProductID uint           `gorm:"index;not null" json:"product_id"`                        // 商品ID
	UnitPrice Money          `gorm:"type:decimal(20,0);not null;default:0" json:"unit_price"` // 成交单价（VND）
	Quantity  int            `gorm:"not null" json:"quantity"`                                // 数量
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                                 // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
