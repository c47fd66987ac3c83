package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（金额与订单项创建后不可变，状态流转携带版本号）
type Order struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                       // 主键
	OrderNo      string         `gorm:"uniqueIndex;not null" json:"order_no"`                       // 订单编号
	UserID       uint           `gorm:"index;not null" json:"user_id"`                              // 用户ID
	CustomerName string         `gorm:"not null" json:"customer_name"`                              // 收货人姓名
	Phone        string         `gorm:"not null" json:"phone"`                                      // 收货人电话
	Address      string         `gorm:"not null" json:"address"`                                    // 详细地址
	City         string         `gorm:"not null" json:"city"`                                       // 省/市
	District     string         `gorm:"not null" json:"district"`                                   // 郡/县
	Ward         string         `gorm:"not null" json:"ward"`                                       // 坊/社
	Note         string         `gorm:"type:text" json:"note"`                                      // 订单备注
	DisplayDate  string         `gorm:"type:varchar(20)" json:"display_date"`                       // 下单日期展示串（vi-VN）
	DisplayTime  string         `gorm:"type:varchar(20)" json:"display_time"`                       // 下单时间展示串（vi-VN）
	Subtotal     Money          `gorm:"type:decimal(20,0);not null;default:0" json:"subtotal"`      // 商品小计（VND）
	ShippingFee  Money          `gorm:"type:decimal(20,0);not null;default:0" json:"shipping_fee"`  // 运费（VND）
	TotalAmount  Money          `gorm:"type:decimal(20,0);not null;default:0" json:"total_amount"`  // 应付总额（VND）
	Status       string         `gorm:"index;not null" json:"status"`                               // 订单状态（越南语展示值）
	Version      uint           `gorm:"not null;default:1" json:"version"`                          // 乐观锁版本号
	CanceledAt   *time.Time     `gorm:"index" json:"canceled_at"`                                   // 取消时间
	DeliveredAt  *time.Time     `gorm:"index" json:"delivered_at"`                                  // 签收时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                                    // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
