package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                        // 主键
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`                            // 唯一标识
	Title         string         `gorm:"not null;index" json:"title"`                                 // 商品名称
	Description   string         `gorm:"type:text" json:"description"`                                // 商品描述
	Image         string         `gorm:"type:varchar(500)" json:"image"`                              // 主图路径
	Category      string         `gorm:"index;not null" json:"category"`                              // 分类 slug
	Subcategory   string         `gorm:"index" json:"subcategory"`                                    // 子分类名称
	Brand         string         `gorm:"index" json:"brand"`                                          // 品牌 slug
	SkinTypes     StringArray    `gorm:"type:json" json:"skin_types"`                                 // 适用肤质 slug 数组
	Benefits      StringArray    `gorm:"type:json" json:"benefits"`                                   // 功效 slug 数组
	Price         Money          `gorm:"type:decimal(20,0);not null;default:0" json:"price"`          // 售价（VND）
	OriginalPrice Money          `gorm:"type:decimal(20,0);not null;default:0" json:"original_price"` // 原价（VND）
	OnSale        bool           `gorm:"default:false;index" json:"on_sale"`                          // 是否促销
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`                         // 是否上架
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`                           // 排序权重
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                                  // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
