package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// StringArray 字符串数组类型，用于存储子分类、肤质、功效等
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// UintArray 数字 ID 数组类型，用于存储收藏商品等
type UintArray []uint

// Value 实现 driver.Valuer 接口
func (a UintArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan 实现 sql.Scanner 接口
func (a *UintArray) Scan(value interface{}) error {
	if value == nil {
		*a = UintArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// Category 商品分类表
type Category struct {
	ID            uint           `gorm:"primarykey" json:"id"`              // 主键
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`  // 唯一标识
	Name          string         `gorm:"not null" json:"name"`              // 分类名称
	Subcategories StringArray    `gorm:"type:json" json:"subcategories"`    // 子分类名称数组
	Icon          string         `gorm:"type:varchar(500)" json:"icon"`     // 分类图标（图片路径）
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"` // 排序权重
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
