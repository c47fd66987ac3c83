package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page          int
	PageSize      int
	Search        string
	Category      string
	Subcategories []string
	SkinTypes     []string
	Benefits      []string
	PriceMin      *int64
	PriceMax      *int64
	OnSale        *bool
	OnlyActive    bool
	Sort          string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page        int
	PageSize    int
	Keyword     string
	Status      string
	SkinType    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// BookingListFilter 查询预约列表的过滤条件
type BookingListFilter struct {
	Page            int
	PageSize        int
	Status          string
	ServiceCategory string
	Keyword         string
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
}

// ContactListFilter 查询联系咨询列表的过滤条件
type ContactListFilter struct {
	Page     int
	PageSize int
	Handled  *bool
	Keyword  string
}
