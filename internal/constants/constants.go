package constants

// 订单状态常量（越南语展示值，与前端历史数据保持一致）
const (
	OrderStatusPending   = "Chưa giao"
	OrderStatusShipping  = "Đang giao"
	OrderStatusDelivered = "Đã giao"
	OrderStatusCanceled  = "Đã hủy"
)

// 预约状态常量
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCanceled  = "canceled"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 用户角色常量
const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)

// 商品排序常量
const (
	ProductSortDefault   = "default"
	ProductSortPriceAsc  = "price_asc"
	ProductSortPriceDesc = "price_desc"
	ProductSortNameAsc   = "name_asc"
	ProductSortNameDesc  = "name_desc"
)

// 队列常量
const (
	QueueDefault           = "default"
	TaskOrderStatusEmail   = "order:status_email"
	TaskBookingStatusEmail = "booking:status_email"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "mp"
)

// 站点货币常量
const (
	SiteCurrencyVND = "VND"
)

// 站点语言常量
const (
	LocaleViVN = "vi-VN"
	LocaleEnUS = "en-US"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleViVN, LocaleEnUS}
