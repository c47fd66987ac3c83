package service

import "errors"

// 通用业务错误
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDashboardRangeInvalid = errors.New("dashboard range invalid")
)

// 账号相关错误
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDisabled       = errors.New("user disabled")
	ErrWeakPassword       = errors.New("weak password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrProfileEmpty       = errors.New("profile empty")
	ErrAdminNotFound      = errors.New("admin not found")
)

// 购物车相关错误
var (
	ErrCartEmpty           = errors.New("cart empty")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrProductNotAvailable = errors.New("product not available")
)

// 订单与预约相关错误
var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderFetchFailed        = errors.New("order fetch failed")
	ErrOrderCreateFailed       = errors.New("order create failed")
	ErrOrderUpdateFailed       = errors.New("order update failed")
	ErrOrderStatusInvalid      = errors.New("order status invalid")
	ErrVersionConflict         = errors.New("version conflict")
	ErrStatusTransitionInvalid = errors.New("status transition not allowed")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrContactNotFound         = errors.New("contact not found")
)

// 邮件相关错误
var (
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)

// 商品与分类相关错误
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrSlugExists       = errors.New("slug already exists")
	ErrCategoryNotFound = errors.New("category not found")
)
