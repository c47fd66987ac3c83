package i18n

import "github.com/mypham-next/internal/constants"

// messages 各语言文案表，键为语言标签
var messages = map[string]map[string]string{
	constants.LocaleViVN: {
		"error.bad_request":            "Tham số không hợp lệ",
		"error.unauthorized":           "Vui lòng đăng nhập",
		"error.save_failed":            "Lưu dữ liệu thất bại",
		"error.rate_limited":           "Thao tác quá nhanh, vui lòng thử lại sau",
		"error.rate_limit_unavailable": "Hệ thống đang bận, vui lòng thử lại sau",

		"error.auth_header_missing": "Thiếu thông tin xác thực",
		"error.auth_header_invalid": "Thông tin xác thực không hợp lệ",
		"error.token_invalid":       "Phiên đăng nhập không hợp lệ",
		"error.token_revoked":       "Phiên đăng nhập đã hết hiệu lực, vui lòng đăng nhập lại",
		"error.jwt_secret_missing":  "Máy chủ chưa được cấu hình xác thực",

		"error.admin_id_invalid":      "Phiên quản trị không hợp lệ",
		"error.admin_id_type_invalid": "Phiên quản trị không hợp lệ",
		"error.admin_login_invalid":   "Tên đăng nhập hoặc mật khẩu không đúng",
		"error.user_id_invalid":       "Phiên đăng nhập không hợp lệ",
		"error.user_id_type_invalid":  "Phiên đăng nhập không hợp lệ",

		"error.register_failed":    "Đăng ký thất bại, vui lòng thử lại",
		"error.login_invalid":      "Email hoặc mật khẩu không đúng",
		"error.login_failed":       "Đăng nhập thất bại, vui lòng thử lại",
		"error.login_too_many":     "Bạn đã thử đăng nhập quá nhiều lần, vui lòng thử lại sau",
		"error.email_invalid":      "Địa chỉ email không hợp lệ",
		"error.email_exists":       "Email này đã được đăng ký",
		"error.user_disabled":      "Tài khoản đã bị khóa",
		"error.user_not_found":     "Không tìm thấy tài khoản",
		"error.user_fetch_failed":  "Không tải được thông tin tài khoản",
		"error.user_update_failed": "Cập nhật tài khoản thất bại",
		"error.profile_empty":      "Không có thông tin nào cần cập nhật",

		"error.password_old_invalid":     "Mật khẩu hiện tại không đúng",
		"error.password_weak":            "Mật khẩu chưa đủ mạnh",
		"error.password_min_length":      "Mật khẩu phải có ít nhất %d ký tự",
		"error.password_require_upper":   "Mật khẩu phải chứa chữ in hoa",
		"error.password_require_lower":   "Mật khẩu phải chứa chữ thường",
		"error.password_require_number":  "Mật khẩu phải chứa chữ số",
		"error.password_require_special": "Mật khẩu phải chứa ký tự đặc biệt",

		"error.config_fetch_failed":    "Không tải được cấu hình trang",
		"error.product_not_found":      "Không tìm thấy sản phẩm",
		"error.product_fetch_failed":   "Không tải được danh sách sản phẩm",
		"error.product_create_failed":  "Tạo sản phẩm thất bại",
		"error.product_update_failed":  "Cập nhật sản phẩm thất bại",
		"error.product_delete_failed":  "Xóa sản phẩm thất bại",
		"error.product_not_available":  "Sản phẩm hiện không còn bán",
		"error.slug_exists":            "Slug đã tồn tại",
		"error.slug_used":              "Slug đã được sử dụng",
		"error.category_fetch_failed":  "Không tải được danh mục",
		"error.category_create_failed": "Tạo danh mục thất bại",
		"error.category_update_failed": "Cập nhật danh mục thất bại",
		"error.category_delete_failed": "Xóa danh mục thất bại",
		"error.facet_fetch_failed":     "Không tải được bộ lọc",

		"error.quantity_invalid":    "Số lượng không hợp lệ",
		"error.cart_empty":          "Giỏ hàng đang trống",
		"error.cart_fetch_failed":   "Không tải được giỏ hàng",
		"error.cart_item_not_found": "Sản phẩm không có trong giỏ hàng",
		"error.cart_update_failed":  "Cập nhật giỏ hàng thất bại",

		"error.order_not_found":          "Không tìm thấy đơn hàng",
		"error.order_fetch_failed":       "Không tải được đơn hàng",
		"error.order_create_failed":      "Đặt hàng thất bại, vui lòng thử lại",
		"error.order_update_failed":      "Cập nhật đơn hàng thất bại",
		"error.order_status_invalid":     "Trạng thái đơn hàng không hợp lệ",
		"error.order_transition_invalid": "Không thể chuyển đơn hàng sang trạng thái này",
		"error.version_conflict":         "Dữ liệu đã được người khác cập nhật, vui lòng tải lại",

		"error.booking_create_failed":      "Đặt lịch thất bại, vui lòng thử lại",
		"error.booking_fetch_failed":       "Không tải được lịch hẹn",
		"error.booking_not_found":          "Không tìm thấy lịch hẹn",
		"error.booking_status_invalid":     "Trạng thái lịch hẹn không hợp lệ",
		"error.booking_transition_invalid": "Không thể chuyển lịch hẹn sang trạng thái này",
		"error.booking_update_failed":      "Cập nhật lịch hẹn thất bại",
		"error.booking_delete_failed":      "Xóa lịch hẹn thất bại",

		"error.contact_create_failed": "Gửi liên hệ thất bại, vui lòng thử lại",
		"error.contact_fetch_failed":  "Không tải được liên hệ",
		"error.contact_not_found":     "Không tìm thấy liên hệ",
		"error.contact_update_failed": "Cập nhật liên hệ thất bại",
		"error.contact_delete_failed": "Xóa liên hệ thất bại",

		"error.dashboard_fetch_failed":  "Không tải được số liệu thống kê",
		"error.dashboard_range_invalid": "Khoảng thời gian thống kê không hợp lệ",

		"booking.status.pending":   "Chờ xác nhận",
		"booking.status.confirmed": "Đã xác nhận",
		"booking.status.completed": "Hoàn thành",
		"booking.status.canceled":  "Đã hủy",

		"email.order_status.subject":   "Cập nhật đơn hàng: %s",
		"email.order_status.body":      "Đơn hàng %s của bạn hiện đang ở trạng thái: %s.\nTổng tiền: %s VND.\n\nCảm ơn bạn đã mua sắm tại MyPham!",
		"email.booking_status.subject": "Cập nhật lịch hẹn: %s",
		"email.booking_status.body":    "Xin chào %s,\n\nLịch hẹn dịch vụ %s vào ngày %s của bạn hiện đang ở trạng thái: %s.\n\nHẹn gặp bạn tại MyPham!",
	},
	constants.LocaleEnUS: {
		"error.bad_request":            "Invalid request parameters",
		"error.unauthorized":           "Please sign in",
		"error.save_failed":            "Failed to save data",
		"error.rate_limited":           "Too many requests, please try again later",
		"error.rate_limit_unavailable": "Service busy, please try again later",

		"error.auth_header_missing": "Missing authorization header",
		"error.auth_header_invalid": "Invalid authorization header",
		"error.token_invalid":       "Invalid session token",
		"error.token_revoked":       "Session expired, please sign in again",
		"error.jwt_secret_missing":  "Server authentication is not configured",

		"error.admin_id_invalid":      "Invalid admin session",
		"error.admin_id_type_invalid": "Invalid admin session",
		"error.admin_login_invalid":   "Incorrect username or password",
		"error.user_id_invalid":       "Invalid session",
		"error.user_id_type_invalid":  "Invalid session",

		"error.register_failed":    "Registration failed, please try again",
		"error.login_invalid":      "Incorrect email or password",
		"error.login_failed":       "Sign in failed, please try again",
		"error.login_too_many":     "Too many sign-in attempts, please try again later",
		"error.email_invalid":      "Invalid email address",
		"error.email_exists":       "This email is already registered",
		"error.user_disabled":      "Account has been disabled",
		"error.user_not_found":     "Account not found",
		"error.user_fetch_failed":  "Failed to load account",
		"error.user_update_failed": "Failed to update account",
		"error.profile_empty":      "Nothing to update",

		"error.password_old_invalid":     "Current password is incorrect",
		"error.password_weak":            "Password is too weak",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a digit",
		"error.password_require_special": "Password must contain a special character",

		"error.config_fetch_failed":    "Failed to load site configuration",
		"error.product_not_found":      "Product not found",
		"error.product_fetch_failed":   "Failed to load products",
		"error.product_create_failed":  "Failed to create product",
		"error.product_update_failed":  "Failed to update product",
		"error.product_delete_failed":  "Failed to delete product",
		"error.product_not_available":  "Product is no longer available",
		"error.slug_exists":            "Slug already exists",
		"error.slug_used":              "Slug is already in use",
		"error.category_fetch_failed":  "Failed to load categories",
		"error.category_create_failed": "Failed to create category",
		"error.category_update_failed": "Failed to update category",
		"error.category_delete_failed": "Failed to delete category",
		"error.facet_fetch_failed":     "Failed to load filters",

		"error.quantity_invalid":    "Invalid quantity",
		"error.cart_empty":          "Cart is empty",
		"error.cart_fetch_failed":   "Failed to load cart",
		"error.cart_item_not_found": "Item is not in the cart",
		"error.cart_update_failed":  "Failed to update cart",

		"error.order_not_found":          "Order not found",
		"error.order_fetch_failed":       "Failed to load order",
		"error.order_create_failed":      "Failed to place order, please try again",
		"error.order_update_failed":      "Failed to update order",
		"error.order_status_invalid":     "Invalid order status",
		"error.order_transition_invalid": "Order cannot be moved to this status",
		"error.version_conflict":         "Record was modified by someone else, please reload",

		"error.booking_create_failed":      "Failed to create booking, please try again",
		"error.booking_fetch_failed":       "Failed to load bookings",
		"error.booking_not_found":          "Booking not found",
		"error.booking_status_invalid":     "Invalid booking status",
		"error.booking_transition_invalid": "Booking cannot be moved to this status",
		"error.booking_update_failed":      "Failed to update booking",
		"error.booking_delete_failed":      "Failed to delete booking",

		"error.contact_create_failed": "Failed to send message, please try again",
		"error.contact_fetch_failed":  "Failed to load messages",
		"error.contact_not_found":     "Message not found",
		"error.contact_update_failed": "Failed to update message",
		"error.contact_delete_failed": "Failed to delete message",

		"error.dashboard_fetch_failed":  "Failed to load statistics",
		"error.dashboard_range_invalid": "Invalid statistics range",

		"booking.status.pending":   "Pending confirmation",
		"booking.status.confirmed": "Confirmed",
		"booking.status.completed": "Completed",
		"booking.status.canceled":  "Canceled",

		"email.order_status.subject":   "Order update: %s",
		"email.order_status.body":      "Your order %s is now: %s.\nTotal: %s VND.\n\nThank you for shopping at MyPham!",
		"email.booking_status.subject": "Booking update: %s",
		"email.booking_status.body":    "Hi %s,\n\nYour %s booking on %s is now: %s.\n\nSee you at MyPham!",
	},
}
