package service

import (
	"strings"

	"github.com/mypham-next/internal/constants"
)

// allowedOrderTransitions 订单状态流转表
var allowedOrderTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusShipping: true,
		constants.OrderStatusCanceled: true,
	},
	constants.OrderStatusShipping: {
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCanceled:  true,
	},
	constants.OrderStatusDelivered: {},
	constants.OrderStatusCanceled:  {},
}

// allowedBookingTransitions 预约状态流转表
var allowedBookingTransitions = map[string]map[string]bool{
	constants.BookingStatusPending: {
		constants.BookingStatusConfirmed: true,
		constants.BookingStatusCanceled:  true,
	},
	constants.BookingStatusConfirmed: {
		constants.BookingStatusCompleted: true,
		constants.BookingStatusCanceled:  true,
	},
	constants.BookingStatusCompleted: {},
	constants.BookingStatusCanceled:  {},
}

// isOrderStatusSupported 判断是否为合法订单状态
func isOrderStatusSupported(status string) bool {
	switch status {
	case constants.OrderStatusPending, constants.OrderStatusShipping,
		constants.OrderStatusDelivered, constants.OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// canTransitionOrderStatus 判断订单状态能否流转
func canTransitionOrderStatus(current, target string) bool {
	nexts, ok := allowedOrderTransitions[strings.TrimSpace(current)]
	if !ok {
		return false
	}
	return nexts[strings.TrimSpace(target)]
}

// isBookingStatusSupported 判断是否为合法预约状态
func isBookingStatusSupported(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case constants.BookingStatusPending, constants.BookingStatusConfirmed,
		constants.BookingStatusCompleted, constants.BookingStatusCanceled:
		return true
	default:
		return false
	}
}

// canTransitionBookingStatus 判断预约状态能否流转
func canTransitionBookingStatus(current, target string) bool {
	nexts, ok := allowedBookingTransitions[strings.ToLower(strings.TrimSpace(current))]
	if !ok {
		return false
	}
	return nexts[strings.ToLower(strings.TrimSpace(target))]
}
