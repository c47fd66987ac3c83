package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mypham-next/internal/logger"
	"github.com/mypham-next/internal/provider"
	"github.com/mypham-next/internal/queue"
	"github.com/mypham-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskBookingStatusEmail, c.handleBookingStatusEmail)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	var receiverEmail string
	var locale string
	if order.UserID != 0 {
		user, err := c.UserRepo.GetByID(order.UserID)
		if err != nil {
			logger.Warnw("worker_order_status_email_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
			return err
		}
		if user != nil {
			receiverEmail = strings.TrimSpace(user.Email)
			locale = strings.TrimSpace(user.Locale)
		}
	}
	if receiverEmail == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_status_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		OrderNo: order.OrderNo,
		Status:  status,
		Amount:  order.TotalAmount,
	}
	if err := c.EmailService.SendOrderStatusEmail(receiverEmail, input, locale); err != nil {
		logger.Warnw("worker_order_status_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", receiverEmail,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleBookingStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_booking_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.BookingStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_booking_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.BookingID == 0 {
		logger.Debugw("worker_booking_status_email_skip_invalid_payload", "booking_id", payload.BookingID)
		return nil
	}
	booking, err := c.BookingRepo.GetByID(payload.BookingID)
	if err != nil {
		logger.Warnw("worker_booking_status_email_fetch_failed", "booking_id", payload.BookingID, "error", err)
		return err
	}
	if booking == nil {
		logger.Debugw("worker_booking_status_email_skip_not_found", "booking_id", payload.BookingID)
		return nil
	}
	receiverEmail := strings.TrimSpace(booking.Email)
	if receiverEmail == "" {
		logger.Debugw("worker_booking_status_email_skip_empty_receiver", "booking_id", booking.ID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_booking_status_email_skip_email_service_nil", "booking_id", booking.ID)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = booking.Status
	}
	input := service.BookingStatusEmailInput{
		CustomerName:    booking.CustomerName,
		BookingDate:     booking.BookingDate,
		ServiceCategory: booking.ServiceCategory,
		Status:          status,
	}
	if err := c.EmailService.SendBookingStatusEmail(receiverEmail, input, ""); err != nil {
		logger.Warnw("worker_booking_status_email_send_failed",
			"booking_id", booking.ID,
			"receiver_email", receiverEmail,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}
