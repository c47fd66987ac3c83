package worker

import (
	"context"
	"testing"

	"github.com/mypham-next/internal/provider"
	"github.com/mypham-next/internal/queue"

	"github.com/hibiken/asynq"
)

func TestConsumerRegisterNilMux(t *testing.T) {
	c := NewConsumer(&provider.Container{})
	c.Register(nil)
}

func TestHandleOrderStatusEmailInvalidPayload(t *testing.T) {
	c := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskOrderStatusEmail, []byte("not-json"))
	if err := c.handleOrderStatusEmail(context.Background(), task); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestHandleOrderStatusEmailZeroOrderID(t *testing.T) {
	c := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskOrderStatusEmail, []byte(`{"order_id":0,"status":"confirmed"}`))
	if err := c.handleOrderStatusEmail(context.Background(), task); err != nil {
		t.Fatalf("expected zero order id to be skipped, got %v", err)
	}
}

func TestHandleBookingStatusEmailInvalidPayload(t *testing.T) {
	c := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskBookingStatusEmail, []byte("not-json"))
	if err := c.handleBookingStatusEmail(context.Background(), task); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestHandleBookingStatusEmailZeroBookingID(t *testing.T) {
	c := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskBookingStatusEmail, []byte(`{"booking_id":0,"status":"confirmed"}`))
	if err := c.handleBookingStatusEmail(context.Background(), task); err != nil {
		t.Fatalf("expected zero booking id to be skipped, got %v", err)
	}
}
