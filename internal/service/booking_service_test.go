package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mypham-next/internal/constants"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupBookingServiceTest(t *testing.T) *BookingService {
	t.Helper()
	dsn := fmt.Sprintf("file:booking_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Booking{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewBookingService(repository.NewBookingRepository(db), nil)
}

func sampleBookingInput() CreateBookingInput {
	return CreateBookingInput{
		CustomerName:    "Trần Thị B",
		Email:           "  Tran.B@Example.COM ",
		Phone:           "0912345678",
		BookingDate:     "15/09/2026",
		ServiceCategory: "cham-soc-da",
		SkinType:        "oily",
		Need:            "Da mụn cần tư vấn liệu trình",
	}
}

func TestBookingCreateNormalizesAndDefaults(t *testing.T) {
	svc := setupBookingServiceTest(t)

	booking, err := svc.Create(sampleBookingInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if booking.Status != constants.BookingStatusPending {
		t.Fatalf("new booking status want %s got %s", constants.BookingStatusPending, booking.Status)
	}
	if booking.Version != 1 {
		t.Fatalf("new booking version want 1 got %d", booking.Version)
	}
	if booking.Email != "tran.b@example.com" {
		t.Fatalf("email should be normalized, got %q", booking.Email)
	}
}

func TestBookingCreateValidation(t *testing.T) {
	svc := setupBookingServiceTest(t)

	input := sampleBookingInput()
	input.CustomerName = "  "
	if _, err := svc.Create(input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name want ErrInvalidInput got %v", err)
	}

	input = sampleBookingInput()
	input.Email = "not-an-email"
	if _, err := svc.Create(input); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad email want ErrInvalidEmail got %v", err)
	}

	// 邮箱留空是允许的
	input = sampleBookingInput()
	input.Email = ""
	if _, err := svc.Create(input); err != nil {
		t.Fatalf("empty email should pass, got %v", err)
	}
}

func TestBookingUpdateStatusFollowsTransitions(t *testing.T) {
	svc := setupBookingServiceTest(t)

	booking, err := svc.Create(sampleBookingInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// pending 不能直接 completed
	if _, err := svc.UpdateStatus(booking.ID, constants.BookingStatusCompleted, 0); !errors.Is(err, ErrStatusTransitionInvalid) {
		t.Fatalf("pending to completed want ErrStatusTransitionInvalid got %v", err)
	}
	if _, err := svc.UpdateStatus(booking.ID, "mystery", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown status want ErrInvalidInput got %v", err)
	}

	confirmed, err := svc.UpdateStatus(booking.ID, " Confirmed ", 0)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != constants.BookingStatusConfirmed || confirmed.Version != 2 {
		t.Fatalf("confirm result mismatch: %+v", confirmed)
	}

	// 同状态为幂等空操作
	same, err := svc.UpdateStatus(booking.ID, constants.BookingStatusConfirmed, 0)
	if err != nil {
		t.Fatalf("same status update failed: %v", err)
	}
	if same.Version != 2 {
		t.Fatalf("same-status update should not bump version, got %d", same.Version)
	}

	completed, err := svc.UpdateStatus(booking.ID, constants.BookingStatusCompleted, 0)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if _, err := svc.UpdateStatus(completed.ID, constants.BookingStatusCanceled, 0); !errors.Is(err, ErrStatusTransitionInvalid) {
		t.Fatalf("completed is terminal, want ErrStatusTransitionInvalid got %v", err)
	}
}

func TestBookingUpdateStatusVersionConflict(t *testing.T) {
	svc := setupBookingServiceTest(t)

	booking, err := svc.Create(sampleBookingInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.UpdateStatus(booking.ID, constants.BookingStatusConfirmed, 99); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("stale version want ErrVersionConflict got %v", err)
	}
	if _, err := svc.UpdateStatus(booking.ID, constants.BookingStatusConfirmed, booking.Version); err != nil {
		t.Fatalf("matching version should succeed, got %v", err)
	}
}

func TestBookingDelete(t *testing.T) {
	svc := setupBookingServiceTest(t)

	if err := svc.Delete(9999); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("delete missing want ErrBookingNotFound got %v", err)
	}

	booking, err := svc.Create(sampleBookingInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(booking.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(booking.ID); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("deleted booking want ErrBookingNotFound got %v", err)
	}
}
