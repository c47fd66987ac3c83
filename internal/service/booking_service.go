package service

import (
	"strings"

	"github.com/mypham-next/internal/constants"
	"github.com/mypham-next/internal/logger"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/queue"
	"github.com/mypham-next/internal/repository"
)

// CreateBookingInput 创建预约输入
type CreateBookingInput struct {
	CustomerName    string
	Email           string
	Phone           string
	BookingDate     string
	ServiceCategory string
	SkinType        string
	Need            string
}

// BookingService 预约服务
type BookingService struct {
	bookingRepo repository.BookingRepository
	queueClient *queue.Client
}

// NewBookingService 创建预约服务
func NewBookingService(bookingRepo repository.BookingRepository, queueClient *queue.Client) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		queueClient: queueClient,
	}
}

// Create 创建预约，初始状态为待确认
func (s *BookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	name := strings.TrimSpace(input.CustomerName)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || phone == "" {
		return nil, ErrInvalidInput
	}
	email := strings.TrimSpace(input.Email)
	if email != "" {
		normalized, err := normalizeEmail(email)
		if err != nil {
			return nil, err
		}
		email = normalized
	}

	booking := &models.Booking{
		CustomerName:    name,
		Email:           email,
		Phone:           phone,
		BookingDate:     strings.TrimSpace(input.BookingDate),
		ServiceCategory: strings.TrimSpace(input.ServiceCategory),
		SkinType:        strings.TrimSpace(input.SkinType),
		Need:            strings.TrimSpace(input.Need),
		Status:          constants.BookingStatusPending,
		Version:         1,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}
	logger.Infow("booking_created",
		"booking_id", booking.ID,
		"service_category", booking.ServiceCategory,
	)
	return booking, nil
}

// GetByID 获取预约详情
func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// List 管理端预约列表
func (s *BookingService) List(filter repository.BookingListFilter) ([]models.Booking, int64, error) {
	return s.bookingRepo.List(filter)
}

// UpdateStatus 更新预约状态，按版本校验写入
func (s *BookingService) UpdateStatus(id uint, targetStatus string, expectedVersion uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	target := strings.ToLower(strings.TrimSpace(targetStatus))
	if !isBookingStatusSupported(target) {
		return nil, ErrInvalidInput
	}
	if booking.Status == target {
		return booking, nil
	}
	if !canTransitionBookingStatus(booking.Status, target) {
		return nil, ErrStatusTransitionInvalid
	}

	if expectedVersion == 0 {
		expectedVersion = booking.Version
	}
	affected, err := s.bookingRepo.UpdateStatusWithVersion(booking.ID, expectedVersion, target)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		logger.Warnw("booking_status_version_conflict",
			"booking_id", booking.ID,
			"expected_version", expectedVersion,
			"target_status", target,
		)
		return nil, ErrVersionConflict
	}

	booking.Status = target
	booking.Version = expectedVersion + 1

	logger.Infow("booking_status_updated",
		"booking_id", booking.ID,
		"status", target,
	)
	s.enqueueStatusEmail(booking, target)
	return booking, nil
}

// Delete 删除预约
func (s *BookingService) Delete(id uint) error {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	return s.bookingRepo.Delete(id)
}

func (s *BookingService) enqueueStatusEmail(booking *models.Booking, status string) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	if strings.TrimSpace(booking.Email) == "" {
		return
	}
	if err := s.queueClient.EnqueueBookingStatusEmail(queue.BookingStatusEmailPayload{
		BookingID: booking.ID,
		Status:    status,
	}); err != nil {
		logger.Warnw("booking_enqueue_status_email_failed",
			"booking_id", booking.ID,
			"status", status,
			"error", err,
		)
	}
}
