package service

import (
	"strings"

	"github.com/mypham-next/internal/logger"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/repository"
)

// CreateContactInput 创建联系咨询输入
type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactService 联系咨询服务
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService 创建联系咨询服务
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// Create 创建联系咨询
func (s *ContactService) Create(input CreateContactInput) (*models.Contact, error) {
	name := strings.TrimSpace(input.Name)
	message := strings.TrimSpace(input.Message)
	if name == "" || message == "" {
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

	contact := &models.Contact{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: message,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}
	logger.Infow("contact_created",
		"contact_id", contact.ID,
	)
	return contact, nil
}

// GetByID 获取联系咨询详情
func (s *ContactService) GetByID(id uint) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// List 管理端联系咨询列表
func (s *ContactService) List(filter repository.ContactListFilter) ([]models.Contact, int64, error) {
	return s.contactRepo.List(filter)
}

// MarkHandled 标记处理状态
func (s *ContactService) MarkHandled(id uint, handled bool) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	if err := s.contactRepo.UpdateHandled(id, handled); err != nil {
		return nil, err
	}
	contact.Handled = handled
	return contact, nil
}

// Delete 删除联系咨询
func (s *ContactService) Delete(id uint) error {
	contact, err := s.contactRepo.GetByID(id)
	if err != nil {
		return err
	}
	if contact == nil {
		return ErrContactNotFound
	}
	return s.contactRepo.Delete(id)
}
