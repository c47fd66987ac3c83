package public

import (
	"errors"

	"github.com/mypham-next/internal/http/response"
	"github.com/mypham-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateBookingRequest 创建预约请求
type CreateBookingRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email"`
	BookingDate     string `json:"booking_date"`
	ServiceCategory string `json:"service_category"`
	SkinType        string `json:"skin_type"`
	Need            string `json:"need"`
}

// CreateBooking 创建护肤预约
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	booking, err := h.BookingService.Create(service.CreateBookingInput{
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Email:           req.Email,
		BookingDate:     req.BookingDate,
		ServiceCategory: req.ServiceCategory,
		SkinType:        req.SkinType,
		Need:            req.Need,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.email_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.booking_create_failed", err)
		}
		return
	}
	response.Success(c, booking)
}
