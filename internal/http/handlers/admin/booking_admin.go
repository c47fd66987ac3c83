package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mypham-next/internal/http/response"
	"github.com/mypham-next/internal/repository"
	"github.com/mypham-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminListBookings 管理端预约列表
func (h *Handler) AdminListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	createdFrom, err := parseTimeNullable(strings.TrimSpace(c.Query("created_from")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := parseTimeNullable(strings.TrimSpace(c.Query("created_to")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	bookings, total, err := h.BookingService.List(repository.BookingListFilter{
		Page:            page,
		PageSize:        pageSize,
		Status:          strings.TrimSpace(c.Query("status")),
		ServiceCategory: strings.TrimSpace(c.Query("service_category")),
		Keyword:         strings.TrimSpace(c.Query("keyword")),
		CreatedFrom:     createdFrom,
		CreatedTo:       createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.booking_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, bookings, pagination)
}

// AdminGetBooking 管理端预约详情
func (h *Handler) AdminGetBooking(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.BookingService.GetByID(bookingID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			respondError(c, response.CodeNotFound, "error.booking_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.booking_fetch_failed", err)
		}
		return
	}
	response.Success(c, booking)
}

// UpdateBookingStatusRequest 管理端更新预约状态请求
type UpdateBookingStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Version uint   `json:"version"`
}

// AdminUpdateBookingStatus 管理端更新预约状态
func (h *Handler) AdminUpdateBookingStatus(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	booking, err := h.BookingService.UpdateStatus(bookingID, req.Status, req.Version)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			respondError(c, response.CodeNotFound, "error.booking_not_found", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "error.booking_status_invalid", nil)
		case errors.Is(err, service.ErrStatusTransitionInvalid):
			respondError(c, response.CodeBadRequest, "error.booking_transition_invalid", nil)
		case errors.Is(err, service.ErrVersionConflict):
			respondError(c, response.CodeConflict, "error.version_conflict", nil)
		default:
			respondError(c, response.CodeInternal, "error.booking_update_failed", err)
		}
		return
	}
	response.Success(c, booking)
}

// AdminDeleteBooking 管理端删除预约
func (h *Handler) AdminDeleteBooking(c *gin.Context) {
	bookingID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.BookingService.Delete(bookingID); err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			respondError(c, response.CodeNotFound, "error.booking_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.booking_delete_failed", err)
		}
		return
	}
	response.Success(c, nil)
}
