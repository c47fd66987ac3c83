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

// AdminListContacts 管理端联系留言列表
func (h *Handler) AdminListContacts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var handled *bool
	if raw := strings.TrimSpace(c.Query("handled")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		handled = &parsed
	}

	contacts, total, err := h.ContactService.List(repository.ContactListFilter{
		Page:     page,
		PageSize: pageSize,
		Handled:  handled,
		Keyword:  strings.TrimSpace(c.Query("keyword")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.contact_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, contacts, pagination)
}

// AdminGetContact 管理端联系留言详情
func (h *Handler) AdminGetContact(c *gin.Context) {
	contactID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	contact, err := h.ContactService.GetByID(contactID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			respondError(c, response.CodeNotFound, "error.contact_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.contact_fetch_failed", err)
		}
		return
	}
	response.Success(c, contact)
}

// UpdateContactHandledRequest 更新留言处理状态请求
type UpdateContactHandledRequest struct {
	Handled *bool `json:"handled" binding:"required"`
}

// AdminUpdateContactHandled 管理端更新留言处理状态
func (h *Handler) AdminUpdateContactHandled(c *gin.Context) {
	contactID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateContactHandledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	contact, err := h.ContactService.MarkHandled(contactID, *req.Handled)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			respondError(c, response.CodeNotFound, "error.contact_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.contact_update_failed", err)
		}
		return
	}
	response.Success(c, contact)
}

// AdminDeleteContact 管理端删除联系留言
func (h *Handler) AdminDeleteContact(c *gin.Context) {
	contactID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.ContactService.Delete(contactID); err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			respondError(c, response.CodeNotFound, "error.contact_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.contact_delete_failed", err)
		}
		return
	}
	response.Success(c, nil)
}
