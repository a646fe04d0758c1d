package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/domain"
	"github.com/centralcontact/forms-api/internal/service"
)

//go:generate mockery --name MessageService --output ../mocks
type MessageService interface {
	ListByFormID(ctx context.Context, formID string) ([]dto.MessageResponse, error)
	ListAll(ctx context.Context) ([]dto.MessageDetailResponse, error)
	Search(ctx context.Context, filter *domain.MessageSearchFilter) ([]dto.SearchMessageResponse, error)
}

type MessageHandler struct {
	*BaseHandler
	service MessageService
}

func NewMessageHandler(service MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// ListFormMessages godoc
// @Summary List messages for a form
// @Description Get all messages submitted to a form, newest first
// @Tags messages
// @Produce json
// @Param formId path string true "Form ID"
// @Success 200 {array} dto.MessageResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /messages/form/{formId} [get]
func (h *MessageHandler) ListFormMessages(c *gin.Context) {
	messages, err := h.service.ListByFormID(h.RequestCtx(c), c.Param("formId"))
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Message: "Form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ListMessages godoc
// @Summary List all messages
// @Description Get all messages across every website and form with their form and website details
// @Tags messages
// @Produce json
// @Success 200 {array} dto.MessageDetailResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.service.ListAll(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// SearchMessages godoc
// @Summary Search messages
// @Description Full-text search over message payloads for a website
// @Tags messages
// @Produce json
// @Param uuid query string true "Website UUID"
// @Param form_id query string false "Form ID to narrow the search"
// @Param q query string false "Query string"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10)"
// @Success 200 {array} dto.SearchMessageResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /messages/search [get]
func (h *MessageHandler) SearchMessages(c *gin.Context) {
	websiteUUID := c.Query("uuid")
	if websiteUUID == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Message: "uuid query parameter is required"})
		return
	}

	filter := &domain.MessageSearchFilter{
		WebsiteUUID: websiteUUID,
		FormID:      c.Query("form_id"),
		Query:       c.Query("q"),
	}

	if page := c.Query("page"); page != "" {
		p, err := strconv.Atoi(page)
		if err != nil || p < 1 {
			c.JSON(http.StatusBadRequest, dto.Error{Message: "Invalid page"})
			return
		}
		filter.Page = p
	}

	if pageSize := c.Query("page_size"); pageSize != "" {
		ps, err := strconv.Atoi(pageSize)
		if err != nil || ps < 1 {
			c.JSON(http.StatusBadRequest, dto.Error{Message: "Invalid page_size"})
			return
		}
		filter.PageSize = ps
	}

	results, err := h.service.Search(h.RequestCtx(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}
