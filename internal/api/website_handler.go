package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/service"
)

//go:generate mockery --name WebsiteService --output ../mocks
type WebsiteService interface {
	Register(ctx context.Context, req dto.RegisterWebsiteRequest) (*dto.WebsiteResponse, error)
	List(ctx context.Context) ([]dto.WebsiteResponse, error)
	Rename(ctx context.Context, websiteUUID, name string) (*dto.WebsiteResponse, error)
	Delete(ctx context.Context, websiteUUID string) error
}

type WebsiteHandler struct {
	*BaseHandler
	service WebsiteService
}

func NewWebsiteHandler(service WebsiteService) *WebsiteHandler {
	return &WebsiteHandler{service: service}
}

// RegisterWebsite godoc
// @Summary Register a new website
// @Description Register a website and issue its app key and secret key
// @Tags websites
// @Accept json
// @Produce json
// @Param body body dto.RegisterWebsiteRequest true "Website object"
// @Success 201 {object} dto.WebsiteResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /websites [post]
func (h *WebsiteHandler) RegisterWebsite(c *gin.Context) {
	var req dto.RegisterWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Message: err.Error()})
		return
	}

	website, err := h.service.Register(h.RequestCtx(c), req)
	if err != nil {
		if errors.Is(err, service.ErrDomainTaken) {
			c.JSON(http.StatusConflict, dto.Error{Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, website)
}

// ListWebsites godoc
// @Summary List all websites
// @Description Get all registered websites, newest first
// @Tags websites
// @Produce json
// @Success 200 {array} dto.WebsiteResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /websites [get]
func (h *WebsiteHandler) ListWebsites(c *gin.Context) {
	websites, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, websites)
}

// RenameWebsite godoc
// @Summary Rename a website
// @Description Update the display name of a website
// @Tags websites
// @Accept json
// @Produce json
// @Param uuid path string true "Website UUID"
// @Param body body dto.RenameWebsiteRequest true "New name"
// @Success 200 {object} dto.WebsiteResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /websites/{uuid} [patch]
func (h *WebsiteHandler) RenameWebsite(c *gin.Context) {
	var req dto.RenameWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Message: err.Error()})
		return
	}

	website, err := h.service.Rename(h.RequestCtx(c), c.Param("uuid"), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrWebsiteNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Message: "Website not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, website)
}

// DeleteWebsite godoc
// @Summary Delete a website
// @Description Delete a website together with its forms and messages
// @Tags websites
// @Param uuid path string true "Website UUID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /websites/{uuid} [delete]
func (h *WebsiteHandler) DeleteWebsite(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("uuid")); err != nil {
		if errors.Is(err, service.ErrWebsiteNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Message: "Website not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
