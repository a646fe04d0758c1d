package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/service"
	"github.com/centralcontact/forms-api/pkg/utils"
)

//go:generate mockery --name FormService --output ../mocks
type FormService interface {
	Create(ctx context.Context, req dto.CreateFormRequest) (*dto.FormResponse, error)
	ListByWebsiteUUID(ctx context.Context, websiteUUID string) ([]dto.FormResponse, error)
	Rename(ctx context.Context, id uint, title string) error
	Delete(ctx context.Context, id uint) error
	ScheduleArchive(ctx context.Context, id uint, before time.Time) error
}

type FormHandler struct {
	*BaseHandler
	service FormService
}

func NewFormHandler(service FormService) *FormHandler {
	return &FormHandler{service: service}
}

// CreateForm godoc
// @Summary Create a new form
// @Description Create a form under a website with its field schema
// @Tags forms
// @Accept json
// @Produce json
// @Param body body dto.CreateFormRequest true "Form object"
// @Success 201 {object} dto.FormResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req dto.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Message: err.Error()})
		return
	}

	form, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWebsiteNotFound):
			c.JSON(http.StatusNotFound, dto.Error{Message: "Website not found"})
		case errors.Is(err, service.ErrInvalidPayload):
			c.JSON(http.StatusBadRequest, dto.Error{Message: "Fields must be a JSON object"})
		default:
			c.JSON(http.StatusInternalServerError, dto.Error{Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, form)
}

// ListForms godoc
// @Summary List forms for a website
// @Description Get all forms belonging to the website identified by the uuid query parameter
// @Tags forms
// @Produce json
// @Param uuid query string true "Website UUID"
// @Success 200 {array} dto.FormResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	websiteUUID := c.Query("uuid")
	if websiteUUID == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Message: "uuid query parameter is required"})
		return
	}

	h.listByWebsite(c, websiteUUID)
}

// ListWebsiteForms godoc
// @Summary List forms for a website
// @Description Get all forms belonging to the website identified by the path uuid
// @Tags forms
// @Produce json
// @Param uuid path string true "Website UUID"
// @Success 200 {array} dto.FormResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /websites/{uuid}/forms [get]
func (h *FormHandler) ListWebsiteForms(c *gin.Context) {
	h.listByWebsite(c, c.Param("uuid"))
}

func (h *FormHandler) listByWebsite(c *gin.Context, websiteUUID string) {
	forms, err := h.service.ListByWebsiteUUID(h.RequestCtx(c), websiteUUID)
	if err != nil {
		if errors.Is(err, service.ErrWebsiteNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Message: "Website not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, forms)
}

// RenameForm godoc
// @Summary Rename a form
// @Description Update the title of a form
// @Tags forms
// @Accept json
// @Produce json
// @Param id path int true "Form database ID"
// @Param body body dto.RenameFormRequest true "New title"
// @Success 204
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /forms/{id} [patch]
func (h *FormHandler) RenameForm(c *gin.Context) {
	id, ok := h.formID(c)
	if !ok {
		return
	}

	var req dto.RenameFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Message: err.Error()})
		return
	}

	if err := h.service.Rename(h.RequestCtx(c), id, req.Title); err != nil {
		h.writeFormError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteForm godoc
// @Summary Delete a form
// @Description Delete a form together with its messages
// @Tags forms
// @Param id path int true "Form database ID"
// @Success 204
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, ok := h.formID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), id); err != nil {
		h.writeFormError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ArchiveForm godoc
// @Summary Archive old form messages
// @Description Queue messages received before the given time for export to S3 and removal from the database
// @Tags forms
// @Accept json
// @Produce json
// @Param id path int true "Form database ID"
// @Param body body dto.ArchiveFormRequest true "Archive cutoff"
// @Success 202 {object} map[string]string
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /forms/{id}/archive [post]
func (h *FormHandler) ArchiveForm(c *gin.Context) {
	id, ok := h.formID(c)
	if !ok {
		return
	}

	var req dto.ArchiveFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Message: err.Error()})
		return
	}

	before, err := utils.ParseUserTime(req.Before, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Message: err.Error()})
		return
	}

	if err := h.service.ScheduleArchive(h.RequestCtx(c), id, before); err != nil {
		h.writeFormError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "archive scheduled"})
}

func (h *FormHandler) formID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Message: "Invalid form ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *FormHandler) writeFormError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrFormNotFound) {
		c.JSON(http.StatusNotFound, dto.Error{Message: "Form not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.Error{Message: err.Error()})
}
