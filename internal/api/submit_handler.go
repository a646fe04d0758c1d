package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/service"
)

//go:generate mockery --name SubmissionService --output ../mocks
type SubmissionService interface {
	Submit(ctx context.Context, in service.SubmitInput) (*dto.MessageResponse, error)
}

// SubmitHandler serves the public ingestion endpoint that website
// embed snippets post form submissions to.
type SubmitHandler struct {
	*BaseHandler
	service SubmissionService
}

func NewSubmitHandler(service SubmissionService) *SubmitHandler {
	return &SubmitHandler{service: service}
}

// Preflight godoc
// @Summary CORS preflight for form submission
// @Description Answers browser preflight checks for cross-origin form posts
// @Tags submit
// @Success 204
// @Router /{uuid}/{formId} [options]
func (h *SubmitHandler) Preflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
	c.Status(http.StatusNoContent)
}

// Submit godoc
// @Summary Submit a form message
// @Description Accepts a cross-origin form submission for a website's form
// @Tags submit
// @Accept json
// @Produce json
// @Param uuid path string true "Website UUID"
// @Param formId path string true "Form ID"
// @Param Authorization header string true "Bearer secret key"
// @Param Origin header string true "Submitting page origin"
// @Param body body object true "Form payload"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /{uuid}/{formId} [post]
func (h *SubmitHandler) Submit(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, dto.Error{Message: "Unauthorized"})
		return
	}
	secretKey := strings.TrimPrefix(authHeader, "Bearer ")

	origin := c.GetHeader("Origin")
	if origin == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Message: "Missing Origin header"})
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Message: "Failed to read request body"})
		return
	}

	msg, err := h.service.Submit(h.RequestCtx(c), service.SubmitInput{
		WebsiteUUID: c.Param("uuid"),
		FormID:      c.Param("formId"),
		SecretKey:   secretKey,
		Origin:      origin,
		Payload:     payload,
	})
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	// The response must be readable by the submitting page, so echo
	// its origin rather than the wildcard used for preflight.
	c.Header("Access-Control-Allow-Origin", origin)
	c.JSON(http.StatusCreated, msg)
}

func (h *SubmitHandler) writeSubmitError(c *gin.Context, err error) {
	var mismatch *service.OriginMismatchError
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusForbidden, dto.Error{Message: "Invalid secret key or UUID"})
	case errors.As(err, &mismatch):
		c.JSON(http.StatusForbidden, dto.Error{Message: mismatch.Error()})
	case errors.Is(err, service.ErrFormNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Message: "Form not found"})
	case errors.Is(err, service.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, dto.Error{Message: "Invalid JSON body"})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Message: "Internal Server Error"})
	}
}
