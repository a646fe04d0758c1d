package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/service"
)

type WebsiteHandlerTestSuite struct {
	suite.Suite
	mockService *MockWebsiteService
	handler     *WebsiteHandler
}

type MockWebsiteService struct {
	mock.Mock
}

func (m *MockWebsiteService) Register(ctx context.Context, req dto.RegisterWebsiteRequest) (*dto.WebsiteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WebsiteResponse), args.Error(1)
}

func (m *MockWebsiteService) List(ctx context.Context) ([]dto.WebsiteResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.WebsiteResponse), args.Error(1)
}

func (m *MockWebsiteService) Rename(ctx context.Context, websiteUUID, name string) (*dto.WebsiteResponse, error) {
	args := m.Called(ctx, websiteUUID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WebsiteResponse), args.Error(1)
}

func (m *MockWebsiteService) Delete(ctx context.Context, websiteUUID string) error {
	args := m.Called(ctx, websiteUUID)
	return args.Error(0)
}

func (s *WebsiteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockWebsiteService)
	s.handler = NewWebsiteHandler(s.mockService)
}

func TestWebsiteHandler(t *testing.T) {
	suite.Run(t, new(WebsiteHandlerTestSuite))
}

func (s *WebsiteHandlerTestSuite) TestRegisterWebsite_Success() {
	// Arrange
	now := time.Now()
	req := dto.RegisterWebsiteRequest{
		Name:   "Acme",
		Domain: "acme.com",
	}

	expected := &dto.WebsiteResponse{
		ID:        1,
		UUID:      "web-uuid",
		Name:      "Acme",
		Domain:    "acme.com",
		AppKey:    "3f2a9c1b4d8e7f60",
		SecretKey: "3f2a9c1b4d8e7f603f2a9c1b4d8e7f60",
		CreatedAt: now,
	}

	s.mockService.On("Register", mock.Anything, req).Return(expected, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/websites", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.RegisterWebsite(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.WebsiteResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(expected.UUID, response.UUID)
	s.Equal(expected.SecretKey, response.SecretKey)
	s.mockService.AssertExpectations(s.T())
}

func (s *WebsiteHandlerTestSuite) TestRegisterWebsite_MissingDomain() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/websites", bytes.NewBufferString(`{"name":"Acme"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.RegisterWebsite(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Register", mock.Anything, mock.Anything)
}

func (s *WebsiteHandlerTestSuite) TestRegisterWebsite_DomainTaken() {
	// Arrange
	req := dto.RegisterWebsiteRequest{Name: "Other", Domain: "acme.com"}
	s.mockService.On("Register", mock.Anything, req).Return(nil, service.ErrDomainTaken)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/websites", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.RegisterWebsite(c)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
}

func (s *WebsiteHandlerTestSuite) TestListWebsites_Success() {
	// Arrange
	expected := []dto.WebsiteResponse{
		{ID: 2, UUID: "uuid-2", Name: "Beta", Domain: "beta.com"},
		{ID: 1, UUID: "uuid-1", Name: "Acme", Domain: "acme.com"},
	}

	s.mockService.On("List", mock.Anything).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/websites", nil)

	// Act
	s.handler.ListWebsites(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.WebsiteResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 2)
	s.Equal("uuid-2", response[0].UUID)
	s.mockService.AssertExpectations(s.T())
}

func (s *WebsiteHandlerTestSuite) TestDeleteWebsite_NotFound() {
	// Arrange
	s.mockService.On("Delete", mock.Anything, "missing").Return(service.ErrWebsiteNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/websites/missing", nil)
	c.Params = gin.Params{{Key: "uuid", Value: "missing"}}

	// Act
	s.handler.DeleteWebsite(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *WebsiteHandlerTestSuite) TestDeleteWebsite_Success() {
	// Arrange
	s.mockService.On("Delete", mock.Anything, "web-uuid").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/websites/web-uuid", nil)
	c.Params = gin.Params{{Key: "uuid", Value: "web-uuid"}}

	// Act
	s.handler.DeleteWebsite(c)
	c.Writer.WriteHeaderNow()

	// Assert
	s.Equal(http.StatusNoContent, w.Code)
	s.mockService.AssertExpectations(s.T())
}
