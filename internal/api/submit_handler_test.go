package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/service"
)

type SubmitHandlerTestSuite struct {
	suite.Suite
	mockService *MockSubmissionService
	handler     *SubmitHandler
}

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Submit(ctx context.Context, in service.SubmitInput) (*dto.MessageResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessageResponse), args.Error(1)
}

func (s *SubmitHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockSubmissionService)
	s.handler = NewSubmitHandler(s.mockService)
}

func TestSubmitHandler(t *testing.T) {
	suite.Run(t, new(SubmitHandlerTestSuite))
}

func (s *SubmitHandlerTestSuite) request(headers map[string]string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/web-uuid/form-uuid", bytes.NewBufferString(`{"name":"A"}`))
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	c.Params = gin.Params{
		{Key: "uuid", Value: "web-uuid"},
		{Key: "formId", Value: "form-uuid"},
	}
	return w, c
}

func (s *SubmitHandlerTestSuite) TestSubmit_MissingAuthorization() {
	// Arrange
	w, c := s.request(map[string]string{"Origin": "https://acme.com"})

	// Act
	s.handler.Submit(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Unauthorized", resp.Message)
	s.mockService.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
}

func (s *SubmitHandlerTestSuite) TestSubmit_NonBearerAuthorization() {
	// Arrange
	w, c := s.request(map[string]string{
		"Authorization": "Basic c2VjcmV0",
		"Origin":        "https://acme.com",
	})

	// Act
	s.handler.Submit(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
}

func (s *SubmitHandlerTestSuite) TestSubmit_MissingOrigin() {
	// Arrange
	w, c := s.request(map[string]string{"Authorization": "Bearer secret"})

	// Act
	s.handler.Submit(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Missing Origin header", resp.Message)
	s.mockService.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
}

func (s *SubmitHandlerTestSuite) TestSubmit_Success() {
	// Arrange
	w, c := s.request(map[string]string{
		"Authorization": "Bearer secret",
		"Origin":        "https://acme.com",
	})

	expected := &dto.MessageResponse{
		ID:       1,
		FormData: json.RawMessage(`{"name":"A"}`),
		FormID:   7,
	}

	s.mockService.On("Submit", mock.Anything, mock.MatchedBy(func(in service.SubmitInput) bool {
		return in.WebsiteUUID == "web-uuid" &&
			in.FormID == "form-uuid" &&
			in.SecretKey == "secret" &&
			in.Origin == "https://acme.com" &&
			string(in.Payload) == `{"name":"A"}`
	})).Return(expected, nil)

	// Act
	s.handler.Submit(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	s.Equal("https://acme.com", w.Header().Get("Access-Control-Allow-Origin"))
	var resp dto.MessageResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(expected.ID, resp.ID)
	s.JSONEq(string(expected.FormData), string(resp.FormData))
	s.mockService.AssertExpectations(s.T())
}

func (s *SubmitHandlerTestSuite) TestSubmit_InvalidCredentials() {
	// Arrange
	w, c := s.request(map[string]string{
		"Authorization": "Bearer wrong",
		"Origin":        "https://acme.com",
	})

	s.mockService.On("Submit", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidCredentials)

	// Act
	s.handler.Submit(c)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Invalid secret key or UUID", resp.Message)
}

func (s *SubmitHandlerTestSuite) TestSubmit_OriginMismatch() {
	// Arrange
	w, c := s.request(map[string]string{
		"Authorization": "Bearer secret",
		"Origin":        "https://evil.com",
	})

	s.mockService.On("Submit", mock.Anything, mock.Anything).Return(nil, &service.OriginMismatchError{
		Origin: "evil.com",
		Domain: "acme.com",
	})

	// Act
	s.handler.Submit(c)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Contains(resp.Message, "evil.com")
	s.Contains(resp.Message, "acme.com")
	s.Empty(w.Header().Get("Access-Control-Allow-Origin"))
}

func (s *SubmitHandlerTestSuite) TestSubmit_FormNotFound() {
	// Arrange
	w, c := s.request(map[string]string{
		"Authorization": "Bearer secret",
		"Origin":        "https://acme.com",
	})

	s.mockService.On("Submit", mock.Anything, mock.Anything).Return(nil, service.ErrFormNotFound)

	// Act
	s.handler.Submit(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Form not found", resp.Message)
}

func (s *SubmitHandlerTestSuite) TestSubmit_InvalidPayload() {
	// Arrange
	w, c := s.request(map[string]string{
		"Authorization": "Bearer secret",
		"Origin":        "https://acme.com",
	})

	s.mockService.On("Submit", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidPayload)

	// Act
	s.handler.Submit(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Invalid JSON body", resp.Message)
}

func (s *SubmitHandlerTestSuite) TestSubmit_UnexpectedErrorIsOpaque() {
	// Arrange
	w, c := s.request(map[string]string{
		"Authorization": "Bearer secret",
		"Origin":        "https://acme.com",
	})

	s.mockService.On("Submit", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

	// Act
	s.handler.Submit(c)

	// Assert
	s.Equal(http.StatusInternalServerError, w.Code)
	var resp dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Internal Server Error", resp.Message)
	s.NotContains(w.Body.String(), "connection refused")
}

func (s *SubmitHandlerTestSuite) TestPreflight() {
	// Arrange
	w, c := s.request(nil)
	c.Request, _ = http.NewRequest(http.MethodOptions, "/api/web-uuid/form-uuid", nil)

	// Act
	s.handler.Preflight(c)
	c.Writer.WriteHeaderNow()

	// Assert
	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	s.Equal("POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	s.Equal("Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
}
