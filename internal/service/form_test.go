package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/domain"
	"github.com/centralcontact/forms-api/internal/mocks"
)

type FormServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockWebsite *mocks.WebsiteRepository
	mockForm    *mocks.FormRepository
	mockSearch  *mocks.SearchRepository
	mockSQS     *mocks.SQSService
	service     *FormService
}

func (s *FormServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockWebsite = new(mocks.WebsiteRepository)
	s.mockForm = new(mocks.FormRepository)
	s.mockSearch = new(mocks.SearchRepository)
	s.mockSQS = new(mocks.SQSService)

	s.mockRepo.On("Website").Return(s.mockWebsite)
	s.mockRepo.On("Form").Return(s.mockForm)
	s.mockRepo.On("Search").Return(s.mockSearch)

	s.service = NewFormService(s.mockRepo, s.mockSQS)
}

func TestFormService(t *testing.T) {
	suite.Run(t, new(FormServiceTestSuite))
}

func (s *FormServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateFormRequest{
		WebsiteID: 1,
		Title:     "Contact",
		Fields:    json.RawMessage(`{"name":"text","email":"email"}`),
	}

	website := &domain.Website{ID: 1, UUID: "web-uuid"}
	stored := &domain.Form{
		ID:         7,
		FormID:     "form-uuid",
		Title:      "Contact",
		FormSchema: req.Fields,
		WebsiteID:  1,
	}

	var created *domain.Form
	s.mockWebsite.On("GetByID", ctx, uint(1)).Return(website, nil)
	s.mockForm.On("Create", ctx, mock.AnythingOfType("*domain.Form")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.Form)
	}).Return(stored, nil)

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("form-uuid", resp.FormID)
	s.Equal("Contact", resp.Title)
	s.NotEmpty(created.FormID)
	s.Equal(uint(1), created.WebsiteID)
	s.mockForm.AssertExpectations(s.T())
}

func (s *FormServiceTestSuite) TestCreate_FieldsMustBeObject() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateFormRequest{
		WebsiteID: 1,
		Title:     "Contact",
		Fields:    json.RawMessage(`["name","email"]`),
	}

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, ErrInvalidPayload)
	s.mockWebsite.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *FormServiceTestSuite) TestCreate_NullFieldsRejected() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateFormRequest{
		WebsiteID: 1,
		Title:     "Contact",
		Fields:    json.RawMessage(`null`),
	}

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, ErrInvalidPayload)
	s.mockWebsite.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *FormServiceTestSuite) TestCreate_WebsiteNotFound() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateFormRequest{
		WebsiteID: 42,
		Title:     "Contact",
		Fields:    json.RawMessage(`{"name":"text"}`),
	}

	s.mockWebsite.On("GetByID", ctx, uint(42)).Return(nil, nil)

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, ErrWebsiteNotFound)
}

func (s *FormServiceTestSuite) TestRename_NotFound() {
	// Arrange
	ctx := context.Background()

	s.mockForm.On("GetByID", ctx, uint(9)).Return(nil, nil)

	// Act
	err := s.service.Rename(ctx, 9, "New title")

	// Assert
	s.ErrorIs(err, ErrFormNotFound)
	s.mockForm.AssertNotCalled(s.T(), "UpdateTitle", mock.Anything, mock.Anything, mock.Anything)
}

func (s *FormServiceTestSuite) TestDelete_Success() {
	// Arrange
	ctx := context.Background()
	form := &domain.Form{ID: 7, FormID: "form-uuid", WebsiteID: 1}
	website := &domain.Website{ID: 1, UUID: "web-uuid"}

	s.mockForm.On("GetByID", ctx, uint(7)).Return(form, nil)
	s.mockWebsite.On("GetByID", ctx, uint(1)).Return(website, nil)
	s.mockForm.On("Delete", ctx, uint(7)).Return(nil)
	s.mockSearch.On("DeleteByFormID", ctx, "web-uuid", "form-uuid").Return(nil)

	// Act
	err := s.service.Delete(ctx, 7)

	// Assert
	s.NoError(err)
	s.mockForm.AssertExpectations(s.T())
	s.mockSearch.AssertExpectations(s.T())
}

func (s *FormServiceTestSuite) TestDelete_SearchCleanupFailureIsTolerated() {
	// Arrange
	ctx := context.Background()
	form := &domain.Form{ID: 7, FormID: "form-uuid", WebsiteID: 1}
	website := &domain.Website{ID: 1, UUID: "web-uuid"}

	s.mockForm.On("GetByID", ctx, uint(7)).Return(form, nil)
	s.mockWebsite.On("GetByID", ctx, uint(1)).Return(website, nil)
	s.mockForm.On("Delete", ctx, uint(7)).Return(nil)
	s.mockSearch.On("DeleteByFormID", ctx, "web-uuid", "form-uuid").Return(errors.New("search unavailable"))

	// Act
	err := s.service.Delete(ctx, 7)

	// Assert
	s.NoError(err)
	s.mockForm.AssertExpectations(s.T())
}

func (s *FormServiceTestSuite) TestScheduleArchive_Success() {
	// Arrange
	ctx := context.Background()
	before := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	form := &domain.Form{ID: 7, FormID: "form-uuid", WebsiteID: 1}
	website := &domain.Website{ID: 1, UUID: "web-uuid"}

	s.mockForm.On("GetByID", ctx, uint(7)).Return(form, nil)
	s.mockWebsite.On("GetByID", ctx, uint(1)).Return(website, nil)
	s.mockSQS.On("SendArchiveMessage", ctx, "web-uuid", "form-uuid", before).Return(nil)

	// Act
	err := s.service.ScheduleArchive(ctx, 7, before)

	// Assert
	s.NoError(err)
	s.mockSQS.AssertExpectations(s.T())
}

func (s *FormServiceTestSuite) TestScheduleArchive_FormNotFound() {
	// Arrange
	ctx := context.Background()

	s.mockForm.On("GetByID", ctx, uint(7)).Return(nil, nil)

	// Act
	err := s.service.ScheduleArchive(ctx, 7, time.Now())

	// Assert
	s.ErrorIs(err, ErrFormNotFound)
	s.mockSQS.AssertNotCalled(s.T(), "SendArchiveMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
