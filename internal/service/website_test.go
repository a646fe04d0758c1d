package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/domain"
	"github.com/centralcontact/forms-api/internal/mocks"
)

type WebsiteServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockWebsite *mocks.WebsiteRepository
	mockSearch  *mocks.SearchRepository
	service     *WebsiteService
}

func (s *WebsiteServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockWebsite = new(mocks.WebsiteRepository)
	s.mockSearch = new(mocks.SearchRepository)

	s.mockRepo.On("Website").Return(s.mockWebsite)
	s.mockRepo.On("Search").Return(s.mockSearch)

	s.service = NewWebsiteService(s.mockRepo)
}

func TestWebsiteService(t *testing.T) {
	suite.Run(t, new(WebsiteServiceTestSuite))
}

func (s *WebsiteServiceTestSuite) TestRegister_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.RegisterWebsiteRequest{
		Name:   "Acme",
		Domain: "acme.com",
	}

	stored := &domain.Website{
		ID:     1,
		UUID:   "550e8400-e29b-41d4-a716-446655440000",
		Name:   "Acme",
		Domain: "acme.com",
	}

	var created *domain.Website
	s.mockWebsite.On("GetByDomain", ctx, "acme.com").Return(nil, nil)
	s.mockWebsite.On("Create", ctx, mock.AnythingOfType("*domain.Website")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.Website)
	}).Return(stored, nil)

	// Act
	resp, err := s.service.Register(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("Acme", resp.Name)
	s.Equal("acme.com", resp.Domain)
	s.NotEmpty(resp.UUID)
	s.Len(created.AppKey, 16)
	s.Len(created.SecretKey, 32)
	s.NotEqual(created.AppKey, created.SecretKey)
	s.mockWebsite.AssertExpectations(s.T())
}

func (s *WebsiteServiceTestSuite) TestRegister_CredentialsAreUniquePerCall() {
	// Arrange
	ctx := context.Background()

	var issued []*domain.Website
	s.mockWebsite.On("GetByDomain", ctx, mock.Anything).Return(nil, nil)
	s.mockWebsite.On("Create", ctx, mock.AnythingOfType("*domain.Website")).Run(func(args mock.Arguments) {
		issued = append(issued, args.Get(1).(*domain.Website))
	}).Return(&domain.Website{ID: 1}, nil)

	// Act
	_, err1 := s.service.Register(ctx, dto.RegisterWebsiteRequest{Name: "A", Domain: "a.com"})
	_, err2 := s.service.Register(ctx, dto.RegisterWebsiteRequest{Name: "B", Domain: "b.com"})

	// Assert
	s.NoError(err1)
	s.NoError(err2)
	s.Len(issued, 2)
	s.NotEqual(issued[0].UUID, issued[1].UUID)
	s.NotEqual(issued[0].SecretKey, issued[1].SecretKey)
}

func (s *WebsiteServiceTestSuite) TestRegister_DomainTaken() {
	// Arrange
	ctx := context.Background()
	existing := &domain.Website{ID: 1, Domain: "acme.com"}

	s.mockWebsite.On("GetByDomain", ctx, "acme.com").Return(existing, nil)

	// Act
	resp, err := s.service.Register(ctx, dto.RegisterWebsiteRequest{Name: "Other", Domain: "acme.com"})

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, ErrDomainTaken)
	s.mockWebsite.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *WebsiteServiceTestSuite) TestRename_Success() {
	// Arrange
	ctx := context.Background()
	website := &domain.Website{ID: 1, UUID: "web-uuid", Name: "Old"}

	s.mockWebsite.On("GetByUUID", ctx, "web-uuid").Return(website, nil)
	s.mockWebsite.On("UpdateName", ctx, "web-uuid", "New").Return(nil)

	// Act
	resp, err := s.service.Rename(ctx, "web-uuid", "New")

	// Assert
	s.NoError(err)
	s.Equal("New", resp.Name)
	s.mockWebsite.AssertExpectations(s.T())
}

func (s *WebsiteServiceTestSuite) TestRename_NotFound() {
	// Arrange
	ctx := context.Background()

	s.mockWebsite.On("GetByUUID", ctx, "missing").Return(nil, nil)

	// Act
	resp, err := s.service.Rename(ctx, "missing", "New")

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, ErrWebsiteNotFound)
}

func (s *WebsiteServiceTestSuite) TestDelete_Success() {
	// Arrange
	ctx := context.Background()
	website := &domain.Website{ID: 1, UUID: "web-uuid"}

	s.mockWebsite.On("GetByUUID", ctx, "web-uuid").Return(website, nil)
	s.mockWebsite.On("Delete", ctx, "web-uuid").Return(nil)
	s.mockSearch.On("DeleteIndex", ctx, "web-uuid").Return(nil)

	// Act
	err := s.service.Delete(ctx, "web-uuid")

	// Assert
	s.NoError(err)
	s.mockWebsite.AssertExpectations(s.T())
	s.mockSearch.AssertExpectations(s.T())
}

func (s *WebsiteServiceTestSuite) TestDelete_SearchIndexFailureIsTolerated() {
	// Arrange
	ctx := context.Background()
	website := &domain.Website{ID: 1, UUID: "web-uuid"}

	s.mockWebsite.On("GetByUUID", ctx, "web-uuid").Return(website, nil)
	s.mockWebsite.On("Delete", ctx, "web-uuid").Return(nil)
	s.mockSearch.On("DeleteIndex", ctx, "web-uuid").Return(errors.New("opensearch down"))

	// Act
	err := s.service.Delete(ctx, "web-uuid")

	// Assert
	s.NoError(err)
}

func (s *WebsiteServiceTestSuite) TestDelete_NotFound() {
	// Arrange
	ctx := context.Background()

	s.mockWebsite.On("GetByUUID", ctx, "missing").Return(nil, nil)

	// Act
	err := s.service.Delete(ctx, "missing")

	// Assert
	s.ErrorIs(err, ErrWebsiteNotFound)
	s.mockWebsite.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}
