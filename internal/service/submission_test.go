package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/domain"
	"github.com/centralcontact/forms-api/internal/mocks"
)

type SubmissionServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockWebsite *mocks.WebsiteRepository
	mockForm    *mocks.FormRepository
	mockMessage *mocks.MessageRepository
	mockSQS     *mocks.SQSService
	service     *SubmissionService
}

func (s *SubmissionServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockWebsite = new(mocks.WebsiteRepository)
	s.mockForm = new(mocks.FormRepository)
	s.mockMessage = new(mocks.MessageRepository)
	s.mockSQS = new(mocks.SQSService)

	s.mockRepo.On("Website").Return(s.mockWebsite)
	s.mockRepo.On("Form").Return(s.mockForm)
	s.mockRepo.On("Message").Return(s.mockMessage)

	s.service = NewSubmissionService(s.mockRepo, s.mockSQS)
}

func TestSubmissionService(t *testing.T) {
	suite.Run(t, new(SubmissionServiceTestSuite))
}

func (s *SubmissionServiceTestSuite) website() *domain.Website {
	return &domain.Website{
		ID:        1,
		UUID:      "web-uuid",
		Name:      "Acme",
		Domain:    "acme.com",
		SecretKey: "secret",
	}
}

func (s *SubmissionServiceTestSuite) form() *domain.Form {
	return &domain.Form{
		ID:        7,
		FormID:    "form-uuid",
		Title:     "Contact",
		WebsiteID: 1,
	}
}

func (s *SubmissionServiceTestSuite) input() SubmitInput {
	return SubmitInput{
		WebsiteUUID: "web-uuid",
		FormID:      "form-uuid",
		SecretKey:   "secret",
		Origin:      "https://acme.com",
		Payload:     []byte(`{"name":"A","email":"a@x.com"}`),
	}
}

func (s *SubmissionServiceTestSuite) TestSubmit_Success() {
	// Arrange
	ctx := context.Background()
	in := s.input()

	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "web-uuid", "secret").Return(s.website(), nil)
	s.mockForm.On("GetByWebsiteAndFormID", ctx, uint(1), "form-uuid").Return(s.form(), nil)
	s.mockMessage.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.AnythingOfType("*domain.MessageDocument")).Return(nil)

	// Act
	resp, err := s.service.Submit(ctx, in)

	// Assert
	s.NoError(err)
	s.JSONEq(string(in.Payload), string(resp.FormData))
	s.Equal(uint(7), resp.FormID)
	s.mockMessage.AssertExpectations(s.T())
	s.mockSQS.AssertExpectations(s.T())
}

func (s *SubmissionServiceTestSuite) TestSubmit_BroadcastsToLiveFeed() {
	// Arrange
	ctx := context.Background()
	in := s.input()
	broadcaster := new(mocks.LiveFeedBroadcaster)
	s.service.SetLiveFeedBroadcaster(broadcaster)

	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "web-uuid", "secret").Return(s.website(), nil)
	s.mockForm.On("GetByWebsiteAndFormID", ctx, uint(1), "form-uuid").Return(s.form(), nil)
	s.mockMessage.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.AnythingOfType("*domain.MessageDocument")).Return(nil)
	broadcaster.On("BroadcastMessage", mock.MatchedBy(func(event *dto.MessageEvent) bool {
		return event.WebsiteUUID == "web-uuid" && event.FormID == "form-uuid"
	})).Return()

	// Act
	_, err := s.service.Submit(ctx, in)

	// Assert
	s.NoError(err)
	broadcaster.AssertExpectations(s.T())
}

func (s *SubmissionServiceTestSuite) TestSubmit_InvalidCredentials() {
	// Arrange
	ctx := context.Background()
	in := s.input()
	in.SecretKey = "wrong"

	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "web-uuid", "wrong").Return(nil, nil)

	// Act
	resp, err := s.service.Submit(ctx, in)

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, ErrInvalidCredentials)
	s.mockForm.AssertNotCalled(s.T(), "GetByWebsiteAndFormID", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestSubmit_SecretKeyOfOtherWebsite() {
	// A secret key valid for one website must not resolve another
	// website's uuid. The combined lookup returns no row in that case.
	ctx := context.Background()
	in := s.input()
	in.WebsiteUUID = "other-uuid"

	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "other-uuid", "secret").Return(nil, nil)

	resp, err := s.service.Submit(ctx, in)

	s.Nil(resp)
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *SubmissionServiceTestSuite) TestSubmit_OriginMismatch() {
	// Arrange
	ctx := context.Background()
	in := s.input()
	in.Origin = "https://evil.com"

	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "web-uuid", "secret").Return(s.website(), nil)

	// Act
	resp, err := s.service.Submit(ctx, in)

	// Assert
	s.Nil(resp)
	var mismatch *OriginMismatchError
	s.ErrorAs(err, &mismatch)
	s.Equal("evil.com", mismatch.Origin)
	s.Equal("acme.com", mismatch.Domain)
	s.Contains(err.Error(), "evil.com")
	s.Contains(err.Error(), "acme.com")
	s.mockMessage.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestSubmit_OriginMatchesSchemelessDomain() {
	// Stored domains may omit the scheme or carry a port; only the
	// hostname is compared.
	ctx := context.Background()
	in := s.input()

	website := s.website()
	website.Domain = "acme.com:3001"

	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "web-uuid", "secret").Return(website, nil)
	s.mockForm.On("GetByWebsiteAndFormID", ctx, uint(1), "form-uuid").Return(s.form(), nil)
	s.mockMessage.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.AnythingOfType("*domain.MessageDocument")).Return(nil)

	_, err := s.service.Submit(ctx, in)

	s.NoError(err)
}

func (s *SubmissionServiceTestSuite) TestSubmit_FormNotFound() {
	// Arrange
	ctx := context.Background()
	in := s.input()

	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "web-uuid", "secret").Return(s.website(), nil)
	s.mockForm.On("GetByWebsiteAndFormID", ctx, uint(1), "form-uuid").Return(nil, nil)

	// Act
	resp, err := s.service.Submit(ctx, in)

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, ErrFormNotFound)
}

func (s *SubmissionServiceTestSuite) TestSubmit_FormOfOtherWebsiteNotVisible() {
	// The form lookup is scoped by the resolved website's id, so a formId
	// belonging to another website behaves exactly like an unknown one.
	ctx := context.Background()
	in := s.input()
	in.FormID = "foreign-form-uuid"

	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "web-uuid", "secret").Return(s.website(), nil)
	s.mockForm.On("GetByWebsiteAndFormID", ctx, uint(1), "foreign-form-uuid").Return(nil, nil)

	resp, err := s.service.Submit(ctx, in)

	s.Nil(resp)
	s.ErrorIs(err, ErrFormNotFound)
}

func (s *SubmissionServiceTestSuite) TestSubmit_InvalidJSONPayload() {
	// Arrange
	ctx := context.Background()
	in := s.input()
	in.Payload = []byte(`{"name":`)

	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "web-uuid", "secret").Return(s.website(), nil)
	s.mockForm.On("GetByWebsiteAndFormID", ctx, uint(1), "form-uuid").Return(s.form(), nil)

	// Act
	resp, err := s.service.Submit(ctx, in)

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, ErrInvalidPayload)
	s.mockMessage.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestSubmit_InvalidJSONWithBadCredentialsFailsOnCredentials() {
	// Credential checks run before the payload parse.
	ctx := context.Background()
	in := s.input()
	in.SecretKey = "wrong"
	in.Payload = []byte(`not json`)

	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "web-uuid", "wrong").Return(nil, nil)

	_, err := s.service.Submit(ctx, in)

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *SubmissionServiceTestSuite) TestSubmit_PayloadStoredVerbatim() {
	// Arrange
	ctx := context.Background()
	in := s.input()
	in.Payload = []byte(`{"nested":{"a":[1,2,3]},"unknown_field":"kept"}`)

	var stored *domain.Message
	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "web-uuid", "secret").Return(s.website(), nil)
	s.mockForm.On("GetByWebsiteAndFormID", ctx, uint(1), "form-uuid").Return(s.form(), nil)
	s.mockMessage.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.Message)
	}).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.AnythingOfType("*domain.MessageDocument")).Return(nil)

	// Act
	_, err := s.service.Submit(ctx, in)

	// Assert
	s.NoError(err)
	s.Equal(json.RawMessage(in.Payload), stored.FormData)
	s.Equal(uint(7), stored.FormID)
}

func (s *SubmissionServiceTestSuite) TestSubmit_IndexQueueFailureDoesNotFailSubmission() {
	// Arrange
	ctx := context.Background()
	in := s.input()

	s.mockWebsite.On("GetByUUIDAndSecret", ctx, "web-uuid", "secret").Return(s.website(), nil)
	s.mockForm.On("GetByWebsiteAndFormID", ctx, uint(1), "form-uuid").Return(s.form(), nil)
	s.mockMessage.On("Create", ctx, mock.AnythingOfType("*domain.Message")).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.AnythingOfType("*domain.MessageDocument")).Return(errors.New("queue unavailable"))

	// Act
	resp, err := s.service.Submit(ctx, in)

	// Assert
	s.NoError(err)
	s.NotNil(resp)
}
