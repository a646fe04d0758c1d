package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/domain"
	"github.com/centralcontact/forms-api/internal/repository"
	"github.com/centralcontact/forms-api/internal/utils"
)

//go:generate mockery --name LiveFeedBroadcaster --output ../mocks
type LiveFeedBroadcaster interface {
	BroadcastMessage(event *dto.MessageEvent)
}

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendIndexMessage(ctx context.Context, doc *domain.MessageDocument) error
	SendArchiveMessage(ctx context.Context, websiteUUID, formID string, before time.Time) error
	SendCleanupMessage(ctx context.Context, websiteUUID, formID string, before time.Time) error
}

// SubmitInput carries one public submission attempt: path identifiers, the
// bearer token, the Origin header value and the unparsed request body.
type SubmitInput struct {
	WebsiteUUID string
	FormID      string
	SecretKey   string
	Origin      string
	Payload     []byte
}

// SubmissionService is the ingestion pipeline: it decides whether an
// anonymous cross-origin POST may persist a message against a website's
// form. Checks run in strict order and short-circuit on first failure.
type SubmissionService struct {
	repo        repository.Repository
	sqsSvc      SQSService
	broadcaster LiveFeedBroadcaster
}

func NewSubmissionService(repo repository.Repository, sqsSvc SQSService) *SubmissionService {
	return &SubmissionService{
		repo:   repo,
		sqsSvc: sqsSvc,
	}
}

// SetLiveFeedBroadcaster wires the websocket live feed. Optional; nil means
// no broadcasting.
func (s *SubmissionService) SetLiveFeedBroadcaster(broadcaster LiveFeedBroadcaster) {
	s.broadcaster = broadcaster
}

// Submit runs the pipeline:
//
//  1. website resolution: uuid and secret key must match the same record,
//     so a valid key cannot be replayed against another website's uuid;
//  2. origin binding: the Origin hostname must equal the normalized stored
//     domain hostname, which limits what a stolen secret key can do;
//  3. form resolution scoped to the resolved website;
//  4. payload parse (schema is advisory, the body is stored verbatim);
//  5. persist.
//
// Header presence checks (Authorization, Origin) happen at the transport
// boundary before this is called.
func (s *SubmissionService) Submit(ctx context.Context, in SubmitInput) (*dto.MessageResponse, error) {
	website, err := s.repo.Website().GetByUUIDAndSecret(ctx, in.WebsiteUUID, in.SecretKey)
	if err != nil {
		return nil, err
	}
	if website == nil {
		return nil, ErrInvalidCredentials
	}

	originHost := utils.OriginHostname(in.Origin)
	domainHost := utils.NormalizeHostname(website.Domain)
	if originHost != domainHost {
		return nil, &OriginMismatchError{Origin: originHost, Domain: domainHost}
	}

	form, err := s.repo.Form().GetByWebsiteAndFormID(ctx, website.ID, in.FormID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrFormNotFound
	}

	if !json.Valid(in.Payload) {
		return nil, ErrInvalidPayload
	}

	message := &domain.Message{
		FormData: json.RawMessage(in.Payload),
		FormID:   form.ID,
	}
	if err := s.repo.Message().Create(ctx, message); err != nil {
		return nil, err
	}

	resp := dto.FromMessage(message)

	// Asynchronous search indexing; a queue failure never fails the
	// submission.
	doc := &domain.MessageDocument{
		ID:          message.ID,
		WebsiteUUID: website.UUID,
		FormID:      form.FormID,
		FormData:    message.FormData,
		CreatedAt:   message.CreatedAt,
	}
	if err := s.sqsSvc.SendIndexMessage(ctx, doc); err != nil {
		fmt.Printf("failed to send index message to SQS: %v\n", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastMessage(&dto.MessageEvent{
			WebsiteUUID: website.UUID,
			FormID:      form.FormID,
			Message:     *resp,
		})
	}

	return resp, nil
}
