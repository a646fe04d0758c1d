package service

import (
	"context"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/domain"
	"github.com/centralcontact/forms-api/internal/repository"
)

type MessageService struct {
	repo repository.Repository
}

func NewMessageService(repo repository.Repository) *MessageService {
	return &MessageService{repo: repo}
}

// ListByFormID resolves the form by its public identifier alone and
// returns its messages newest first. The owning website is reachable
// only through the form's stored association.
func (s *MessageService) ListByFormID(ctx context.Context, formID string) ([]dto.MessageResponse, error) {
	form, err := s.repo.Form().GetByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, ErrFormNotFound
	}

	messages, err := s.repo.Message().ListByFormID(ctx, form.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromMessages(messages), nil
}

// ListAll returns every message with its form and website joined, newest
// first.
func (s *MessageService) ListAll(ctx context.Context) ([]dto.MessageDetailResponse, error) {
	messages, err := s.repo.Message().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromMessageDetails(messages), nil
}

// Search queries the message index for one website's submissions.
func (s *MessageService) Search(ctx context.Context, filter *domain.MessageSearchFilter) ([]dto.SearchMessageResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	docs, err := s.repo.Search().Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromMessageDocuments(docs), nil
}
