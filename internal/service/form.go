package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/domain"
	"github.com/centralcontact/forms-api/internal/repository"
)

type FormService struct {
	repo   repository.Repository
	sqsSvc SQSService
}

func NewFormService(repo repository.Repository, sqsSvc SQSService) *FormService {
	return &FormService{
		repo:   repo,
		sqsSvc: sqsSvc,
	}
}

// Create registers a form under a website. Fields must be a JSON object
// mapping field name to declared type; it is stored as-is and never
// enforced against submissions.
func (s *FormService) Create(ctx context.Context, req dto.CreateFormRequest) (*dto.FormResponse, error) {
	if !isJSONObject(req.Fields) {
		return nil, ErrInvalidPayload
	}

	website, err := s.repo.Website().GetByID(ctx, req.WebsiteID)
	if err != nil {
		return nil, err
	}
	if website == nil {
		return nil, ErrWebsiteNotFound
	}

	form := &domain.Form{
		FormID:     uuid.New().String(),
		Title:      req.Title,
		FormSchema: req.Fields,
		WebsiteID:  website.ID,
	}

	created, err := s.repo.Form().Create(ctx, form)
	if err != nil {
		return nil, err
	}

	return dto.FromForm(created), nil
}

func (s *FormService) ListByWebsiteUUID(ctx context.Context, websiteUUID string) ([]dto.FormResponse, error) {
	forms, err := s.repo.Form().ListByWebsiteUUID(ctx, websiteUUID)
	if err != nil {
		return nil, err
	}
	return dto.FromForms(forms), nil
}

func (s *FormService) ListByWebsiteID(ctx context.Context, websiteID uint) ([]dto.FormResponse, error) {
	forms, err := s.repo.Form().ListByWebsiteID(ctx, websiteID)
	if err != nil {
		return nil, err
	}
	return dto.FromForms(forms), nil
}

func (s *FormService) Rename(ctx context.Context, id uint, title string) error {
	form, err := s.repo.Form().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if form == nil {
		return ErrFormNotFound
	}

	return s.repo.Form().UpdateTitle(ctx, id, title)
}

// Delete removes the form and its messages, then prunes the form's search
// documents. Index cleanup is best-effort; Postgres is the source of truth.
func (s *FormService) Delete(ctx context.Context, id uint) error {
	form, err := s.repo.Form().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if form == nil {
		return ErrFormNotFound
	}

	website, err := s.repo.Website().GetByID(ctx, form.WebsiteID)
	if err != nil {
		return err
	}

	if err := s.repo.Form().Delete(ctx, id); err != nil {
		return err
	}

	// Stale search documents are tolerable; the rows are gone.
	if website != nil {
		if err := s.repo.Search().DeleteByFormID(ctx, website.UUID, form.FormID); err != nil {
			fmt.Printf("failed to delete search documents for form %s: %v\n", form.FormID, err)
		}
	}

	return nil
}

// ScheduleArchive enqueues an archive-and-purge of the form's messages older
// than the given date. The archive worker exports them to S3 before the
// cleanup worker deletes the rows.
func (s *FormService) ScheduleArchive(ctx context.Context, id uint, before time.Time) error {
	form, err := s.repo.Form().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if form == nil {
		return ErrFormNotFound
	}

	website, err := s.repo.Website().GetByID(ctx, form.WebsiteID)
	if err != nil {
		return err
	}
	if website == nil {
		return ErrWebsiteNotFound
	}

	return s.sqsSvc.SendArchiveMessage(ctx, website.UUID, form.FormID, before)
}

// isJSONObject reports whether raw is a JSON object (not an array, scalar
// or null).
func isJSONObject(raw json.RawMessage) bool {
	var v map[string]json.RawMessage
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	// Unmarshal accepts "null" and leaves the map nil.
	return v != nil
}
