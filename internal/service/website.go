package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/domain"
	"github.com/centralcontact/forms-api/internal/repository"
)

const (
	appKeyLength    = 16
	secretKeyLength = 32
)

type WebsiteService struct {
	repo repository.Repository
}

func NewWebsiteService(repo repository.Repository) *WebsiteService {
	return &WebsiteService{repo: repo}
}

// generateKey returns a random URL-safe token of n hex characters.
func generateKey(n int) string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:n]
}

// Register creates a website and issues its credentials. The domain is the
// submission allow-list, so it must not already belong to another website.
func (s *WebsiteService) Register(ctx context.Context, req dto.RegisterWebsiteRequest) (*dto.WebsiteResponse, error) {
	existing, err := s.repo.Website().GetByDomain(ctx, req.Domain)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDomainTaken
	}

	website := &domain.Website{
		UUID:      uuid.New().String(),
		Name:      req.Name,
		Domain:    req.Domain,
		AppKey:    generateKey(appKeyLength),
		SecretKey: generateKey(secretKeyLength),
	}

	created, err := s.repo.Website().Create(ctx, website)
	if err != nil {
		return nil, err
	}

	return dto.FromWebsite(created), nil
}

func (s *WebsiteService) List(ctx context.Context) ([]dto.WebsiteResponse, error) {
	websites, err := s.repo.Website().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromWebsites(websites), nil
}

func (s *WebsiteService) Rename(ctx context.Context, websiteUUID, name string) (*dto.WebsiteResponse, error) {
	website, err := s.repo.Website().GetByUUID(ctx, websiteUUID)
	if err != nil {
		return nil, err
	}
	if website == nil {
		return nil, ErrWebsiteNotFound
	}

	if err := s.repo.Website().UpdateName(ctx, websiteUUID, name); err != nil {
		return nil, err
	}

	website.Name = name
	return dto.FromWebsite(website), nil
}

// Delete removes the website and everything under it, then drops its search
// indices. Index cleanup is best-effort; Postgres is the source of truth.
func (s *WebsiteService) Delete(ctx context.Context, websiteUUID string) error {
	website, err := s.repo.Website().GetByUUID(ctx, websiteUUID)
	if err != nil {
		return err
	}
	if website == nil {
		return ErrWebsiteNotFound
	}

	if err := s.repo.Website().Delete(ctx, websiteUUID); err != nil {
		return err
	}

	// Stale search documents are tolerable; the rows are gone.
	if err := s.repo.Search().DeleteIndex(ctx, websiteUUID); err != nil {
		fmt.Printf("failed to delete search indices for website %s: %v\n", websiteUUID, err)
	}

	return nil
}
