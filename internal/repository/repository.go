package repository

import (
	"context"
	"time"

	"github.com/centralcontact/forms-api/internal/domain"
)

// Get* methods return (nil, nil) when no row matches, so callers can
// distinguish "absent" from a store failure.

//go:generate mockery --name WebsiteRepository --output ../mocks
type WebsiteRepository interface {
	Create(ctx context.Context, website *domain.Website) (*domain.Website, error)
	GetByID(ctx context.Context, id uint) (*domain.Website, error)
	GetByUUID(ctx context.Context, uuid string) (*domain.Website, error)
	// GetByUUIDAndSecret resolves a website only when the uuid and the
	// secret key match the same record.
	GetByUUIDAndSecret(ctx context.Context, uuid, secretKey string) (*domain.Website, error)
	GetByDomain(ctx context.Context, domain string) (*domain.Website, error)
	UpdateName(ctx context.Context, uuid, name string) error
	// Delete removes the website together with its forms and their
	// messages, children first, in a single transaction.
	Delete(ctx context.Context, uuid string) error
	List(ctx context.Context) ([]domain.Website, error)
}

//go:generate mockery --name FormRepository --output ../mocks
type FormRepository interface {
	Create(ctx context.Context, form *domain.Form) (*domain.Form, error)
	GetByID(ctx context.Context, id uint) (*domain.Form, error)
	GetByFormID(ctx context.Context, formID string) (*domain.Form, error)
	// GetByWebsiteAndFormID scopes the public form identifier to the
	// owning website's internal id.
	GetByWebsiteAndFormID(ctx context.Context, websiteID uint, formID string) (*domain.Form, error)
	ListByWebsiteID(ctx context.Context, websiteID uint) ([]domain.Form, error)
	ListByWebsiteUUID(ctx context.Context, uuid string) ([]domain.Form, error)
	UpdateTitle(ctx context.Context, id uint, title string) error
	// Delete removes the form and its messages, messages first, in a
	// single transaction.
	Delete(ctx context.Context, id uint) error
}

//go:generate mockery --name MessageRepository --output ../mocks
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	ListByFormID(ctx context.Context, formID uint) ([]domain.Message, error)
	ListByFormIDBefore(ctx context.Context, formID uint, before time.Time) ([]domain.Message, error)
	ListAll(ctx context.Context) ([]domain.Message, error)
	DeleteByFormIDBefore(ctx context.Context, formID uint, before time.Time) (int64, error)
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	Index(ctx context.Context, doc *domain.MessageDocument) error
	BulkIndex(ctx context.Context, docs []domain.MessageDocument) error
	Search(ctx context.Context, filter *domain.MessageSearchFilter) ([]domain.MessageDocument, error)
	CreateIndex(ctx context.Context, websiteUUID string, t time.Time) error
	DeleteIndex(ctx context.Context, websiteUUID string) error
	DeleteByFormID(ctx context.Context, websiteUUID, formID string) error
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Website() WebsiteRepository
	Form() FormRepository
	Message() MessageRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() SearchRepository
}
