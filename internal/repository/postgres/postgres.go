package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/centralcontact/forms-api/internal/config"
	"github.com/centralcontact/forms-api/internal/repository"
)

type postgresRepository struct {
	writerDB    *gorm.DB
	readerDB    *gorm.DB
	websiteRepo repository.WebsiteRepository
	formRepo    repository.FormRepository
	messageRepo repository.MessageRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return &postgresRepository{
		writerDB:    dbConnections.Writer,
		readerDB:    dbConnections.Reader,
		websiteRepo: NewWebsiteRepository(dbConnections.Writer, dbConnections.Reader),
		formRepo:    NewFormRepository(dbConnections.Writer, dbConnections.Reader),
		messageRepo: NewMessageRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Website() repository.WebsiteRepository {
	return r.websiteRepo
}

func (r *postgresRepository) Form() repository.FormRepository {
	return r.formRepo
}

func (r *postgresRepository) Message() repository.MessageRepository {
	return r.messageRepo
}

// ignoreNotFound maps gorm's record-not-found to a nil error so Get* methods
// can report absence as (nil, nil).
func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
