package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/centralcontact/forms-api/internal/config"
	"github.com/centralcontact/forms-api/internal/repository"
	"github.com/centralcontact/forms-api/internal/repository/opensearch"
	"github.com/centralcontact/forms-api/internal/repository/postgres"
)

type compositeRepository struct {
	postgresRepo repository.PostgresRepository
	searchRepo   repository.SearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		postgresRepo: postgres.NewPostgresRepository(dbConnections),
		searchRepo:   opensearch.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) Website() repository.WebsiteRepository {
	return r.postgresRepo.Website()
}

func (r *compositeRepository) Form() repository.FormRepository {
	return r.postgresRepo.Form()
}

func (r *compositeRepository) Message() repository.MessageRepository {
	return r.postgresRepo.Message()
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.searchRepo
}
