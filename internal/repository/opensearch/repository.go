package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/centralcontact/forms-api/internal/config"
	"github.com/centralcontact/forms-api/internal/domain"
)

// Repository mirrors submitted messages into OpenSearch so the dashboard can
// search payloads. Postgres stays the source of truth; documents here are
// written asynchronously by the index worker.
type Repository interface {
	Index(ctx context.Context, doc *domain.MessageDocument) error
	BulkIndex(ctx context.Context, docs []domain.MessageDocument) error
	Search(ctx context.Context, filter *domain.MessageSearchFilter) ([]domain.MessageDocument, error)
	CreateIndex(ctx context.Context, websiteUUID string, t time.Time) error
	DeleteIndex(ctx context.Context, websiteUUID string) error
	DeleteByFormID(ctx context.Context, websiteUUID, formID string) error
}

type repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) Repository {
	return &repository{
		client: client,
		config: config,
	}
}

func (r *repository) Index(ctx context.Context, doc *domain.MessageDocument) error {
	indexTime := time.Now()
	if !doc.CreatedAt.IsZero() {
		indexTime = doc.CreatedAt
	}
	indexName := r.config.GetIndexName(doc.WebsiteUUID, indexTime)

	if err := r.CreateIndex(ctx, doc.WebsiteUUID, indexTime); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal message document: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      indexName,
		DocumentID: strconv.FormatUint(uint64(doc.ID), 10),
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *repository) BulkIndex(ctx context.Context, docs []domain.MessageDocument) error {
	if len(docs) == 0 {
		return nil
	}

	// Group documents by target index (website + day)
	docGroups := make(map[string][]domain.MessageDocument)
	for _, doc := range docs {
		indexTime := time.Now()
		if !doc.CreatedAt.IsZero() {
			indexTime = doc.CreatedAt
		}
		indexName := r.config.GetIndexName(doc.WebsiteUUID, indexTime)
		docGroups[indexName] = append(docGroups[indexName], doc)
	}

	for indexName, groupDocs := range docGroups {
		if err := r.bulkIndexGroup(ctx, indexName, groupDocs); err != nil {
			return fmt.Errorf("failed to bulk index group for index %s: %w", indexName, err)
		}
	}

	return nil
}

func (r *repository) bulkIndexGroup(ctx context.Context, indexName string, docs []domain.MessageDocument) error {
	if len(docs) > 0 {
		indexTime := time.Now()
		if !docs[0].CreatedAt.IsZero() {
			indexTime = docs[0].CreatedAt
		}
		if err := r.CreateIndex(ctx, docs[0].WebsiteUUID, indexTime); err != nil {
			return fmt.Errorf("failed to ensure index exists: %w", err)
		}
	}

	var bulkBody strings.Builder
	for _, doc := range docs {
		action := map[string]any{
			"index": map[string]any{
				"_index": indexName,
				"_id":    strconv.FormatUint(uint64(doc.ID), 10),
			},
		}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return fmt.Errorf("failed to marshal action: %w", err)
		}
		bulkBody.Write(actionLine)
		bulkBody.WriteString("\n")

		docLine, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		bulkBody.Write(docLine)
		bulkBody.WriteString("\n")
	}

	req := opensearchapi.BulkRequest{
		Body: strings.NewReader(bulkBody.String()),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}

	return nil
}

func (r *repository) Search(ctx context.Context, filter *domain.MessageSearchFilter) ([]domain.MessageDocument, error) {
	if filter.WebsiteUUID == "" {
		return nil, fmt.Errorf("website uuid is required for search")
	}

	query := buildSearchQuery(filter)

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexPattern(filter.WebsiteUUID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.MessageDocument{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.MessageDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var docs []domain.MessageDocument
	for _, hit := range searchResult.Hits.Hits {
		docs = append(docs, hit.Source)
	}

	return docs, nil
}

// buildSearchQuery constructs the OpenSearch query from the filter
func buildSearchQuery(filter *domain.MessageSearchFilter) map[string]any {
	must := make([]map[string]any, 0)

	if filter.FormID != "" {
		must = append(must, map[string]any{
			"term": map[string]any{
				"form_id": filter.FormID,
			},
		})
	}

	if filter.Query != "" {
		must = append(must, map[string]any{
			"query_string": map[string]any{
				"query":  filter.Query,
				"fields": []string{"form_data.*"},
			},
		})
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query["from"] = (filter.Page - 1) * filter.PageSize
		query["size"] = filter.PageSize
	}

	// Most recent first
	query["sort"] = []map[string]any{
		{
			"created_at": map[string]any{
				"order": "desc",
			},
		},
	}

	return query
}

// getIndexMapping returns the mapping for the message index. form_data is a
// dynamic object so arbitrary submission shapes stay searchable.
func (r *repository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"website_uuid": { "type": "keyword" },
				"form_id": { "type": "keyword" },
				"form_data": {
					"type": "object",
					"dynamic": true
				},
				"created_at": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s",
				"mapping": {
					"total_fields": {
						"limit": 2000
					}
				}
			}
		}
	}`
}

func (r *repository) CreateIndex(ctx context.Context, websiteUUID string, t time.Time) error {
	indexName := r.config.GetIndexName(websiteUUID, t)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil // Index already exists
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}

// DeleteByFormID removes a form's documents from all of the website's daily
// indices. Missing indices are fine; the form may never have been indexed.
func (r *repository) DeleteByFormID(ctx context.Context, websiteUUID, formID string) error {
	query := map[string]any{
		"query": map[string]any{
			"term": map[string]any{
				"form_id": formID,
			},
		},
	}

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.DeleteByQueryRequest{
		Index: []string{r.config.GetIndexPattern(websiteUUID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete form documents: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return nil
		}
		return fmt.Errorf("error deleting form documents: %s", res.String())
	}

	return nil
}

func (r *repository) DeleteIndex(ctx context.Context, websiteUUID string) error {
	del := opensearchapi.IndicesDeleteRequest{
		Index: []string{r.config.GetIndexPattern(websiteUUID)},
	}

	res, err := del.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete indices: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error deleting indices: %s", res.String())
	}

	return nil
}
