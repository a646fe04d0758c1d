package config

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
)

type OpenSearchConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

func DefaultOpenSearchConfig() *OpenSearchConfig {
	return &OpenSearchConfig{
		Host:     getEnvOrDefault("OPENSEARCH_HOST", "localhost"),
		Port:     getEnvOrDefault("OPENSEARCH_PORT", "9200"),
		Username: getEnvOrDefault("OPENSEARCH_USERNAME", ""),
		Password: getEnvOrDefault("OPENSEARCH_PASSWORD", ""),
	}
}

func (c *OpenSearchConfig) GetClient() (*opensearch.Client, error) {
	config := opensearch.Config{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
		Addresses: []string{
			fmt.Sprintf("http://%s:%s", c.Host, c.Port),
		},
	}

	if c.Username != "" && c.Password != "" {
		config.Username = c.Username
		config.Password = c.Password
	}

	return opensearch.NewClient(config)
}

// GetIndexName returns the index name for a given website and time
// Format: form_messages_<website_uuid>_YYYY_MM_DD
func (c *OpenSearchConfig) GetIndexName(websiteUUID string, t time.Time) string {
	return fmt.Sprintf("form_messages_%s_%s", websiteUUID, t.Format("2006_01_02"))
}

// GetIndexPattern returns a pattern matching all indices for a website
// Format: form_messages_<website_uuid>_*
func (c *OpenSearchConfig) GetIndexPattern(websiteUUID string) string {
	return fmt.Sprintf("form_messages_%s_*", websiteUUID)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
