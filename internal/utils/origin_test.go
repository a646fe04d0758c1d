package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginHostname(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{"https origin", "https://acme.com", "acme.com"},
		{"http origin", "http://acme.com", "acme.com"},
		{"origin with port", "https://acme.com:8443", "acme.com"},
		{"subdomain kept", "https://www.acme.com", "www.acme.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OriginHostname(tt.origin))
		})
	}
}

func TestNormalizeHostname(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{"bare domain", "acme.com", "acme.com"},
		{"http domain", "http://acme.com", "acme.com"},
		{"https domain", "https://acme.com", "acme.com"},
		{"domain with port", "acme.com:3001", "acme.com"},
		{"domain with path", "https://acme.com/contact", "acme.com"},
		{"unparseable falls back to raw", "1%%2", "1%%2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHostname(tt.domain))
		})
	}
}

func TestOriginMatchesNormalizedDomain(t *testing.T) {
	// The submission pipeline compares these two, so domains stored with
	// or without a scheme must both match their browser Origin.
	assert.Equal(t, NormalizeHostname("acme.com"), OriginHostname("https://acme.com"))
	assert.Equal(t, NormalizeHostname("http://acme.com"), OriginHostname("https://acme.com"))
	assert.NotEqual(t, NormalizeHostname("acme.com"), OriginHostname("https://evil.com"))
}
